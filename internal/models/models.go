package models

import (
	"fmt"
	"time"
)

// Role is the authorization level of a user.
type Role string

const (
	RoleNormal Role = "normal"
	RoleAdmin  Role = "admin"
)

// ParseRole validates a role string from config or client input.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleNormal, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string {
	return string(r)
}

// User represents an authenticated principal.
type User struct {
	ID   string `json:"username"`
	Role Role   `json:"role"`
}

// Session binds an opaque token to an authenticated user.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// ImageRecord is a stored file plus its resolved label, used for listing.
type ImageRecord struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Label    string `json:"label"`
}
