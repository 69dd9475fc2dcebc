package auth

import (
	"errors"

	"github.com/picshelf/picshelf/internal/models"
)

var (
	// ErrUnauthenticated means no valid session exists for the request.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden means the session is valid but the role is insufficient.
	ErrForbidden = errors.New("unauthorized access")
)

// Requirement is the role level a protected operation demands.
type Requirement int

const (
	// AnyAuthenticated allows any logged-in user.
	AnyAuthenticated Requirement = iota
	// AdminOnly allows only users with the admin role.
	AdminOnly
)

// Authorize decides whether user satisfies the requirement. A nil user always
// fails with ErrUnauthenticated so callers never reach validation logic
// without a session.
func Authorize(user *models.User, req Requirement) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if req == AdminOnly && user.Role != models.RoleAdmin {
		return ErrForbidden
	}
	return nil
}

// Credential is one entry in the static credential table.
type Credential struct {
	Password string
	Role     models.Role
}

// Credentials maps usernames to their credential entries.
type Credentials map[string]Credential

// Resolve checks a username/password pair against the table and returns the
// matching user. No rate limiting or lockout.
func (c Credentials) Resolve(username, password string) (models.User, bool) {
	cred, ok := c[username]
	if !ok || cred.Password != password {
		return models.User{}, false
	}
	return models.User{ID: username, Role: cred.Role}, true
}
