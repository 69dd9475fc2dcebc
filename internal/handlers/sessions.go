package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/picshelf/picshelf/internal/auth"
)

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeMessage(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeMessage(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, ok := h.creds.Resolve(request.Username, request.Password)
	if !ok {
		slog.Warn("Login failed", "username", request.Username)
		h.writeMessage(w, "Login failed", http.StatusUnauthorized)
		return
	}

	session := h.sessions.Create(user)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("Login successful", "username", user.ID, "role", user.Role)
	h.writeJSON(w, map[string]any{
		"message": "Login successful",
		"role":    user.Role,
	})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeMessage(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		h.writeError(w, auth.ErrUnauthenticated)
		return
	}
	if _, exists := h.sessions.Get(cookie.Value); !exists {
		h.writeError(w, auth.ErrUnauthenticated)
		return
	}

	h.sessions.Delete(cookie.Value)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})

	h.writeMessage(w, "Logout successful", http.StatusOK)
}

func (h *Handler) HandleUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeMessage(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, user)
}

func (h *Handler) HandleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeMessage(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	if err := auth.Authorize(user, auth.AdminOnly); err != nil {
		h.writeMessage(w, "Unauthorized access to Admin Dashboard", http.StatusForbidden)
		return
	}

	h.writeMessage(w, "Welcome to the Admin Dashboard!", http.StatusOK)
}
