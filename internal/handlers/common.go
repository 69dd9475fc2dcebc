package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/picshelf/picshelf/internal/auth"
	"github.com/picshelf/picshelf/internal/gallery"
	"github.com/picshelf/picshelf/internal/models"
	"github.com/picshelf/picshelf/internal/storage"
)

// sessionCookie carries the opaque session token.
const sessionCookie = "picshelf_session"

type Handler struct {
	creds    auth.Credentials
	sessions *storage.SessionStore
	gallery  *gallery.Service
	files    storage.FileStore
}

func New(creds auth.Credentials, sessions *storage.SessionStore, svc *gallery.Service, files storage.FileStore) *Handler {
	return &Handler{
		creds:    creds,
		sessions: sessions,
		gallery:  svc,
		files:    files,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}

// writeError maps an operation error to its status code. Unexpected errors
// are logged in full and surfaced as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := statusForError(err)
	if code == http.StatusInternalServerError {
		slog.Error("Internal error", "err", err)
		h.writeMessage(w, "Internal Server Error", code)
		return
	}
	slog.Warn("Request failed", "err", err, "status", code)
	h.writeMessage(w, err.Error(), code)
}

// statusForError is the single mapping from error kind to HTTP status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, gallery.ErrDuplicateLabel),
		errors.Is(err, gallery.ErrEmptyFilename),
		errors.Is(err, gallery.ErrUnsupportedType):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Session helpers
func (h *Handler) currentUser(r *http.Request) (*models.User, error) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil, auth.ErrUnauthenticated
	}
	session, exists := h.sessions.Get(cookie.Value)
	if !exists {
		return nil, auth.ErrUnauthenticated
	}
	return &session.User, nil
}

// requireUser resolves the request's session or writes a 401.
func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, err := h.currentUser(r)
	if err != nil {
		h.writeError(w, err)
		return nil, false
	}
	return user, true
}

// Recover catches panics from any handler, logs the fault, and returns a
// generic 500 so internal detail never reaches the client.
func (h *Handler) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("Unhandled panic", "panic", rec, "path", r.URL.Path)
				h.writeMessage(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
