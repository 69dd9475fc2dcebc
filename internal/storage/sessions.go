package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/picshelf/picshelf/internal/models"
)

// SessionStore maps opaque tokens to active sessions. State is process-local
// and lost on restart.
type SessionStore struct {
	sessions map[string]*models.Session
	ttl      time.Duration
	mu       sync.RWMutex
}

// NewSessionStore creates an empty store. Sessions older than ttl are treated
// as absent on lookup; a zero ttl disables expiry.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
	}
}

// Create registers a new session for user and returns it.
func (s *SessionStore) Create(user models.User) *models.Session {
	session := &models.Session{
		Token:     uuid.NewString(),
		User:      user,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return session
}

// Get resolves a token to its session. Expired sessions are removed and
// reported as missing.
func (s *SessionStore) Get(token string) (*models.Session, bool) {
	s.mu.RLock()
	session, exists := s.sessions[token]
	s.mu.RUnlock()
	if !exists {
		return nil, false
	}

	if s.ttl > 0 && time.Since(session.CreatedAt) > s.ttl {
		s.Delete(token)
		return nil, false
	}
	return session, true
}

// Delete invalidates a session. Deleting an unknown token is a no-op.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Len reports the number of stored sessions, including any not yet swept.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
