package repository

import (
	"sync"

	"github.com/campusgpt/portal-api/internal/models"
)

// SessionRepository maps server-side session IDs to identity keys. It holds
// only the identity key, never a copy of user attributes, so attribute
// changes are observed consistently across an active session.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewSessionRepository constructs an empty session store.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]string)}
}

// Create binds a session ID to an identity key.
func (r *SessionRepository) Create(sessionID, email string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = email
}

// Resolve returns the identity bound to the session ID. Unknown IDs resolve
// to the anonymous state, never an error.
func (r *SessionRepository) Resolve(sessionID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email, ok := r.sessions[sessionID]
	return email, ok
}

// Delete removes the binding. Deleting an unknown or already-deleted session
// is a no-op.
func (r *SessionRepository) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// CountByRole reports active sessions whose identity currently resolves to
// the given role.
func (r *SessionRepository) CountByRole(users *UserRepository, role models.UserRole) int {
	r.mu.RLock()
	emails := make([]string, 0, len(r.sessions))
	for _, email := range r.sessions {
		emails = append(emails, email)
	}
	r.mu.RUnlock()

	count := 0
	for _, email := range emails {
		if user, ok := users.Lookup(email); ok && user.Role == role {
			count++
		}
	}
	return count
}

// Count returns the number of active sessions.
func (r *SessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
