package auth

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"github.com/pigsheadbbq/site/internal/domain"
)

const sessionTokenBytes = 32

// SessionStore is an in-memory mapping from opaque token to authenticated
// identity. Storage has process lifetime: a restart invalidates every
// session. Expiry is enforced only by the cookie max-age on the client.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	clock    func() time.Time
}

// NewSessionStore builds a store. clock may be nil, in which case time.Now
// is used; tests inject a synthetic clock.
func NewSessionStore(clock func() time.Time) *SessionStore {
	if clock == nil {
		clock = time.Now
	}
	return &SessionStore{
		sessions: make(map[string]domain.Session),
		clock:    clock,
	}
}

// Create generates a cryptographically random token for username and stores
// the session. The token carries 256 bits of entropy.
func (s *SessionStore) Create(username string) (string, error) {
	raw := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	s.mu.Lock()
	s.sessions[token] = domain.Session{
		Token:     token,
		Username:  username,
		CreatedAt: s.clock(),
	}
	s.mu.Unlock()
	return token, nil
}

// Lookup returns the username for token, if a session exists.
func (s *SessionStore) Lookup(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	return session.Username, true
}

// Delete removes the session for token. Deleting an absent token is a no-op.
func (s *SessionStore) Delete(token string) {
	if token == "" {
		return
	}
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
