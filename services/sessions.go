package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type wizardSession struct {
	wizard  *Wizard
	touched time.Time
}

// SessionStore holds the open wizard drafts, keyed by an opaque session id
// carried in a cookie. It is the only shared mutable state in the process
// and is guarded by a mutex; each wizard itself has a single owner.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*wizardSession
	now      func() time.Time
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: map[string]*wizardSession{},
		now:      time.Now,
	}
}

// Open registers a wizard under a new session id and returns the id.
func (s *SessionStore) Open(w *Wizard) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &wizardSession{wizard: w, touched: s.now()}
	return id
}

// Get returns the wizard for a session id and refreshes its last-touched
// time. The second result is false when the session is unknown or expired.
func (s *SessionStore) Get(id string) (*Wizard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.touched = s.now()
	return sess.wizard, true
}

// Close discards a session and its draft.
func (s *SessionStore) Close(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Purge drops sessions untouched for longer than maxAge and returns how
// many were removed. Called periodically from the scheduler.
func (s *SessionStore) Purge(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-maxAge)
	removed := 0
	for id, sess := range s.sessions {
		if sess.touched.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
