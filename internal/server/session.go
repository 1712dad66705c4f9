package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sampath-kumaramd/mathlearn-project/internal/profile"
)

// sessionCookie is the name of the login cookie.
const sessionCookie = "mathlearn_session"

// Session identifies a logged-in student.
type Session struct {
	StudentID  string
	Impairment profile.Impairment
}

// SessionStore keeps active sessions in memory, keyed by opaque token.
// Sessions do not survive a restart; profiles do.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]Session)}
}

// Create registers a session and returns its token.
func (s *SessionStore) Create(studentID string, impairment profile.Impairment) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = Session{StudentID: studentID, Impairment: impairment}
	s.mu.Unlock()
	return token
}

// Get looks up a session by token.
func (s *SessionStore) Get(token string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	return sess, ok
}

// Delete removes a session. Unknown tokens are ignored.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
