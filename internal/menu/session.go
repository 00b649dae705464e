package menu

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("filter session not found")

// Session is one visitor's browsing state on the menu page.
type Session struct {
	ID        string          `json:"id"`
	Selection FilterSelection `json:"selection"`
	LastSeen  time.Time       `json:"-"`
}

// SessionStore keeps filter sessions in memory. Selections are never
// persisted.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

func (s *SessionStore) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:        uuid.New().String(),
		Selection: DefaultSelection(),
		LastSeen:  s.now(),
	}
	s.sessions[sess.ID] = sess
	return *sess
}

func (s *SessionStore) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	sess.LastSeen = s.now()
	return *sess, nil
}

// Update applies one dimension change and returns the new selection.
func (s *SessionStore) Update(id string, dim Dimension, value string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	sel := sess.Selection
	if err := sel.Update(dim, value); err != nil {
		return Session{}, err
	}
	sess.Selection = sel
	sess.LastSeen = s.now()

	return *sess, nil
}

func (s *SessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Sweep drops sessions idle for longer than ttl and returns how many went.
func (s *SessionStore) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
