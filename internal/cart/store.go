package cart

import (
	"sync"

	"cinepass/internal/seatmap"
)

// Session bundles the per-booking-session state: the cart and the booked-seats
// loader tracking the session's active showtime.
type Session struct {
	ID     string
	Cart   *Cart
	Loader *seatmap.Loader
}

// Store owns every live booking session. Each session gets its own cart and
// loader, created on first touch and torn down on logout or checkout teardown.
// The store is injected where needed rather than living as a process global so
// tests can build isolated instances.
type Store struct {
	source seatmap.Source

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates a session store whose loaders fetch booked seats from
// source.
func NewStore(source seatmap.Source) *Store {
	return &Store{
		source:   source,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for sessionID, creating it with an empty cart when
// absent.
func (s *Store) Get(sessionID string) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under the write lock; another request may have created it.
	if sess, ok := s.sessions[sessionID]; ok {
		return sess
	}

	sess = &Session{
		ID:     sessionID,
		Cart:   NewCart(),
		Loader: seatmap.NewLoader(s.source),
	}
	s.sessions[sessionID] = sess
	return sess
}

// Peek returns the session without creating one.
func (s *Store) Peek(sessionID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	return sess, ok
}

// Remove tears a session down entirely.
func (s *Store) Remove(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
