package cart

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("cart session not found")

// Store owns every live cart, keyed by session id. Carts are created at
// session start and removed at session end; they do not survive a restart.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Create opens a new session and returns its id along with the empty cart.
func (s *Store) Create() (string, *Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sid := uuid.NewString()
	c := New()
	s.carts[sid] = c
	return sid, c
}

// Get returns the cart for a session id.
func (s *Store) Get(sid string) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[sid]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return c, nil
}

// Remove tears down a session.
func (s *Store) Remove(sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[sid]; !ok {
		return ErrSessionNotFound
	}
	delete(s.carts, sid)
	return nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
