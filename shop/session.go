package shop

import (
	"sync"

	"go-ecommerce-console/models"

	"github.com/google/uuid"
)

// Session is one shopper's cart on the HTTP front end. Its mutex serialises
// requests for the same session.
type Session struct {
	ID string

	mu   sync.Mutex
	cart *models.Cart
}

// WithCart runs fn while holding the session lock.
func (s *Session) WithCart(fn func(cart *models.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.cart)
}

// Sessions keeps the carts of active HTTP sessions in memory.
type Sessions struct {
	mu           sync.RWMutex
	sessions     map[string]*Session
	cartCapacity int
}

func NewSessions(cartCapacity int) *Sessions {
	return &Sessions{
		sessions:     make(map[string]*Session),
		cartCapacity: cartCapacity,
	}
}

// Start opens a new session with an empty cart.
func (s *Sessions) Start() *Session {
	sess := &Session{ID: uuid.NewString(), cart: models.NewCart(s.cartCapacity)}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session with id.
func (s *Sessions) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// End drops the session and its cart.
func (s *Sessions) End(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
