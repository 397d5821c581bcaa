package shop

import (
	"sync"

	"go-ecommerce-console/models"
)

// DefaultLedgerCapacity is the maximum number of orders kept per process
// unless configured otherwise.
const DefaultLedgerCapacity = 10

// Ledger is the append-only order history for one process. Order ids start
// at 1 and are never handed out twice.
type Ledger struct {
	mu       sync.RWMutex
	orders   []models.Order
	nextID   int
	capacity int
}

// NewLedger returns an empty ledger. A non-positive capacity falls back to
// DefaultLedgerCapacity.
func NewLedger(capacity int) *Ledger {
	if capacity <= 0 {
		capacity = DefaultLedgerCapacity
	}
	return &Ledger{nextID: 1, capacity: capacity}
}

// NextID allocates the next order id.
func (l *Ledger) NextID() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	return id
}

// PeekNextID reports the id the next NextID call will return.
func (l *Ledger) PeekNextID() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.nextID
}

// Append stores order. Stored orders are left untouched when the ledger is
// full.
func (l *Ledger) Append(order models.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.orders) >= l.capacity {
		return &models.CapacityError{Collection: "order ledger"}
	}
	l.orders = append(l.orders, order)
	return nil
}

// All returns a copy of the stored orders, oldest first.
func (l *Ledger) All() []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Find returns the order with the given id.
func (l *Ledger) Find(id int) (models.Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.orders {
		if o.ID() == id {
			return o, true
		}
	}
	return models.Order{}, false
}

func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}

func (l *Ledger) Full() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders) >= l.capacity
}

func (l *Ledger) Capacity() int { return l.capacity }
