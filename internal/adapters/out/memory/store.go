package memory

import (
	"context"
	"errors"
	"sync"

	"orderflow/internal/adapters/out/memory/orderrepo"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// ErrReadOnly is returned by writes made through the repository handed to
// ReadOrders.
var ErrReadOnly = errors.New("order book is read-only outside a unit of work")

var _ ports.OrderReader = (*Store)(nil)

// Store is the in-memory order book. Orders are keyed by id and kept in
// insertion order. Writers go through a UnitOfWork, which holds the lock
// exclusively between Begin and Commit/Rollback.
type Store struct {
	mu     sync.RWMutex
	orders map[int]*order.Order
	ids    []int
}

func NewStore() *Store {
	return &Store{orders: make(map[int]*order.Order)}
}

// ReadOrders calls fn with a read-only repository over the committed
// orders. The read lock is held until fn returns.
func (s *Store) ReadOrders(ctx context.Context, fn func(repo ports.OrderRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(orderrepo.NewRepository(readView{store: s}))
}

// Len returns the number of committed orders.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.ids)
}

// snapshot must be called with the lock held.
func (s *Store) snapshot() []*order.Order {
	out := make([]*order.Order, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.orders[id])
	}
	return out
}

// apply must be called with the write lock held.
func (s *Store) apply(o *order.Order) {
	if _, ok := s.orders[o.ID()]; !ok {
		s.ids = append(s.ids, o.ID())
	}
	s.orders[o.ID()] = o
}

// readView is an orderrepo.Table over committed orders. The caller holds
// the read lock.
type readView struct {
	store *Store
}

func (v readView) Stage(*order.Order) error {
	return ErrReadOnly
}

func (v readView) Find(id int) (*order.Order, bool) {
	o, ok := v.store.orders[id]
	return o, ok
}

func (v readView) All() []*order.Order {
	return v.store.snapshot()
}
