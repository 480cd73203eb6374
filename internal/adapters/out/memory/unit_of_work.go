// Package memory provides the in-memory order book and its Unit of Work.
//
// Usage:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// A UnitOfWork holds the store's write lock from Begin until Commit or
// Rollback, so command handlers are serialized against each other and
// against readers such as Store.ReadOrders. Writes are staged and only
// become visible to other readers on Commit.
package memory

import (
	"context"
	"errors"

	"orderflow/internal/adapters/out/memory/orderrepo"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// ErrTransactionNotActive is returned by writes and Commit outside Begin/Commit.
var ErrTransactionNotActive = errors.New("transaction is not active")

// UnitOfWorkFactory creates UnitOfWork instances over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh, inactive UnitOfWork.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages order writes and applies them atomically on Commit.
type UnitOfWork struct {
	store  *Store
	active bool

	staged []*order.Order
}

// Begin locks the store. Calling Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.mu.Lock()
	uow.active = true
	uow.staged = nil
	return nil
}

// Commit applies staged writes in order and releases the store. It ignores
// ctx and only fails when no transaction is active.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrTransactionNotActive
	}

	for _, o := range uow.staged {
		uow.store.apply(o)
	}
	uow.finish()
	return nil
}

// Rollback discards staged writes. It is a no-op when nothing is active,
// which makes the deferred Rollback after Commit safe.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}
	uow.finish()
	return nil
}

// OrderRepository returns a repository that reads through staged writes.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewRepository(uow)
}

func (uow *UnitOfWork) finish() {
	uow.staged = nil
	uow.active = false
	uow.store.mu.Unlock()
}

// Stage records a write for Commit.
func (uow *UnitOfWork) Stage(o *order.Order) error {
	if !uow.active {
		return ErrTransactionNotActive
	}
	uow.staged = append(uow.staged, o)
	return nil
}

// Find looks in staged writes first, then in the store.
func (uow *UnitOfWork) Find(id int) (*order.Order, bool) {
	for i := len(uow.staged) - 1; i >= 0; i-- {
		if uow.staged[i].ID() == id {
			return uow.staged[i], true
		}
	}

	if !uow.active {
		uow.store.mu.RLock()
		defer uow.store.mu.RUnlock()
	}
	o, ok := uow.store.orders[id]
	return o, ok
}

// All returns committed orders followed by staged inserts, with staged
// updates applied.
func (uow *UnitOfWork) All() []*order.Order {
	if !uow.active {
		uow.store.mu.RLock()
		defer uow.store.mu.RUnlock()
	}

	all := uow.store.snapshot()
	pos := make(map[int]int, len(all))
	for i, o := range all {
		pos[o.ID()] = i
	}
	for _, o := range uow.staged {
		if i, ok := pos[o.ID()]; ok {
			all[i] = o
			continue
		}
		pos[o.ID()] = len(all)
		all = append(all, o)
	}
	return all
}
