// Package ports defines the contracts between the order core and its
// adapters. The core depends only on these interfaces; the composition
// root binds them to the in-memory order book and product catalog.
package ports

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates.
type OrderRepository interface {
	// Add stores a new order. The order must be valid and its id unused.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces a stored order with the same id.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id int) (*order.Order, error)

	// List returns every order in insertion order.
	List(ctx context.Context) ([]*order.Order, error)

	// ListByStatus returns the orders currently in status, in insertion order.
	ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}

// OrderReader runs fn against a read-only OrderRepository over a consistent
// view of the committed orders. Add and Update fail inside fn. fn must not
// retain the repository or mutate the orders it returns.
type OrderReader interface {
	ReadOrders(ctx context.Context, fn func(repo OrderRepository) error) error
}

// IDAllocator hands out unique, increasing order ids.
type IDAllocator interface {
	NextID() int
}
