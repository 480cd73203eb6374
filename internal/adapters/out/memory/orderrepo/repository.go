// Package orderrepo implements ports.OrderRepository over the in-memory
// order book's transactional view.
package orderrepo

import (
	"context"
	"fmt"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

var _ ports.OrderRepository = (*Repository)(nil)

// Table is the transactional view a Repository works against.
type Table interface {
	Stage(o *order.Order) error
	Find(id int) (*order.Order, bool)
	All() []*order.Order
}

// Repository stores orders by id.
type Repository struct {
	table Table
}

func NewRepository(table Table) *Repository {
	return &Repository{table: table}
}

// Add stages a new order. Duplicate ids are rejected.
func (r *Repository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, exists := r.table.Find(aggregate.ID()); exists {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d already exists", aggregate.ID()))
	}

	return r.table.Stage(aggregate)
}

// Update stages a new version of an existing order.
func (r *Repository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, exists := r.table.Find(aggregate.ID()); !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	return r.table.Stage(aggregate)
}

func (r *Repository) Get(ctx context.Context, id int) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o, ok := r.table.Find(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

func (r *Repository) List(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.table.All(), nil
}

func (r *Repository) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var out []*order.Order
	for _, o := range r.table.All() {
		if o.Status() == status {
			out = append(out, o)
		}
	}
	return out, nil
}
