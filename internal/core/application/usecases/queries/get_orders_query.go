// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return plain read models that never alias the stored aggregates.
package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders, optionally only those in one status.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(order.Pending)
//	views, err := handler.Handle(ctx, query)
//	for _, v := range views {
//	    fmt.Printf("#%d %s x%d $%s [%s]\n", v.ID, v.ProductName, v.Quantity, v.Total, v.Status)
//	}
type GetOrdersQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery filters by status when one is given.
// Passing order.Unknown or nothing lists every order.
func NewGetOrdersQuery(status ...order.Status) (GetOrdersQuery, error) {
	q := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	if len(status) > 0 && status[0] != order.Unknown {
		if err := status[0].Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		q.status = status[0]
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the filter; order.Unknown means no filter.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}
