package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

// RecentOrdersLimit is how many of the newest orders SystemStatus carries.
const RecentOrdersLimit = 5

var ErrGetSystemStatusQueryIsNotConstructed = errors.New(
	"GetSystemStatusQuery must be created via NewGetSystemStatusQuery constructor",
)

// GetSystemStatusQuery summarizes the order book for dashboards and the
// periodic status summary job.
type GetSystemStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSystemStatusQuery() GetSystemStatusQuery {
	return GetSystemStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSystemStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetSystemStatusQueryIsNotConstructed)
}

// SystemStatus counts orders per status. TotalRevenue sums the totals of
// every order regardless of status.
type SystemStatus struct {
	TotalOrders  int
	Pending      int
	Processing   int
	Shipped      int
	Delivered    int
	Cancelled    int
	TotalRevenue kernel.Money

	// Recent holds up to RecentOrdersLimit newest orders, oldest first.
	Recent []OrderView
}
