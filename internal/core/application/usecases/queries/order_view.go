package queries

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderView is the read model of a single order.
//
// Next lists the statuses the order may still move to and is empty once
// Final is set. Summary is the one-line description used in logs.
type OrderView struct {
	ID            int
	ProductID     int
	ProductName   string
	UnitPrice     kernel.Money
	Quantity      int
	Total         kernel.Money
	PaymentMethod order.PaymentMethod
	Status        order.Status
	Next          []order.Status
	Final         bool
	Summary       string
}

func newOrderView(o *order.Order) OrderView {
	return OrderView{
		ID:            o.ID(),
		ProductID:     o.Product().ID(),
		ProductName:   o.Product().Name(),
		UnitPrice:     o.Product().Price(),
		Quantity:      o.Quantity(),
		Total:         o.TotalAmount(),
		PaymentMethod: o.PaymentMethod(),
		Status:        o.Status(),
		Next:          o.Status().Targets(),
		Final:         o.Status().IsTerminal(),
		Summary:       o.Details(),
	}
}
