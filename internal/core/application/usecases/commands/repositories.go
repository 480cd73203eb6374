// Package commands contains business operations that modify the order book.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: a validated command value, then a
// handler that works inside one unit of work and commits only on success.
package commands

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/core/domain/services"
)

// Domain collaborators the handlers need. The services package provides the
// production implementations.
type (
	// OrderChecker gates order creation on a raw request.
	OrderChecker interface {
		Check(req services.OrderRequest) error
	}

	// OrderLifecycle builds orders and drives their status changes.
	OrderLifecycle interface {
		CreateOrder(p product.Product, quantity int, paymentMethod order.PaymentMethod, id int) (*order.Order, error)
		ProcessOrder(o *order.Order) error
		ShipOrder(o *order.Order) error
		DeliverOrder(o *order.Order) error
		CancelOrder(o *order.Order) error
	}

	// PaymentCharger charges an order total.
	PaymentCharger interface {
		Process(method order.PaymentMethod, amount kernel.Money) error
	}
)

var (
	_ OrderChecker   = (*services.OrderValidator)(nil)
	_ OrderLifecycle = (*services.OrderFacade)(nil)
	_ PaymentCharger = (*services.PaymentProcessor)(nil)
)
