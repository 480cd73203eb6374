package services

import (
	"fmt"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/pkg/report"
)

// DefaultCustomerName is the recipient used by the facade's customer notifier.
const DefaultCustomerName = "customer"

// OrderFacade is the single coordination point for an order's lifecycle.
// It builds orders, attaches the standard subscribers and drives status
// changes. It holds no per-order state, so one facade serves every order.
//
// Example usage:
//
//	facade := services.NewOrderFacade(reporter)
//	o, err := facade.CreateOrder(laptop, 3, order.PaymentCredit, ids.NextID())
//	if err != nil {
//	    return err
//	}
//	if err := facade.ProcessOrder(o); err != nil {
//	    // *order.InvalidTransitionError
//	}
type OrderFacade struct {
	reporter  report.Reporter
	customer  order.Subscriber
	warehouse order.Subscriber
}

// NewOrderFacade creates a facade with the default customer and warehouse notifiers.
func NewOrderFacade(reporter report.Reporter) *OrderFacade {
	if reporter == nil {
		reporter = report.Discard
	}
	return &OrderFacade{
		reporter:  reporter,
		customer:  NewCustomerNotifier(DefaultCustomerName, reporter),
		warehouse: NewWarehouseNotifier(reporter),
	}
}

// CreateOrder builds a pending order and attaches the customer then the
// warehouse notifier. Inputs are not re-validated here.
func (f *OrderFacade) CreateOrder(
	p product.Product,
	quantity int,
	paymentMethod order.PaymentMethod,
	id int,
) (*order.Order, error) {
	o, err := order.NewBuilder(f.reporter).
		SetProduct(p).
		SetQuantity(quantity).
		SetPaymentMethod(paymentMethod).
		SetID(id).
		Build()
	if err != nil {
		return nil, err
	}

	o.Attach(f.customer)
	o.Attach(f.warehouse)

	f.reporter.Report(fmt.Sprintf("order #%d created successfully", o.ID()), report.Success)
	return o, nil
}

// ProcessOrder moves o to processing.
func (f *OrderFacade) ProcessOrder(o *order.Order) error {
	return f.transition(o, order.Processing, "order #%d is being processed", report.Info)
}

// ShipOrder moves o to shipped.
func (f *OrderFacade) ShipOrder(o *order.Order) error {
	return f.transition(o, order.Shipped, "order #%d has been shipped", report.Success)
}

// DeliverOrder moves o to delivered.
func (f *OrderFacade) DeliverOrder(o *order.Order) error {
	return f.transition(o, order.Delivered, "order #%d has been delivered", report.Success)
}

// CancelOrder moves o to cancelled.
func (f *OrderFacade) CancelOrder(o *order.Order) error {
	return f.transition(o, order.Cancelled, "order #%d has been cancelled", report.Warning)
}

// transition returns SetStatus errors untouched; the order already reported them.
func (f *OrderFacade) transition(o *order.Order, target order.Status, format string, severity report.Severity) error {
	before := o.Status()
	if err := o.SetStatus(target); err != nil {
		return err
	}
	if before != o.Status() {
		f.reporter.Report(fmt.Sprintf(format, o.ID()), severity)
	}
	return nil
}
