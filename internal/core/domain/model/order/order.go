package order

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/pkg/report"
)

// Order is a purchase of a single product in some quantity. It is the
// aggregate root of the lifecycle: status changes go through SetStatus and
// nowhere else.
//
// Order follows these invariants:
//   - Status is always one of the valid statuses, starting at Pending
//   - Status only moves along the transition table (see Status)
//   - Every real status change is published exactly once
//   - Can only be created through Builder
//
// An Order is not safe for concurrent use. Callers that share orders
// between goroutines serialize access themselves.
type Order struct {
	id            int
	product       product.Product
	quantity      int
	paymentMethod PaymentMethod
	status        Status

	publisher Publisher
	reporter  report.Reporter

	isConstructed bool
}

// Validate ensures the Order came from a Builder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the identifier assigned at construction.
func (o *Order) ID() int {
	return o.id
}

// Product returns the product the order was placed for.
func (o *Order) Product() product.Product {
	return o.product
}

// Quantity returns the number of units ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// PaymentMethod returns how the order is paid for.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount is the unit price times the quantity, computed on every call.
func (o *Order) TotalAmount() kernel.Money {
	return o.product.Price().Mul(o.quantity)
}

// Details renders a one-line summary suitable for logs and notices.
func (o *Order) Details() string {
	return fmt.Sprintf("order #%d: %d x %s at $%s, total $%s via %s, status %s",
		o.id, o.quantity, o.product.Name(), o.product.Price(), o.TotalAmount(), o.paymentMethod, o.status)
}

// Attach subscribes s to future status changes.
func (o *Order) Attach(s Subscriber) {
	o.publisher.Attach(s)
}

// Detach unsubscribes s. Detaching an unknown subscriber is a no-op.
func (o *Order) Detach(s Subscriber) {
	o.publisher.Detach(s)
}

// Subscribers returns the number of attached subscribers.
func (o *Order) Subscribers() int {
	return o.publisher.Len()
}

// SetStatus moves the order to target.
//
// Behaviour:
//   - target equals the current status: nothing changes, nobody is notified,
//     an info message is reported and nil is returned
//   - target is a legal next status: the status changes and every
//     subscriber is notified once, in attachment order
//   - anything else: the error is reported and returned, status unchanged
//
// Subscriber failures are reported by the publisher and do not undo or fail
// the transition.
//
// Example:
//
//	if err := o.SetStatus(order.Processing); err != nil {
//	    var te *order.InvalidTransitionError
//	    if errors.As(err, &te) {
//	        // te.From, te.To
//	    }
//	}
func (o *Order) SetStatus(target Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := target.Validate(); err != nil {
		o.reporter.Report(err.Error(), report.Error)
		return err
	}

	if target == o.status {
		o.reporter.Report(fmt.Sprintf("order #%d is already in %s status", o.id, o.status), report.Info)
		return nil
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		o.reporter.Report(err.Error(), report.Error)
		return err
	}

	o.status = next
	_ = o.publisher.Publish(o)
	return nil
}
