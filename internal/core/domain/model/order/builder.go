package order

import (
	"fmt"

	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/report"
)

// Builder assembles an Order step by step. Only the product is mandatory;
// the other parts keep their zero values when unset and are not
// re-validated here, that is the validation pipeline's job.
//
// A Builder is meant for a single Build call.
type Builder struct {
	reporter report.Reporter

	product       *product.Product
	quantity      int
	paymentMethod PaymentMethod
	id            int
}

// NewBuilder returns a Builder whose orders report through reporter.
// A nil reporter discards messages.
func NewBuilder(reporter report.Reporter) *Builder {
	if reporter == nil {
		reporter = report.Discard
	}
	return &Builder{reporter: reporter}
}

// SetProduct sets the ordered product. It is the only mandatory part: Build
// fails when it is missing or was not created through product.NewProduct.
//
// Example:
//
//	o, err := order.NewBuilder(reporter).
//	    SetProduct(laptop).
//	    SetQuantity(2).
//	    SetPaymentMethod(order.PaymentCredit).
//	    SetID(ids.NextID()).
//	    Build()
func (b *Builder) SetProduct(p product.Product) *Builder {
	b.product = &p
	return b
}

// SetQuantity sets the number of units. It is stored as given; a
// non-positive quantity is rejected earlier, by the order validator.
func (b *Builder) SetQuantity(quantity int) *Builder {
	b.quantity = quantity
	return b
}

// SetPaymentMethod sets how the order is paid for. Use ParsePaymentMethod
// to turn user input into a PaymentMethod.
func (b *Builder) SetPaymentMethod(method PaymentMethod) *Builder {
	b.paymentMethod = method
	return b
}

// SetID sets the order identifier, normally taken from a kernel.Sequence.
func (b *Builder) SetID(id int) *Builder {
	b.id = id
	return b
}

// Build returns a Pending order with no subscribers and its own publisher.
//
// Returns:
//   - (*Order, nil) when a constructed product was set
//   - (nil, error wrapping ErrConstruction and errs.ErrValueIsRequired)
//     otherwise; the error is also reported
func (b *Builder) Build() (*Order, error) {
	if b.product == nil || b.product.Validate() != nil {
		err := fmt.Errorf("%w: %w", ErrConstruction, errs.NewValueIsRequiredError("product"))
		b.reporter.Report(err.Error(), report.Error)
		return nil, err
	}

	return &Order{
		id:            b.id,
		product:       *b.product,
		quantity:      b.quantity,
		paymentMethod: b.paymentMethod,
		status:        Pending,
		publisher:     NewSubscribers(b.reporter),
		reporter:      b.reporter,
		isConstructed: true,
	}, nil
}
