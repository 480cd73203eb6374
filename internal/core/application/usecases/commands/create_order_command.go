package commands

import (
	"errors"
	"fmt"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand asks for a new order of a catalog product.
// Quantity and payment method are deliberately not checked here: the
// validation pipeline owns those rules and reports their failures.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(1, 2, "credit")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	productID     int
	quantity      int
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand rejects non-positive product ids.
func NewCreateOrderCommand(productID, quantity int, paymentMethod string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		quantity:      quantity,
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ProductID() int {
	return c.productID
}

func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// PaymentMethod is the raw method name as entered.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setProductID(productID int) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id", fmt.Errorf("%d is not greater than 0", productID))
	}

	c.productID = productID
	return nil
}
