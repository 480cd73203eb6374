package commands

import (
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// Action is a lifecycle step requested by a caller.
type Action string

const (
	ActionProcess Action = "process"
	ActionShip    Action = "ship"
	ActionDeliver Action = "deliver"
	ActionCancel  Action = "cancel"
)

// ParseAction accepts any casing.
func ParseAction(name string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(name)))
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}

func (a Action) Validate() error {
	switch a {
	case ActionProcess, ActionShip, ActionDeliver, ActionCancel:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a lifecycle action", string(a)))
	}
}

func (a Action) String() string {
	return string(a)
}

// ChangeOrderStatusCommand applies one lifecycle action to a stored order.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, ActionShip)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); errors.Is(err, order.ErrInvalidTransition) {
//	    // the order is not in a state that can be shipped
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int
	action  Action

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(orderID int, action Action) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAction(action),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() int {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Action() Action {
	return c.action
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setAction(action Action) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}
