package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition matches every rejected status change.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrConstruction is returned by Builder.Build when required parts are missing.
	ErrConstruction = errors.New("order construction failed")

	// ErrOrderIsNotConstructed is returned when an Order did not come from a Builder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via Builder")
)

// InvalidTransitionError names the rejected pair.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s: %v", e.From, e.To, ErrInvalidTransition)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
