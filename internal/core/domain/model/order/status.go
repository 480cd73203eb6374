package order

import (
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │             │
//	   └─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Any pair not drawn above is
// rejected with an InvalidTransitionError.
type Status int

const (
	// Unknown is the zero value. No constructed order ever holds it.
	Unknown Status = iota

	// Pending is the initial status of every built order.
	Pending

	// Processing means payment was accepted and the warehouse is preparing the order.
	Processing

	// Shipped means the order has left the warehouse.
	Shipped

	// Delivered is terminal: the customer received the order.
	Delivered

	// Cancelled is terminal: the order will not be fulfilled.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:    "pending",
	Processing: "processing",
	Shipped:    "shipped",
	Delivered:  "delivered",
	Cancelled:  "cancelled",
}

//nolint:exhaustive // Unknown has no transitions
var transitions = map[Status][]Status{
	Pending:    {Processing, Cancelled},
	Processing: {Shipped, Cancelled},
	Shipped:    {Delivered},
	Delivered:  {},
	Cancelled:  {},
}

// AllStatuses returns the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Processing, Shipped, Delivered, Cancelled}
}

// ParseStatus maps a case-insensitive name such as "Shipped" to its Status.
func ParseStatus(name string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for s, str := range statusNames {
		if str == needle {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Validate returns an error for Unknown and for values outside the enumeration.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the lowercase status name, or "unknown".
func (s Status) String() string {
	if str, ok := statusNames[s]; ok {
		return str
	}
	return "unknown"
}

// Targets lists the statuses reachable from s in one step.
func (s Status) Targets() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether target is a legal next status.
// A status never transitions to itself.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transitions leave s.
func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// TransitionTo is the pure table lookup behind Order.SetStatus.
//
// Returns:
//   - (target, nil) when the move is legal
//   - (s, *errs.ValueIsInvalidError) when either side is outside the enumeration
//   - (s, *InvalidTransitionError) otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	if err := target.Validate(); err != nil {
		return s, err
	}
	if !s.CanTransitionTo(target) {
		return s, NewInvalidTransitionError(s, target)
	}
	return target, nil
}
