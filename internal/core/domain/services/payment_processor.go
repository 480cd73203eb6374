package services

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/report"
)

// ErrUnsupportedPaymentMethod is returned for methods without a strategy.
var ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")

// PaymentStrategy charges an amount through one payment channel.
type PaymentStrategy interface {
	Type() string
	Pay(amount kernel.Money) error
}

type channelStrategy struct {
	name     string
	reporter report.Reporter
}

func (s channelStrategy) Type() string {
	return s.name
}

func (s channelStrategy) Pay(amount kernel.Money) error {
	s.reporter.Report(fmt.Sprintf("processing $%s via %s", amount, s.name), report.Info)
	return nil
}

// NewPaymentStrategy returns the Credit Card, PayPal or Bank Transfer strategy.
func NewPaymentStrategy(method order.PaymentMethod, reporter report.Reporter) (PaymentStrategy, error) {
	if reporter == nil {
		reporter = report.Discard
	}

	switch method {
	case order.PaymentCredit:
		return channelStrategy{name: "Credit Card", reporter: reporter}, nil
	case order.PaymentPayPal:
		return channelStrategy{name: "PayPal", reporter: reporter}, nil
	case order.PaymentBank:
		return channelStrategy{name: "Bank Transfer", reporter: reporter}, nil
	default:
		err := fmt.Errorf("%w: %q", ErrUnsupportedPaymentMethod, string(method))
		reporter.Report(err.Error(), report.Error)
		return nil, err
	}
}

// PaymentProcessor picks a strategy per payment and runs it.
type PaymentProcessor struct {
	reporter report.Reporter
}

// NewPaymentProcessor returns a processor that reports each charge through
// reporter. A nil reporter discards the messages.
//
// Example:
//
//	payments := services.NewPaymentProcessor(reporter)
//	if err := payments.Process(o.PaymentMethod(), o.TotalAmount()); err != nil {
//	    return err
//	}
func NewPaymentProcessor(reporter report.Reporter) *PaymentProcessor {
	if reporter == nil {
		reporter = report.Discard
	}
	return &PaymentProcessor{reporter: reporter}
}

// Process charges amount via method.
//
// Returns:
//   - nil after reporting "processing $X via <type>" then "payment of $X processed"
//   - *errs.ValueIsInvalidError for a negative amount
//   - an error wrapping ErrUnsupportedPaymentMethod for an unknown method
func (p *PaymentProcessor) Process(method order.PaymentMethod, amount kernel.Money) error {
	if amount.IsNegative() {
		err := errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
		p.reporter.Report(err.Error(), report.Error)
		return err
	}

	strategy, err := NewPaymentStrategy(method, p.reporter)
	if err != nil {
		return err
	}

	if err := strategy.Pay(amount); err != nil {
		p.reporter.Report(err.Error(), report.Error)
		return err
	}

	p.reporter.Report(fmt.Sprintf("payment of $%s processed", amount), report.Success)
	return nil
}
