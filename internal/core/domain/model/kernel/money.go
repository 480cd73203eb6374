package kernel

import (
	"fmt"

	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an immutable decimal amount. The zero value is 0.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps an existing decimal.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromInt builds a whole amount.
func MoneyFromInt(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

// MoneyFromString parses amounts such as "999.99".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%q: %w", s, err))
	}
	return Money{amount: d}, nil
}

// MustMoney is MoneyFromString for literals; it panics on malformed input.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Mul multiplies by a quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal compares by value, so 1.5 equals 1.50.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
