package order

import (
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
)

// PaymentMethod is the closed set of ways an order can be paid for.
// The zero value is the empty string and is not valid.
type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "credit"
	PaymentPayPal PaymentMethod = "paypal"
	PaymentBank   PaymentMethod = "bank"
)

// PaymentMethods returns the accepted methods.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCredit, PaymentPayPal, PaymentBank}
}

// ParsePaymentMethod accepts any casing, e.g. "PayPal". Surrounding
// whitespace is not stripped, so " credit " is rejected.
//
// Returns:
//   - (method, nil) for credit, paypal or bank in any casing
//   - ("", *errs.ValueIsInvalidError) otherwise
func ParsePaymentMethod(name string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(name))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentCredit, PaymentPayPal, PaymentBank:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not supported", string(m)))
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}
