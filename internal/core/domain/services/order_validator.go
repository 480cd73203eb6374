package services

import (
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/report"
)

var (
	// ErrValidationFailed wraps every rejection returned by OrderValidator.Check.
	ErrValidationFailed = errors.New("order validation failed")

	ErrProductNameRequired  = errors.New("product name is required")
	ErrQuantityNotPositive  = errors.New("quantity must be greater than 0")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// OrderRequest is the raw input of an order form.
type OrderRequest struct {
	ProductName   string
	Quantity      int
	PaymentMethod string
}

// OrderCheck inspects one aspect of a request and returns the reason it is rejected.
type OrderCheck func(req OrderRequest) error

// CheckProductName rejects empty or whitespace-only product names.
func CheckProductName(req OrderRequest) error {
	if strings.TrimSpace(req.ProductName) == "" {
		return ErrProductNameRequired
	}
	return nil
}

// CheckQuantity rejects zero and negative quantities.
func CheckQuantity(req OrderRequest) error {
	if req.Quantity <= 0 {
		return ErrQuantityNotPositive
	}
	return nil
}

// CheckPaymentMethod accepts credit, paypal and bank in any casing.
func CheckPaymentMethod(req OrderRequest) error {
	if _, err := order.ParsePaymentMethod(req.PaymentMethod); err != nil {
		return ErrInvalidPaymentMethod
	}
	return nil
}

// DefaultOrderChecks returns product, quantity and payment checks in that order.
func DefaultOrderChecks() []OrderCheck {
	return []OrderCheck{CheckProductName, CheckQuantity, CheckPaymentMethod}
}

// OrderValidator runs its checks in order and stops at the first failure.
//
// Example:
//
//	v := services.NewOrderValidator(reporter)
//	ok := v.Validate(services.OrderRequest{ProductName: "Widget", Quantity: 2, PaymentMethod: "PayPal"})
type OrderValidator struct {
	reporter report.Reporter
	checks   []OrderCheck
}

// NewOrderValidator uses DefaultOrderChecks when no checks are given.
func NewOrderValidator(reporter report.Reporter, checks ...OrderCheck) *OrderValidator {
	if reporter == nil {
		reporter = report.Discard
	}
	if len(checks) == 0 {
		checks = DefaultOrderChecks()
	}
	return &OrderValidator{reporter: reporter, checks: checks}
}

// Validate reports the first rejection reason, or success, and returns whether req passed.
func (v *OrderValidator) Validate(req OrderRequest) bool {
	return v.Check(req) == nil
}

// Check is Validate for callers that propagate errors. The returned error
// matches both ErrValidationFailed and the specific reason.
func (v *OrderValidator) Check(req OrderRequest) error {
	for _, check := range v.checks {
		if err := check(req); err != nil {
			v.reporter.Report(err.Error(), report.Error)
			return fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
	}

	v.reporter.Report("order validation successful", report.Success)
	return nil
}
