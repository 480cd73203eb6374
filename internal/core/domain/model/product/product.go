package product

import (
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned by Validate for zero-value products.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry: a positive id, a non-empty name and a
// non-negative unit price.
type Product struct {
	id          int
	name        string
	price       kernel.Money
	description string

	isConstructed bool
}

// NewProduct validates every field and reports all violations at once.
//
// Example:
//
//	laptop, err := product.NewProduct(1, "Laptop", kernel.MustMoney("999.99"), "High-performance laptop")
func NewProduct(id int, name string, price kernel.Money, description string) (Product, error) {
	p := Product{
		description:   strings.TrimSpace(description),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return Product{}, err
	}

	return p, nil
}

// Validate reports whether the product came from NewProduct.
func (p Product) Validate() error {
	if !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p Product) ID() int {
	return p.id
}

func (p Product) Name() string {
	return p.name
}

// Price is the unit price.
func (p Product) Price() kernel.Money {
	return p.price
}

func (p Product) Description() string {
	return p.description
}

func (p *Product) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id", fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("product price", fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}
