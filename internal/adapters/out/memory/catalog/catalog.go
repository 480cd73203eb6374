// Package catalog serves a fixed list of products.
package catalog

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

var _ ports.ProductCatalog = (*Catalog)(nil)

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	products []product.Product
	byID     map[int]int
}

// NewCatalog rejects unconstructed products and duplicate ids.
func NewCatalog(products ...product.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]product.Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}

	var errList []error
	for _, p := range products {
		if err := p.Validate(); err != nil {
			errList = append(errList, err)
			continue
		}
		if _, dup := c.byID[p.ID()]; dup {
			errList = append(errList, errs.NewValueIsInvalidError("duplicate product id"))
			continue
		}
		c.byID[p.ID()] = len(c.products)
		c.products = append(c.products, p)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return c, nil
}

// NewDefaultCatalog returns the stock demo catalog.
func NewDefaultCatalog() (*Catalog, error) {
	seed := []struct {
		name, price, description string
	}{
		{"Laptop", "999.99", "High-performance laptop"},
		{"Smartphone", "499.99", "Latest model smartphone"},
		{"Headphones", "99.99", "Wireless noise-cancelling headphones"},
		{"Tablet", "299.99", "10-inch tablet"},
		{"Smartwatch", "199.99", "Fitness and health tracking watch"},
	}

	products := make([]product.Product, 0, len(seed))
	for i, s := range seed {
		price, err := kernel.MoneyFromString(s.price)
		if err != nil {
			return nil, err
		}
		p, err := product.NewProduct(i+1, s.name, price, s.description)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return NewCatalog(products...)
}

func (c *Catalog) List(ctx context.Context) ([]product.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]product.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *Catalog) Get(ctx context.Context, id int) (product.Product, error) {
	if err := ctx.Err(); err != nil {
		return product.Product{}, err
	}
	i, ok := c.byID[id]
	if !ok {
		return product.Product{}, errs.NewObjectNotFoundError("product", id)
	}
	return c.products[i], nil
}
