package ports

import (
	"context"

	"orderflow/internal/core/domain/model/product"
)

// ProductCatalog lists the products that can be ordered.
type ProductCatalog interface {
	List(ctx context.Context) ([]product.Product, error)

	// Get returns errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id int) (product.Product, error)
}
