package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
)

// ProductRepository is the read-only view of the external product catalog.
type ProductRepository interface {
	// Get returns errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)
}
