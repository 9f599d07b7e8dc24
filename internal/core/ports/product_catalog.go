package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// ProductCatalog is the inventory side of the catalog.
type ProductCatalog interface {
	Add(ctx context.Context, p *product.Product) error

	// Get returns errs.ObjectNotFoundError when the product does not exist.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate reads the product and locks its row so a concurrent
	// reservation blocks until this transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// DecrementQuantity subtracts quantity only while enough stock remains.
	// It returns product.ErrOutOfStock when the guarded write affected no row.
	DecrementQuantity(ctx context.Context, id kernel.UUID, quantity int) error
}
