package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
)

type CartRepository interface {
	Add(ctx context.Context, item *cart.Item) error

	// ListByBusiness returns the cart of a requesting business in insertion order.
	ListByBusiness(ctx context.Context, businessID kernel.UUID) ([]*cart.Item, error)

	// Remove deletes the given lines and returns how many were actually deleted.
	// Lines already removed, by another checkout for instance, are not counted.
	Remove(ctx context.Context, ids []kernel.UUID) (int64, error)
}
