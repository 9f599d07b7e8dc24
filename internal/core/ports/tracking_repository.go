package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

type TrackingRepository interface {
	Add(ctx context.Context, t *delivery.Tracking) error

	// GetByOrder returns errs.ObjectNotFoundError while the order has no courier yet.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Tracking, error)

	Update(ctx context.Context, t *delivery.Tracking) error
}
