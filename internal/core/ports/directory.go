package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/business"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
)

// Directory is the business and courier directory the engine consults.
type Directory interface {
	AddBusiness(ctx context.Context, b *business.Business) error
	AddCourier(ctx context.Context, c *courier.Courier) error

	// GetCourier returns errs.ObjectNotFoundError for an unknown courier.
	GetCourier(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// IsAvailable reads the courier's availability with a row lock, so two
	// acceptances by the same courier are serialized.
	IsAvailable(ctx context.Context, courierID kernel.UUID) (bool, error)

	// CityOf resolves the city of a business or a courier.
	CityOf(ctx context.Context, id kernel.UUID) (kernel.City, error)

	SetAvailability(ctx context.Context, courierID kernel.UUID, available bool) error

	// FindAvailableCouriers returns up to limit available couriers located in
	// any of the given cities, in ascending id order.
	FindAvailableCouriers(ctx context.Context, cities []kernel.City, limit int) ([]*courier.Courier, error)
}
