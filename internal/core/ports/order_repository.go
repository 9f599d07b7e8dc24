// Package ports defines the outbound contracts of the fulfillment engine.
// Adapters implement them, the application layer depends only on them.
package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Get and GetForUpdate return errs.ObjectNotFoundError when no order matches.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, delivery status and courier changes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order without locking it.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and holds a row lock on it until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AssignCourier binds courierID to the order only if the order is Confirmed,
	// its delivery is Pending and no courier is set, as one conditional write.
	// It reports whether this call won the assignment.
	AssignCourier(ctx context.Context, orderID, courierID kernel.UUID, now time.Time) (bool, error)

	// ListAwaitingCourierWithoutNotifications returns up to limit Confirmed,
	// unassigned orders for which no notification was ever created, oldest first.
	ListAwaitingCourierWithoutNotifications(ctx context.Context, limit int) ([]kernel.UUID, error)
}
