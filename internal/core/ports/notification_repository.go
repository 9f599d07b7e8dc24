package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for delivery notifications.
type NotificationRepository interface {
	// AddAll inserts every notification in one statement: either all rows become
	// visible or none do.
	AddAll(ctx context.Context, notifications []*notification.Notification) error

	// ExistsForOrder reports whether any notification, in any status, exists for the order.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)

	// Get returns errs.ObjectNotFoundError when no notification matches.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*notification.Notification, error)

	// Update writes a resolution. The write only applies to a row that is still
	// Pending; otherwise it returns notification.ErrAlreadyResolved.
	Update(ctx context.Context, n *notification.Notification) error

	// ExpirePendingForOrder marks every Pending notification of the order Expired,
	// skipping except when it is not nil. It returns the number of rows expired.
	ExpirePendingForOrder(ctx context.Context, orderID kernel.UUID, except *kernel.UUID, now time.Time) (int64, error)

	// ExpirePendingOlderThan expires Pending notifications created before cutoff.
	ExpirePendingOlderThan(ctx context.Context, cutoff, now time.Time) (int64, error)
}
