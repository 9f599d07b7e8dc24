package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCourierNotificationsQueryIsNotConstructed = errors.New(
	"GetCourierNotificationsQuery must be created via NewGetCourierNotificationsQuery constructor",
)

// GetCourierNotificationsQuery lists the delivery offers still open for a courier.
type GetCourierNotificationsQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetCourierNotificationsQuery(courierID kernel.UUID) (GetCourierNotificationsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierNotificationsQuery{}, err
	}
	return GetCourierNotificationsQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCourierNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierNotificationsQueryIsNotConstructed)
}

func (q GetCourierNotificationsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// CourierNotificationResponse is one open offer with enough of the order for
// the courier to decide.
type CourierNotificationResponse struct {
	NotificationID kernel.UUID
	OrderID        kernel.UUID
	OrderTotal     decimal.Decimal
	RequesterCity  string
	SupplierCity   string
	CreatedAt      time.Time
}
