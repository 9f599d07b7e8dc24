// Package delivery holds the tracking record created when a courier wins an
// order. It follows the order's delivery status from Assigned to Delivered or Failed.
package delivery

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrTrackingIsNotConstructed = errors.New("Tracking must be created via NewTracking constructor")

type Tracking struct {
	id         kernel.UUID
	orderID    kernel.UUID
	courierID  kernel.UUID
	status     order.DeliveryStatus
	assignedAt time.Time
	updatedAt  time.Time
	guard      guard.ConstructorGuard
}

// NewTracking starts tracking an order that was just assigned to courierID.
func NewTracking(id, orderID, courierID kernel.UUID, now time.Time) (*Tracking, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), courierID.Validate()); err != nil {
		return nil, err
	}
	return &Tracking{
		id:         id,
		orderID:    orderID,
		courierID:  courierID,
		status:     order.DeliveryAssigned,
		assignedAt: now,
		updatedAt:  now,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func RestoreTracking(
	id, orderID, courierID kernel.UUID,
	status order.DeliveryStatus,
	assignedAt, updatedAt time.Time,
) (*Tracking, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), courierID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	return &Tracking{
		id:         id,
		orderID:    orderID,
		courierID:  courierID,
		status:     status,
		assignedAt: assignedAt,
		updatedAt:  updatedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (t *Tracking) Validate() error {
	if t == nil {
		return ErrTrackingIsNotConstructed
	}
	return t.guard.Validate(ErrTrackingIsNotConstructed)
}

func (t *Tracking) ID() kernel.UUID              { return t.id }
func (t *Tracking) OrderID() kernel.UUID         { return t.orderID }
func (t *Tracking) CourierID() kernel.UUID       { return t.courierID }
func (t *Tracking) Status() order.DeliveryStatus { return t.status }
func (t *Tracking) AssignedAt() time.Time        { return t.assignedAt }
func (t *Tracking) UpdatedAt() time.Time         { return t.updatedAt }

// Record copies the order's delivery status onto the tracking record.
// It reports whether anything changed.
func (t *Tracking) Record(status order.DeliveryStatus, now time.Time) bool {
	if t.status == status {
		return false
	}
	t.status = status
	t.updatedAt = now
	return true
}
