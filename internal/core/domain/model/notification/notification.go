package notification

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")
	// ErrAlreadyResolved is returned when a notification that is no longer Pending is resolved again.
	ErrAlreadyResolved = errors.New("notification already resolved")
	// ErrNotAuthorized is returned when a courier acts on a notification addressed to someone else.
	ErrNotAuthorized = errors.New("notification belongs to another courier")
)

type Notification struct {
	id          kernel.UUID
	orderID     kernel.UUID
	courierID   kernel.UUID
	status      Status
	createdAt   time.Time
	respondedAt *time.Time
	guard       guard.ConstructorGuard
}

// NewNotification creates a Pending invitation for courierID to take orderID.
func NewNotification(id, orderID, courierID kernel.UUID, now time.Time) (*Notification, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), courierID.Validate()); err != nil {
		return nil, err
	}

	return &Notification{
		id:        id,
		orderID:   orderID,
		courierID: courierID,
		status:    Pending,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreNotification rebuilds a notification from storage. A Pending notification
// cannot carry a response time and a resolved one must.
func RestoreNotification(
	id, orderID, courierID kernel.UUID,
	status Status,
	createdAt time.Time,
	respondedAt *time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), courierID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if (status == Pending) != (respondedAt == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"responded at", fmt.Errorf("response time does not match status %s", status))
	}

	return &Notification{
		id:          id,
		orderID:     orderID,
		courierID:   courierID,
		status:      status,
		createdAt:   createdAt,
		respondedAt: respondedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID        { return n.id }
func (n *Notification) OrderID() kernel.UUID   { return n.orderID }
func (n *Notification) CourierID() kernel.UUID { return n.courierID }
func (n *Notification) Status() Status         { return n.status }
func (n *Notification) CreatedAt() time.Time   { return n.createdAt }

func (n *Notification) RespondedAt() *time.Time {
	if n.respondedAt == nil {
		return nil
	}
	t := *n.respondedAt
	return &t
}

func (n *Notification) IsPending() bool {
	return n.status == Pending
}

// EnsureOwnedBy returns ErrNotAuthorized unless the notification is addressed to courierID.
func (n *Notification) EnsureOwnedBy(courierID kernel.UUID) error {
	if !n.courierID.IsEqual(courierID) {
		return ErrNotAuthorized
	}
	return nil
}

// Accept marks the courier as the winner of the order.
func (n *Notification) Accept(now time.Time) error {
	return n.resolve(Accepted, now)
}

// Reject records that the courier declined.
func (n *Notification) Reject(now time.Time) error {
	return n.resolve(Rejected, now)
}

// Expire closes the invitation without a decision from the courier.
func (n *Notification) Expire(now time.Time) error {
	return n.resolve(Expired, now)
}

func (n *Notification) resolve(next Status, now time.Time) error {
	if n.status != Pending {
		return fmt.Errorf("%w: %s is %s", ErrAlreadyResolved, n.id, n.status)
	}
	n.status = next
	n.respondedAt = &now
	return nil
}
