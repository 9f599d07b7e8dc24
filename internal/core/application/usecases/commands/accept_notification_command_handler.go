package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AcceptResult is what a courier sees after accepting: the assigned order on
// success, otherwise the kind of failure.
type AcceptResult struct {
	Order     *order.Order
	ErrorKind ErrorKind
}

// NewAcceptResult builds the result from a handler outcome.
func NewAcceptResult(o *order.Order, err error) AcceptResult {
	if err != nil {
		return AcceptResult{ErrorKind: KindOf(err)}
	}
	return AcceptResult{Order: o}
}

// AcceptNotificationCommandHandler resolves concurrent acceptances of the same
// order into exactly one assignment.
//
// The winner is decided by OrderRepository.AssignCourier, a single conditional
// write guarded by "no courier yet". When several couriers race, the store lets
// at most one of those writes affect the row. Locks are taken in a fixed order
// (courier row, order row, notification rows) so racing acceptances queue
// rather than deadlock.
//
// Outcomes:
//   - won: notification Accepted, all other Pending ones Expired, courier unavailable,
//     tracking record created, all in one commit
//   - lost: this notification Expired and committed, ErrAlreadyAssigned returned
//   - any store abort: everything rolled back, errs.TransactionAbortedError returned
type AcceptNotificationCommandHandler struct {
	uowFactory UoWFactory
}

func NewAcceptNotificationCommandHandler(uowFactory UoWFactory) *AcceptNotificationCommandHandler {
	return &AcceptNotificationCommandHandler{uowFactory: uowFactory}
}

func (h *AcceptNotificationCommandHandler) Handle(ctx context.Context, cmd AcceptNotificationCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	var assigned *order.Order
	err := inTransaction(ctx, uow, func() error {
		notifications := uow.NotificationRepository()
		orders := uow.OrderRepository()
		directory := uow.Directory()

		n, err := notifications.Get(ctx, cmd.NotificationID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: %s", ErrNotificationNotFound, cmd.NotificationID())
		}
		if err != nil {
			return err
		}

		if err = n.EnsureOwnedBy(cmd.CourierID()); err != nil {
			return err
		}

		if !n.IsPending() {
			return h.resolvedOutcome(ctx, orders, n)
		}

		available, err := directory.IsAvailable(ctx, cmd.CourierID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: %s", ErrCourierUnavailable, cmd.CourierID())
		}
		if err != nil {
			return err
		}
		if !available {
			return fmt.Errorf("%w: %s", ErrCourierUnavailable, cmd.CourierID())
		}

		now := time.Now().UTC()
		won, err := orders.AssignCourier(ctx, n.OrderID(), cmd.CourierID(), now)
		if err != nil {
			return err
		}
		if !won {
			return h.lostRace(ctx, orders, notifications, n, now)
		}

		if err = n.Accept(now); err != nil {
			return err
		}
		if err = notifications.Update(ctx, n); err != nil {
			return err
		}

		except := n.ID()
		if _, err = notifications.ExpirePendingForOrder(ctx, n.OrderID(), &except, now); err != nil {
			return err
		}

		if err = directory.SetAvailability(ctx, cmd.CourierID(), false); err != nil {
			return err
		}

		tracking, err := delivery.NewTracking(kernel.NewUUID(), n.OrderID(), cmd.CourierID(), now)
		if err != nil {
			return err
		}
		if err = uow.TrackingRepository().Add(ctx, tracking); err != nil {
			return err
		}

		assigned, err = orders.Get(ctx, n.OrderID())
		return err
	})
	if err != nil {
		return nil, err
	}

	return assigned, nil
}

// resolvedOutcome explains why a notification that is no longer Pending cannot
// be accepted. Nothing is written. Re-accepting an assigned order is always
// AlreadyAssigned, whoever asks.
func (h *AcceptNotificationCommandHandler) resolvedOutcome(
	ctx context.Context,
	orders ports.OrderRepository,
	n *notification.Notification,
) error {
	o, err := orders.Get(ctx, n.OrderID())
	if err != nil {
		return err
	}
	if o.IsAssigned() {
		return fmt.Errorf("%w: order %s", ErrAlreadyAssigned, o.ID())
	}
	return fmt.Errorf("%w: %s is %s", notification.ErrAlreadyResolved, n.ID(), n.Status())
}

// lostRace expires the courier's own notification and keeps that write.
// The winner may have expired it already, which is fine.
func (h *AcceptNotificationCommandHandler) lostRace(
	ctx context.Context,
	orders ports.OrderRepository,
	notifications ports.NotificationRepository,
	n *notification.Notification,
	now time.Time,
) error {
	if err := n.Expire(now); err != nil {
		return err
	}
	if err := notifications.Update(ctx, n); err != nil && !errors.Is(err, notification.ErrAlreadyResolved) {
		return err
	}

	o, err := orders.Get(ctx, n.OrderID())
	if err != nil {
		return err
	}
	if o.IsAssigned() {
		return commitAnyway(fmt.Errorf("%w: order %s", ErrAlreadyAssigned, o.ID()))
	}
	return commitAnyway(fmt.Errorf("%w: order %s no longer awaits a courier", notification.ErrAlreadyResolved, o.ID()))
}
