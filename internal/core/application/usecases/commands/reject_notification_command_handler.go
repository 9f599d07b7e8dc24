package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/pkg/errs"
)

// RejectNotificationCommandHandler marks a notification Rejected. The order and
// the other notifications are untouched. Rejecting a notification that is no
// longer Pending is a no-op.
type RejectNotificationCommandHandler struct {
	uowFactory UoWFactory
}

func NewRejectNotificationCommandHandler(uowFactory UoWFactory) *RejectNotificationCommandHandler {
	return &RejectNotificationCommandHandler{uowFactory: uowFactory}
}

func (h *RejectNotificationCommandHandler) Handle(ctx context.Context, cmd RejectNotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	return inTransaction(ctx, uow, func() error {
		notifications := uow.NotificationRepository()

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
			return nil
		}

		if err = n.Reject(time.Now().UTC()); err != nil {
			return err
		}

		err = notifications.Update(ctx, n)
		if errors.Is(err, notification.ErrAlreadyResolved) {
			return nil
		}
		return err
	})
}
