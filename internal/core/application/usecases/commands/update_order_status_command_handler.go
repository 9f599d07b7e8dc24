package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// OrderFanOut is the fan-out step the status handler triggers on Confirm.
type OrderFanOut interface {
	Handle(ctx context.Context, cmd FanOutCommand) (FanOutResult, error)
}

type UpdateOrderStatusResult struct {
	Order *order.Order
	// FanOut is set when confirming the order dispatched notifications.
	FanOut *FanOutResult
	// NotificationDeferred is true when the confirm succeeded but fan-out failed
	// even after retrying. The fan-out retry job picks such orders up later.
	NotificationDeferred bool
}

// UpdateOrderStatusCommandHandler applies a status transition in one transaction:
//   - terminal statuses and terminal deliveries expire the order's Pending notifications
//   - a delivery that ends or loses its courier makes that courier available again
//   - the delivery tracking record follows the delivery status
//
// Confirming an order that awaits a courier triggers fan-out after the commit.
// A failing fan-out never undoes the confirmation.
type UpdateOrderStatusCommandHandler struct {
	uowFactory  UoWFactory
	fanOut      OrderFanOut
	fanOutRetry RetryPolicy
	logger      *slog.Logger
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	fanOut OrderFanOut,
	fanOutRetry RetryPolicy,
	logger *slog.Logger,
) *UpdateOrderStatusCommandHandler {
	return &UpdateOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		fanOut:      fanOut,
		fanOutRetry: fanOutRetry,
		logger:      logger.With("component", "update_order_status"),
	}
}

func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (UpdateOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()

	var (
		updated   *order.Order
		confirmed bool
	)
	err := inTransaction(ctx, uow, func() error {
		orders := uow.OrderRepository()
		o, err := orders.GetForUpdate(ctx, cmd.OrderID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: %s", ErrOrderNotFound, cmd.OrderID())
		}
		if err != nil {
			return err
		}

		before := o.Status()
		beforeDelivery := o.DeliveryStatus()
		previousCourier := o.Courier()
		now := time.Now().UTC()

		if err = o.UpdateStatus(cmd.Status(), cmd.DeliveryStatus(), now); err != nil {
			return err
		}
		if err = orders.Update(ctx, o); err != nil {
			return err
		}

		if o.Status().IsTerminal() || o.DeliveryStatus().IsTerminal() {
			if _, err = uow.NotificationRepository().ExpirePendingForOrder(ctx, o.ID(), nil, now); err != nil {
				return err
			}
		}

		if previousCourier != nil && beforeDelivery.RequiresCourier() && !beforeDelivery.IsTerminal() {
			if err = h.followDelivery(ctx, uow, o, now); err != nil {
				return err
			}
			if !o.IsAssigned() || o.DeliveryStatus().IsTerminal() {
				if err = uow.Directory().SetAvailability(ctx, *previousCourier, true); err != nil {
					return err
				}
			}
		}

		updated = o
		confirmed = before != order.Confirmed && o.Status() == order.Confirmed
		return nil
	})
	if err != nil {
		return UpdateOrderStatusResult{}, err
	}

	result := UpdateOrderStatusResult{Order: updated}
	if confirmed && updated.AwaitsCourier() {
		h.dispatch(ctx, &result)
	}
	return result, nil
}

func (h *UpdateOrderStatusCommandHandler) followDelivery(ctx context.Context, uow UoW, o *order.Order, now time.Time) error {
	tracking := uow.TrackingRepository()
	t, err := tracking.GetByOrder(ctx, o.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if t.Record(o.DeliveryStatus(), now) {
		return tracking.Update(ctx, t)
	}
	return nil
}

func (h *UpdateOrderStatusCommandHandler) dispatch(ctx context.Context, result *UpdateOrderStatusResult) {
	cmd, err := NewFanOutCommand(result.Order.ID())
	if err != nil {
		h.logger.ErrorContext(ctx, "build fan-out command", "order.id", result.Order.ID().String(), "error", err)
		result.NotificationDeferred = true
		return
	}

	var fanOut FanOutResult
	err = h.fanOutRetry.Do(ctx, func() error {
		var ferr error
		fanOut, ferr = h.fanOut.Handle(ctx, cmd)
		return ferr
	})
	if err != nil {
		h.logger.WarnContext(ctx, "fan-out deferred after confirm",
			"order.id", result.Order.ID().String(),
			"error", err,
		)
		result.NotificationDeferred = true
		return
	}

	result.FanOut = &fanOut
}
