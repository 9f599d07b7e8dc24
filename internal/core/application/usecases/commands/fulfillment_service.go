package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// FulfillmentService is the set of operations the engine exposes to its
// controllers and jobs.
type FulfillmentService interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error)
	CreateBulkOrder(ctx context.Context, cmd CreateBulkOrderCommand) (*order.Order, error)
	UpdateOrderStatus(ctx context.Context, cmd UpdateOrderStatusCommand) (UpdateOrderStatusResult, error)
	FanOut(ctx context.Context, cmd FanOutCommand) (FanOutResult, error)
	AcceptNotification(ctx context.Context, cmd AcceptNotificationCommand) (AcceptResult, error)
	RejectNotification(ctx context.Context, cmd RejectNotificationCommand) error
	CheckoutCart(ctx context.Context, cmd CheckoutCartCommand) (CheckoutResult, error)
	ExpireNotifications(ctx context.Context, cmd ExpireNotificationsCommand) (int64, error)
	RetryFanOut(ctx context.Context, cmd RetryFanOutCommand) (RetryFanOutSummary, error)
}

// Fulfillment wires the command handlers together and retries every
// transactional operation that the store aborted.
type Fulfillment struct {
	createOrder         *CreateOrderCommandHandler
	createBulkOrder     *CreateBulkOrderCommandHandler
	updateOrderStatus   *UpdateOrderStatusCommandHandler
	fanOut              *FanOutCommandHandler
	acceptNotification  *AcceptNotificationCommandHandler
	rejectNotification  *RejectNotificationCommandHandler
	checkoutCart        *CheckoutCartCommandHandler
	expireNotifications *ExpireNotificationsCommandHandler
	retryFanOut         *RetryFanOutCommandHandler
	retry               RetryPolicy
}

var _ FulfillmentService = (*Fulfillment)(nil)

func NewFulfillment(
	uowFactory UoWFactory,
	selector services.CourierSelector,
	retry RetryPolicy,
	logger *slog.Logger,
) *Fulfillment {
	fanOut := NewFanOutCommandHandler(uowFactory, selector)

	return &Fulfillment{
		createOrder:         NewCreateOrderCommandHandler(uowFactory),
		createBulkOrder:     NewCreateBulkOrderCommandHandler(uowFactory),
		updateOrderStatus:   NewUpdateOrderStatusCommandHandler(uowFactory, fanOut, retry.BestEffort(), logger),
		fanOut:              fanOut,
		acceptNotification:  NewAcceptNotificationCommandHandler(uowFactory),
		rejectNotification:  NewRejectNotificationCommandHandler(uowFactory),
		checkoutCart:        NewCheckoutCartCommandHandler(uowFactory, retry),
		expireNotifications: NewExpireNotificationsCommandHandler(uowFactory),
		retryFanOut:         NewRetryFanOutCommandHandler(uowFactory, fanOut, logger),
		retry:               retry,
	}
}

func (f *Fulfillment) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	return retryValue(ctx, f.retry, func() (*order.Order, error) {
		return f.createOrder.Handle(ctx, cmd)
	})
}

func (f *Fulfillment) CreateBulkOrder(ctx context.Context, cmd CreateBulkOrderCommand) (*order.Order, error) {
	return retryValue(ctx, f.retry, func() (*order.Order, error) {
		return f.createBulkOrder.Handle(ctx, cmd)
	})
}

func (f *Fulfillment) UpdateOrderStatus(ctx context.Context, cmd UpdateOrderStatusCommand) (UpdateOrderStatusResult, error) {
	return retryValue(ctx, f.retry, func() (UpdateOrderStatusResult, error) {
		return f.updateOrderStatus.Handle(ctx, cmd)
	})
}

func (f *Fulfillment) FanOut(ctx context.Context, cmd FanOutCommand) (FanOutResult, error) {
	return retryValue(ctx, f.retry, func() (FanOutResult, error) {
		return f.fanOut.Handle(ctx, cmd)
	})
}

// AcceptNotification always returns a populated AcceptResult; the error is
// returned as well so callers can log or inspect it.
func (f *Fulfillment) AcceptNotification(ctx context.Context, cmd AcceptNotificationCommand) (AcceptResult, error) {
	o, err := retryValue(ctx, f.retry, func() (*order.Order, error) {
		return f.acceptNotification.Handle(ctx, cmd)
	})
	return NewAcceptResult(o, err), err
}

func (f *Fulfillment) RejectNotification(ctx context.Context, cmd RejectNotificationCommand) error {
	return f.retry.Do(ctx, func() error {
		return f.rejectNotification.Handle(ctx, cmd)
	})
}

// CheckoutCart is not retried as a whole: every supplier group retries on its own.
func (f *Fulfillment) CheckoutCart(ctx context.Context, cmd CheckoutCartCommand) (CheckoutResult, error) {
	return f.checkoutCart.Handle(ctx, cmd)
}

func (f *Fulfillment) ExpireNotifications(ctx context.Context, cmd ExpireNotificationsCommand) (int64, error) {
	return retryValue(ctx, f.retry, func() (int64, error) {
		return f.expireNotifications.Handle(ctx, cmd)
	})
}

func (f *Fulfillment) RetryFanOut(ctx context.Context, cmd RetryFanOutCommand) (RetryFanOutSummary, error) {
	return f.retryFanOut.Handle(ctx, cmd)
}

func retryValue[T any](ctx context.Context, policy RetryPolicy, fn func() (T, error)) (T, error) {
	var value T
	err := policy.Do(ctx, func() error {
		v, err := fn()
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	return value, err
}
