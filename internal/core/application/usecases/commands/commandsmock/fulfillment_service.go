// Package commandsmock provides a testify mock of commands.FulfillmentService
// for adapter tests.
package commandsmock

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type FulfillmentService struct{ mock.Mock }

var _ commands.FulfillmentService = (*FulfillmentService)(nil)

func (m *FulfillmentService) CreateOrder(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *FulfillmentService) CreateBulkOrder(ctx context.Context, cmd commands.CreateBulkOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *FulfillmentService) UpdateOrderStatus(
	ctx context.Context,
	cmd commands.UpdateOrderStatusCommand,
) (commands.UpdateOrderStatusResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.UpdateOrderStatusResult), args.Error(1)
}

func (m *FulfillmentService) FanOut(ctx context.Context, cmd commands.FanOutCommand) (commands.FanOutResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.FanOutResult), args.Error(1)
}

func (m *FulfillmentService) AcceptNotification(
	ctx context.Context,
	cmd commands.AcceptNotificationCommand,
) (commands.AcceptResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.AcceptResult), args.Error(1)
}

func (m *FulfillmentService) RejectNotification(ctx context.Context, cmd commands.RejectNotificationCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

func (m *FulfillmentService) CheckoutCart(ctx context.Context, cmd commands.CheckoutCartCommand) (commands.CheckoutResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CheckoutResult), args.Error(1)
}

func (m *FulfillmentService) ExpireNotifications(ctx context.Context, cmd commands.ExpireNotificationsCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FulfillmentService) RetryFanOut(
	ctx context.Context,
	cmd commands.RetryFanOutCommand,
) (commands.RetryFanOutSummary, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RetryFanOutSummary), args.Error(1)
}
