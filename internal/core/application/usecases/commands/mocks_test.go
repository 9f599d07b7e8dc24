package commands_test

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/business"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AssignCourier(ctx context.Context, orderID, courierID kernel.UUID, now time.Time) (bool, error) {
	args := m.Called(ctx, orderID, courierID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ListAwaitingCourierWithoutNotifications(ctx context.Context, limit int) ([]kernel.UUID, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) AddAll(ctx context.Context, ns []*notification.Notification) error {
	return m.Called(ctx, ns).Error(0)
}

func (m *MockNotificationRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*notification.Notification, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) ExpirePendingForOrder(
	ctx context.Context, orderID kernel.UUID, except *kernel.UUID, now time.Time,
) (int64, error) {
	args := m.Called(ctx, orderID, except, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) ExpirePendingOlderThan(ctx context.Context, cutoff, now time.Time) (int64, error) {
	args := m.Called(ctx, cutoff, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductCatalog) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductCatalog) GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductCatalog) DecrementQuantity(ctx context.Context, id kernel.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

type MockDirectory struct{ mock.Mock }

func (m *MockDirectory) AddBusiness(ctx context.Context, b *business.Business) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockDirectory) AddCourier(ctx context.Context, c *courier.Courier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockDirectory) GetCourier(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockDirectory) IsAvailable(ctx context.Context, courierID kernel.UUID) (bool, error) {
	args := m.Called(ctx, courierID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDirectory) CityOf(ctx context.Context, id kernel.UUID) (kernel.City, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(kernel.City), args.Error(1)
}

func (m *MockDirectory) SetAvailability(ctx context.Context, courierID kernel.UUID, available bool) error {
	return m.Called(ctx, courierID, available).Error(0)
}

func (m *MockDirectory) FindAvailableCouriers(ctx context.Context, cities []kernel.City, limit int) ([]*courier.Courier, error) {
	args := m.Called(ctx, cities, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, item *cart.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCartRepository) ListByBusiness(ctx context.Context, businessID kernel.UUID) ([]*cart.Item, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.Item), args.Error(1)
}

func (m *MockCartRepository) Remove(ctx context.Context, ids []kernel.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Add(ctx context.Context, t *delivery.Tracking) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTrackingRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Tracking, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Tracking), args.Error(1)
}

func (m *MockTrackingRepository) Update(ctx context.Context, t *delivery.Tracking) error {
	return m.Called(ctx, t).Error(0)
}

// MockUoW hands out the same repository mocks on every accessor call.
type MockUoW struct {
	mock.Mock

	Orders        *MockOrderRepository
	Notifications *MockNotificationRepository
	Catalog       *MockProductCatalog
	Dir           *MockDirectory
	Cart          *MockCartRepository
	Tracking      *MockTrackingRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		Orders:        new(MockOrderRepository),
		Notifications: new(MockNotificationRepository),
		Catalog:       new(MockProductCatalog),
		Dir:           new(MockDirectory),
		Cart:          new(MockCartRepository),
		Tracking:      new(MockTrackingRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository               { return m.Orders }
func (m *MockUoW) NotificationRepository() ports.NotificationRepository { return m.Notifications }
func (m *MockUoW) ProductCatalog() ports.ProductCatalog                 { return m.Catalog }
func (m *MockUoW) Directory() ports.Directory                           { return m.Dir }
func (m *MockUoW) CartRepository() ports.CartRepository                 { return m.Cart }
func (m *MockUoW) TrackingRepository() ports.TrackingRepository         { return m.Tracking }

// expectCommit sets up Begin, Commit and the deferred Rollback of one transaction.
func (m *MockUoW) expectCommit(ctx context.Context) {
	mock.InOrder(
		m.On("Begin", ctx).Return(nil).Once(),
		m.On("Commit", ctx).Return(nil).Once(),
		m.On("Rollback", ctx).Return(nil).Once(),
	)
}

// expectRollback sets up Begin and the deferred Rollback of a failed transaction.
func (m *MockUoW) expectRollback(ctx context.Context) {
	mock.InOrder(
		m.On("Begin", ctx).Return(nil).Once(),
		m.On("Rollback", ctx).Return(nil).Once(),
	)
}

func (m *MockUoW) assertAll(t mock.TestingT) {
	m.AssertExpectations(t)
	m.Orders.AssertExpectations(t)
	m.Notifications.AssertExpectations(t)
	m.Catalog.AssertExpectations(t)
	m.Dir.AssertExpectations(t)
	m.Cart.AssertExpectations(t)
	m.Tracking.AssertExpectations(t)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

func factoryOf(uows ...*MockUoW) *MockUoWFactory {
	f := new(MockUoWFactory)
	for _, u := range uows {
		f.On("Create").Return(u).Once()
	}
	return f
}
