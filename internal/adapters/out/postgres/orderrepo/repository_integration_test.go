package orderrepo_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/notificationrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/testdb"

	"github.com/stretchr/testify/suite"
)

// OrderRepositoryIntegrationTestSuite verifies order persistence against a real PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *testdb.Database
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := testdb.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgresadapter.Migrate(database.DB))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate(postgresadapter.Tables...))
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderWithItems() {
	ctx := context.Background()
	o := suite.newOrder(2)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(o.ID().IsEqual(got.ID()))
	suite.True(o.RequesterID().IsEqual(got.RequesterID()))
	suite.True(o.SupplierID().IsEqual(got.SupplierID()))
	suite.Equal(order.Requested, got.Status())
	suite.Equal(order.DeliveryPending, got.DeliveryStatus())
	suite.Nil(got.Courier())
	suite.True(o.Total().IsEqual(got.Total()), "total %s != %s", o.Total(), got.Total())
	suite.WithinDuration(o.CreatedAt(), got.CreatedAt(), time.Millisecond)

	suite.Require().Len(got.Items(), 2)
	for i, item := range o.Items() {
		suite.True(item.ProductID().IsEqual(got.Items()[i].ProductID()), "item %d keeps its position", i)
		suite.Equal(item.Quantity(), got.Items()[i].Quantity())
		suite.True(item.Subtotal().IsEqual(got.Items()[i].Subtotal()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_Fails() {
	ctx := context.Background()
	o := suite.newOrder(1)

	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.Require().Error(suite.repository.Add(ctx, o))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction() {
	ctx := context.Background()
	o := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	tx := suite.database.DB.Begin()
	defer tx.Rollback()

	got, err := orderrepo.NewGormOrderRepository(tx).GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(o.ID().IsEqual(got.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_WritesStatusAndClearsCourier() {
	ctx := context.Background()
	o := suite.newOrder(1)
	now := o.CreatedAt()
	suite.Require().NoError(o.UpdateStatus(order.Confirmed, nil, now.Add(time.Second)))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	courierID := kernel.NewUUID()
	suite.Require().NoError(o.AssignCourier(courierID, now.Add(2*time.Second)))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.DeliveryAssigned, got.DeliveryStatus())
	suite.Require().NotNil(got.Courier())
	suite.True(courierID.IsEqual(*got.Courier()))

	suite.Require().NoError(o.UpdateStatus(order.Cancelled, nil, now.Add(3*time.Second)))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err = suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, got.Status())
	suite.Equal(order.DeliveryFailed, got.DeliveryStatus())
	suite.Nil(got.Courier(), "a cancelled order loses its courier")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder_NotFound() {
	o := suite.newOrder(1)

	err := suite.repository.Update(context.Background(), o)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssignCourier_OnlyFirstCallerWins() {
	ctx := context.Background()
	o := suite.newConfirmedOrder()

	first, second := kernel.NewUUID(), kernel.NewUUID()

	won, err := suite.repository.AssignCourier(ctx, o.ID(), first, time.Now().UTC())
	suite.Require().NoError(err)
	suite.True(won)

	won, err = suite.repository.AssignCourier(ctx, o.ID(), second, time.Now().UTC())
	suite.Require().NoError(err)
	suite.False(won)

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(got.Courier())
	suite.True(first.IsEqual(*got.Courier()))
	suite.Equal(order.DeliveryAssigned, got.DeliveryStatus())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssignCourier_RequestedOrder_NotAssigned() {
	ctx := context.Background()
	o := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	won, err := suite.repository.AssignCourier(ctx, o.ID(), kernel.NewUUID(), time.Now().UTC())

	suite.Require().NoError(err)
	suite.False(won)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListAwaitingCourierWithoutNotifications() {
	ctx := context.Background()

	notified := suite.newConfirmedOrder()
	waiting := suite.newConfirmedOrder()
	requested := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, requested))

	n, err := notification.NewNotification(kernel.NewUUID(), notified.ID(), kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(notificationrepo.NewGormNotificationRepository(suite.database.DB).
		AddAll(ctx, []*notification.Notification{n}))

	ids, err := suite.repository.ListAwaitingCourierWithoutNotifications(ctx, 10)

	suite.Require().NoError(err)
	suite.Require().Len(ids, 1)
	suite.True(waiting.ID().IsEqual(ids[0]))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListAwaitingCourierWithoutNotifications_RespectsLimit() {
	ctx := context.Background()
	for range 3 {
		suite.newConfirmedOrder()
	}

	ids, err := suite.repository.ListAwaitingCourierWithoutNotifications(ctx, 2)

	suite.Require().NoError(err)
	suite.Len(ids, 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(lines int) *order.Order {
	price, err := kernel.MoneyFromString("12.50")
	suite.Require().NoError(err)

	items := make([]order.LineItem, 0, lines)
	for i := range lines {
		item, itemErr := order.NewLineItem(kernel.NewUUID(), i+1, price)
		suite.Require().NoError(itemErr)
		items = append(items, item)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), items, now)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) newConfirmedOrder() *order.Order {
	o := suite.newOrder(1)
	suite.Require().NoError(o.UpdateStatus(order.Confirmed, nil, o.CreatedAt()))
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
