package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	requesterID, supplierID := kernel.NewUUID(), kernel.NewUUID()
	p := newProduct(t, supplierID, "10.00", 5)

	uow := newMockUoW()
	uow.expectCommit(ctx)
	uow.Catalog.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once()
	uow.Catalog.On("DecrementQuantity", ctx, p.ID(), 3).Return(nil).Once()
	uow.Orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	cmd, err := commands.NewCreateOrderCommand(requesterID, supplierID, p.ID(), 3)
	require.NoError(t, err)

	// Act
	o, err := commands.NewCreateOrderCommandHandler(factoryOf(uow)).Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.Requested, o.Status())
	assert.Equal(t, order.DeliveryPending, o.DeliveryStatus())
	assert.True(t, o.Total().IsEqual(money(t, "30.00")))
	assert.Equal(t, requesterID, o.RequesterID())
	assert.Equal(t, supplierID, o.SupplierID())
	uow.assertAll(t)
}

func TestCreateOrderCommandHandler_Handle_OutOfStockRollsBack(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	p := newProduct(t, supplierID, "10.00", 5)

	uow := newMockUoW()
	uow.expectRollback(ctx)
	uow.Catalog.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), supplierID, p.ID(), 10)
	require.NoError(t, err)

	o, err := commands.NewCreateOrderCommandHandler(factoryOf(uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, product.ErrOutOfStock)
	assert.Equal(t, commands.KindOutOfStock, commands.KindOf(err))
	assert.Nil(t, o)
	uow.Orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.assertAll(t)
}

func TestCreateOrderCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	f := new(MockUoWFactory)

	_, err := commands.NewCreateOrderCommandHandler(f).Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCommandIsNotConstructed)
	f.AssertNotCalled(t, "Create")
}

func TestCreateBulkOrderCommandHandler_Handle_LocksInIDOrderKeepsLineOrder(t *testing.T) {
	// Arrange
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	a := newProduct(t, supplierID, "2.00", 10)
	b := newProduct(t, supplierID, "3.00", 10)
	first, second := a, b
	if a.ID().Compare(b.ID()) > 0 {
		first, second = b, a
	}

	uow := newMockUoW()
	uow.expectCommit(ctx)
	mock.InOrder(
		uow.Catalog.On("GetForUpdate", ctx, first.ID()).Return(first, nil).Once(),
		uow.Catalog.On("DecrementQuantity", ctx, first.ID(), mock.Anything).Return(nil).Once(),
		uow.Catalog.On("GetForUpdate", ctx, second.ID()).Return(second, nil).Once(),
		uow.Catalog.On("DecrementQuantity", ctx, second.ID(), mock.Anything).Return(nil).Once(),
	)
	uow.Orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	cmd, err := commands.NewCreateBulkOrderCommand(kernel.NewUUID(), supplierID, []commands.OrderLine{
		{ProductID: second.ID(), Quantity: 1},
		{ProductID: first.ID(), Quantity: 4},
	})
	require.NoError(t, err)

	// Act
	o, err := commands.NewCreateBulkOrderCommandHandler(factoryOf(uow)).Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	items := o.Items()
	require.Len(t, items, 2)
	assert.Equal(t, second.ID(), items[0].ProductID())
	assert.Equal(t, first.ID(), items[1].ProductID())
	uow.assertAll(t)
}

func TestCreateBulkOrderCommandHandler_Handle_OneLineShortFailsWhole(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	a := newProduct(t, supplierID, "2.00", 10)
	b := newProduct(t, supplierID, "3.00", 1)

	uow := newMockUoW()
	uow.expectRollback(ctx)
	uow.Catalog.On("GetForUpdate", ctx, a.ID()).Return(a, nil).Maybe()
	uow.Catalog.On("DecrementQuantity", ctx, a.ID(), 2).Return(nil).Maybe()
	uow.Catalog.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once()

	cmd, err := commands.NewCreateBulkOrderCommand(kernel.NewUUID(), supplierID, []commands.OrderLine{
		{ProductID: a.ID(), Quantity: 2},
		{ProductID: b.ID(), Quantity: 5},
	})
	require.NoError(t, err)

	_, err = commands.NewCreateBulkOrderCommandHandler(factoryOf(uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, product.ErrOutOfStock)
	assert.Contains(t, err.Error(), "line 1")
	uow.Orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.assertAll(t)
}
