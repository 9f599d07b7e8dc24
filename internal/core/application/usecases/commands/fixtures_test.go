package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(amount)
	require.NoError(t, err)
	return m
}

func city(t *testing.T, name string) kernel.City {
	t.Helper()
	c, err := kernel.NewCity(name)
	require.NoError(t, err)
	return c
}

func newProduct(t *testing.T, supplierID kernel.UUID, price string, quantity int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), supplierID, "Flour 25kg", money(t, price), quantity)
	require.NoError(t, err)
	return p
}

func newCourier(t *testing.T, cityName string) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Courier", city(t, cityName))
	require.NoError(t, err)
	return c
}

// newRequestedOrder builds an order of two units at 10.00.
func newRequestedOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), 2, money(t, "10.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{item}, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func newConfirmedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newRequestedOrder(t)
	require.NoError(t, o.UpdateStatus(order.Confirmed, nil, time.Now().UTC()))
	return o
}

func newAssignedOrder(t *testing.T, courierID kernel.UUID) *order.Order {
	t.Helper()
	o := newConfirmedOrder(t)
	require.NoError(t, o.AssignCourier(courierID, time.Now().UTC()))
	return o
}

func newPendingNotification(t *testing.T, orderID, courierID kernel.UUID) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(kernel.NewUUID(), orderID, courierID, time.Now().UTC())
	require.NoError(t, err)
	return n
}
