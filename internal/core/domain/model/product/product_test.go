package product_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, quantity int) *product.Product {
	t.Helper()
	price, err := kernel.MoneyFromString("4.20")
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Flour 25kg", price, quantity)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	price, _ := kernel.MoneyFromString("1")

	_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "", price, 1)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "x", price, -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "x", kernel.Money{}, 1)
	require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
}

func TestProduct_Reserve(t *testing.T) {
	t.Run("scenario_a", func(t *testing.T) {
		p := newProduct(t, 5)

		unit, err := p.Reserve(3)

		require.NoError(t, err)
		assert.Equal(t, "4.20", unit.String())
		assert.Equal(t, 2, p.Quantity())
	})

	t.Run("scenario_b", func(t *testing.T) {
		p := newProduct(t, 2)

		_, err := p.Reserve(3)

		require.ErrorIs(t, err, product.ErrOutOfStock)
		assert.Equal(t, 2, p.Quantity())
	})

	t.Run("exact_stock", func(t *testing.T) {
		p := newProduct(t, 3)

		_, err := p.Reserve(3)

		require.NoError(t, err)
		assert.Zero(t, p.Quantity())
	})

	t.Run("non_positive_quantity", func(t *testing.T) {
		p := newProduct(t, 3)

		_, err := p.Reserve(0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 3, p.Quantity())
	})
}

func TestProduct_SuppliedBy(t *testing.T) {
	p := newProduct(t, 1)

	assert.True(t, p.SuppliedBy(p.SupplierID()))
	assert.False(t, p.SuppliedBy(kernel.NewUUID()))
}
