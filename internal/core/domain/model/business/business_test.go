package business_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/business"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBusiness(t *testing.T) {
	city, err := kernel.NewCity("Tbilisi")
	require.NoError(t, err)

	b, err := business.NewBusiness(kernel.NewUUID(), "Bakery No.3", city)

	require.NoError(t, err)
	require.NoError(t, b.Validate())
	assert.Equal(t, "tbilisi", b.City().Key())
}

func TestNewBusiness_Invalid(t *testing.T) {
	_, err := business.NewBusiness(kernel.UUID{}, "", kernel.City{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, business.ErrNameIsRequired)
	require.ErrorIs(t, err, kernel.ErrCityIsNotConstructed)
}
