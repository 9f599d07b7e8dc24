package courier_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidCity(t *testing.T, name string) kernel.City {
	t.Helper()
	city, err := kernel.NewCity(name)
	require.NoError(t, err)
	return city
}

func createValidCourier(t *testing.T, city kernel.City) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Test Courier", city)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func TestNewCourier(t *testing.T) {
	validID := kernel.NewUUID()
	validCity := createValidCity(t, "Tbilisi")

	t.Run("should create available courier with valid parameters", func(t *testing.T) {
		c, err := courier.NewCourier(validID, "Alice", validCity)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(validID))
		assert.Equal(t, "Alice", c.Name())
		assert.True(t, c.City().IsEqual(validCity))
		assert.True(t, c.IsAvailable())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.UUID{}, "Alice", validCity)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Nil(t, c)
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		c, err := courier.NewCourier(validID, "", validCity)

		require.ErrorIs(t, err, courier.ErrNameIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should return all errors at once", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.UUID{}, "", kernel.City{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, courier.ErrNameIsRequired)
		require.ErrorIs(t, err, kernel.ErrCityIsNotConstructed)
	})
}

func TestRestoreCourier(t *testing.T) {
	c, err := courier.RestoreCourier(kernel.NewUUID(), "Bob", createValidCity(t, "Batumi"), false)

	require.NoError(t, err)
	assert.False(t, c.IsAvailable())
}

func TestCourier_Validate(t *testing.T) {
	var zero courier.Courier
	var nilCourier *courier.Courier

	require.ErrorIs(t, zero.Validate(), courier.ErrCourierIsNotConstructed)
	require.ErrorIs(t, nilCourier.Validate(), courier.ErrCourierIsNotConstructed)
}

func TestCourier_IsEligibleFor(t *testing.T) {
	tbilisi := createValidCity(t, "Tbilisi")
	batumi := createValidCity(t, "Batumi")
	kutaisi := createValidCity(t, "Kutaisi")

	t.Run("requester city", func(t *testing.T) {
		c := createValidCourier(t, tbilisi)
		assert.True(t, c.IsEligibleFor(tbilisi, batumi))
	})

	t.Run("supplier city", func(t *testing.T) {
		c := createValidCourier(t, batumi)
		assert.True(t, c.IsEligibleFor(tbilisi, batumi))
	})

	t.Run("other city", func(t *testing.T) {
		c := createValidCourier(t, kutaisi)
		assert.False(t, c.IsEligibleFor(tbilisi, batumi))
	})

	t.Run("unavailable courier", func(t *testing.T) {
		c := createValidCourier(t, tbilisi)
		c.SetAvailability(false)
		assert.False(t, c.IsEligibleFor(tbilisi))
	})
}

func TestCourier_IsEqual(t *testing.T) {
	city := createValidCity(t, "Tbilisi")
	id := kernel.NewUUID()
	a, _ := courier.NewCourier(id, "A", city)
	b, _ := courier.RestoreCourier(id, "B", city, false)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(createValidCourier(t, city)))
	assert.False(t, a.IsEqual(nil))
}
