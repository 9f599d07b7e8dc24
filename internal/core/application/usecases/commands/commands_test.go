package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name        string
		requesterID kernel.UUID
		supplierID  kernel.UUID
		productID   kernel.UUID
		quantity    int
	}{
		{"zero requester", kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), 1},
		{"zero supplier", kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), 1},
		{"zero product", kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, 1},
		{"zero quantity", kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0},
		{"negative quantity", kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), -2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(tc.requesterID, tc.supplierID, tc.productID, tc.quantity)
			require.Error(t, err)
			assert.Equal(t, commands.KindInvalidInput, commands.KindOf(err))
		})
	}
}

func TestNewCreateBulkOrderCommand(t *testing.T) {
	t.Run("no lines", func(t *testing.T) {
		_, err := commands.NewCreateBulkOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("bad line is reported by index", func(t *testing.T) {
		_, err := commands.NewCreateBulkOrderCommand(kernel.NewUUID(), kernel.NewUUID(), []commands.OrderLine{
			{ProductID: kernel.NewUUID(), Quantity: 1},
			{ProductID: kernel.NewUUID(), Quantity: 0},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("lines are copied", func(t *testing.T) {
		lines := []commands.OrderLine{{ProductID: kernel.NewUUID(), Quantity: 1}}
		cmd, err := commands.NewCreateBulkOrderCommand(kernel.NewUUID(), kernel.NewUUID(), lines)
		require.NoError(t, err)

		lines[0].Quantity = 99
		got := cmd.Lines()
		got[0].Quantity = 42

		assert.Equal(t, 1, cmd.Lines()[0].Quantity)
	})
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.StatusUnknown, nil)
		require.Error(t, err)
	})

	t.Run("delivery status is copied", func(t *testing.T) {
		ds := order.DeliveryPickedUp
		cmd, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Confirmed, &ds)
		require.NoError(t, err)

		ds = order.DeliveryFailed
		require.NotNil(t, cmd.DeliveryStatus())
		assert.Equal(t, order.DeliveryPickedUp, *cmd.DeliveryStatus())
	})
}

func TestNewAcceptNotificationCommand_RequiresIDs(t *testing.T) {
	_, err := commands.NewAcceptNotificationCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = commands.NewAcceptNotificationCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestNewRetryFanOutCommand_RejectsNonPositiveBatch(t *testing.T) {
	_, err := commands.NewRetryFanOutCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateCourierCommand(t *testing.T) {
	c, err := kernel.NewCity("Almaty")
	require.NoError(t, err)

	cmd, err := commands.NewCreateCourierCommand("Aidos", c)
	require.NoError(t, err)
	assert.Equal(t, "Aidos", cmd.Name())
	assert.True(t, cmd.City().IsEqual(c))
	require.NoError(t, cmd.CourierID().Validate())

	_, err = commands.NewCreateCourierCommand("", c)
	require.ErrorIs(t, err, commands.ErrNameIsRequired)

	_, err = commands.NewCreateCourierCommand("Aidos", kernel.City{})
	require.Error(t, err)
}

func TestZeroValueCommandsAreRejected(t *testing.T) {
	assert.ErrorIs(t, commands.FanOutCommand{}.Validate(), commands.ErrCommandIsNotConstructed)
	assert.ErrorIs(t, commands.AcceptNotificationCommand{}.Validate(), commands.ErrCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RejectNotificationCommand{}.Validate(), commands.ErrCommandIsNotConstructed)
	assert.ErrorIs(t, commands.CheckoutCartCommand{}.Validate(), commands.ErrCommandIsNotConstructed)
	assert.ErrorIs(t, commands.UpdateOrderStatusCommand{}.Validate(), commands.ErrCommandIsNotConstructed)
}

func TestErrNameIsRequired_IsInvalidInput(t *testing.T) {
	assert.Equal(t, commands.KindInvalidInput, commands.KindOf(commands.ErrNameIsRequired))
}
