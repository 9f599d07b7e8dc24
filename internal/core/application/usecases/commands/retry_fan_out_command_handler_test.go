package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRetryFanOutCommandHandler_Handle_ContinuesPastFailures(t *testing.T) {
	// Arrange
	ctx := t.Context()
	ok, broken, nobody := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	uow := newMockUoW()
	uow.Orders.On("ListAwaitingCourierWithoutNotifications", ctx, 50).
		Return([]kernel.UUID{ok, broken, nobody}, nil).Once()

	forOrder := func(id kernel.UUID) any {
		return mock.MatchedBy(func(cmd commands.FanOutCommand) bool { return cmd.OrderID() == id })
	}

	fanOut := new(MockOrderFanOut)
	fanOut.On("Handle", ctx, forOrder(ok)).
		Return(commands.FanOutResult{Outcome: commands.OutcomeNotified}, nil).Once()
	fanOut.On("Handle", ctx, forOrder(broken)).
		Return(commands.FanOutResult{}, errors.New("connection reset")).Once()
	fanOut.On("Handle", ctx, forOrder(nobody)).
		Return(commands.FanOutResult{Outcome: commands.OutcomeNoEligibleCouriers}, nil).Once()

	cmd, err := commands.NewRetryFanOutCommand(50)
	require.NoError(t, err)

	// Act
	summary, err := commands.NewRetryFanOutCommandHandler(factoryOf(uow), fanOut, discardLogger()).Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, commands.RetryFanOutSummary{Scanned: 3, Notified: 1, Failed: 1}, summary)
	fanOut.AssertExpectations(t)
	uow.assertAll(t)
}

func TestRetryFanOutCommandHandler_Handle_NothingToDo(t *testing.T) {
	ctx := t.Context()

	uow := newMockUoW()
	uow.Orders.On("ListAwaitingCourierWithoutNotifications", ctx, 10).Return([]kernel.UUID{}, nil).Once()

	fanOut := new(MockOrderFanOut)
	cmd, err := commands.NewRetryFanOutCommand(10)
	require.NoError(t, err)

	summary, err := commands.NewRetryFanOutCommandHandler(factoryOf(uow), fanOut, discardLogger()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, summary)
	fanOut.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}
