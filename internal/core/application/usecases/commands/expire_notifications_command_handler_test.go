package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpireNotificationsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	ttl := 15 * time.Minute

	uow := newMockUoW()
	uow.expectCommit(ctx)
	uow.Notifications.On("ExpirePendingOlderThan", ctx,
		mock.MatchedBy(func(cutoff time.Time) bool {
			return time.Since(cutoff) >= ttl && time.Since(cutoff) < ttl+time.Minute
		}),
		mock.AnythingOfType("time.Time"),
	).Return(int64(4), nil).Once()

	cmd, err := commands.NewExpireNotificationsCommand(ttl)
	require.NoError(t, err)

	expired, err := commands.NewExpireNotificationsCommandHandler(factoryOf(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(4), expired)
	uow.assertAll(t)
}

func TestNewExpireNotificationsCommand_RejectsNonPositiveTTL(t *testing.T) {
	_, err := commands.NewExpireNotificationsCommand(0)
	require.Error(t, err)
	assert.Equal(t, commands.KindInvalidInput, commands.KindOf(err))
}
