package commands_test

import (
	"errors"
	"fmt"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want commands.ErrorKind
	}{
		{"nil", nil, commands.KindNone},
		{"aborted", errs.NewTransactionAbortedError(errors.New("deadlock")), commands.KindTransactionAborted},
		{"product not found", fmt.Errorf("line 0: %w", commands.ErrProductNotFound), commands.KindProductNotFound},
		{"out of stock", fmt.Errorf("line 1: %w", product.ErrOutOfStock), commands.KindOutOfStock},
		{"order not found", commands.ErrOrderNotFound, commands.KindOrderNotFound},
		{"notification not found", commands.ErrNotificationNotFound, commands.KindNotificationNotFound},
		{"already assigned", commands.ErrAlreadyAssigned, commands.KindAlreadyAssigned},
		{
			"already assigned beats resolved",
			errors.Join(notification.ErrAlreadyResolved, commands.ErrAlreadyAssigned),
			commands.KindAlreadyAssigned,
		},
		{"already resolved", notification.ErrAlreadyResolved, commands.KindAlreadyResolved},
		{"not authorized", notification.ErrNotAuthorized, commands.KindNotAuthorized},
		{"courier unavailable", commands.ErrCourierUnavailable, commands.KindCourierUnavailable},
		{"cart changed", fmt.Errorf("supplier x: %w", commands.ErrCartChanged), commands.KindCartChanged},
		{"numeric overflow", errs.NewValueIsOutOfRangeError("amount", "overflow", "0", "1"), commands.KindInvalidInput},
		{"invalid transition", order.ErrInvalidTransition, commands.KindInvalidTransition},
		{"not awaiting courier", services.ErrOrderNotAwaitingCourier, commands.KindInvalidTransition},
		{"generic not found", errs.NewObjectNotFoundError("id", "x"), commands.KindNotFound},
		{"empty cart", commands.ErrCartIsEmpty, commands.KindInvalidInput},
		{"required value", errs.NewValueIsRequiredError("name"), commands.KindInvalidInput},
		{"unconstructed command", commands.ErrFanOutCommandIsNotConstructed, commands.KindInvalidInput},
		{"anything else", errors.New("disk full"), commands.KindInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, commands.KindOf(tc.err))
		})
	}
}

func TestErrorKind_Message(t *testing.T) {
	assert.Equal(t, "This order was already picked up by another courier", commands.KindAlreadyAssigned.Message())
	assert.NotEmpty(t, commands.KindOutOfStock.Message())
	assert.Empty(t, commands.KindNone.Message())
}

func TestErrorKind_Retryable(t *testing.T) {
	assert.True(t, commands.KindTransactionAborted.Retryable())
	assert.False(t, commands.KindAlreadyAssigned.Retryable())
	assert.False(t, commands.KindInternal.Retryable())
}
