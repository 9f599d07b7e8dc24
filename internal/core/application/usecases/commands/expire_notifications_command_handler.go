package commands

import (
	"context"
	"time"
)

// ExpireNotificationsCommandHandler closes stale invitations. The order is not
// touched: it stays Confirmed and unassigned, and because notifications exist
// for it the fan-out retry job does not invite couriers again.
type ExpireNotificationsCommandHandler struct {
	uowFactory UoWFactory
}

func NewExpireNotificationsCommandHandler(uowFactory UoWFactory) *ExpireNotificationsCommandHandler {
	return &ExpireNotificationsCommandHandler{uowFactory: uowFactory}
}

// Handle returns how many notifications were expired.
func (h *ExpireNotificationsCommandHandler) Handle(ctx context.Context, cmd ExpireNotificationsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()

	var expired int64
	err := inTransaction(ctx, uow, func() error {
		now := time.Now().UTC()
		n, err := uow.NotificationRepository().ExpirePendingOlderThan(ctx, now.Add(-cmd.TTL()), now)
		expired = n
		return err
	})
	if err != nil {
		return 0, err
	}

	return expired, nil
}
