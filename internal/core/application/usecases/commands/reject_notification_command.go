package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRejectNotificationCommandIsNotConstructed = fmt.Errorf(
	"%w: RejectNotificationCommand must be created via NewRejectNotificationCommand constructor",
	ErrCommandIsNotConstructed,
)

// RejectNotificationCommand is a courier declining a delivery offer.
type RejectNotificationCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	courierID      kernel.UUID
	guard          guard.ConstructorGuard
}

func NewRejectNotificationCommand(notificationID, courierID kernel.UUID) (RejectNotificationCommand, error) {
	if err := errors.Join(notificationID.Validate(), courierID.Validate()); err != nil {
		return RejectNotificationCommand{}, err
	}
	return RejectNotificationCommand{
		notificationID: notificationID,
		courierID:      courierID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c RejectNotificationCommand) Validate() error {
	return c.guard.Validate(ErrRejectNotificationCommandIsNotConstructed)
}

func (c RejectNotificationCommand) NotificationID() kernel.UUID { return c.notificationID }
func (c RejectNotificationCommand) CourierID() kernel.UUID      { return c.courierID }
