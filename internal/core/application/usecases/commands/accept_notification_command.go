package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAcceptNotificationCommandIsNotConstructed = fmt.Errorf(
	"%w: AcceptNotificationCommand must be created via NewAcceptNotificationCommand constructor",
	ErrCommandIsNotConstructed,
)

// AcceptNotificationCommand is a courier's attempt to take the order behind a notification.
type AcceptNotificationCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	courierID      kernel.UUID
	guard          guard.ConstructorGuard
}

func NewAcceptNotificationCommand(notificationID, courierID kernel.UUID) (AcceptNotificationCommand, error) {
	if err := errors.Join(notificationID.Validate(), courierID.Validate()); err != nil {
		return AcceptNotificationCommand{}, err
	}
	return AcceptNotificationCommand{
		notificationID: notificationID,
		courierID:      courierID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptNotificationCommand) Validate() error {
	return c.guard.Validate(ErrAcceptNotificationCommandIsNotConstructed)
}

func (c AcceptNotificationCommand) NotificationID() kernel.UUID { return c.notificationID }
func (c AcceptNotificationCommand) CourierID() kernel.UUID      { return c.courierID }
