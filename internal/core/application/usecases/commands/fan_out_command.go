package commands

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrFanOutCommandIsNotConstructed = fmt.Errorf(
	"%w: FanOutCommand must be created via NewFanOutCommand constructor", ErrCommandIsNotConstructed,
)

// FanOutCommand invites eligible couriers to a confirmed order.
type FanOutCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewFanOutCommand(orderID kernel.UUID) (FanOutCommand, error) {
	if err := orderID.Validate(); err != nil {
		return FanOutCommand{}, err
	}
	return FanOutCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c FanOutCommand) Validate() error {
	return c.guard.Validate(ErrFanOutCommandIsNotConstructed)
}

func (c FanOutCommand) OrderID() kernel.UUID {
	return c.orderID
}
