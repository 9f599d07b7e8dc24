package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = fmt.Errorf(
	"%w: UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor", ErrCommandIsNotConstructed,
)

// UpdateOrderStatusCommand moves an order along its status machine and,
// optionally, its delivery-status machine.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	status         order.Status
	deliveryStatus *order.DeliveryStatus

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand validates the target states. deliveryStatus may be nil.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	deliveryStatus *order.DeliveryStatus,
) (UpdateOrderStatusCommand, error) {
	validation := []error{orderID.Validate(), status.Validate()}
	if deliveryStatus != nil {
		validation = append(validation, deliveryStatus.Validate())
	}
	if err := errors.Join(validation...); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	cmd := UpdateOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}
	if deliveryStatus != nil {
		ds := *deliveryStatus
		cmd.deliveryStatus = &ds
	}
	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }

func (c UpdateOrderStatusCommand) DeliveryStatus() *order.DeliveryStatus {
	if c.deliveryStatus == nil {
		return nil
	}
	ds := *c.deliveryStatus
	return &ds
}
