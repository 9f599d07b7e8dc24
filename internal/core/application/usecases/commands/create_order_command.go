package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = fmt.Errorf(
	"%w: CreateOrderCommand must be created via NewCreateOrderCommand constructor", ErrCommandIsNotConstructed,
)

// CreateOrderCommand places a single-line order from a requesting business to a supplier.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(requesterID, supplierID, productID, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	requesterID kernel.UUID
	supplierID  kernel.UUID
	line        OrderLine

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(requesterID, supplierID, productID kernel.UUID, quantity int) (CreateOrderCommand, error) {
	line := OrderLine{ProductID: productID, Quantity: quantity}
	if err := errors.Join(requesterID.Validate(), supplierID.Validate(), line.validate()); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		requesterID: requesterID,
		supplierID:  supplierID,
		line:        line,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) RequesterID() kernel.UUID { return c.requesterID }
func (c CreateOrderCommand) SupplierID() kernel.UUID  { return c.supplierID }
func (c CreateOrderCommand) ProductID() kernel.UUID   { return c.line.ProductID }
func (c CreateOrderCommand) Quantity() int            { return c.line.Quantity }
