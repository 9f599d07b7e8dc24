package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = fmt.Errorf(
	"%w: AddCartItemCommand must be created via NewAddCartItemCommand constructor", ErrCommandIsNotConstructed,
)

type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	requesterID kernel.UUID
	line        OrderLine
	guard       guard.ConstructorGuard
}

func NewAddCartItemCommand(requesterID, productID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	line := OrderLine{ProductID: productID, Quantity: quantity}
	if err := errors.Join(requesterID.Validate(), line.validate()); err != nil {
		return AddCartItemCommand{}, err
	}
	return AddCartItemCommand{
		itemID:      kernel.NewUUID(),
		requesterID: requesterID,
		line:        line,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) ItemID() kernel.UUID      { return c.itemID }
func (c AddCartItemCommand) RequesterID() kernel.UUID { return c.requesterID }
func (c AddCartItemCommand) ProductID() kernel.UUID   { return c.line.ProductID }
func (c AddCartItemCommand) Quantity() int            { return c.line.Quantity }
