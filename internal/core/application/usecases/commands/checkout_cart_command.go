package commands

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCheckoutCartCommandIsNotConstructed = fmt.Errorf(
	"%w: CheckoutCartCommand must be created via NewCheckoutCartCommand constructor", ErrCommandIsNotConstructed,
)

// CheckoutCartCommand turns a requesting business's cart into one order per supplier.
type CheckoutCartCommand struct { //nolint:recvcheck //using for validation
	requesterID kernel.UUID
	guard       guard.ConstructorGuard
}

func NewCheckoutCartCommand(requesterID kernel.UUID) (CheckoutCartCommand, error) {
	if err := requesterID.Validate(); err != nil {
		return CheckoutCartCommand{}, err
	}
	return CheckoutCartCommand{requesterID: requesterID, guard: guard.NewConstructorGuard()}, nil
}

func (c CheckoutCartCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCartCommandIsNotConstructed)
}

func (c CheckoutCartCommand) RequesterID() kernel.UUID {
	return c.requesterID
}
