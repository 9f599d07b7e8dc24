package commands

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRetryFanOutCommandIsNotConstructed = fmt.Errorf(
	"%w: RetryFanOutCommand must be created via NewRetryFanOutCommand constructor", ErrCommandIsNotConstructed,
)

// RetryFanOutCommand sweeps confirmed orders whose fan-out never happened.
type RetryFanOutCommand struct { //nolint:recvcheck //using for validation
	batch int
	guard guard.ConstructorGuard
}

func NewRetryFanOutCommand(batch int) (RetryFanOutCommand, error) {
	if batch <= 0 {
		return RetryFanOutCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"batch", fmt.Errorf("%d is not greater than 0", batch))
	}
	return RetryFanOutCommand{batch: batch, guard: guard.NewConstructorGuard()}, nil
}

func (c RetryFanOutCommand) Validate() error {
	return c.guard.Validate(ErrRetryFanOutCommandIsNotConstructed)
}

func (c RetryFanOutCommand) Batch() int {
	return c.batch
}
