package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateBulkOrderCommandIsNotConstructed = fmt.Errorf(
	"%w: CreateBulkOrderCommand must be created via NewCreateBulkOrderCommand constructor", ErrCommandIsNotConstructed,
)

// CreateBulkOrderCommand places one order with several lines from the same supplier.
// Either every line is reserved and the order exists, or nothing is written.
type CreateBulkOrderCommand struct { //nolint:recvcheck //using for validation
	requesterID kernel.UUID
	supplierID  kernel.UUID
	lines       []OrderLine

	guard guard.ConstructorGuard
}

func NewCreateBulkOrderCommand(requesterID, supplierID kernel.UUID, lines []OrderLine) (CreateBulkOrderCommand, error) {
	if len(lines) == 0 {
		return CreateBulkOrderCommand{}, errs.NewValueIsRequiredError("lines")
	}

	validation := []error{requesterID.Validate(), supplierID.Validate()}
	for i, line := range lines {
		if err := line.validate(); err != nil {
			validation = append(validation, fmt.Errorf("line %d: %w", i, err))
		}
	}
	if err := errors.Join(validation...); err != nil {
		return CreateBulkOrderCommand{}, err
	}

	return CreateBulkOrderCommand{
		requesterID: requesterID,
		supplierID:  supplierID,
		lines:       append([]OrderLine(nil), lines...),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateBulkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateBulkOrderCommandIsNotConstructed)
}

func (c CreateBulkOrderCommand) RequesterID() kernel.UUID { return c.requesterID }
func (c CreateBulkOrderCommand) SupplierID() kernel.UUID  { return c.supplierID }

func (c CreateBulkOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}
