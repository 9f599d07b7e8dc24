package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

type CreateBulkOrderCommandHandler struct {
	uowFactory UoWFactory
	placement  orderPlacement
}

func NewCreateBulkOrderCommandHandler(uowFactory UoWFactory) *CreateBulkOrderCommandHandler {
	return &CreateBulkOrderCommandHandler{
		uowFactory: uowFactory,
		placement:  orderPlacement{inventory: NewInventoryCoordinator()},
	}
}

// Handle reserves every line before committing. The first failing line aborts
// the whole order and rolls back the lines already reserved.
func (h *CreateBulkOrderCommandHandler) Handle(ctx context.Context, cmd CreateBulkOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	var created *order.Order
	err := inTransaction(ctx, uow, func() error {
		o, err := h.placement.place(ctx,
			uow.OrderRepository(), uow.ProductCatalog(),
			cmd.RequesterID(), cmd.SupplierID(),
			cmd.lines,
			time.Now().UTC(),
		)
		if err != nil {
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
