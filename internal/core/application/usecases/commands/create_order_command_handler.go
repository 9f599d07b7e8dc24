package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// CreateOrderCommandHandler reserves stock and inserts the order in one transaction.
// A failed reservation leaves neither an order row nor a stock decrement behind.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	placement  orderPlacement
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) *CreateOrderCommandHandler {
	return &CreateOrderCommandHandler{
		uowFactory: uowFactory,
		placement:  orderPlacement{inventory: NewInventoryCoordinator()},
	}
}

// Handle returns the created order in status Requested with delivery Pending.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	var created *order.Order
	err := inTransaction(ctx, uow, func() error {
		o, err := h.placement.place(ctx,
			uow.OrderRepository(), uow.ProductCatalog(),
			cmd.RequesterID(), cmd.SupplierID(),
			[]OrderLine{cmd.line},
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
