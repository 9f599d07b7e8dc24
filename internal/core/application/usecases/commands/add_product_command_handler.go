package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/product"
)

type AddProductCommandHandler struct {
	uowFactory UoWFactory
}

func NewAddProductCommandHandler(uowFactory UoWFactory) *AddProductCommandHandler {
	return &AddProductCommandHandler{uowFactory: uowFactory}
}

func (h *AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		p, err := product.NewProduct(cmd.ProductID(), cmd.SupplierID(), cmd.Name(), cmd.Price(), cmd.Quantity())
		if err != nil {
			return err
		}
		return uow.ProductCatalog().Add(ctx, p)
	})
}
