package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/pkg/errs"
)

// AddCartItemCommandHandler puts a product line into the requester's cart.
// The supplier is copied from the catalog so checkout can split the cart
// without reading products again.
type AddCartItemCommandHandler struct {
	uowFactory UoWFactory
}

func NewAddCartItemCommandHandler(uowFactory UoWFactory) *AddCartItemCommandHandler {
	return &AddCartItemCommandHandler{uowFactory: uowFactory}
}

func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		p, err := uow.ProductCatalog().Get(ctx, cmd.ProductID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: %s", ErrProductNotFound, cmd.ProductID())
		}
		if err != nil {
			return err
		}

		item, err := cart.NewItem(cmd.ItemID(), cmd.RequesterID(), p.SupplierID(), p.ID(), cmd.Quantity())
		if err != nil {
			return err
		}
		return uow.CartRepository().Add(ctx, item)
	})
}
