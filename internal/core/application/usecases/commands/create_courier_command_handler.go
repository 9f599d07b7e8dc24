package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/courier"
)

// CreateCourierCommandHandler registers an available courier in the directory.
type CreateCourierCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateCourierCommandHandler(uowFactory UoWFactory) *CreateCourierCommandHandler {
	return &CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the courier and persists it within a transaction.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		c, err := courier.NewCourier(cmd.CourierID(), cmd.Name(), cmd.City())
		if err != nil {
			return err
		}
		return uow.Directory().AddCourier(ctx, c)
	})
}
