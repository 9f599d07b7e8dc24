package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/business"
)

type RegisterBusinessCommandHandler struct {
	uowFactory UoWFactory
}

func NewRegisterBusinessCommandHandler(uowFactory UoWFactory) *RegisterBusinessCommandHandler {
	return &RegisterBusinessCommandHandler{uowFactory: uowFactory}
}

func (h *RegisterBusinessCommandHandler) Handle(ctx context.Context, cmd RegisterBusinessCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		b, err := business.NewBusiness(cmd.BusinessID(), cmd.Name(), cmd.City())
		if err != nil {
			return err
		}
		return uow.Directory().AddBusiness(ctx, b)
	})
}
