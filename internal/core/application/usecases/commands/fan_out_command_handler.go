package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// FanOutOutcome tells the caller what a fan-out call did.
type FanOutOutcome string

const (
	// OutcomeNotified means notifications were created by this call.
	OutcomeNotified FanOutOutcome = "Notified"
	// OutcomeAlreadyNotified means an earlier fan-out already created notifications.
	OutcomeAlreadyNotified FanOutOutcome = "AlreadyNotified"
	// OutcomeNoEligibleCouriers means nobody could be invited; the order stays Pending.
	OutcomeNoEligibleCouriers FanOutOutcome = "NoEligibleCouriers"
	// OutcomeAlreadyAssigned means a courier is already bound to the order.
	OutcomeAlreadyAssigned FanOutOutcome = "AlreadyAssigned"
	// OutcomeNotAwaitingCourier means the order is not Confirmed with a Pending delivery.
	OutcomeNotAwaitingCourier FanOutOutcome = "NotAwaitingCourier"
)

type FanOutResult struct {
	Outcome       FanOutOutcome
	Notifications []*notification.Notification
}

// FanOutCommandHandler creates one Pending notification per eligible courier.
//
// The order row is locked first, so two concurrent fan-outs for the same order
// are serialized and the second one observes the notifications of the first.
type FanOutCommandHandler struct {
	uowFactory UoWFactory
	selector   services.CourierSelector
}

func NewFanOutCommandHandler(uowFactory UoWFactory, selector services.CourierSelector) *FanOutCommandHandler {
	return &FanOutCommandHandler{
		uowFactory: uowFactory,
		selector:   selector,
	}
}

func (h *FanOutCommandHandler) Handle(ctx context.Context, cmd FanOutCommand) (FanOutResult, error) {
	if err := cmd.Validate(); err != nil {
		return FanOutResult{}, err
	}

	uow := h.uowFactory.Create()

	var result FanOutResult
	err := inTransaction(ctx, uow, func() error {
		o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: %s", ErrOrderNotFound, cmd.OrderID())
		}
		if err != nil {
			return err
		}

		notifications := uow.NotificationRepository()
		exists, err := notifications.ExistsForOrder(ctx, o.ID())
		if err != nil {
			return err
		}
		if exists {
			result = FanOutResult{Outcome: OutcomeAlreadyNotified}
			return nil
		}

		if !o.AwaitsCourier() {
			result = FanOutResult{Outcome: OutcomeNotAwaitingCourier}
			if o.IsAssigned() {
				result.Outcome = OutcomeAlreadyAssigned
			}
			return nil
		}

		directory := uow.Directory()
		requesterCity, err := directory.CityOf(ctx, o.RequesterID())
		if err != nil {
			return err
		}
		supplierCity, err := directory.CityOf(ctx, o.SupplierID())
		if err != nil {
			return err
		}
		cities := []kernel.City{requesterCity, supplierCity}

		candidates, err := directory.FindAvailableCouriers(ctx, cities, h.selector.Limit())
		if err != nil {
			return err
		}

		selected, err := h.selector.Select(o, cities, candidates)
		if err != nil {
			return err
		}
		if len(selected) == 0 {
			result = FanOutResult{Outcome: OutcomeNoEligibleCouriers}
			return nil
		}

		now := time.Now().UTC()
		created := make([]*notification.Notification, 0, len(selected))
		for _, c := range selected {
			n, err := notification.NewNotification(kernel.NewUUID(), o.ID(), c.ID(), now)
			if err != nil {
				return err
			}
			created = append(created, n)
		}

		if err = notifications.AddAll(ctx, created); err != nil {
			return err
		}

		result = FanOutResult{Outcome: OutcomeNotified, Notifications: created}
		return nil
	})
	if err != nil {
		return FanOutResult{}, err
	}

	return result, nil
}
