package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// SupplierResult is the outcome of one supplier group of a checkout.
// Exactly one of Order and Err is set.
type SupplierResult struct {
	SupplierID kernel.UUID
	Order      *order.Order
	Err        error
	ErrorKind  ErrorKind
}

type CheckoutResult struct {
	Results []SupplierResult
}

// Placed returns the orders that were created.
func (r CheckoutResult) Placed() []*order.Order {
	placed := make([]*order.Order, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Order != nil {
			placed = append(placed, res.Order)
		}
	}
	return placed
}

// Failed returns the groups that stayed in the cart.
func (r CheckoutResult) Failed() []SupplierResult {
	failed := make([]SupplierResult, 0)
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// CheckoutCartCommandHandler splits the cart by supplier and places each group
// as an independent bulk order in its own transaction. A failing supplier never
// rolls back another supplier's order. Successful groups are removed from the
// cart in the same transaction as their order; failed groups stay in the cart.
//
// The group's lines are deleted before stock is reserved. Two checkouts of the
// same cart serialize on those row locks, and the one that finds the lines
// already gone rolls back with ErrCartChanged.
type CheckoutCartCommandHandler struct {
	uowFactory UoWFactory
	placement  orderPlacement
	splitter   services.CartSplitter
	retry      RetryPolicy
}

func NewCheckoutCartCommandHandler(uowFactory UoWFactory, retry RetryPolicy) *CheckoutCartCommandHandler {
	return &CheckoutCartCommandHandler{
		uowFactory: uowFactory,
		placement:  orderPlacement{inventory: NewInventoryCoordinator()},
		splitter:   services.NewCartSplitter(),
		retry:      retry,
	}
}

// Handle returns ErrCartIsEmpty for an empty cart. Per-supplier failures are
// reported in the result, not as the returned error.
func (h *CheckoutCartCommandHandler) Handle(ctx context.Context, cmd CheckoutCartCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	items, err := h.uowFactory.Create().CartRepository().ListByBusiness(ctx, cmd.RequesterID())
	if err != nil {
		return CheckoutResult{}, err
	}
	if len(items) == 0 {
		return CheckoutResult{}, ErrCartIsEmpty
	}

	groups, err := h.splitter.Split(items)
	if err != nil {
		return CheckoutResult{}, err
	}

	result := CheckoutResult{Results: make([]SupplierResult, 0, len(groups))}
	for _, group := range groups {
		o, gerr := h.placeGroup(ctx, cmd.RequesterID(), group)
		result.Results = append(result.Results, SupplierResult{
			SupplierID: group.SupplierID,
			Order:      o,
			Err:        gerr,
			ErrorKind:  KindOf(gerr),
		})
	}

	return result, nil
}

func (h *CheckoutCartCommandHandler) placeGroup(
	ctx context.Context,
	requesterID kernel.UUID,
	group services.SupplierGroup,
) (*order.Order, error) {
	lines := make([]OrderLine, 0, len(group.Items))
	for _, item := range group.Items {
		lines = append(lines, OrderLine{ProductID: item.ProductID(), Quantity: item.Quantity()})
	}

	var placed *order.Order
	itemIDs := group.ItemIDs()
	err := h.retry.Do(ctx, func() error {
		uow := h.uowFactory.Create()
		return inTransaction(ctx, uow, func() error {
			removed, err := uow.CartRepository().Remove(ctx, itemIDs)
			if err != nil {
				return err
			}
			if removed != int64(len(itemIDs)) {
				return fmt.Errorf("%w: %d of %d lines of supplier %s left",
					ErrCartChanged, removed, len(itemIDs), group.SupplierID)
			}

			o, err := h.placement.place(ctx,
				uow.OrderRepository(), uow.ProductCatalog(),
				requesterID, group.SupplierID,
				lines,
				time.Now().UTC(),
			)
			if err != nil {
				return err
			}

			placed = o
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return placed, nil
}
