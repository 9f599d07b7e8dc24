package commands

import (
	"context"
	"fmt"
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// orderPlacement is the part of order creation shared by single, bulk and
// checkout orders. The caller owns the transaction.
type orderPlacement struct {
	inventory InventoryCoordinator
}

// place reserves every line and inserts the order. Products are locked in
// ascending id order so two bulk orders over the same products cannot deadlock;
// the order keeps the lines in the sequence they were requested.
func (p orderPlacement) place(
	ctx context.Context,
	orders ports.OrderRepository,
	catalog ports.ProductCatalog,
	requesterID, supplierID kernel.UUID,
	lines []OrderLine,
	now time.Time,
) (*order.Order, error) {
	lockOrder := make([]int, len(lines))
	for i := range lockOrder {
		lockOrder[i] = i
	}
	slices.SortStableFunc(lockOrder, func(a, b int) int {
		return lines[a].ProductID.Compare(lines[b].ProductID)
	})

	items := make([]order.LineItem, len(lines))
	for _, i := range lockOrder {
		reservation, err := p.inventory.Reserve(ctx, catalog, supplierID, lines[i].ProductID, lines[i].Quantity)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}

		item, err := order.NewLineItem(reservation.ProductID, reservation.Quantity, reservation.UnitPrice)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}

	o, err := order.NewOrder(kernel.NewUUID(), requesterID, supplierID, items, now)
	if err != nil {
		return nil, err
	}

	if err = orders.Add(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
