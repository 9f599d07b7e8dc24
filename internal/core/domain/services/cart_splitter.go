package services

import (
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
)

// SupplierGroup is the part of a cart that becomes one order.
type SupplierGroup struct {
	SupplierID kernel.UUID
	Items      []*cart.Item
}

// ItemIDs lists the cart lines to clear once the group's order is placed.
func (g SupplierGroup) ItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(g.Items))
	for _, item := range g.Items {
		ids = append(ids, item.ID())
	}
	return ids
}

// CartSplitter groups cart lines by supplying business. Groups keep the order in
// which their supplier first appears in the cart, and lines keep their cart order.
type CartSplitter struct{}

func NewCartSplitter() CartSplitter {
	return CartSplitter{}
}

func (CartSplitter) Split(items []*cart.Item) ([]SupplierGroup, error) {
	index := make(map[kernel.UUID]int)
	groups := make([]SupplierGroup, 0)

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}

		i, ok := index[item.SupplierID()]
		if !ok {
			i = len(groups)
			index[item.SupplierID()] = i
			groups = append(groups, SupplierGroup{SupplierID: item.SupplierID()})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups, nil
}
