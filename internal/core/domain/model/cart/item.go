// Package cart models the lines of a requesting business's cart that checkout
// turns into orders.
package cart

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("cart Item must be created via NewItem constructor")

// Item is one cart line. The supplier is denormalized onto the line so the
// cart can be split without a catalog lookup.
type Item struct {
	id         kernel.UUID
	businessID kernel.UUID
	supplierID kernel.UUID
	productID  kernel.UUID
	quantity   int
	guard      guard.ConstructorGuard
}

func NewItem(id, businessID, supplierID, productID kernel.UUID, quantity int) (*Item, error) {
	if err := errors.Join(
		id.Validate(), businessID.Validate(), supplierID.Validate(), productID.Validate(),
	); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &Item{
		id:         id,
		businessID: businessID,
		supplierID: supplierID,
		productID:  productID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID         { return i.id }
func (i *Item) BusinessID() kernel.UUID { return i.businessID }
func (i *Item) SupplierID() kernel.UUID { return i.supplierID }
func (i *Item) ProductID() kernel.UUID  { return i.productID }
func (i *Item) Quantity() int           { return i.quantity }
