// Package product holds the inventory slice of a catalog product: who lists it,
// its current price and the quantity still available.
package product

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrOutOfStock is returned when a reservation asks for more units than are available.
	ErrOutOfStock = errors.New("out of stock")
)

// Product never holds a negative quantity.
type Product struct {
	id         kernel.UUID
	supplierID kernel.UUID
	name       string
	price      kernel.Money
	quantity   int
	guard      guard.ConstructorGuard
}

func NewProduct(id, supplierID kernel.UUID, name string, price kernel.Money, quantity int) (*Product, error) {
	if err := errors.Join(id.Validate(), supplierID.Validate(), price.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}

	return &Product{
		id:         id,
		supplierID: supplierID,
		name:       name,
		price:      price,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID         { return p.id }
func (p *Product) SupplierID() kernel.UUID { return p.supplierID }
func (p *Product) Name() string            { return p.name }
func (p *Product) Price() kernel.Money     { return p.price }
func (p *Product) Quantity() int           { return p.quantity }

// SuppliedBy reports whether the product is listed by supplierID.
func (p *Product) SuppliedBy(supplierID kernel.UUID) bool {
	return p.supplierID.IsEqual(supplierID)
}

// Reserve takes quantity units out of stock and returns the unit price at this moment.
func (p *Product) Reserve(quantity int) (kernel.Money, error) {
	if quantity <= 0 {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if p.quantity < quantity {
		return kernel.Money{}, fmt.Errorf("%w: product %s has %d, requested %d", ErrOutOfStock, p.id, p.quantity, quantity)
	}

	p.quantity -= quantity
	return p.price, nil
}
