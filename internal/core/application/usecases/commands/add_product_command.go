package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAddProductCommandIsNotConstructed = fmt.Errorf(
	"%w: AddProductCommand must be created via NewAddProductCommand constructor", ErrCommandIsNotConstructed,
)

// AddProductCommand lists a product with its initial stock under a supplier.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	supplierID kernel.UUID
	name       string
	price      kernel.Money
	quantity   int
	guard      guard.ConstructorGuard
}

func NewAddProductCommand(supplierID kernel.UUID, name string, price kernel.Money, quantity int) (AddProductCommand, error) {
	validation := []error{supplierID.Validate(), price.Validate()}
	if name == "" {
		validation = append(validation, ErrNameIsRequired)
	}
	if quantity < 0 {
		validation = append(validation,
			errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity)))
	}
	if err := errors.Join(validation...); err != nil {
		return AddProductCommand{}, err
	}

	return AddProductCommand{
		productID:  kernel.NewUUID(),
		supplierID: supplierID,
		name:       name,
		price:      price,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

func (c AddProductCommand) ProductID() kernel.UUID  { return c.productID }
func (c AddProductCommand) SupplierID() kernel.UUID { return c.supplierID }
func (c AddProductCommand) Name() string            { return c.name }
func (c AddProductCommand) Price() kernel.Money     { return c.price }
func (c AddProductCommand) Quantity() int           { return c.quantity }
