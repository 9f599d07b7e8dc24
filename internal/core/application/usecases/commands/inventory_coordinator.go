package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// Reservation is the outcome of a successful stock reservation.
type Reservation struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
}

// InventoryCoordinator checks and decrements stock for one product line.
// It must run inside the transaction that creates the order, so the decrement
// is rolled back together with everything else when that transaction fails.
type InventoryCoordinator struct{}

func NewInventoryCoordinator() InventoryCoordinator {
	return InventoryCoordinator{}
}

// Reserve locks the product row, verifies it belongs to supplierID and has
// enough stock, then decrements it and returns the unit price snapshot.
//
// Errors:
//   - ErrProductNotFound: unknown product or listed by another business
//   - product.ErrOutOfStock: fewer units available than requested
func (InventoryCoordinator) Reserve(
	ctx context.Context,
	catalog ports.ProductCatalog,
	supplierID, productID kernel.UUID,
	quantity int,
) (Reservation, error) {
	p, err := catalog.GetForUpdate(ctx, productID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Reservation{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	if err != nil {
		return Reservation{}, err
	}

	if !p.SuppliedBy(supplierID) {
		return Reservation{}, fmt.Errorf("%w: %s is not listed by %s", ErrProductNotFound, productID, supplierID)
	}

	unitPrice, err := p.Reserve(quantity)
	if err != nil {
		return Reservation{}, err
	}

	if err = catalog.DecrementQuantity(ctx, productID, quantity); err != nil {
		return Reservation{}, err
	}

	return Reservation{ProductID: productID, Quantity: quantity, UnitPrice: unitPrice}, nil
}
