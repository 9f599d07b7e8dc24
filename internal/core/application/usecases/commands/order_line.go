package commands

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// OrderLine is one requested product line before stock is reserved.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

func (l OrderLine) validate() error {
	if err := l.ProductID.Validate(); err != nil {
		return err
	}
	if l.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", l.Quantity))
	}
	return nil
}
