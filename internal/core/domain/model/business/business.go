// Package business holds the directory entry of a marketplace business.
// Only the parts the fulfillment engine needs are modeled: identity, name and city.
package business

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrBusinessIsNotConstructed = errors.New("Business must be created via NewBusiness constructor")
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
)

type Business struct {
	id    kernel.UUID
	name  string
	city  kernel.City
	guard guard.ConstructorGuard
}

func NewBusiness(id kernel.UUID, name string, city kernel.City) (*Business, error) {
	var nameErr error
	if name == "" {
		nameErr = ErrNameIsRequired
	}
	if err := errors.Join(id.Validate(), nameErr, city.Validate()); err != nil {
		return nil, err
	}

	return &Business{id: id, name: name, city: city, guard: guard.NewConstructorGuard()}, nil
}

func (b *Business) Validate() error {
	if b == nil {
		return ErrBusinessIsNotConstructed
	}
	return b.guard.Validate(ErrBusinessIsNotConstructed)
}

func (b *Business) ID() kernel.UUID   { return b.id }
func (b *Business) Name() string      { return b.name }
func (b *Business) City() kernel.City { return b.city }
