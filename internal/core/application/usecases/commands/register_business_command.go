package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRegisterBusinessCommandIsNotConstructed = fmt.Errorf(
	"%w: RegisterBusinessCommand must be created via NewRegisterBusinessCommand constructor", ErrCommandIsNotConstructed,
)

type RegisterBusinessCommand struct { //nolint:recvcheck //using for validation
	businessID kernel.UUID
	name       string
	city       kernel.City
	guard      guard.ConstructorGuard
}

func NewRegisterBusinessCommand(name string, city kernel.City) (RegisterBusinessCommand, error) {
	var nameErr error
	if name == "" {
		nameErr = ErrNameIsRequired
	}
	if err := errors.Join(nameErr, city.Validate()); err != nil {
		return RegisterBusinessCommand{}, err
	}

	return RegisterBusinessCommand{
		businessID: kernel.NewUUID(),
		name:       name,
		city:       city,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterBusinessCommand) Validate() error {
	return c.guard.Validate(ErrRegisterBusinessCommandIsNotConstructed)
}

func (c RegisterBusinessCommand) BusinessID() kernel.UUID { return c.businessID }
func (c RegisterBusinessCommand) Name() string            { return c.name }
func (c RegisterBusinessCommand) City() kernel.City       { return c.city }
