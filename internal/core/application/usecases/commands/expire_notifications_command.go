package commands

import (
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrExpireNotificationsCommandIsNotConstructed = fmt.Errorf(
	"%w: ExpireNotificationsCommand must be created via NewExpireNotificationsCommand constructor",
	ErrCommandIsNotConstructed,
)

// ExpireNotificationsCommand expires Pending notifications nobody answered within ttl.
type ExpireNotificationsCommand struct { //nolint:recvcheck //using for validation
	ttl   time.Duration
	guard guard.ConstructorGuard
}

func NewExpireNotificationsCommand(ttl time.Duration) (ExpireNotificationsCommand, error) {
	if ttl <= 0 {
		return ExpireNotificationsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"ttl", fmt.Errorf("%s is not greater than 0", ttl))
	}
	return ExpireNotificationsCommand{ttl: ttl, guard: guard.NewConstructorGuard()}, nil
}

func (c ExpireNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrExpireNotificationsCommandIsNotConstructed)
}

func (c ExpireNotificationsCommand) TTL() time.Duration {
	return c.ttl
}
