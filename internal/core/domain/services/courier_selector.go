package services

import (
	"errors"
	"fmt"
	"slices"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// DefaultFanOutLimit caps how many couriers are invited to a single order.
const DefaultFanOutLimit = 10

// ErrOrderNotAwaitingCourier is returned when selection is requested for an order
// that is not Confirmed with a Pending, unassigned delivery.
var ErrOrderNotAwaitingCourier = errors.New("order is not awaiting a courier")

// CourierSelector decides which couriers are invited to a confirmed order.
//
// Business rules:
//   - Only available couriers are eligible
//   - A courier must be in the requesting or the supplying business's city
//   - At most limit couriers are returned, in ascending id order, each at most once
//
// Example usage:
//
//	selector, _ := services.NewCourierSelector(services.DefaultFanOutLimit)
//	invited, err := selector.Select(o, []kernel.City{requesterCity, supplierCity}, candidates)
//	if err != nil {
//	    return err
//	}
//	if len(invited) == 0 {
//	    // nobody to notify yet, the order stays Pending
//	}
type CourierSelector struct {
	limit int
}

func NewCourierSelector(limit int) (CourierSelector, error) {
	if limit <= 0 {
		return CourierSelector{}, errs.NewValueIsInvalidErrorWithCause(
			"fan-out limit", fmt.Errorf("%d is not greater than 0", limit))
	}
	return CourierSelector{limit: limit}, nil
}

func (s CourierSelector) Limit() int {
	return s.limit
}

// Select returns the couriers to notify. An empty result is not an error.
func (s CourierSelector) Select(o *order.Order, cities []kernel.City, candidates []*courier.Courier) ([]*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if !o.AwaitsCourier() {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotAwaitingCourier, o.ID())
	}

	seen := make(map[kernel.UUID]struct{}, len(candidates))
	eligible := make([]*courier.Courier, 0, min(len(candidates), s.limit))

	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[c.ID()]; dup {
			continue
		}
		seen[c.ID()] = struct{}{}

		if c.IsEligibleFor(cities...) {
			eligible = append(eligible, c)
		}
	}

	slices.SortFunc(eligible, func(a, b *courier.Courier) int {
		return a.ID().Compare(b.ID())
	})

	if len(eligible) > s.limit {
		eligible = eligible[:s.limit]
	}
	return eligible, nil
}
