package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// DeliveryStatus is the courier-side lifecycle of an order.
type DeliveryStatus int

const (
	DeliveryUnknown DeliveryStatus = iota
	DeliveryPending
	DeliveryAssigned
	DeliveryPickedUp
	DeliveryInTransit
	DeliveryDelivered
	DeliveryFailed
)

var deliveryStatusNames = map[DeliveryStatus]string{
	DeliveryPending:   "Pending",
	DeliveryAssigned:  "Assigned",
	DeliveryPickedUp:  "PickedUp",
	DeliveryInTransit: "InTransit",
	DeliveryDelivered: "Delivered",
	DeliveryFailed:    "Failed",
}

// Failed is handled separately: it is reachable from every non-terminal state.
var deliveryTransitions = map[DeliveryStatus]DeliveryStatus{
	DeliveryPending:   DeliveryAssigned,
	DeliveryAssigned:  DeliveryPickedUp,
	DeliveryPickedUp:  DeliveryInTransit,
	DeliveryInTransit: DeliveryDelivered,
}

func ParseDeliveryStatus(name string) (DeliveryStatus, error) {
	for s, n := range deliveryStatusNames {
		if n == name {
			return s, nil
		}
	}
	return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery status",
		fmt.Errorf("%q is not a valid delivery status", name),
	)
}

func (s DeliveryStatus) Validate() error {
	if _, ok := deliveryStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

func (s DeliveryStatus) String() string {
	if name, ok := deliveryStatusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryFailed
}

// RequiresCourier reports whether an order in this delivery state must have a courier.
func (s DeliveryStatus) RequiresCourier() bool {
	switch s {
	case DeliveryAssigned, DeliveryPickedUp, DeliveryInTransit, DeliveryDelivered:
		return true
	default:
		return false
	}
}

func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return fmt.Errorf("%w: delivery %s -> %s", ErrInvalidTransition, s, next)
	}
	if next == DeliveryFailed || deliveryTransitions[s] == next {
		return nil
	}
	return fmt.Errorf("%w: delivery %s -> %s", ErrInvalidTransition, s, next)
}
