package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a status or delivery-status change is not
// allowed from the current state. It is wrapped with the attempted transition.
var ErrInvalidTransition = errors.New("invalid transition")

// Status is the business-side lifecycle of an order.
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota
	// Requested is the initial status set at checkout.
	Requested
	// Confirmed means the supplier accepted the order; confirming triggers courier fan-out.
	Confirmed
	// Completed is terminal.
	Completed
	// Cancelled is terminal and reachable from Requested or Confirmed.
	Cancelled
	// Rejected is terminal and reachable only from Requested.
	Rejected
)

var statusNames = map[Status]string{
	Requested: "Requested",
	Confirmed: "Confirmed",
	Completed: "Completed",
	Cancelled: "Cancelled",
	Rejected:  "Rejected",
}

var statusTransitions = map[Status][]Status{
	Requested: {Confirmed, Cancelled, Rejected},
	Confirmed: {Completed, Cancelled},
}

// ParseStatus converts a persisted or transported name back into a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether no further status transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Rejected
}

// CanTransitionTo returns ErrInvalidTransition (wrapped) when next is not reachable from s.
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return nil
		}
	}
	return fmt.Errorf("%w: status %s -> %s", ErrInvalidTransition, s, next)
}
