package notification

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

type Status int

const (
	StatusUnknown Status = iota
	Pending
	Accepted
	Rejected
	Expired
)

var statusNames = map[Status]string{
	Pending:  "Pending",
	Accepted: "Accepted",
	Rejected: "Rejected",
	Expired:  "Expired",
}

func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"notification status", fmt.Errorf("%q is not a valid notification status", name))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"notification status", fmt.Errorf("%d is not a valid notification status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}
