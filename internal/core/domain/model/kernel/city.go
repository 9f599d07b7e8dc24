package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// CityNameMaxLength bounds the stored city name.
const CityNameMaxLength = 100

var ErrCityIsNotConstructed = errs.NewValueIsRequiredError("city must be created via NewCity")

// City is the coarse location used for courier eligibility: a courier may
// deliver an order when it is in the requesting or the supplying business's city.
// Cities compare by Key, so "Tbilisi" and " tbilisi " are the same city.
type City struct { //nolint:recvcheck //using for validation
	name  string
	key   string
	guard guard.ConstructorGuard
}

func NewCity(name string) (City, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return City{}, errs.NewValueIsRequiredError("city")
	}

	if n := utf8.RuneCountInString(trimmed); n > CityNameMaxLength {
		return City{}, errs.NewValueIsOutOfRangeError("city length", n, 1, CityNameMaxLength)
	}

	return City{
		name:  trimmed,
		key:   strings.ToLower(trimmed),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c City) Validate() error {
	return c.guard.Validate(ErrCityIsNotConstructed)
}

// Name is the city as it was entered, trimmed.
func (c City) Name() string {
	return c.name
}

// Key is the normalized form used for comparison and indexed lookups.
func (c City) Key() string {
	return c.key
}

func (c City) IsEqual(other City) bool {
	return c.key == other.key
}

func (c City) String() string {
	return fmt.Sprintf("City(%s)", c.name)
}
