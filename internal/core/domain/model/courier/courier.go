package courier

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the marketplace.
//
// Key responsibilities:
//   - Managing courier identity (ID, name)
//   - Holding the city used for coarse delivery eligibility
//   - Tracking availability: an available courier can be invited to and accept orders
//
// Example usage:
//
//	city, _ := kernel.NewCity("Tbilisi")
//	c, err := courier.NewCourier(kernel.NewUUID(), "Nino", city)
//	if err != nil {
//	    // Handle construction error
//	}
//	// c.IsAvailable() == true
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// city is where the courier currently operates
	city kernel.City
	// available is false while the courier carries an active delivery or is off duty
	available bool
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new, available Courier.
//
// Parameters:
//   - id: Unique identifier for the courier (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - city: Operating city (must be constructed via kernel.NewCity)
//
// Returns:
//   - *Courier: A courier ready to receive notifications
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
func NewCourier(id kernel.UUID, name string, city kernel.City) (*Courier, error) {
	return RestoreCourier(id, name, city, true)
}

// RestoreCourier reconstructs a Courier from persistent storage with its stored availability.
//
// Example:
//
//	c, err := courier.RestoreCourier(courierID, "Nino", city, false)
//	if err != nil {
//	    return fmt.Errorf("restoration failed: %w", err)
//	}
func RestoreCourier(id kernel.UUID, name string, city kernel.City, available bool) (*Courier, error) {
	c := &Courier{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setCity(city),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed.
// The zero value of Courier is invalid and will fail this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// City returns the courier's operating city.
func (c *Courier) City() kernel.City {
	return c.city
}

// IsAvailable reports whether the courier may be invited to and accept orders.
func (c *Courier) IsAvailable() bool {
	return c.available
}

// SetAvailability flips the availability flag. It is set to false when the
// courier wins an order and back to true when that delivery reaches a terminal state.
func (c *Courier) SetAvailability(available bool) {
	c.available = available
}

// IsEligibleFor reports whether the courier can be notified about an order whose
// requesting and supplying businesses are in the given cities.
func (c *Courier) IsEligibleFor(cities ...kernel.City) bool {
	if !c.available {
		return false
	}
	for _, city := range cities {
		if c.city.IsEqual(city) {
			return true
		}
	}
	return false
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setCity(city kernel.City) error {
	if err := city.Validate(); err != nil {
		return err
	}
	c.city = city
	return nil
}
