package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned by Validate on an Order that bypassed NewOrder and RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrItemsAreRequired      = errs.NewValueIsRequiredError("items")
	ErrSameBusiness          = errs.NewValueIsInvalidErrorWithCause(
		"supplier", errors.New("requesting and supplying business must differ"))
)

// Order is the aggregate root of a single-supplier purchase.
//
// Order follows these invariants:
//   - total equals the sum of line item subtotals
//   - courierID is set if and only if deliveryStatus.RequiresCourier()
//   - status and deliveryStatus only move along their state machines
type Order struct {
	id             kernel.UUID
	requesterID    kernel.UUID
	supplierID     kernel.UUID
	items          []LineItem
	total          kernel.Money
	status         Status
	deliveryStatus DeliveryStatus
	courierID      *kernel.UUID
	createdAt      time.Time
	updatedAt      time.Time
	guard          guard.ConstructorGuard
}

// NewOrder creates an order in status Requested with delivery status Pending.
//
// Parameters:
//   - id: order identifier
//   - requesterID: the business placing the order
//   - supplierID: the business fulfilling it (must differ from requesterID)
//   - items: at least one line item, already priced from a reservation
//   - now: creation time
//
// All validation errors are joined, so a caller sees every problem at once.
func NewOrder(id, requesterID, supplierID kernel.UUID, items []LineItem, now time.Time) (*Order, error) {
	o := &Order{
		status:         Requested,
		deliveryStatus: DeliveryPending,
		createdAt:      now,
		updatedAt:      now,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setIDs(id, requesterID, supplierID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. It re-checks the
// aggregate invariants so a corrupted row never becomes a live aggregate.
func RestoreOrder(
	id, requesterID, supplierID kernel.UUID,
	items []LineItem,
	total kernel.Money,
	status Status,
	deliveryStatus DeliveryStatus,
	courierID *kernel.UUID,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:         status,
		deliveryStatus: deliveryStatus,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setIDs(id, requesterID, supplierID),
		o.setItems(items),
		status.Validate(),
		deliveryStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if !o.total.IsEqual(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total", fmt.Errorf("%s does not match line items sum %s", total, o.total))
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}
	if deliveryStatus.RequiresCourier() != (courierID != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"courier", fmt.Errorf("courier presence does not match delivery status %s", deliveryStatus))
	}
	o.courierID = courierID

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                { return o.id }
func (o *Order) RequesterID() kernel.UUID       { return o.requesterID }
func (o *Order) SupplierID() kernel.UUID        { return o.supplierID }
func (o *Order) Total() kernel.Money            { return o.total }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) DeliveryStatus() DeliveryStatus { return o.deliveryStatus }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }
func (o *Order) UpdatedAt() time.Time           { return o.updatedAt }

// Items returns a copy of the line items in the order they were placed.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Courier returns the assigned courier or nil.
func (o *Order) Courier() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	id := *o.courierID
	return &id
}

func (o *Order) IsAssigned() bool {
	return o.courierID != nil
}

// AwaitsCourier reports whether the order is confirmed and still waiting for a courier,
// which is the only state in which fan-out and acceptance make sense.
func (o *Order) AwaitsCourier() bool {
	return o.status == Confirmed && o.deliveryStatus == DeliveryPending && o.courierID == nil
}

// UpdateStatus applies a business-side status change and an optional delivery-status
// change together. Both are validated before anything is mutated, so a rejected
// update leaves the order untouched.
//
// Passing the current status with a non-nil delivery status changes only the delivery.
// Moving to Cancelled or Rejected fails a delivery that is not yet terminal and
// clears the courier.
func (o *Order) UpdateStatus(next Status, nextDelivery *DeliveryStatus, now time.Time) error {
	statusChanges := next != o.status
	if !statusChanges && nextDelivery == nil {
		return fmt.Errorf("%w: status %s -> %s", ErrInvalidTransition, o.status, next)
	}

	if statusChanges {
		if err := o.status.CanTransitionTo(next); err != nil {
			return err
		}
	}

	delivery := o.deliveryStatus
	if nextDelivery != nil {
		if err := o.checkDeliveryChange(next, *nextDelivery); err != nil {
			return err
		}
		delivery = *nextDelivery
	}

	if (next == Cancelled || next == Rejected) && !delivery.IsTerminal() {
		delivery = DeliveryFailed
	}

	o.status = next
	o.deliveryStatus = delivery
	if !delivery.RequiresCourier() {
		o.courierID = nil
	}
	o.updatedAt = now
	return nil
}

func (o *Order) checkDeliveryChange(next Status, nextDelivery DeliveryStatus) error {
	if nextDelivery == DeliveryAssigned {
		return fmt.Errorf("%w: delivery %s -> %s is only set by courier acceptance",
			ErrInvalidTransition, o.deliveryStatus, nextDelivery)
	}
	if err := o.deliveryStatus.CanTransitionTo(nextDelivery); err != nil {
		return err
	}
	if (next == Cancelled || next == Rejected) && nextDelivery != DeliveryFailed {
		return fmt.Errorf("%w: delivery %s cannot continue on a %s order",
			ErrInvalidTransition, nextDelivery, next)
	}
	return nil
}

// AssignCourier binds the courier and moves the delivery to Assigned.
// It mirrors the conditional write the store performs during acceptance.
func (o *Order) AssignCourier(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if !o.AwaitsCourier() {
		return fmt.Errorf("%w: order %s (%s, delivery %s) is not awaiting a courier",
			ErrInvalidTransition, o.id, o.status, o.deliveryStatus)
	}

	o.courierID = &courierID
	o.deliveryStatus = DeliveryAssigned
	o.updatedAt = now
	return nil
}

func (o *Order) setIDs(id, requesterID, supplierID kernel.UUID) error {
	if err := errors.Join(id.Validate(), requesterID.Validate(), supplierID.Validate()); err != nil {
		return err
	}
	if requesterID.IsEqual(supplierID) {
		return ErrSameBusiness
	}
	o.id = id
	o.requesterID = requesterID
	o.supplierID = supplierID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	total := kernel.ZeroMoney()
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		total = total.Add(item.Subtotal())
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	o.total = total
	return nil
}
