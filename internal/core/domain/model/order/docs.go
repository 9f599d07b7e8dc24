// Package order provides the Order aggregate of the fulfillment engine: one
// purchase of line items from a single supplying business by a single
// requesting business, together with its two state machines.
//
// Status (business side):
//
//	Requested ──> Confirmed ──> Completed
//	    │  │          │
//	    │  └──────────┴──> Cancelled
//	    └──> Rejected
//
// DeliveryStatus (courier side):
//
//	Pending ──> Assigned ──> PickedUp ──> InTransit ──> Delivered
//	   └───────────┴────────────┴────────────┴──> Failed
//
// Key business rules:
//   - An order has at least one line item and its total is the sum of the line subtotals
//   - The requesting and the supplying business are different businesses
//   - A courier is set exactly when the delivery status is Assigned, PickedUp, InTransit or Delivered
//   - Assigned is entered only through AssignCourier, never through a status update
//   - Cancelling or rejecting an order fails a delivery that is still in progress
package order
