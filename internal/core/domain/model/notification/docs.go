// Package notification provides the DeliveryNotification entity: a per-courier
// invitation to take one order.
//
// A notification starts Pending and is resolved exactly once, to Accepted,
// Rejected or Expired. Expired means the courier was too late or never answered,
// Rejected means the courier declined. Notifications reference their order by id
// and are never deleted.
package notification
