// Package services provides domain services that work across several aggregates
// of the fulfillment engine and do not belong to any single one of them.
//
// The package includes:
//   - CourierSelector: picks the bounded set of couriers to notify about a confirmed order
//   - CartSplitter: splits a multi-supplier cart into one group per supplying business
//
// Both services are pure: they take loaded aggregates and return decisions,
// leaving persistence to the application layer.
package services
