// Package courier provides the Courier aggregate of the fulfillment engine:
// an independent courier who receives delivery notifications and competes to
// accept them.
//
// Key business rules:
//   - Couriers must have a valid unique identifier, a non-empty name and a city
//   - Only available couriers in the requesting or supplying business's city are notified
//   - Winning an order makes the courier unavailable until that delivery ends
//
// The package follows Domain-Driven Design principles, providing encapsulation
// and validation so a Courier can only exist in a consistent state.
package courier
