// Package kernel holds the value objects shared by every aggregate of the
// fulfillment engine: UUID identifiers, City (coarse courier eligibility) and
// Money (price snapshots and order totals). All of them are immutable and
// must be built through their constructors; the zero value fails Validate.
package kernel
