// Package errs provides the typed errors shared by the fulfillment engine.
//
// Every error type follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ErrValueIsOutOfRange,
//     ErrValueIsRequired, ErrTransactionAborted)
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error / New...ErrorWithCause constructors
//   - Unwrap returning the sentinel, so errors.Is classifies without string matching
//
// TransactionAbortedError is produced by the storage adapter when the database
// gives up on a transaction. It is the only retryable error in the system.
package errs
