// Package pgerrs turns PostgreSQL driver errors into the error types the core understands.
package pgerrs

import (
	"errors"

	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
	CodeLockNotAvailable     = "55P03"
	CodeUniqueViolation      = "23505"
	CodeCheckViolation       = "23514"
	CodeNumericOutOfRange    = "22003"
)

// MaxStoredAmount is the largest value a numeric(14,2) money column holds.
const MaxStoredAmount = "999999999999.99"

// Translate wraps transaction aborts into errs.TransactionAbortedError and a
// numeric overflow into errs.ValueIsOutOfRangeError. Every other error is
// returned unchanged. A nil error stays nil.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if Code(err) == CodeNumericOutOfRange {
		return errs.NewValueIsOutOfRangeErrorWithCause("amount", "overflow", "0", MaxStoredAmount, err)
	}
	if IsAborted(err) {
		var aborted *errs.TransactionAbortedError
		if errors.As(err, &aborted) {
			return err
		}
		return errs.NewTransactionAbortedError(err)
	}
	return err
}

// IsAborted reports whether the store gave up on the transaction: a
// serialization failure, a deadlock or a lock wait timeout.
func IsAborted(err error) bool {
	if errors.Is(err, errs.ErrTransactionAborted) {
		return true
	}
	switch Code(err) {
	case CodeSerializationFailure, CodeDeadlockDetected, CodeLockNotAvailable:
		return true
	default:
		return false
	}
}

// Code returns the SQLSTATE of the first PostgreSQL error in the chain, or "".
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
