package commands

import (
	"context"
	"errors"
)

// committedError carries a business failure whose writes must still be committed,
// such as the Expired mark left by a courier who lost an acceptance race.
type committedError struct {
	err error
}

func (e committedError) Error() string { return e.err.Error() }
func (e committedError) Unwrap() error { return e.err }

// commitAnyway makes inTransaction commit before returning err to the caller.
func commitAnyway(err error) error {
	return committedError{err: err}
}

// inTransaction runs fn inside one transaction of tx. It commits when fn returns
// nil or a commitAnyway error and rolls back on every other exit path, panics included.
func inTransaction(ctx context.Context, tx TxManager, fn func() error) error {
	if err := tx.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback(ctx)
	}()

	err := fn()

	var kept committedError
	if err != nil && !errors.As(err, &kept) {
		return err
	}

	if cerr := tx.Commit(ctx); cerr != nil {
		return cerr
	}

	if err != nil {
		return kept.err
	}
	return nil
}
