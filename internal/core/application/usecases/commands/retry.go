package commands

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultRetryAttempts        = 3
	DefaultRetryInitialInterval = 50 * time.Millisecond
)

// RetryPolicy re-runs a whole unit of work with exponential backoff.
// Only errors accepted by Retryable are retried; by default that is TransactionAborted.
type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	Retryable       func(error) bool
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     DefaultRetryAttempts,
		InitialInterval: DefaultRetryInitialInterval,
	}
}

// NoRetry runs fn exactly once.
func NoRetry() RetryPolicy {
	return RetryPolicy{MaxAttempts: 1}
}

// Do calls fn until it succeeds, returns a non-retryable error, the attempts
// are exhausted or ctx is done. The last error is returned unwrapped.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	retryable := p.Retryable
	if retryable == nil {
		retryable = func(err error) bool { return KindOf(err).Retryable() }
	}

	attempts := max(p.MaxAttempts, 1)

	exp := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		exp.InitialInterval = p.InitialInterval
	}
	exp.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(attempts-1)), ctx)

	return backoff.Retry(func() error {
		err := fn()
		if err != nil && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
}

// BestEffort returns a copy of p that also retries infrastructure failures
// (KindInternal), used where giving up is cheap but a transient outage is likely.
func (p RetryPolicy) BestEffort() RetryPolicy {
	p.Retryable = func(err error) bool {
		kind := KindOf(err)
		return kind.Retryable() || kind == KindInternal
	}
	return p
}
