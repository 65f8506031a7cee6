package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (network timeouts, 5xx and 429 responses) with this
// type so that [RetryPolicy.Do] knows to attempt the operation again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// RetryPolicy controls how often and how patiently a failed call is retried.
type RetryPolicy struct {
	// Attempts is the total number of calls, including the first. Values
	// below 1 are treated as 1.
	Attempts int

	// Delay is the wait before the second attempt. It doubles after each
	// further failure.
	Delay time.Duration
}

// DefaultRetryPolicy makes 3 attempts with a 1 second initial delay.
var DefaultRetryPolicy = RetryPolicy{Attempts: 3, Delay: time.Second}

// NoRetry makes exactly one attempt.
var NoRetry = RetryPolicy{Attempts: 1}

// Do executes fn until it succeeds, returns a non-retryable error, or the
// attempts are exhausted. Only errors wrapped with [RetryableError] are
// retried. Returns the last error. If ctx ends after a retryable failure or
// while waiting, the result wraps ctx.Err() joined with the last failure.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := max(p.Attempts, 1)
	delay := p.Delay
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}
		if ctx.Err() != nil {
			return errors.Join(ctx.Err(), lastErr)
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return errors.Join(ctx.Err(), lastErr)
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

// IsRetryable reports whether err is, or wraps, a [RetryableError].
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}
