package httputil

import (
	"context"
	"errors"
	"time"
)

// transientError marks a failure worth retrying: the request was sound,
// the far side just did not answer properly this time.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// IsTransient reports whether err came from a transient fetch failure
// (network error, 429, or a 5xx response).
func IsTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

// RetryPolicy controls how transient fetch failures are retried.
type RetryPolicy struct {
	// Attempts is the total number of tries, including the first.
	Attempts int
	// Delay is the wait before the second try. It doubles per retry.
	Delay time.Duration
}

// DefaultRetry suits small asset fetches: three tries within roughly a
// second, so one flaky response does not strip icons from a scene.
var DefaultRetry = RetryPolicy{Attempts: 3, Delay: 250 * time.Millisecond}

// Do runs fn until it succeeds, fails permanently, or the attempts are
// exhausted. Only errors satisfying [IsTransient] are retried, and
// context cancellation wins over any remaining attempts.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := max(p.Attempts, 1)
	delay := p.Delay

	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
		if err = fn(); err == nil || !IsTransient(err) {
			return err
		}
	}
	return err
}
