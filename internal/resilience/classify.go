package resilience

import (
	"context"
	"errors"
)

// Failure classification for retry and breaker decisions. Gateways mark
// rate-limited, timeout, connection-reset and 5xx failures transient; anything
// unmarked (validation, auth, not-found) fails fast with zero retries.

type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// MarkTransient wraps err so IsTransient recognizes it. Marking nil returns nil.
func MarkTransient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// IsTransient reports whether err is worth retrying. Context deadline
// expiration and network timeouts count as transient even when the caller
// never marked them.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var te *transientError
	if errors.As(err, &te) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return true
	}
	return false
}
