package resilience

import (
	"context"
	"time"
)

// RetryConfig bounds a retried operation: up to MaxRetries additional
// attempts after the first, sleeping BaseDelay * 2^attempt between them.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{MaxRetries: 3, BaseDelay: 500 * time.Millisecond}
}

// Retry runs op, retrying transient failures with exponential backoff.
// Non-transient failures return immediately without consuming a retry, as
// does context cancellation during backoff.
func Retry[T any](ctx context.Context, cfg RetryConfig, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := cfg.BaseDelay * (1 << (attempt - 1))
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}

		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		if !IsTransient(err) {
			return zero, err
		}
		lastErr = err
	}
	return zero, lastErr
}
