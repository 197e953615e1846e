package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry(maxRetries int) RetryConfig {
	return RetryConfig{MaxRetries: maxRetries, BaseDelay: time.Millisecond}
}

func TestRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("two transient failures then success", func(t *testing.T) {
		calls := 0
		v, err := Retry(ctx, fastRetry(3), func(context.Context) (string, error) {
			calls++
			if calls <= 2 {
				return "", MarkTransient(errors.New("connection reset"))
			}
			return "quote-123", nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != "quote-123" {
			t.Fatalf("unexpected value: %q", v)
		}
		if calls != 3 {
			t.Fatalf("expected exactly 2 retries (3 calls), got %d calls", calls)
		}
	})

	t.Run("non-transient fails immediately", func(t *testing.T) {
		sentinel := errors.New("validation failed")
		calls := 0
		_, err := Retry(ctx, fastRetry(3), func(context.Context) (int, error) {
			calls++
			return 0, sentinel
		})
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected sentinel, got %v", err)
		}
		if calls != 1 {
			t.Fatalf("expected 0 retries (1 call), got %d calls", calls)
		}
	})

	t.Run("exhaustion returns last transient error", func(t *testing.T) {
		last := MarkTransient(errors.New("upstream 503"))
		calls := 0
		_, err := Retry(ctx, fastRetry(2), func(context.Context) (int, error) {
			calls++
			return 0, last
		})
		if !errors.Is(err, last) {
			t.Fatalf("expected last error, got %v", err)
		}
		if calls != 3 {
			t.Fatalf("expected 3 calls, got %d", calls)
		}
	})

	t.Run("context cancellation stops backoff", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		calls := 0
		_, err := Retry(cctx, RetryConfig{MaxRetries: 5, BaseDelay: time.Hour}, func(context.Context) (int, error) {
			calls++
			cancel()
			return 0, MarkTransient(errors.New("timeout"))
		})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})

	t.Run("deadline exceeded counts as transient", func(t *testing.T) {
		if !IsTransient(context.DeadlineExceeded) {
			t.Fatalf("deadline exceeded should be transient")
		}
	})

	t.Run("wrapped marks stay transient", func(t *testing.T) {
		err := MarkTransient(errors.New("429"))
		if !IsTransient(errors.Join(errors.New("calling upstream"), err)) {
			t.Fatalf("wrapping should preserve transience")
		}
	})
}

func TestGuardComposition(t *testing.T) {
	ctx := context.Background()

	t.Run("open breaker blocks before the call", func(t *testing.T) {
		breaker := NewCircuitBreaker(NewMemoryBreakerStateStore(), 1, 5*time.Minute)
		breaker.RecordFailure(ctx, "svc")

		calls := 0
		_, err := Call(ctx, Guard{Breaker: breaker, ServiceKey: "svc", Retry: fastRetry(1)}, "p", func(context.Context) (int, error) {
			calls++
			return 0, nil
		})
		if !errors.Is(err, ErrCircuitOpen) {
			t.Fatalf("expected ErrCircuitOpen, got %v", err)
		}
		if calls != 0 {
			t.Fatalf("op should not run behind an open breaker")
		}
	})

	t.Run("limiter rejection blocks before the call", func(t *testing.T) {
		limiter := NewRateLimiter(NewMemoryWindowStore(), 1, time.Minute)
		limiter.Allow(ctx, "svc-principal")

		calls := 0
		_, err := Call(ctx, Guard{Limiter: limiter, Retry: fastRetry(1)}, "svc-principal", func(context.Context) (int, error) {
			calls++
			return 0, nil
		})
		if !errors.Is(err, ErrRateLimited) {
			t.Fatalf("expected ErrRateLimited, got %v", err)
		}
		if calls != 0 {
			t.Fatalf("op should not run past a rejected admission")
		}
	})

	t.Run("terminal outcomes reach the breaker", func(t *testing.T) {
		breaker := NewCircuitBreaker(NewMemoryBreakerStateStore(), 5, 5*time.Minute)
		g := Guard{Breaker: breaker, ServiceKey: "svc", Retry: fastRetry(0)}

		_, err := Call(ctx, g, "p", func(context.Context) (int, error) {
			return 0, MarkTransient(errors.New("503"))
		})
		if err == nil {
			t.Fatalf("expected failure")
		}
		state, _ := breaker.store.Get(ctx, "svc")
		if state.FailureCount != 1 {
			t.Fatalf("expected 1 recorded failure, got %d", state.FailureCount)
		}

		if _, err := Call(ctx, g, "p", func(context.Context) (int, error) { return 42, nil }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		state, _ = breaker.store.Get(ctx, "svc")
		if state.FailureCount != 0 {
			t.Fatalf("success should reset the count, got %d", state.FailureCount)
		}
	})
}
