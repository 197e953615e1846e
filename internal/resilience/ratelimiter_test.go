package resilience

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiterFixedWindow(t *testing.T) {
	ctx := context.Background()

	t.Run("admits up to max then rejects", func(t *testing.T) {
		store := NewMemoryWindowStore()
		l := NewRateLimiter(store, 10, time.Minute)

		prevRemaining := 10
		for i := 1; i <= 10; i++ {
			dec, err := l.Allow(ctx, "user-1")
			if err != nil {
				t.Fatalf("call %d: unexpected error: %v", i, err)
			}
			if !dec.Allowed {
				t.Fatalf("call %d should be allowed", i)
			}
			if dec.Remaining >= prevRemaining {
				t.Fatalf("call %d: remaining %d did not decrease from %d", i, dec.Remaining, prevRemaining)
			}
			prevRemaining = dec.Remaining
		}

		dec, err := l.Allow(ctx, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dec.Allowed {
			t.Fatalf("call 11 should be rejected")
		}
		if dec.Remaining != 0 {
			t.Fatalf("expected 0 remaining, got %d", dec.Remaining)
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		l := NewRateLimiter(NewMemoryWindowStore(), 1, time.Minute)
		if dec, _ := l.Allow(ctx, "a"); !dec.Allowed {
			t.Fatalf("first call for a should pass")
		}
		if dec, _ := l.Allow(ctx, "b"); !dec.Allowed {
			t.Fatalf("first call for b should pass")
		}
		if dec, _ := l.Allow(ctx, "a"); dec.Allowed {
			t.Fatalf("second call for a should be rejected")
		}
	})

	t.Run("window reset re-admits", func(t *testing.T) {
		store := NewMemoryWindowStore()
		now := time.Now()
		store.now = func() time.Time { return now }
		l := NewRateLimiter(store, 1, time.Minute)

		if dec, _ := l.Allow(ctx, "u"); !dec.Allowed {
			t.Fatalf("first call should pass")
		}
		if dec, _ := l.Allow(ctx, "u"); dec.Allowed {
			t.Fatalf("second call in window should be rejected")
		}

		now = now.Add(61 * time.Second)
		if dec, _ := l.Allow(ctx, "u"); !dec.Allowed {
			t.Fatalf("call after window reset should pass")
		}
	})

	t.Run("reset time matches window end", func(t *testing.T) {
		store := NewMemoryWindowStore()
		now := time.Now()
		store.now = func() time.Time { return now }
		l := NewRateLimiter(store, 5, time.Minute)

		dec, _ := l.Allow(ctx, "u")
		if !dec.ResetAt.Equal(now.Add(time.Minute)) {
			t.Fatalf("unexpected reset: %v", dec.ResetAt)
		}
		resetAt, err := l.ResetTime(ctx, "u")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resetAt.Equal(dec.ResetAt) {
			t.Fatalf("ResetTime %v != decision reset %v", resetAt, dec.ResetAt)
		}
	})

	t.Run("sweep evicts expired windows only", func(t *testing.T) {
		store := NewMemoryWindowStore()
		now := time.Now()
		store.now = func() time.Time { return now }

		store.Incr(ctx, "old", time.Minute)
		now = now.Add(2 * time.Minute)
		store.Incr(ctx, "live", time.Minute)

		store.Sweep()

		if _, ok := store.windows["old"]; ok {
			t.Fatalf("expired window should be swept")
		}
		if _, ok := store.windows["live"]; !ok {
			t.Fatalf("live window should survive the sweep")
		}
	})
}
