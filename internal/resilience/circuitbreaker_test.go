package resilience

import (
	"context"
	"testing"
	"time"
)

func newTestBreaker(threshold int, cooldown time.Duration) (*CircuitBreaker, *time.Time) {
	b := NewCircuitBreaker(NewMemoryBreakerStateStore(), threshold, cooldown)
	now := time.Now()
	b.now = func() time.Time { return now }
	return b, &now
}

func TestCircuitBreaker(t *testing.T) {
	ctx := context.Background()
	const key = "ltl-quotes"

	t.Run("opens at threshold", func(t *testing.T) {
		b, _ := newTestBreaker(5, 5*time.Minute)

		for i := 0; i < 4; i++ {
			if err := b.RecordFailure(ctx, key); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if open, _ := b.IsOpen(ctx, key); open {
				t.Fatalf("breaker open after only %d failures", i+1)
			}
		}

		if err := b.RecordFailure(ctx, key); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if open, _ := b.IsOpen(ctx, key); !open {
			t.Fatalf("breaker should open at 5 failures")
		}
	})

	t.Run("success resets count and closes", func(t *testing.T) {
		b, _ := newTestBreaker(5, 5*time.Minute)

		for i := 0; i < 5; i++ {
			b.RecordFailure(ctx, key)
		}
		if err := b.RecordSuccess(ctx, key); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if open, _ := b.IsOpen(ctx, key); open {
			t.Fatalf("breaker should close after a success")
		}

		state, _ := b.store.Get(ctx, key)
		if state.FailureCount != 0 {
			t.Fatalf("expected failure count reset, got %d", state.FailureCount)
		}
	})

	t.Run("cooldown elapsing closes without a success", func(t *testing.T) {
		b, now := newTestBreaker(5, 5*time.Minute)

		for i := 0; i < 5; i++ {
			b.RecordFailure(ctx, key)
		}
		if open, _ := b.IsOpen(ctx, key); !open {
			t.Fatalf("breaker should be open")
		}

		*now = now.Add(5*time.Minute + time.Second)
		if open, _ := b.IsOpen(ctx, key); open {
			t.Fatalf("breaker should close once cooldown elapses")
		}
	})

	t.Run("failure during cooldown re-stamps the clock", func(t *testing.T) {
		b, now := newTestBreaker(2, 5*time.Minute)

		b.RecordFailure(ctx, key)
		b.RecordFailure(ctx, key)

		*now = now.Add(4 * time.Minute)
		b.RecordFailure(ctx, key)

		*now = now.Add(2 * time.Minute)
		if open, _ := b.IsOpen(ctx, key); !open {
			t.Fatalf("cooldown should restart from the latest failure")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		b, _ := newTestBreaker(1, 5*time.Minute)

		b.RecordFailure(ctx, "svc-a")
		if open, _ := b.IsOpen(ctx, "svc-a"); !open {
			t.Fatalf("svc-a should be open")
		}
		if open, _ := b.IsOpen(ctx, "svc-b"); open {
			t.Fatalf("svc-b should be unaffected")
		}
	})
}
