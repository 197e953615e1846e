package resilience

import (
	"context"
	"fmt"
	"log"
)

// Guard composes the primitives around one external service. Every outbound
// call goes breaker gate -> rate limiter admission -> retried invocation, and
// the terminal outcome is reported back to the breaker.
type Guard struct {
	Breaker    *CircuitBreaker
	ServiceKey string
	Limiter    *RateLimiter
	Retry      RetryConfig
}

// Call runs op under the guard. An open breaker or a rejected admission fails
// before op ever runs; retry exhaustion and success both reach the breaker as
// a single terminal outcome.
func Call[T any](ctx context.Context, g Guard, principal string, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if g.Breaker != nil {
		open, err := g.Breaker.IsOpen(ctx, g.ServiceKey)
		if err != nil {
			return zero, fmt.Errorf("breaker check %s: %w", g.ServiceKey, err)
		}
		if open {
			return zero, fmt.Errorf("%s: %w", g.ServiceKey, ErrCircuitOpen)
		}
	}

	if g.Limiter != nil {
		dec, err := g.Limiter.Allow(ctx, principal)
		if err != nil {
			return zero, fmt.Errorf("limiter %s: %w", principal, err)
		}
		if !dec.Allowed {
			return zero, fmt.Errorf("%s: %w", principal, ErrRateLimited)
		}
	}

	v, err := Retry(ctx, g.Retry, op)

	if g.Breaker != nil {
		if err != nil {
			if rerr := g.Breaker.RecordFailure(ctx, g.ServiceKey); rerr != nil {
				log.Printf("[resilience][guard] record failure failed service=%s err=%v", g.ServiceKey, rerr)
			}
		} else {
			if rerr := g.Breaker.RecordSuccess(ctx, g.ServiceKey); rerr != nil {
				log.Printf("[resilience][guard] record success failed service=%s err=%v", g.ServiceKey, rerr)
			}
		}
	}

	return v, err
}
