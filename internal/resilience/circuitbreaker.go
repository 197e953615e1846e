package resilience

import (
	"context"
	"errors"
	"sync"
	"time"

	"coldchain_pricing/internal/domain/entities"
)

var ErrCircuitOpen = errors.New("circuit breaker open")

// BreakerStateStore persists breaker state per service key so a tripped
// breaker survives process restarts. Production backs this with DynamoDB;
// MemoryBreakerStateStore covers tests and single-process tools.
type BreakerStateStore interface {
	Get(ctx context.Context, serviceKey string) (entities.BreakerState, error)
	Save(ctx context.Context, state entities.BreakerState) error
}

// CircuitBreaker tracks consecutive failures per service key. It opens once
// the failure count reaches the threshold and stays open until the cooldown
// since the last failure elapses; the elapse alone closes it again, no
// successful probe required.
type CircuitBreaker struct {
	store     BreakerStateStore
	threshold int
	cooldown  time.Duration
	now       func() time.Time
}

func NewCircuitBreaker(store BreakerStateStore, threshold int, cooldown time.Duration) *CircuitBreaker {
	return &CircuitBreaker{store: store, threshold: threshold, cooldown: cooldown, now: time.Now}
}

func (b *CircuitBreaker) IsOpen(ctx context.Context, serviceKey string) (bool, error) {
	state, err := b.store.Get(ctx, serviceKey)
	if err != nil {
		return false, err
	}
	return state.OpenAt(b.now(), b.threshold, b.cooldown), nil
}

// RecordFailure increments the consecutive-failure count and stamps the
// failure time.
func (b *CircuitBreaker) RecordFailure(ctx context.Context, serviceKey string) error {
	state, err := b.store.Get(ctx, serviceKey)
	if err != nil {
		return err
	}
	now := b.now()
	state.ServiceKey = serviceKey
	state.FailureCount++
	state.LastFailure = now
	state.UpdatedAt = now
	return b.store.Save(ctx, state)
}

// RecordSuccess resets the failure count to zero.
func (b *CircuitBreaker) RecordSuccess(ctx context.Context, serviceKey string) error {
	state, err := b.store.Get(ctx, serviceKey)
	if err != nil {
		return err
	}
	if state.FailureCount == 0 && state.ServiceKey != "" {
		return nil
	}
	state.ServiceKey = serviceKey
	state.FailureCount = 0
	state.UpdatedAt = b.now()
	return b.store.Save(ctx, state)
}

// MemoryBreakerStateStore is a mutex-guarded in-process BreakerStateStore.
type MemoryBreakerStateStore struct {
	mu     sync.Mutex
	states map[string]entities.BreakerState
}

func NewMemoryBreakerStateStore() *MemoryBreakerStateStore {
	return &MemoryBreakerStateStore{states: make(map[string]entities.BreakerState)}
}

func (s *MemoryBreakerStateStore) Get(_ context.Context, serviceKey string) (entities.BreakerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[serviceKey], nil
}

func (s *MemoryBreakerStateStore) Save(_ context.Context, state entities.BreakerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.ServiceKey] = state
	return nil
}
