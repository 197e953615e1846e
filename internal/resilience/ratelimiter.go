package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrRateLimited = errors.New("rate limit exceeded")

// Fixed-window rate limiter keyed by principal (user id or a well-known
// service key). The counting itself lives behind WindowStore so a
// multi-instance deployment can swap the in-process map for Redis without
// touching callers.

// WindowStore counts hits per key within the current fixed window.
type WindowStore interface {
	// Incr bumps the counter for key, starting a new window of the given
	// length when none is active, and returns the post-increment count and
	// the window's reset time.
	Incr(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)
	// Peek returns the current count and reset time without counting a hit.
	// An idle key reports zero and a reset one window from now.
	Peek(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)
}

// Decision is the admission outcome plus the back-pressure metadata callers
// surface on 429 responses.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

type RateLimiter struct {
	store  WindowStore
	max    int
	window time.Duration
}

func NewRateLimiter(store WindowStore, maxPerWindow int, window time.Duration) *RateLimiter {
	return &RateLimiter{store: store, max: maxPerWindow, window: window}
}

// Allow counts a hit for key and admits it while the window's count stays at
// or under the configured max.
func (l *RateLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	count, resetAt, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		return Decision{}, err
	}
	return Decision{
		Allowed:   count <= l.max,
		Remaining: remaining(l.max, count),
		ResetAt:   resetAt,
	}, nil
}

// Remaining reports how many admissions key has left in the current window.
func (l *RateLimiter) Remaining(ctx context.Context, key string) (int, error) {
	count, _, err := l.store.Peek(ctx, key, l.window)
	if err != nil {
		return 0, err
	}
	return remaining(l.max, count), nil
}

// ResetTime reports when key's current window expires.
func (l *RateLimiter) ResetTime(ctx context.Context, key string) (time.Time, error) {
	_, resetAt, err := l.store.Peek(ctx, key, l.window)
	return resetAt, err
}

func remaining(max, count int) int {
	if count >= max {
		return 0
	}
	return max - count
}

// MemoryWindowStore is the single-instance WindowStore: a mutex-guarded map
// with a janitor sweeping expired windows. Correct only within one process;
// deployments running replicas configure the Redis store instead.
type MemoryWindowStore struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
	now     func() time.Time
}

type memoryWindow struct {
	count   int
	resetAt time.Time
}

func NewMemoryWindowStore() *MemoryWindowStore {
	return &MemoryWindowStore{
		windows: make(map[string]*memoryWindow),
		now:     time.Now,
	}
}

func (s *MemoryWindowStore) Incr(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &memoryWindow{resetAt: now.Add(window)}
		s.windows[key] = w
	}
	w.count++
	return w.count, w.resetAt, nil
}

func (s *MemoryWindowStore) Peek(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		return 0, now.Add(window), nil
	}
	return w.count, w.resetAt, nil
}

// Sweep drops expired windows.
func (s *MemoryWindowStore) Sweep() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, w := range s.windows {
		if !now.Before(w.resetAt) {
			delete(s.windows, k)
		}
	}
}

// StartJanitor sweeps expired windows every interval until ctx is done.
func (s *MemoryWindowStore) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	t := time.NewTicker(interval)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Sweep()
			}
		}
	}()
}
