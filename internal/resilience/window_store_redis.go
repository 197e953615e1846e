package resilience

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisWindowStore is the multi-instance WindowStore: a fixed window is a
// Redis counter with the window length as its TTL. INCR plus EXPIRE NX keeps
// the increment-and-stamp race-free enough for admission control, and Redis
// evicts expired windows on its own, so no janitor is needed.
type RedisWindowStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisWindowStore(rdb *redis.Client, prefix string) *RedisWindowStore {
	if prefix == "" {
		prefix = "ratelimit:"
	}
	return &RedisWindowStore{rdb: rdb, prefix: prefix}
}

func (s *RedisWindowStore) Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	k := s.prefix + key

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, window)
	ttl := pipe.PTTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	return int(incr.Val()), resetFromTTL(ttl.Val(), window), nil
}

func (s *RedisWindowStore) Peek(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	k := s.prefix + key

	pipe := s.rdb.Pipeline()
	get := pipe.Get(ctx, k)
	ttl := pipe.PTTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return 0, time.Time{}, err
	}

	count, _ := get.Int()
	return count, resetFromTTL(ttl.Val(), window), nil
}

func resetFromTTL(ttl, window time.Duration) time.Time {
	if ttl <= 0 {
		ttl = window
	}
	return time.Now().Add(ttl)
}
