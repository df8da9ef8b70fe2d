package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis backs the TTL cache with a shared Redis instance so badge counts
// and resolved timezones survive process restarts and stay consistent
// across replicas. Values are JSON-encoded; any encode, decode, or
// network error is treated as a cache miss.
type Redis[V any] struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps an existing client. All keys are namespaced with the
// given prefix.
func NewRedis[V any](client *redis.Client, prefix string) *Redis[V] {
	return &Redis[V]{
		client: client,
		prefix: prefix,
	}
}

func (r *Redis[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V

	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		return zero, false
	}

	var value V
	if err := json.Unmarshal(raw, &value); err != nil {
		return zero, false
	}
	return value, true
}

func (r *Redis[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	// Best-effort: Redis handles expiry itself, so there is no sweep here.
	r.client.Set(ctx, r.prefix+key, raw, ttl)
}

func (r *Redis[V]) Delete(ctx context.Context, key string) {
	r.client.Del(ctx, r.prefix+key)
}
