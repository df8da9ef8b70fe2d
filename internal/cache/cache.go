// Package cache provides the small TTL caches shared between request
// handlers: resolved timezones and filter counts. The engine depends on
// the interface only, so tests and deployments can swap backends.
package cache

import (
	"context"
	"time"
)

// TTL is a key/value cache with per-entry expiry. Entries are immutable
// once written; a Set for an existing key replaces the entry wholesale.
// Implementations must be safe for concurrent use, and Set/Delete are
// best-effort: a failed write only costs a later cache miss.
type TTL[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V, ttl time.Duration)
	Delete(ctx context.Context, key string)
}
