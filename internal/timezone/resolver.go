// Package timezone resolves a user's IANA timezone for classification.
// Resolution never fails: anything missing, invalid, or erroring
// degrades to UTC, because a filter request must not hard-fail over a
// preference lookup.
package timezone

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/daybook-app/daybook/internal/cache"
)

// DefaultZone is the fallback when a user has no usable preference.
const DefaultZone = "UTC"

// DefaultCacheTTL bounds how long a resolved zone is reused before the
// preference store is consulted again.
const DefaultCacheTTL = 30 * time.Second

// PreferenceSource is the user-preferences collaborator.
// GetUserTimezone returns "" when the user never picked a zone.
type PreferenceSource interface {
	GetUserTimezone(ctx context.Context, userID string) (string, error)
	GetCompletedRetentionDays(ctx context.Context, userID string) (int, error)
}

// Resolver caches per-user timezone lookups for a short window to absorb
// bursty request patterns. Entries expire naturally or are invalidated
// when a preference update goes through.
type Resolver struct {
	prefs  PreferenceSource
	cache  cache.TTL[string]
	ttl    time.Duration
	logger *zap.Logger
}

// NewResolver builds a resolver over the given preference source and
// cache. A non-positive ttl falls back to DefaultCacheTTL.
func NewResolver(prefs PreferenceSource, c cache.TTL[string], ttl time.Duration, logger *zap.Logger) *Resolver {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		prefs:  prefs,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// Resolve returns the user's IANA timezone identifier, always a value
// that time.LoadLocation accepts.
func (r *Resolver) Resolve(ctx context.Context, userID string) string {
	if zone, ok := r.cache.Get(ctx, cacheKey(userID)); ok {
		return zone
	}

	zone := r.lookup(ctx, userID)
	r.cache.Set(ctx, cacheKey(userID), zone, r.ttl)
	return zone
}

// Invalidate drops the cached zone for a user. Called by the preference
// update path so the next request sees the new setting immediately.
func (r *Resolver) Invalidate(ctx context.Context, userID string) {
	r.cache.Delete(ctx, cacheKey(userID))
}

func (r *Resolver) lookup(ctx context.Context, userID string) string {
	zone, err := r.prefs.GetUserTimezone(ctx, userID)
	if err != nil {
		r.logger.Warn("timezone lookup failed, using UTC",
			zap.String("user_id", userID),
			zap.Error(err))
		return DefaultZone
	}
	if zone == "" {
		return DefaultZone
	}
	if _, err := time.LoadLocation(zone); err != nil {
		r.logger.Warn("stored timezone is not a valid IANA zone, using UTC",
			zap.String("user_id", userID),
			zap.String("zone", zone))
		return DefaultZone
	}
	return zone
}

func cacheKey(userID string) string {
	return "tz:" + userID
}
