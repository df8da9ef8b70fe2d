package filter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daybook-app/daybook/internal/cache"
	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/schedule"
	"github.com/daybook-app/daybook/internal/timezone"
)

// DefaultCountCacheTTL absorbs badge polling without letting counts go
// visibly stale.
const DefaultCountCacheTTL = 5 * time.Second

// CountAggregator computes every bucket total for a user from one
// boundary resolution and a single store round trip, instead of one
// filtered query per bucket. Results feed a UI badge, so on any store
// failure it degrades to all zeros rather than erroring.
type CountAggregator struct {
	store            Store
	resolver         *timezone.Resolver
	prefs            timezone.PreferenceSource
	cache            cache.TTL[models.Counts]
	ttl              time.Duration
	defaultRetention int
	clock            func() time.Time
	logger           *zap.Logger
}

// NewCountAggregator wires the aggregator. A non-positive ttl falls back
// to DefaultCountCacheTTL, a non-positive defaultRetention to
// DefaultRetentionDays; a nil clock means the wall clock.
func NewCountAggregator(store Store, resolver *timezone.Resolver, prefs timezone.PreferenceSource, c cache.TTL[models.Counts], ttl time.Duration, defaultRetention int, clock func() time.Time, logger *zap.Logger) *CountAggregator {
	if ttl <= 0 {
		ttl = DefaultCountCacheTTL
	}
	if defaultRetention <= 0 {
		defaultRetention = DefaultRetentionDays
	}
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CountAggregator{
		store:            store,
		resolver:         resolver,
		prefs:            prefs,
		cache:            c,
		ttl:              ttl,
		defaultRetention: defaultRetention,
		clock:            clock,
		logger:           logger,
	}
}

// GetFilterCounts returns the per-bucket totals for one user. Counts
// agree with what GetFilteredTasks would report per bucket: date buckets
// and no-due-date count active tasks only, all counts active tasks plus
// completed ones inside the retention cutoff.
func (a *CountAggregator) GetFilterCounts(ctx context.Context, tenantID string, userID uuid.UUID) models.Counts {
	key := countsKey(tenantID, userID)
	if counts, ok := a.cache.Get(ctx, key); ok {
		return counts
	}

	zone := a.resolver.Resolve(ctx, userID.String())
	retention := a.retentionDays(ctx, userID)
	b, err := schedule.Compute(zone, retention, a.clock().UTC())
	if err != nil {
		b, _ = schedule.Compute(timezone.DefaultZone, retention, a.clock().UTC())
	}

	counts, err := a.count(ctx, tenantID, userID, b)
	if err != nil {
		a.logger.Warn("filter counts unavailable, serving zeros",
			zap.String("tenant_id", tenantID),
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return models.Counts{}
	}
	counts.Focus = counts.Overdue + counts.Today

	a.cache.Set(ctx, key, counts, a.ttl)
	return counts
}

// Invalidate drops the cached counts for a user, used after writes that
// must reflect immediately.
func (a *CountAggregator) Invalidate(ctx context.Context, tenantID string, userID uuid.UUID) {
	a.cache.Delete(ctx, countsKey(tenantID, userID))
}

func (a *CountAggregator) count(ctx context.Context, tenantID string, userID uuid.UUID, b schedule.Boundaries) (models.Counts, error) {
	if counter, ok := a.store.(BucketCounter); ok {
		return counter.BucketCounts(ctx, tenantID, userID, b)
	}
	return a.scan(ctx, tenantID, userID, b)
}

// scan is the portable path: fetch the visible task set once and
// classify in memory.
func (a *CountAggregator) scan(ctx context.Context, tenantID string, userID uuid.UUID, b schedule.Boundaries) (models.Counts, error) {
	pred := Predicate{
		Statuses:       []models.Status{models.StatusActive},
		CompletedSince: &b.CompletedCutoff,
	}

	tasks, err := a.store.FindTasks(ctx, tenantID, userID, pred)
	if err != nil {
		return models.Counts{}, err
	}

	var counts models.Counts
	for _, t := range tasks {
		counts.All++
		if t.Status != models.StatusActive {
			continue
		}
		m := Classify(t, b)
		if m.Overdue {
			counts.Overdue++
		}
		if m.Today {
			counts.Today++
		}
		if m.Upcoming {
			counts.Upcoming++
		}
		if m.NoDueDate {
			counts.NoDueDate++
		}
	}
	return counts, nil
}

func (a *CountAggregator) retentionDays(ctx context.Context, userID uuid.UUID) int {
	days, err := a.prefs.GetCompletedRetentionDays(ctx, userID.String())
	if err != nil || days <= 0 {
		return a.defaultRetention
	}
	return days
}

func countsKey(tenantID string, userID uuid.UUID) string {
	return "counts:" + tenantID + ":" + userID.String()
}
