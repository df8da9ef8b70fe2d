package filter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/daybook-app/daybook/internal/cache"
	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/schedule"
	"github.com/daybook-app/daybook/internal/timezone"
)

// counterStore layers the single-query fast path over fakeStore using
// the same reference semantics, so both aggregator paths can be checked
// against the engine oracle.
type counterStore struct {
	fakeStore
	bucketCalls int
}

func (c *counterStore) BucketCounts(ctx context.Context, tenantID string, userID uuid.UUID, b schedule.Boundaries) (models.Counts, error) {
	c.bucketCalls++
	if c.err != nil {
		return models.Counts{}, c.err
	}

	var counts models.Counts
	for _, t := range c.matching(tenantID, userID, Predicate{
		Statuses:       []models.Status{models.StatusActive},
		CompletedSince: &b.CompletedCutoff,
	}) {
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

func newTestAggregator(store Store, prefs timezone.PreferenceSource, now time.Time, ttl time.Duration) *CountAggregator {
	resolver := timezone.NewResolver(prefs, cache.NewMemory[string](), time.Minute, zap.NewNop())
	clock := func() time.Time { return now }
	return NewCountAggregator(store, resolver, prefs, cache.NewMemory[models.Counts](), ttl, 0, clock, zap.NewNop())
}

// oracle computes counts the slow way: one engine call per bucket, the
// design the aggregator replaces and must agree with.
func oracle(t *testing.T, engine *Engine, userID uuid.UUID, retention int) models.Counts {
	t.Helper()
	ctx := context.Background()

	run := func(q models.FilterQuery) int {
		result, err := engine.GetFilteredTasks(ctx, testTenant, userID, q)
		require.NoError(t, err)
		return result.Count
	}

	return models.Counts{
		All:       run(models.FilterQuery{Bucket: models.BucketAll, IncludeCompletedDays: retention}),
		Today:     run(models.FilterQuery{Bucket: models.BucketToday}),
		Overdue:   run(models.FilterQuery{Bucket: models.BucketOverdue}),
		Upcoming:  run(models.FilterQuery{Bucket: models.BucketUpcoming}),
		NoDueDate: run(models.FilterQuery{Bucket: models.BucketNoDueDate}),
		Focus:     run(models.FilterQuery{Bucket: models.BucketFocus}),
	}
}

func TestAggregator_MatchesPerBucketOracle(t *testing.T) {
	userID := uuid.New()
	tasks, now := engineFixture(userID)
	prefs := &stubPrefs{zone: "UTC", retention: 7}

	t.Run("bulk scan path", func(t *testing.T) {
		store := &fakeStore{tasks: tasks}
		agg := newTestAggregator(store, prefs, now, time.Second)
		engine := newTestEngine(store, prefs, now)

		got := agg.GetFilterCounts(context.Background(), testTenant, userID)
		assert.Equal(t, oracle(t, engine, userID, 7), got)
		assert.Equal(t, got.Focus, got.Overdue+got.Today)
	})

	t.Run("aggregate query path", func(t *testing.T) {
		store := &counterStore{fakeStore: fakeStore{tasks: tasks}}
		agg := newTestAggregator(store, prefs, now, time.Second)
		engine := newTestEngine(&store.fakeStore, prefs, now)

		got := agg.GetFilterCounts(context.Background(), testTenant, userID)
		assert.Equal(t, oracle(t, engine, userID, 7), got)
		assert.Equal(t, 1, store.bucketCalls, "fast path should be used")
		assert.Zero(t, store.findCalls, "no bulk scan when the store aggregates")
	})
}

func TestAggregator_SingleRoundTripAndCache(t *testing.T) {
	userID := uuid.New()
	tasks, now := engineFixture(userID)
	store := &fakeStore{tasks: tasks}
	agg := newTestAggregator(store, &stubPrefs{zone: "UTC", retention: 7}, now, time.Minute)

	first := agg.GetFilterCounts(context.Background(), testTenant, userID)
	assert.Equal(t, 1, store.findCalls, "all buckets from one scan")

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, agg.GetFilterCounts(context.Background(), testTenant, userID))
	}
	assert.Equal(t, 1, store.findCalls, "polling should hit the cache")
}

func TestAggregator_Invalidate(t *testing.T) {
	userID := uuid.New()
	tasks, now := engineFixture(userID)
	store := &fakeStore{tasks: tasks}
	agg := newTestAggregator(store, &stubPrefs{zone: "UTC", retention: 7}, now, time.Minute)

	agg.GetFilterCounts(context.Background(), testTenant, userID)
	agg.Invalidate(context.Background(), testTenant, userID)
	agg.GetFilterCounts(context.Background(), testTenant, userID)

	assert.Equal(t, 2, store.findCalls)
}

func TestAggregator_StoreFailureServesZeros(t *testing.T) {
	userID := uuid.New()
	store := &fakeStore{err: errors.New("store down")}
	agg := newTestAggregator(store, &stubPrefs{zone: "UTC", retention: 7}, time.Now(), time.Minute)

	got := agg.GetFilterCounts(context.Background(), testTenant, userID)
	assert.Equal(t, models.Counts{}, got, "badge path degrades, never errors")

	// failures are not cached; the next call tries the store again
	agg.GetFilterCounts(context.Background(), testTenant, userID)
	assert.Equal(t, 2, store.findCalls)
}

func TestAggregator_CountsAreTenantScoped(t *testing.T) {
	userID := uuid.New()
	tasks, now := engineFixture(userID)
	store := &fakeStore{tasks: tasks}
	agg := newTestAggregator(store, &stubPrefs{zone: "UTC", retention: 7}, now, time.Minute)

	home := agg.GetFilterCounts(context.Background(), testTenant, userID)
	other := agg.GetFilterCounts(context.Background(), "other-tenant", userID)

	assert.NotZero(t, home.All)
	assert.Equal(t, models.Counts{}, other)
}
