package filter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/schedule"
	"github.com/daybook-app/daybook/internal/timezone"
)

var (
	// ErrQueryFailed wraps store errors. The engine never retries and
	// never returns a partial result alongside it.
	ErrQueryFailed = errors.New("task query failed")

	// ErrUnknownBucket reports a filter query naming no known bucket.
	ErrUnknownBucket = errors.New("unknown filter bucket")
)

// DefaultRetentionDays is the completed-task visibility window used when
// the user's preference cannot be read.
const DefaultRetentionDays = 7

// Engine answers bucket-filtered task list requests. It resolves the
// user's timezone, computes the day/week boundaries, queries the store
// with the translated predicate and returns a deterministically ordered
// result whose count always agrees with an unpaginated run of the same
// predicate.
type Engine struct {
	store            Store
	resolver         *timezone.Resolver
	prefs            timezone.PreferenceSource
	defaultRetention int
	clock            func() time.Time
	logger           *zap.Logger
}

// NewEngine wires an engine. defaultRetention is the completed-task
// window used when the user's preference cannot be read; non-positive
// falls back to DefaultRetentionDays. A nil clock means the wall clock;
// tests inject a fixed one.
func NewEngine(store Store, resolver *timezone.Resolver, prefs timezone.PreferenceSource, defaultRetention int, clock func() time.Time, logger *zap.Logger) *Engine {
	if defaultRetention <= 0 {
		defaultRetention = DefaultRetentionDays
	}
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		store:            store,
		resolver:         resolver,
		prefs:            prefs,
		defaultRetention: defaultRetention,
		clock:            clock,
		logger:           logger,
	}
}

// GetFilteredTasks returns the tasks in a bucket for one user, ordered,
// with the total count for the identical predicate.
func (e *Engine) GetFilteredTasks(ctx context.Context, tenantID string, userID uuid.UUID, q models.FilterQuery) (models.FilterResult, error) {
	if !models.ValidBucket(q.Bucket) {
		return models.FilterResult{}, fmt.Errorf("%w: %q", ErrUnknownBucket, q.Bucket)
	}

	b := e.boundaries(ctx, userID, q.IncludeCompletedDays)
	pred := BuildPredicate(q, b)

	tasks, err := e.store.FindTasks(ctx, tenantID, userID, pred)
	if err != nil {
		return models.FilterResult{}, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	Sort(tasks)

	count := len(tasks)
	if q.Limit > 0 || q.Offset > 0 {
		// The page is shorter than the selection; count the identical
		// predicate at the store so badge and list can never disagree.
		count, err = e.store.CountTasks(ctx, tenantID, userID, pred)
		if err != nil {
			return models.FilterResult{}, fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
	}

	return models.FilterResult{Tasks: tasks, Count: count}, nil
}

// Boundaries computes the current boundary set for a user, degrading to
// UTC if the resolved zone somehow fails to load.
func (e *Engine) Boundaries(ctx context.Context, userID uuid.UUID, completedWindowDays int) schedule.Boundaries {
	return e.boundaries(ctx, userID, completedWindowDays)
}

func (e *Engine) boundaries(ctx context.Context, userID uuid.UUID, windowDays int) schedule.Boundaries {
	zone := e.resolver.Resolve(ctx, userID.String())
	if windowDays <= 0 {
		windowDays = e.retentionDays(ctx, userID)
	}

	now := e.clock().UTC()
	b, err := schedule.Compute(zone, windowDays, now)
	if err != nil {
		// Resolver output should always load; recover to UTC anyway.
		e.logger.Warn("boundary computation fell back to UTC",
			zap.String("zone", zone),
			zap.Error(err))
		b, _ = schedule.Compute(timezone.DefaultZone, windowDays, now)
	}
	return b
}

func (e *Engine) retentionDays(ctx context.Context, userID uuid.UUID) int {
	days, err := e.prefs.GetCompletedRetentionDays(ctx, userID.String())
	if err != nil || days <= 0 {
		return e.defaultRetention
	}
	return days
}

// BuildPredicate translates a bucket query into store conditions against
// a boundary set.
//
// Date buckets select active tasks inside their half-open window; focus
// is the single range due < TodayEnd, which is exactly overdue ∪ today.
// When completed inclusion is requested the status condition widens to
// completed tasks inside the cutoff, still subject to the same due-date
// conditions.
func BuildPredicate(q models.FilterQuery, b schedule.Boundaries) Predicate {
	p := Predicate{
		Statuses: []models.Status{models.StatusActive},
		Order:    OrderSmart,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}

	switch q.Bucket {
	case models.BucketToday:
		p.DueFrom = &b.TodayStart
		p.DueBefore = &b.TodayEnd
	case models.BucketOverdue:
		p.DueBefore = &b.TodayStart
	case models.BucketUpcoming:
		p.DueFrom = &b.TodayEnd
		p.DueBefore = &b.WeekFromNow
	case models.BucketFocus:
		p.DueBefore = &b.TodayEnd
	case models.BucketNoDueDate:
		missing := true
		p.DueMissing = &missing
	case models.BucketAll:
		// status conditions only
	}

	if q.IncludeCompletedDays > 0 {
		p.CompletedSince = &b.CompletedCutoff
	}
	return p
}
