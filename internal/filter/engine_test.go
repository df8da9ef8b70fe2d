package filter

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/daybook-app/daybook/internal/cache"
	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/timezone"
)

const testTenant = "acme"

// fakeStore serves FindTasks/CountTasks from a slice using the reference
// predicate semantics.
type fakeStore struct {
	tasks      []models.Task
	err        error
	findCalls  int
	countCalls int
}

func (f *fakeStore) FindTasks(_ context.Context, tenantID string, userID uuid.UUID, p Predicate) ([]models.Task, error) {
	f.findCalls++
	if f.err != nil {
		return nil, f.err
	}

	matched := f.matching(tenantID, userID, p)
	if p.Order == OrderSmart {
		Sort(matched)
	}
	if p.Offset > 0 {
		if p.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[p.Offset:]
	}
	if p.Limit > 0 && len(matched) > p.Limit {
		matched = matched[:p.Limit]
	}
	return matched, nil
}

func (f *fakeStore) CountTasks(_ context.Context, tenantID string, userID uuid.UUID, p Predicate) (int, error) {
	f.countCalls++
	if f.err != nil {
		return 0, f.err
	}
	return len(f.matching(tenantID, userID, p)), nil
}

func (f *fakeStore) matching(tenantID string, userID uuid.UUID, p Predicate) []models.Task {
	var out []models.Task
	for _, t := range f.tasks {
		if t.TenantID != tenantID || t.UserID != userID {
			continue
		}
		if MatchesPredicate(t, p) {
			out = append(out, t)
		}
	}
	return slices.Clone(out)
}

// stubPrefs is the preferences collaborator for engine tests.
type stubPrefs struct {
	zone      string
	retention int
	err       error
}

func (s *stubPrefs) GetUserTimezone(context.Context, string) (string, error) {
	return s.zone, s.err
}

func (s *stubPrefs) GetCompletedRetentionDays(context.Context, string) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.retention, nil
}

func newTestEngine(store Store, prefs timezone.PreferenceSource, now time.Time) *Engine {
	resolver := timezone.NewResolver(prefs, cache.NewMemory[string](), time.Minute, zap.NewNop())
	return NewEngine(store, resolver, prefs, 0, func() time.Time { return now }, zap.NewNop())
}

// engineFixture builds a user's task set around a fixed now of
// 2024-05-15 10:00Z for a UTC user.
func engineFixture(userID uuid.UUID) ([]models.Task, time.Time) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	created := now.Add(-30 * 24 * time.Hour)
	mk := func(title string, status models.Status, prio models.Priority, due, completed *time.Time) models.Task {
		created = created.Add(time.Minute)
		return models.Task{
			ID:          uuid.New(),
			TenantID:    testTenant,
			UserID:      userID,
			Title:       title,
			Status:      status,
			Priority:    prio,
			DueDate:     due,
			CompletedAt: completed,
			CreatedAt:   created,
		}
	}

	todayStart := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		mk("overdue-urgent", models.StatusActive, models.PriorityUrgent, ptr(todayStart.Add(-48*time.Hour)), nil),
		mk("overdue-low", models.StatusActive, models.PriorityLow, ptr(todayStart.Add(-time.Second)), nil),
		mk("today-morning", models.StatusActive, models.PriorityMedium, ptr(todayStart.Add(9*time.Hour)), nil),
		mk("today-at-midnight", models.StatusActive, models.PriorityHigh, ptr(todayStart), nil),
		mk("tomorrow", models.StatusActive, models.PriorityMedium, ptr(todayStart.Add(24*time.Hour)), nil),
		mk("in-five-days", models.StatusActive, models.PriorityLow, ptr(todayStart.Add(5*24*time.Hour)), nil),
		mk("next-month", models.StatusActive, models.PriorityHigh, ptr(todayStart.Add(40*24*time.Hour)), nil),
		mk("undated", models.StatusActive, models.PriorityMedium, nil, nil),
		mk("done-yesterday", models.StatusCompleted, models.PriorityHigh, ptr(todayStart.Add(-24*time.Hour)), ptr(now.Add(-20*time.Hour))),
		mk("done-last-month", models.StatusCompleted, models.PriorityLow, nil, ptr(now.Add(-45*24*time.Hour))),
		mk("archived", models.StatusArchived, models.PriorityUrgent, ptr(todayStart.Add(time.Hour)), nil),
	}
	return tasks, now
}

func titles(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestEngine_BucketSelection(t *testing.T) {
	userID := uuid.New()
	tasks, now := engineFixture(userID)
	store := &fakeStore{tasks: tasks}
	engine := newTestEngine(store, &stubPrefs{zone: "UTC", retention: 7}, now)

	tests := []struct {
		bucket models.Bucket
		want   []string
	}{
		{models.BucketOverdue, []string{"overdue-urgent", "overdue-low"}},
		{models.BucketToday, []string{"today-at-midnight", "today-morning"}},
		{models.BucketUpcoming, []string{"tomorrow", "in-five-days"}},
		{models.BucketNoDueDate, []string{"undated"}},
		{models.BucketFocus, []string{"overdue-urgent", "today-at-midnight", "today-morning", "overdue-low"}},
		{models.BucketAll, []string{
			"overdue-urgent", "today-at-midnight", "next-month", "today-morning",
			"tomorrow", "undated", "overdue-low", "in-five-days",
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			result, err := engine.GetFilteredTasks(context.Background(), testTenant, userID, models.FilterQuery{Bucket: tt.bucket})
			require.NoError(t, err)

			assert.Equal(t, tt.want, titles(result.Tasks))
			assert.Equal(t, len(result.Tasks), result.Count, "unpaginated count must equal length")
		})
	}
}

func TestEngine_CompletedInclusion(t *testing.T) {
	userID := uuid.New()
	tasks, now := engineFixture(userID)
	store := &fakeStore{tasks: tasks}
	engine := newTestEngine(store, &stubPrefs{zone: "UTC", retention: 7}, now)

	result, err := engine.GetFilteredTasks(context.Background(), testTenant, userID, models.FilterQuery{
		Bucket:               models.BucketAll,
		IncludeCompletedDays: 7,
	})
	require.NoError(t, err)

	assert.Contains(t, titles(result.Tasks), "done-yesterday")
	assert.NotContains(t, titles(result.Tasks), "done-last-month", "outside the cutoff")
	assert.NotContains(t, titles(result.Tasks), "archived")
	assert.Equal(t, len(result.Tasks), result.Count)

	// completed tasks sort after every active one
	last := result.Tasks[len(result.Tasks)-1]
	assert.Equal(t, models.StatusCompleted, last.Status)
}

func TestEngine_PaginatedCountMatchesUnpaginated(t *testing.T) {
	userID := uuid.New()
	tasks, now := engineFixture(userID)
	store := &fakeStore{tasks: tasks}
	engine := newTestEngine(store, &stubPrefs{zone: "UTC", retention: 7}, now)

	full, err := engine.GetFilteredTasks(context.Background(), testTenant, userID, models.FilterQuery{Bucket: models.BucketAll})
	require.NoError(t, err)

	var paged []models.Task
	for offset := 0; ; offset += 3 {
		page, err := engine.GetFilteredTasks(context.Background(), testTenant, userID, models.FilterQuery{
			Bucket: models.BucketAll,
			Limit:  3,
			Offset: offset,
		})
		require.NoError(t, err)
		assert.Equal(t, full.Count, page.Count, "paginated count must equal the unpaginated total")
		if len(page.Tasks) == 0 {
			break
		}
		paged = append(paged, page.Tasks...)
	}

	assert.Equal(t, titles(full.Tasks), titles(paged), "pages must reassemble the full ordering")
}

func TestEngine_OffsetOnlyCountMatchesTotal(t *testing.T) {
	userID := uuid.New()
	tasks, now := engineFixture(userID)
	store := &fakeStore{tasks: tasks}
	engine := newTestEngine(store, &stubPrefs{zone: "UTC", retention: 7}, now)

	full, err := engine.GetFilteredTasks(context.Background(), testTenant, userID, models.FilterQuery{Bucket: models.BucketAll})
	require.NoError(t, err)

	// An offset with no limit still truncates the page, so the count
	// must come from the store, not the page length.
	tail, err := engine.GetFilteredTasks(context.Background(), testTenant, userID, models.FilterQuery{
		Bucket: models.BucketAll,
		Offset: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, titles(full.Tasks)[3:], titles(tail.Tasks))
	assert.Equal(t, full.Count, tail.Count, "offset-only count must equal the unpaginated total")
}

func TestEngine_ConfiguredRetentionFallback(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	prefs := &stubPrefs{err: errors.New("prefs down")}
	resolver := timezone.NewResolver(prefs, cache.NewMemory[string](), time.Minute, zap.NewNop())
	engine := NewEngine(&fakeStore{}, resolver, prefs, 3, func() time.Time { return now }, zap.NewNop())

	b := engine.Boundaries(context.Background(), userID, 0)
	assert.Equal(t, b.TodayStart.Add(-3*24*time.Hour), b.CompletedCutoff,
		"retention falls back to the configured default when preferences are unreadable")
}

func TestEngine_TimezoneShiftsToday(t *testing.T) {
	// 16:30Z on March 10 is already March 11 in Singapore, so a task
	// due 17:00Z belongs to today there.
	userID := uuid.New()
	now := time.Date(2024, 3, 10, 16, 30, 0, 0, time.UTC)
	task := models.Task{
		ID:       uuid.New(),
		TenantID: testTenant,
		UserID:   userID,
		Title:    "due-0100-local",
		Status:   models.StatusActive,
		Priority: models.PriorityMedium,
		DueDate:  ptr(time.Date(2024, 3, 10, 17, 0, 0, 0, time.UTC)),
	}
	store := &fakeStore{tasks: []models.Task{task}}

	sgEngine := newTestEngine(store, &stubPrefs{zone: "Asia/Singapore", retention: 7}, now)
	result, err := sgEngine.GetFilteredTasks(context.Background(), testTenant, userID, models.FilterQuery{Bucket: models.BucketToday})
	require.NoError(t, err)
	assert.Equal(t, []string{"due-0100-local"}, titles(result.Tasks))

	utcEngine := newTestEngine(store, &stubPrefs{zone: "UTC", retention: 7}, now)
	result, err = utcEngine.GetFilteredTasks(context.Background(), testTenant, userID, models.FilterQuery{Bucket: models.BucketToday})
	require.NoError(t, err)
	assert.Empty(t, result.Tasks, "same instant is still March 10 for a UTC user")
}

func TestEngine_UnknownBucket(t *testing.T) {
	engine := newTestEngine(&fakeStore{}, &stubPrefs{zone: "UTC", retention: 7}, time.Now())

	_, err := engine.GetFilteredTasks(context.Background(), testTenant, uuid.New(), models.FilterQuery{Bucket: "someday"})
	assert.ErrorIs(t, err, ErrUnknownBucket)
}

func TestEngine_StoreErrorPropagates(t *testing.T) {
	store := &fakeStore{err: errors.New("connection reset")}
	engine := newTestEngine(store, &stubPrefs{zone: "UTC", retention: 7}, time.Now())

	result, err := engine.GetFilteredTasks(context.Background(), testTenant, uuid.New(), models.FilterQuery{Bucket: models.BucketAll})
	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.Empty(t, result.Tasks, "no partial results on failure")
	assert.Zero(t, result.Count)
}

func TestEngine_PreferenceErrorDegradesNotFails(t *testing.T) {
	userID := uuid.New()
	tasks, now := engineFixture(userID)
	store := &fakeStore{tasks: tasks}
	engine := newTestEngine(store, &stubPrefs{err: errors.New("prefs down")}, now)

	result, err := engine.GetFilteredTasks(context.Background(), testTenant, userID, models.FilterQuery{Bucket: models.BucketToday})
	require.NoError(t, err, "preference failures must not fail filtering")
	assert.Equal(t, []string{"today-at-midnight", "today-morning"}, titles(result.Tasks))
}

func TestEngine_TenantIsolation(t *testing.T) {
	userID := uuid.New()
	tasks, now := engineFixture(userID)
	store := &fakeStore{tasks: tasks}
	engine := newTestEngine(store, &stubPrefs{zone: "UTC", retention: 7}, now)

	result, err := engine.GetFilteredTasks(context.Background(), "other-tenant", userID, models.FilterQuery{Bucket: models.BucketAll})
	require.NoError(t, err)
	assert.Empty(t, result.Tasks)
}
