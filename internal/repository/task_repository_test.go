// internal/repository/task_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "github.com/daybook-app/daybook/ent/generated"
	"github.com/daybook-app/daybook/ent/generated/enttest"
	"github.com/daybook-app/daybook/internal/filter"
	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/schedule"

	_ "github.com/mattn/go-sqlite3"
)

const testTenant = "acme"

// setupRepo opens an in-memory database shared between the Ent client
// and a sqlx handle, so the raw aggregate query sees the same rows.
func setupRepo(t *testing.T) (*TaskRepository, *ent.Client, uuid.UUID) {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_fk=1"

	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	db, err := sqlx.Open("sqlite3", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	owner, err := client.User.Create().
		SetTenantID(testTenant).
		SetEmail(t.Name() + "@example.com").
		SetTimezone("UTC").
		Save(context.Background())
	require.NoError(t, err)

	return NewTaskRepository(client, db), client, owner.ID
}

func seedTask(t *testing.T, repo *TaskRepository, userID uuid.UUID, title string, prio models.Priority, due *time.Time) models.Task {
	t.Helper()
	created, err := repo.Create(context.Background(), TaskInput{
		TenantID: testTenant,
		UserID:   userID,
		Title:    title,
		Priority: prio,
		DueDate:  due,
	})
	require.NoError(t, err)
	return created
}

func testBoundaries(t *testing.T) schedule.Boundaries {
	t.Helper()
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	b, err := schedule.Compute("UTC", 7, now)
	require.NoError(t, err)
	return b
}

func TestTaskRepository_CreateAndGet(t *testing.T) {
	repo, _, userID := setupRepo(t)
	ctx := context.Background()

	due := time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)
	created := seedTask(t, repo, userID, "write report", models.PriorityHigh, &due)

	assert.Equal(t, models.StatusActive, created.Status)
	assert.Nil(t, created.CompletedAt, "active tasks never carry a completion instant")

	got, err := repo.GetByID(ctx, testTenant, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "write report", got.Title)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))

	_, err = repo.GetByID(ctx, "other-tenant", created.ID)
	assert.True(t, ent.IsNotFound(err), "tasks are invisible across tenants")
}

func TestTaskRepository_CompleteAndReopen(t *testing.T) {
	repo, _, userID := setupRepo(t)
	ctx := context.Background()

	created := seedTask(t, repo, userID, "inbox zero", models.PriorityLow, nil)
	at := time.Date(2024, 5, 15, 14, 30, 0, 0, time.UTC)

	done, err := repo.Complete(ctx, testTenant, created.ID, at)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)
	assert.True(t, done.CompletedAt.Equal(at))

	reopened, err := repo.Reopen(ctx, testTenant, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, reopened.Status)
	assert.Nil(t, reopened.CompletedAt, "reopening clears the completion instant")
}

func TestTaskRepository_Delete(t *testing.T) {
	repo, _, userID := setupRepo(t)
	ctx := context.Background()

	created := seedTask(t, repo, userID, "temp", models.PriorityMedium, nil)

	err := repo.Delete(ctx, "other-tenant", created.ID)
	assert.True(t, ent.IsNotFound(err))

	require.NoError(t, repo.Delete(ctx, testTenant, created.ID))
	_, err = repo.GetByID(ctx, testTenant, created.ID)
	assert.True(t, ent.IsNotFound(err))
}

// seedBucketFixture lays out tasks across every bucket relative to the
// 2024-05-15 UTC boundaries.
func seedBucketFixture(t *testing.T, repo *TaskRepository, userID uuid.UUID, b schedule.Boundaries) {
	t.Helper()
	ctx := context.Background()

	overdue := b.TodayStart.Add(-30 * time.Hour)
	today := b.TodayStart.Add(9 * time.Hour)
	atEnd := b.TodayEnd
	nextWeek := b.WeekFromNow.Add(48 * time.Hour)

	seedTask(t, repo, userID, "overdue", models.PriorityUrgent, &overdue)
	seedTask(t, repo, userID, "today", models.PriorityMedium, &today)
	seedTask(t, repo, userID, "at-today-end", models.PriorityHigh, &atEnd)
	seedTask(t, repo, userID, "undated", models.PriorityLow, nil)
	seedTask(t, repo, userID, "beyond-week", models.PriorityMedium, &nextWeek)

	doneRecent := seedTask(t, repo, userID, "done-recent", models.PriorityMedium, &today)
	_, err := repo.Complete(ctx, testTenant, doneRecent.ID, b.TodayStart.Add(-20*time.Hour))
	require.NoError(t, err)

	doneOld := seedTask(t, repo, userID, "done-old", models.PriorityLow, nil)
	_, err = repo.Complete(ctx, testTenant, doneOld.ID, b.CompletedCutoff.Add(-time.Hour))
	require.NoError(t, err)

	archived := seedTask(t, repo, userID, "archived", models.PriorityUrgent, &today)
	_, err = repo.Archive(ctx, testTenant, archived.ID)
	require.NoError(t, err)
}

func TestTaskRepository_FindTasksMatchesReferenceSemantics(t *testing.T) {
	repo, _, userID := setupRepo(t)
	b := testBoundaries(t)
	seedBucketFixture(t, repo, userID, b)
	ctx := context.Background()

	missing := true
	completedSince := b.CompletedCutoff
	preds := map[string]filter.Predicate{
		"active only": {Statuses: []models.Status{models.StatusActive}},
		"today window": {
			Statuses: []models.Status{models.StatusActive},
			DueFrom:  &b.TodayStart, DueBefore: &b.TodayEnd,
		},
		"overdue": {
			Statuses:  []models.Status{models.StatusActive},
			DueBefore: &b.TodayStart,
		},
		"undated": {
			Statuses:   []models.Status{models.StatusActive},
			DueMissing: &missing,
		},
		"with completed window": {
			Statuses:       []models.Status{models.StatusActive},
			CompletedSince: &completedSince,
		},
	}

	// Everything the store holds, for the in-memory oracle.
	all, err := repo.FindTasks(ctx, testTenant, userID, filter.Predicate{})
	require.NoError(t, err)
	require.Len(t, all, 8)

	for name, pred := range preds {
		t.Run(name, func(t *testing.T) {
			got, err := repo.FindTasks(ctx, testTenant, userID, pred)
			require.NoError(t, err)

			var want []string
			for _, task := range all {
				if filter.MatchesPredicate(task, pred) {
					want = append(want, task.Title)
				}
			}

			var titles []string
			for _, task := range got {
				titles = append(titles, task.Title)
			}
			assert.ElementsMatch(t, want, titles)

			count, err := repo.CountTasks(ctx, testTenant, userID, pred)
			require.NoError(t, err)
			assert.Equal(t, len(want), count)
		})
	}
}

func TestTaskRepository_SmartOrderMatchesEngineSort(t *testing.T) {
	repo, _, userID := setupRepo(t)
	b := testBoundaries(t)
	seedBucketFixture(t, repo, userID, b)

	got, err := repo.FindTasks(context.Background(), testTenant, userID, filter.Predicate{
		Statuses: []models.Status{models.StatusActive, models.StatusCompleted, models.StatusArchived},
		Order:    filter.OrderSmart,
	})
	require.NoError(t, err)
	require.NotEmpty(t, got)

	want := make([]models.Task, len(got))
	copy(want, got)
	filter.Sort(want)

	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID,
			"store order diverges from engine order at %d (%s vs %s)", i, want[i].Title, got[i].Title)
	}
}

func TestTaskRepository_PaginationCountsFullSelection(t *testing.T) {
	repo, _, userID := setupRepo(t)
	b := testBoundaries(t)
	seedBucketFixture(t, repo, userID, b)
	ctx := context.Background()

	pred := filter.Predicate{
		Statuses: []models.Status{models.StatusActive},
		Order:    filter.OrderSmart,
		Limit:    2,
	}

	page, err := repo.FindTasks(ctx, testTenant, userID, pred)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	count, err := repo.CountTasks(ctx, testTenant, userID, pred)
	require.NoError(t, err)
	assert.Equal(t, 5, count, "count ignores pagination")
}

func TestTaskRepository_BucketCounts(t *testing.T) {
	repo, _, userID := setupRepo(t)
	b := testBoundaries(t)
	seedBucketFixture(t, repo, userID, b)

	counts, err := repo.BucketCounts(context.Background(), testTenant, userID, b)
	require.NoError(t, err)

	// overdue, today, at-today-end, undated, beyond-week, done-recent
	assert.Equal(t, 6, counts.All)
	assert.Equal(t, 1, counts.Overdue)
	assert.Equal(t, 1, counts.Today)
	assert.Equal(t, 1, counts.Upcoming, "a task due exactly at TodayEnd is upcoming")
	assert.Equal(t, 1, counts.NoDueDate)
}

func TestTaskRepository_BucketCountsScopedToUser(t *testing.T) {
	repo, client, userID := setupRepo(t)
	b := testBoundaries(t)
	seedBucketFixture(t, repo, userID, b)

	other, err := client.User.Create().
		SetTenantID(testTenant).
		SetEmail("other@example.com").
		Save(context.Background())
	require.NoError(t, err)

	counts, err := repo.BucketCounts(context.Background(), testTenant, other.ID, b)
	require.NoError(t, err)
	assert.Equal(t, models.Counts{}, counts)
}
