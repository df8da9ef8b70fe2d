// internal/service/task_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	taskv1 "github.com/daybook-app/daybook/api/proto/task/v1/generated"
	ent "github.com/daybook-app/daybook/ent/generated"
	"github.com/daybook-app/daybook/ent/generated/enttest"
	"github.com/daybook-app/daybook/internal/cache"
	"github.com/daybook-app/daybook/internal/filter"
	"github.com/daybook-app/daybook/internal/middleware"
	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/repository"
	"github.com/daybook-app/daybook/internal/timezone"

	_ "github.com/mattn/go-sqlite3"
)

const testTenant = "acme"

// testNow is 00:30 March 11 in Singapore: the classic boundary instant
// where local "today" is a day ahead of UTC.
var testNow = time.Date(2024, 3, 10, 16, 30, 0, 0, time.UTC)

type testStack struct {
	tasks  *TaskService
	prefs  *PreferenceService
	client *ent.Client
	userID uuid.UUID
}

func setupStack(t *testing.T, userZone string) *testStack {
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
		SetTimezone(userZone).
		Save(context.Background())
	require.NoError(t, err)

	clock := func() time.Time { return testNow }
	logger := zap.NewNop()

	repo := repository.NewTaskRepository(client, db)
	prefRepo := repository.NewPreferenceRepository(client)
	resolver := timezone.NewResolver(prefRepo, cache.NewMemory[string](), time.Minute, logger)
	engine := filter.NewEngine(repo, resolver, prefRepo, 0, clock, logger)
	aggregator := filter.NewCountAggregator(repo, resolver, prefRepo, cache.NewMemory[models.Counts](), time.Minute, 0, clock, logger)

	return &testStack{
		tasks:  NewTaskService(repo, engine, aggregator, resolver, clock, logger),
		prefs:  NewPreferenceService(prefRepo, resolver, logger),
		client: client,
		userID: owner.ID,
	}
}

func (s *testStack) ctx() context.Context {
	return middleware.WithScope(context.Background(), testTenant, s.userID.String(), "")
}

func requireCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok, "expected a status error, got %v", err)
	assert.Equal(t, want, st.Code())
}

func TestTaskService_CreateTaskAnchorsDueDateToUserZone(t *testing.T) {
	stack := setupStack(t, "Asia/Singapore")

	resp, err := stack.tasks.CreateTask(stack.ctx(), &taskv1.CreateTaskRequest{
		Title:    "standup notes",
		Priority: taskv1.Priority_PRIORITY_HIGH,
		DueDate:  "2024-03-11",
	})
	require.NoError(t, err)

	// Local midnight March 11 in Singapore is 16:00Z March 10.
	require.NotNil(t, resp.Task.DueDate)
	assert.True(t, resp.Task.DueDate.AsTime().Equal(time.Date(2024, 3, 10, 16, 0, 0, 0, time.UTC)))
	assert.Equal(t, taskv1.TaskStatus_TASK_STATUS_ACTIVE, resp.Task.Status)
}

func TestTaskService_CreateTaskValidation(t *testing.T) {
	stack := setupStack(t, "UTC")

	_, err := stack.tasks.CreateTask(stack.ctx(), &taskv1.CreateTaskRequest{Title: ""})
	requireCode(t, err, codes.InvalidArgument)

	_, err = stack.tasks.CreateTask(stack.ctx(), &taskv1.CreateTaskRequest{
		Title:   "bad date",
		DueDate: "2023-02-29",
	})
	requireCode(t, err, codes.InvalidArgument)

	_, err = stack.tasks.CreateTask(stack.ctx(), &taskv1.CreateTaskRequest{
		Title:   "bad format",
		DueDate: "11/03/2024",
	})
	requireCode(t, err, codes.InvalidArgument)
}

func TestTaskService_RequiresScope(t *testing.T) {
	stack := setupStack(t, "UTC")

	_, err := stack.tasks.ListTasks(context.Background(), &taskv1.ListTasksRequest{})
	requireCode(t, err, codes.Unauthenticated)
}

func TestTaskService_ListTasksTodayFollowsLocalCalendar(t *testing.T) {
	stack := setupStack(t, "Asia/Singapore")

	_, err := stack.tasks.CreateTask(stack.ctx(), &taskv1.CreateTaskRequest{
		Title:   "due on the 11th",
		DueDate: "2024-03-11",
	})
	require.NoError(t, err)

	resp, err := stack.tasks.ListTasks(stack.ctx(), &taskv1.ListTasksRequest{
		Bucket: taskv1.FilterBucket_FILTER_BUCKET_TODAY,
	})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "due on the 11th", resp.Tasks[0].Title)
	assert.Equal(t, int32(1), resp.TotalCount)
}

func TestTaskService_CompleteTaskMovesBuckets(t *testing.T) {
	stack := setupStack(t, "Asia/Singapore")
	ctx := stack.ctx()

	created, err := stack.tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
		Title:   "ship it",
		DueDate: "2024-03-11",
	})
	require.NoError(t, err)

	counts, err := stack.tasks.GetFilterCounts(ctx, &taskv1.GetFilterCountsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), counts.Today)
	assert.Equal(t, int32(1), counts.Focus)

	done, err := stack.tasks.CompleteTask(ctx, &taskv1.CompleteTaskRequest{Id: created.Task.Id})
	require.NoError(t, err)
	assert.Equal(t, taskv1.TaskStatus_TASK_STATUS_COMPLETED, done.Task.Status)
	require.NotNil(t, done.Task.CompletedAt)

	// The write invalidated the count cache, so the badge moves at once.
	counts, err = stack.tasks.GetFilterCounts(ctx, &taskv1.GetFilterCountsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(0), counts.Today)
	assert.Equal(t, int32(1), counts.All, "completed today stays inside the retention window")

	today, err := stack.tasks.ListTasks(ctx, &taskv1.ListTasksRequest{
		Bucket: taskv1.FilterBucket_FILTER_BUCKET_TODAY,
	})
	require.NoError(t, err)
	assert.Empty(t, today.Tasks, "completed tasks leave the date buckets")
}

func TestPreferenceService_UpdateTimezoneTakesEffectImmediately(t *testing.T) {
	stack := setupStack(t, "Asia/Singapore")
	ctx := stack.ctx()

	_, err := stack.tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
		Title:   "zone-sensitive",
		DueDate: "2024-03-11",
	})
	require.NoError(t, err)

	resp, err := stack.tasks.ListTasks(ctx, &taskv1.ListTasksRequest{
		Bucket: taskv1.FilterBucket_FILTER_BUCKET_TODAY,
	})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1, "March 11 is today in Singapore")

	utc := "UTC"
	_, err = stack.prefs.UpdatePreferences(ctx, &taskv1.UpdatePreferencesRequest{Timezone: &utc})
	require.NoError(t, err)

	resp, err = stack.tasks.ListTasks(ctx, &taskv1.ListTasksRequest{
		Bucket: taskv1.FilterBucket_FILTER_BUCKET_TODAY,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Tasks, "for a UTC user the same instant is still March 10")
}

func TestPreferenceService_RejectsUnknownZone(t *testing.T) {
	stack := setupStack(t, "UTC")

	bad := "Pluto/Cryovolcano"
	_, err := stack.prefs.UpdatePreferences(stack.ctx(), &taskv1.UpdatePreferencesRequest{Timezone: &bad})
	requireCode(t, err, codes.InvalidArgument)
}

func TestPreferenceService_GetPreferences(t *testing.T) {
	stack := setupStack(t, "Europe/Berlin")

	resp, err := stack.prefs.GetPreferences(stack.ctx(), &taskv1.GetPreferencesRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", resp.Timezone)
	assert.Equal(t, int32(7), resp.CompletedRetentionDays)
}
