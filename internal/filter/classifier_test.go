package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/schedule"
)

// boundaries for a UTC user at 2024-05-15 10:00Z with a 7-day window.
func utcBoundaries(t *testing.T) schedule.Boundaries {
	t.Helper()
	b, err := schedule.Compute("UTC", 7, time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return b
}

func ptr(t time.Time) *time.Time { return &t }

func TestClassify(t *testing.T) {
	b := utcBoundaries(t)

	tests := []struct {
		name   string
		status models.Status
		due    *time.Time
		want   Membership
	}{
		{
			name:   "due yesterday is overdue and focus",
			status: models.StatusActive,
			due:    ptr(b.TodayStart.Add(-time.Hour)),
			want:   Membership{Overdue: true, Focus: true},
		},
		{
			name:   "due at start of today is today",
			status: models.StatusActive,
			due:    ptr(b.TodayStart),
			want:   Membership{Today: true, Focus: true},
		},
		{
			name:   "due mid-today is today",
			status: models.StatusActive,
			due:    ptr(b.TodayStart.Add(13 * time.Hour)),
			want:   Membership{Today: true, Focus: true},
		},
		{
			name:   "due exactly at end of today is upcoming, not today",
			status: models.StatusActive,
			due:    ptr(b.TodayEnd),
			want:   Membership{Upcoming: true},
		},
		{
			name:   "due inside the week window is upcoming",
			status: models.StatusActive,
			due:    ptr(b.TodayEnd.Add(72 * time.Hour)),
			want:   Membership{Upcoming: true},
		},
		{
			name:   "due exactly at week boundary matches nothing",
			status: models.StatusActive,
			due:    ptr(b.WeekFromNow),
			want:   Membership{},
		},
		{
			name:   "due far in the future matches nothing",
			status: models.StatusActive,
			due:    ptr(b.WeekFromNow.AddDate(1, 0, 0)),
			want:   Membership{},
		},
		{
			name:   "no due date",
			status: models.StatusActive,
			due:    nil,
			want:   Membership{NoDueDate: true},
		},
		{
			name:   "completed task with ancient due date is never overdue",
			status: models.StatusCompleted,
			due:    ptr(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)),
			want:   Membership{},
		},
		{
			name:   "completed task due today is not today",
			status: models.StatusCompleted,
			due:    ptr(b.TodayStart.Add(time.Hour)),
			want:   Membership{},
		},
		{
			name:   "archived task due today is not today",
			status: models.StatusArchived,
			due:    ptr(b.TodayStart.Add(time.Hour)),
			want:   Membership{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := models.Task{Status: tt.status, Priority: models.PriorityMedium, DueDate: tt.due}
			assert.Equal(t, tt.want, Classify(task, b))
		})
	}
}

func TestClassify_LocalDateAheadOfUTC(t *testing.T) {
	// 16:30Z on March 10 is 00:30 on March 11 in Singapore. A task due
	// 17:00Z (01:00 local) shares the local calendar date, so it is
	// today there even though its UTC date differs from now's.
	now := time.Date(2024, 3, 10, 16, 30, 0, 0, time.UTC)
	b, err := schedule.Compute("Asia/Singapore", 7, now)
	require.NoError(t, err)

	task := models.Task{
		Status:   models.StatusActive,
		Priority: models.PriorityHigh,
		DueDate:  ptr(time.Date(2024, 3, 10, 17, 0, 0, 0, time.UTC)),
	}

	m := Classify(task, b)
	assert.True(t, m.Today)
	assert.False(t, m.Overdue)
}

func TestIn(t *testing.T) {
	b := utcBoundaries(t)
	undated := models.Task{Status: models.StatusActive, Priority: models.PriorityLow}

	assert.True(t, In(undated, models.BucketAll, b))
	assert.True(t, In(undated, models.BucketNoDueDate, b))
	assert.False(t, In(undated, models.BucketToday, b))
	assert.False(t, In(undated, models.BucketOverdue, b))
	assert.False(t, In(undated, models.BucketUpcoming, b))
	assert.False(t, In(undated, models.BucketFocus, b))

	overdue := models.Task{Status: models.StatusActive, DueDate: ptr(b.TodayStart.Add(-time.Minute))}
	assert.True(t, In(overdue, models.BucketOverdue, b))
	assert.True(t, In(overdue, models.BucketFocus, b))
	assert.True(t, In(overdue, models.BucketAll, b))
	assert.False(t, In(overdue, models.BucketNoDueDate, b))
}
