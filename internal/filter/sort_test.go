package filter

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/daybook-app/daybook/internal/models"
)

func sortFixture() []models.Task {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	mk := func(status models.Status, prio models.Priority, due *time.Time, createdOffset time.Duration) models.Task {
		return models.Task{
			ID:        uuid.New(),
			Status:    status,
			Priority:  prio,
			DueDate:   due,
			CreatedAt: base.Add(createdOffset),
		}
	}

	tasks := []models.Task{
		mk(models.StatusArchived, models.PriorityUrgent, ptr(base), 0),
		mk(models.StatusCompleted, models.PriorityHigh, ptr(base.Add(24*time.Hour)), time.Hour),
		mk(models.StatusActive, models.PriorityLow, nil, 2*time.Hour),
		mk(models.StatusActive, models.PriorityUrgent, ptr(base.Add(48*time.Hour)), 3*time.Hour),
		mk(models.StatusActive, models.PriorityUrgent, ptr(base.Add(2*time.Hour)), 4*time.Hour),
		mk(models.StatusActive, models.PriorityMedium, ptr(base.Add(2*time.Hour)), 5*time.Hour),
		mk(models.StatusActive, models.PriorityMedium, ptr(base.Add(2*time.Hour)), 6*time.Hour),
		mk(models.StatusCompleted, models.PriorityUrgent, nil, 7*time.Hour),
		mk(models.StatusActive, models.PriorityHigh, nil, 8*time.Hour),
	}

	rand.New(rand.NewSource(42)).Shuffle(len(tasks), func(i, j int) {
		tasks[i], tasks[j] = tasks[j], tasks[i]
	})
	return tasks
}

func TestSort_StatusThenPriorityThenDue(t *testing.T) {
	tasks := sortFixture()
	Sort(tasks)

	for i := 1; i < len(tasks); i++ {
		prev, cur := tasks[i-1], tasks[i]

		// no active task after a completed one, none of either after archived
		assert.LessOrEqual(t, prev.Status.Rank(), cur.Status.Rank(),
			"status order broken at %d", i)

		if prev.Status == cur.Status {
			assert.GreaterOrEqual(t, prev.Priority.Rank(), cur.Priority.Rank(),
				"priority not non-increasing at %d", i)

			if prev.Priority == cur.Priority {
				switch {
				case prev.DueDate == nil:
					assert.Nil(t, cur.DueDate, "dated task after undated at %d", i)
				case cur.DueDate != nil:
					assert.False(t, cur.DueDate.Before(*prev.DueDate),
						"due dates not ascending at %d", i)
				}
			}
		}
	}
}

func TestSort_CreatedAtBreaksTies(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	due := base.Add(time.Hour)
	older := models.Task{ID: uuid.New(), Status: models.StatusActive, Priority: models.PriorityHigh, DueDate: &due, CreatedAt: base}
	newer := models.Task{ID: uuid.New(), Status: models.StatusActive, Priority: models.PriorityHigh, DueDate: &due, CreatedAt: base.Add(time.Minute)}

	tasks := []models.Task{older, newer}
	Sort(tasks)

	assert.Equal(t, newer.ID, tasks[0].ID, "newest creation wins the tie")
	assert.Equal(t, older.ID, tasks[1].ID)
}

func TestSort_Deterministic(t *testing.T) {
	tasks := sortFixture()

	first := slices.Clone(tasks)
	second := slices.Clone(tasks)
	rand.New(rand.NewSource(7)).Shuffle(len(second), func(i, j int) {
		second[i], second[j] = second[j], second[i]
	})

	Sort(first)
	Sort(second)
	assert.Equal(t, first, second, "order must not depend on input order")
}
