package filter

import (
	"slices"

	"github.com/daybook-app/daybook/internal/models"
)

// Compare is the display order for task lists: active before completed
// before archived, then priority descending, then due date ascending
// with undated tasks after every dated one, then newest created first.
func Compare(a, b models.Task) int {
	if d := a.Status.Rank() - b.Status.Rank(); d != 0 {
		return d
	}
	if d := b.Priority.Rank() - a.Priority.Rank(); d != 0 {
		return d
	}
	if d := compareDue(a, b); d != 0 {
		return d
	}
	// newest first as the final tie-break
	return b.CreatedAt.Compare(a.CreatedAt)
}

func compareDue(a, b models.Task) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	default:
		return a.DueDate.Compare(*b.DueDate)
	}
}

// Sort orders tasks in place, stably, by Compare.
func Sort(tasks []models.Task) {
	slices.SortStableFunc(tasks, Compare)
}
