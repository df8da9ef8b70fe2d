package filter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/schedule"
)

// Order is a hint for how the store should return rows. The engine
// re-applies its stable sort either way; ordering at the store lets
// pagination happen there.
type Order int

const (
	// OrderNone leaves row order to the store.
	OrderNone Order = iota
	// OrderSmart asks for the display order: status, then priority
	// descending, then due date ascending with missing due dates last,
	// then newest first.
	OrderSmart
)

// Predicate expresses a task selection as status and date-range
// conditions.
//
// The status condition is: status IN Statuses, or, when CompletedSince
// is set, status is completed with CompletedAt at or after
// CompletedSince. Due-date conditions AND over that: a DueFrom/DueBefore
// range only ever matches tasks that have a due date, and DueMissing
// selects on presence of one. Limit/Offset apply to FindTasks only;
// CountTasks always counts the full selection.
type Predicate struct {
	Statuses       []models.Status
	DueFrom        *time.Time // inclusive
	DueBefore      *time.Time // exclusive
	DueMissing     *bool
	CompletedSince *time.Time

	Order  Order
	Limit  int
	Offset int
}

// Store is the persistent task collaborator. Implementations own retry
// policy; the engine treats any error as a failed query.
type Store interface {
	FindTasks(ctx context.Context, tenantID string, userID uuid.UUID, p Predicate) ([]models.Task, error)
	CountTasks(ctx context.Context, tenantID string, userID uuid.UUID, p Predicate) (int, error)
}

// BucketCounter is an optional fast path a store may provide: all bucket
// totals for one user in a single aggregate query. Stores that do not
// implement it are served by a bulk scan instead.
type BucketCounter interface {
	BucketCounts(ctx context.Context, tenantID string, userID uuid.UUID, b schedule.Boundaries) (models.Counts, error)
}

// MatchesPredicate evaluates a predicate against a task in memory,
// ignoring order and pagination. This is the reference semantics store
// implementations must agree with; test fakes and the bulk-scan count
// path use it directly.
func MatchesPredicate(t models.Task, p Predicate) bool {
	if !matchesStatus(t, p) {
		return false
	}

	if p.DueMissing != nil {
		if *p.DueMissing != (t.DueDate == nil) {
			return false
		}
	}
	if p.DueFrom != nil {
		if t.DueDate == nil || t.DueDate.Before(*p.DueFrom) {
			return false
		}
	}
	if p.DueBefore != nil {
		if t.DueDate == nil || !t.DueDate.Before(*p.DueBefore) {
			return false
		}
	}
	return true
}

func matchesStatus(t models.Task, p Predicate) bool {
	for _, s := range p.Statuses {
		if t.Status == s {
			return true
		}
	}
	if p.CompletedSince != nil && t.Status == models.StatusCompleted {
		return t.CompletedAt != nil && !t.CompletedAt.Before(*p.CompletedSince)
	}
	return len(p.Statuses) == 0 && p.CompletedSince == nil
}
