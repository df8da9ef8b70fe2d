package models

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// statusRank orders statuses for display: active work first, archived last.
func (s Status) Rank() int {
	switch s {
	case StatusActive:
		return 0
	case StatusCompleted:
		return 1
	case StatusArchived:
		return 2
	default:
		return 3
	}
}

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Rank returns a numeric weight for sorting, higher is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Bucket is a named task classification used by list filters and the
// count badge.
type Bucket string

const (
	BucketAll       Bucket = "all"
	BucketToday     Bucket = "today"
	BucketOverdue   Bucket = "overdue"
	BucketUpcoming  Bucket = "upcoming"
	BucketNoDueDate Bucket = "no-due-date"
	BucketFocus     Bucket = "focus"
)

// ValidBucket reports whether b names a known filter bucket.
func ValidBucket(b Bucket) bool {
	switch b {
	case BucketAll, BucketToday, BucketOverdue, BucketUpcoming, BucketNoDueDate, BucketFocus:
		return true
	}
	return false
}

// Task is the domain view of a stored task. Due and completion times are
// absolute UTC instants; "today" is derived per user at query time.
type Task struct {
	ID          uuid.UUID
	TenantID    string
	UserID      uuid.UUID
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FilterQuery selects a bucket of tasks for one user.
type FilterQuery struct {
	Bucket Bucket

	// IncludeCompletedDays, when positive, also returns completed tasks
	// whose completion instant falls within that many calendar days
	// before today. Zero excludes completed tasks entirely.
	IncludeCompletedDays int

	// Limit/Offset paginate the result. Limit <= 0 returns everything.
	Limit  int
	Offset int
}

// FilterResult is an ordered page of tasks plus the total count for the
// same predicate. Count equals len(Tasks) whenever no pagination was
// applied.
type FilterResult struct {
	Tasks []Task
	Count int
}

// Counts holds the per-bucket totals backing the sidebar badges.
type Counts struct {
	All       int `json:"all" db:"all_count"`
	Today     int `json:"today" db:"today_count"`
	Overdue   int `json:"overdue" db:"overdue_count"`
	Upcoming  int `json:"upcoming" db:"upcoming_count"`
	NoDueDate int `json:"no_due_date" db:"no_due_count"`
	Focus     int `json:"focus" db:"-"`
}
