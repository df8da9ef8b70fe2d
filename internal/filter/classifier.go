// Package filter is the classification engine: it decides which buckets
// a task belongs to for one user at one instant, translates bucket
// queries into store predicates, orders results deterministically, and
// serves the aggregate counts behind the sidebar badges.
package filter

import (
	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/schedule"
)

// Membership records which named buckets a task occupies for a given
// boundary set. Every task additionally belongs to "all"; that is not
// tracked here.
type Membership struct {
	Overdue   bool
	Today     bool
	Upcoming  bool
	NoDueDate bool
	Focus     bool
}

// Classify evaluates the bucket rules for one task.
//
// Date buckets are half-open [start, end): a task due exactly at
// TodayEnd is upcoming, not today. Only active tasks occupy date
// buckets; completed and archived tasks never classify as overdue,
// today, upcoming, or focus regardless of their due date. A task with
// no due instant matches only no-due-date. Tasks due at or past
// WeekFromNow match no named bucket.
func Classify(t models.Task, b schedule.Boundaries) Membership {
	var m Membership

	if t.DueDate == nil {
		m.NoDueDate = true
		return m
	}
	if t.Status != models.StatusActive {
		return m
	}

	due := *t.DueDate
	switch {
	case due.Before(b.TodayStart):
		m.Overdue = true
	case due.Before(b.TodayEnd):
		m.Today = true
	case due.Before(b.WeekFromNow):
		m.Upcoming = true
	}
	m.Focus = m.Overdue || m.Today

	return m
}

// In reports membership in a single named bucket. BucketAll always
// matches.
func In(t models.Task, bucket models.Bucket, b schedule.Boundaries) bool {
	if bucket == models.BucketAll {
		return true
	}

	m := Classify(t, b)
	switch bucket {
	case models.BucketOverdue:
		return m.Overdue
	case models.BucketToday:
		return m.Today
	case models.BucketUpcoming:
		return m.Upcoming
	case models.BucketNoDueDate:
		return m.NoDueDate
	case models.BucketFocus:
		return m.Focus
	default:
		return false
	}
}
