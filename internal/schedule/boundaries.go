package schedule

import (
	"fmt"
	"time"
)

// Boundaries are the absolute cut points classifying one user's tasks at
// one instant. TodayEnd doubles as tomorrow's start; intervals are
// half-open [start, end). Ephemeral: recomputed per request, never
// persisted.
type Boundaries struct {
	TodayStart      time.Time
	TodayEnd        time.Time
	WeekFromNow     time.Time
	CompletedCutoff time.Time
}

// Compute derives the boundary set for a timezone at a given instant.
// completedWindowDays is how many calendar days of completed tasks stay
// visible.
//
// Each boundary re-derives its own calendar date in the zone rather than
// adding fixed 24h multiples to TodayStart, so days shortened or
// stretched by DST shifts of any size (including the 30-minute zones)
// land on real local midnights. time.Date normalizes day arithmetic
// across month and year ends.
func Compute(zone string, completedWindowDays int, now time.Time) (Boundaries, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Boundaries{}, fmt.Errorf("load timezone %q: %w", zone, err)
	}
	if completedWindowDays < 1 {
		completedWindowDays = 1
	}

	year, month, day := now.In(loc).Date()

	b := Boundaries{
		TodayStart:      localMidnight(year, month, day, loc),
		TodayEnd:        localMidnight(year, month, day+1, loc),
		WeekFromNow:     localMidnight(year, month, day+7, loc),
		CompletedCutoff: localMidnight(year, month, day-completedWindowDays, loc),
	}
	return b, nil
}

// Ordered reports whether the boundary set is internally consistent:
// CompletedCutoff < TodayStart < TodayEnd <= WeekFromNow.
func (b Boundaries) Ordered() bool {
	return b.CompletedCutoff.Before(b.TodayStart) &&
		b.TodayStart.Before(b.TodayEnd) &&
		!b.TodayEnd.After(b.WeekFromNow)
}
