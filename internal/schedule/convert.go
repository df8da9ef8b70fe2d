// Package schedule holds the civil-date math behind task classification:
// converting date-only input to absolute instants and computing the
// per-user day/week boundaries used by every filter and count.
//
// All functions here are pure. "Now" is always a parameter, never read
// from the wall clock, so callers and tests get identical answers for
// identical inputs.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateFormat reports a due-date string that is not a real
// calendar date in strict YYYY-MM-DD form. This is the one validation
// error the engine surfaces rather than recovers from: silently storing
// a different date would corrupt the task.
var ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

// civilDateLayout is the only accepted wire format for date-only input.
const civilDateLayout = "2006-01-02"

// ToUTC converts a calendar date plus an IANA timezone into the UTC
// instant of local midnight on that date.
//
// The round-trip property holds: FormatDate(ToUTC(s, zone), zone) == s
// for every valid input. Malformed strings and impossible dates (a
// non-leap Feb 29, month 13) fail with ErrInvalidDateFormat.
func ToUTC(dateStr, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("load timezone %q: %w", zone, err)
	}

	parsed, err := time.Parse(civilDateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, dateStr)
	}

	return localMidnight(parsed.Year(), parsed.Month(), parsed.Day(), loc), nil
}

// FormatDate renders an absolute instant as the calendar date it falls
// on in the given zone.
func FormatDate(t time.Time, zone string) (string, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return "", fmt.Errorf("load timezone %q: %w", zone, err)
	}
	return t.In(loc).Format(civilDateLayout), nil
}

// localMidnight returns the instant the clock in loc reaches 00:00 on
// the given civil date, as UTC. On dates where a DST jump removes
// midnight, time.Date normalizes to the instant the clock actually
// shows, which keeps boundary ordering intact.
func localMidnight(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, loc).UTC()
}
