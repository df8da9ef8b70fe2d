package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_Ordering(t *testing.T) {
	zones := []string{
		"UTC",
		"America/New_York",
		"Asia/Singapore",
		"Asia/Kathmandu",
		"Australia/Lord_Howe", // 30-minute DST shift
		"Pacific/Chatham",     // UTC+12:45
		"Pacific/Kiritimati",  // UTC+14
		"Pacific/Pago_Pago",   // UTC-11
	}
	instants := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 11, 3, 6, 30, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 13, 0, 0, 0, time.UTC),
	}

	for _, zone := range zones {
		for _, now := range instants {
			b, err := Compute(zone, 7, now)
			require.NoError(t, err, "zone %s now %v", zone, now)

			assert.True(t, b.Ordered(), "boundaries out of order for %s at %v: %+v", zone, now, b)
			assert.True(t, b.TodayEnd.Before(b.WeekFromNow),
				"week window collapsed for %s at %v", zone, now)

			// now always falls inside [TodayStart, TodayEnd)
			assert.False(t, now.Before(b.TodayStart), "now before today in %s", zone)
			assert.True(t, now.Before(b.TodayEnd), "now past today in %s", zone)

			// day length is 24h give or take a DST shift
			day := b.TodayEnd.Sub(b.TodayStart)
			assert.GreaterOrEqual(t, day, 22*time.Hour, "%s at %v", zone, now)
			assert.LessOrEqual(t, day, 26*time.Hour, "%s at %v", zone, now)
		}
	}
}

func TestCompute_SpringForwardDay(t *testing.T) {
	// US DST starts 2024-03-10 02:00 EST; that local day is 23 hours.
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	b, err := Compute("America/New_York", 7, now)
	require.NoError(t, err)

	assert.True(t, b.TodayStart.Equal(time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC)))
	assert.True(t, b.TodayEnd.Equal(time.Date(2024, 3, 11, 4, 0, 0, 0, time.UTC)))
	assert.Equal(t, 23*time.Hour, b.TodayEnd.Sub(b.TodayStart))
}

func TestCompute_FallBackDay(t *testing.T) {
	// US DST ends 2024-11-03; that local day is 25 hours.
	now := time.Date(2024, 11, 3, 12, 0, 0, 0, time.UTC)

	b, err := Compute("America/New_York", 7, now)
	require.NoError(t, err)

	assert.True(t, b.TodayStart.Equal(time.Date(2024, 11, 3, 4, 0, 0, 0, time.UTC)))
	assert.True(t, b.TodayEnd.Equal(time.Date(2024, 11, 4, 5, 0, 0, 0, time.UTC)))
	assert.Equal(t, 25*time.Hour, b.TodayEnd.Sub(b.TodayStart))
}

func TestCompute_HalfHourDSTShift(t *testing.T) {
	// Lord Howe Island shifts by 30 minutes; DST ended 2024-04-07.
	now := time.Date(2024, 4, 6, 20, 0, 0, 0, time.UTC)

	b, err := Compute("Australia/Lord_Howe", 7, now)
	require.NoError(t, err)

	assert.True(t, b.Ordered())
	assert.Equal(t, 24*time.Hour+30*time.Minute, b.TodayEnd.Sub(b.TodayStart))
}

func TestCompute_LocalDateAheadOfUTC(t *testing.T) {
	// 16:30Z on March 10 is already 00:30 on March 11 in Singapore, so
	// "today" must be the 11th there.
	now := time.Date(2024, 3, 10, 16, 30, 0, 0, time.UTC)

	b, err := Compute("Asia/Singapore", 7, now)
	require.NoError(t, err)

	assert.True(t, b.TodayStart.Equal(time.Date(2024, 3, 10, 16, 0, 0, 0, time.UTC)))
	assert.True(t, b.TodayEnd.Equal(time.Date(2024, 3, 11, 16, 0, 0, 0, time.UTC)))
}

func TestCompute_CompletedCutoff(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	b, err := Compute("UTC", 7, now)
	require.NoError(t, err)
	assert.True(t, b.CompletedCutoff.Equal(time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)))

	// A non-positive window still keeps the cutoff strictly before today.
	b, err = Compute("UTC", 0, now)
	require.NoError(t, err)
	assert.True(t, b.CompletedCutoff.Equal(time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)))
	assert.True(t, b.Ordered())
}

func TestCompute_WeekCrossesMonthEnd(t *testing.T) {
	now := time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC)

	b, err := Compute("UTC", 7, now)
	require.NoError(t, err)

	assert.True(t, b.WeekFromNow.Equal(time.Date(2024, 2, 7, 0, 0, 0, 0, time.UTC)))
}

func TestCompute_UnknownZone(t *testing.T) {
	_, err := Compute("Not/A_Zone", 7, time.Now())
	require.Error(t, err)
}
