package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUTC(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
		zone    string
		want    time.Time
		wantErr error
	}{
		{
			name:    "utc midnight",
			dateStr: "2024-03-15",
			zone:    "UTC",
			want:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "new york during DST",
			dateStr: "2024-03-15",
			zone:    "America/New_York",
			want:    time.Date(2024, 3, 15, 4, 0, 0, 0, time.UTC),
		},
		{
			name:    "new york outside DST",
			dateStr: "2024-01-15",
			zone:    "America/New_York",
			want:    time.Date(2024, 1, 15, 5, 0, 0, 0, time.UTC),
		},
		{
			name:    "singapore fixed offset",
			dateStr: "2024-03-11",
			zone:    "Asia/Singapore",
			want:    time.Date(2024, 3, 10, 16, 0, 0, 0, time.UTC),
		},
		{
			name:    "kathmandu 45 minute offset",
			dateStr: "2024-06-01",
			zone:    "Asia/Kathmandu",
			want:    time.Date(2024, 5, 31, 18, 15, 0, 0, time.UTC),
		},
		{
			name:    "leap day on a leap year",
			dateStr: "2024-02-29",
			zone:    "UTC",
			want:    time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "leap day on a non-leap year",
			dateStr: "2023-02-29",
			zone:    "UTC",
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "impossible month",
			dateStr: "2023-13-01",
			zone:    "UTC",
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "impossible day",
			dateStr: "2023-04-31",
			zone:    "UTC",
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "wrong field order",
			dateStr: "15-03-2024",
			zone:    "UTC",
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "missing zero padding",
			dateStr: "2024-3-5",
			zone:    "UTC",
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "trailing time component",
			dateStr: "2024-03-15T00:00:00Z",
			zone:    "UTC",
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "empty string",
			dateStr: "",
			zone:    "UTC",
			wantErr: ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUTC(tt.dateStr, tt.zone)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestToUTC_UnknownZone(t *testing.T) {
	_, err := ToUTC("2024-03-15", "Mars/Olympus_Mons")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidDateFormat)
}

func TestToUTC_RoundTrip(t *testing.T) {
	zones := []string{
		"UTC",
		"America/New_York",
		"America/Los_Angeles",
		"Europe/Berlin",
		"Asia/Singapore",
		"Asia/Kathmandu",
		"Australia/Lord_Howe",
		"Pacific/Chatham",
	}
	dates := []string{
		"2024-01-01",
		"2024-02-29",
		"2024-03-10", // US spring-forward day
		"2024-06-30",
		"2024-11-03", // US fall-back day
		"2024-12-31",
	}

	for _, zone := range zones {
		for _, date := range dates {
			instant, err := ToUTC(date, zone)
			require.NoError(t, err, "zone %s date %s", zone, date)

			back, err := FormatDate(instant, zone)
			require.NoError(t, err)
			assert.Equal(t, date, back, "round trip in %s", zone)
		}
	}
}

func TestToUTC_Deterministic(t *testing.T) {
	first, err := ToUTC("2024-07-04", "America/New_York")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := ToUTC("2024-07-04", "America/New_York")
		require.NoError(t, err)
		assert.True(t, first.Equal(again))
	}
}
