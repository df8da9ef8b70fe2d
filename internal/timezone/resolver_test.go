package timezone

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/daybook-app/daybook/internal/cache"
)

type fakePrefs struct {
	zones   map[string]string
	err     error
	lookups int
}

func (f *fakePrefs) GetUserTimezone(_ context.Context, userID string) (string, error) {
	f.lookups++
	if f.err != nil {
		return "", f.err
	}
	return f.zones[userID], nil
}

func (f *fakePrefs) GetCompletedRetentionDays(context.Context, string) (int, error) {
	return 7, nil
}

func newTestResolver(prefs *fakePrefs) *Resolver {
	return NewResolver(prefs, cache.NewMemory[string](), time.Minute, zap.NewNop())
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{name: "valid zone", stored: "America/New_York", want: "America/New_York"},
		{name: "unset preference", stored: "", want: "UTC"},
		{name: "garbage zone", stored: "Not/A_Real_Zone", want: "UTC"},
		{name: "empty-ish junk", stored: "  ", want: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := &fakePrefs{zones: map[string]string{"u1": tt.stored}}
			r := newTestResolver(prefs)

			assert.Equal(t, tt.want, r.Resolve(context.Background(), "u1"))
		})
	}
}

func TestResolver_LookupErrorDegradesToUTC(t *testing.T) {
	prefs := &fakePrefs{err: errors.New("connection refused")}
	r := newTestResolver(prefs)

	assert.Equal(t, "UTC", r.Resolve(context.Background(), "u1"))
}

func TestResolver_CachesLookups(t *testing.T) {
	ctx := context.Background()
	prefs := &fakePrefs{zones: map[string]string{"u1": "Europe/Berlin"}}
	r := newTestResolver(prefs)

	for i := 0; i < 5; i++ {
		assert.Equal(t, "Europe/Berlin", r.Resolve(ctx, "u1"))
	}
	assert.Equal(t, 1, prefs.lookups, "repeated resolves should hit the cache")
}

func TestResolver_FallbackIsCachedToo(t *testing.T) {
	ctx := context.Background()
	prefs := &fakePrefs{zones: map[string]string{}}
	r := newTestResolver(prefs)

	r.Resolve(ctx, "u1")
	r.Resolve(ctx, "u1")
	assert.Equal(t, 1, prefs.lookups)
}

func TestResolver_Invalidate(t *testing.T) {
	ctx := context.Background()
	prefs := &fakePrefs{zones: map[string]string{"u1": "Asia/Singapore"}}
	r := newTestResolver(prefs)

	assert.Equal(t, "Asia/Singapore", r.Resolve(ctx, "u1"))

	prefs.zones["u1"] = "Asia/Tokyo"
	assert.Equal(t, "Asia/Singapore", r.Resolve(ctx, "u1"), "stale until invalidated")

	r.Invalidate(ctx, "u1")
	assert.Equal(t, "Asia/Tokyo", r.Resolve(ctx, "u1"))
	assert.Equal(t, 2, prefs.lookups)
}
