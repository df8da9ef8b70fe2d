package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory[string]()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	c.Set(ctx, "tz", "America/New_York", time.Minute)
	got, ok := c.Get(ctx, "tz")
	assert.True(t, ok)
	assert.Equal(t, "America/New_York", got)

	// replacement, not mutation
	c.Set(ctx, "tz", "UTC", time.Minute)
	got, _ = c.Get(ctx, "tz")
	assert.Equal(t, "UTC", got)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	c := NewMemoryWithClock[int](clock)

	c.Set(ctx, "counts", 42, 10*time.Second)

	now = now.Add(9 * time.Second)
	got, ok := c.Get(ctx, "counts")
	assert.True(t, ok)
	assert.Equal(t, 42, got)

	now = now.Add(2 * time.Second)
	_, ok = c.Get(ctx, "counts")
	assert.False(t, ok, "entry should expire after its TTL")
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewMemory[string]()

	c.Set(ctx, "tz", "Europe/Berlin", time.Minute)
	c.Delete(ctx, "tz")

	_, ok := c.Get(ctx, "tz")
	assert.False(t, ok)
}

func TestMemory_NonPositiveTTLIgnored(t *testing.T) {
	ctx := context.Background()
	c := NewMemory[string]()

	c.Set(ctx, "tz", "UTC", 0)
	_, ok := c.Get(ctx, "tz")
	assert.False(t, ok)
}

func TestMemory_SweepEvictsExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	c := NewMemoryWithClock[int](clock)

	for i := 0; i < 20; i++ {
		c.Set(ctx, fmt.Sprintf("stale-%d", i), i, time.Second)
	}
	assert.Equal(t, 20, c.Len())

	now = now.Add(time.Minute)

	// Writes sweep a sample of the map, so repeated writes drain the
	// stale entries without any background goroutine.
	for i := 0; i < 20; i++ {
		c.Set(ctx, "fresh", i, time.Minute)
	}
	assert.Less(t, c.Len(), 20)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewMemory[int]()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", i%10)
				c.Set(ctx, key, g, 50*time.Millisecond)
				c.Get(ctx, key)
				if i%17 == 0 {
					c.Delete(ctx, key)
				}
			}
		}(g)
	}
	wg.Wait()
}
