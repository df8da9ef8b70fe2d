package cache

import (
	"context"
	"sync"
	"time"
)

// sweepSample bounds how many entries one call inspects for expiry.
const sweepSample = 8

type memoryEntry[V any] struct {
	value     V
	expiresAt time.Time
}

// Memory is an in-process TTL cache. Expired entries are dropped lazily:
// a Get that lands on one removes it, and every Set sweeps a small
// random sample of the map. There is no background goroutine, so the
// cache never outlives its callers and cleanup cost stays on the write
// path that caused it.
type Memory[V any] struct {
	mu      sync.Mutex
	entries map[string]memoryEntry[V]
	now     func() time.Time
}

// NewMemory creates an empty in-memory cache.
func NewMemory[V any]() *Memory[V] {
	return NewMemoryWithClock[V](time.Now)
}

// NewMemoryWithClock creates a cache reading time from the given clock.
func NewMemoryWithClock[V any](now func() time.Time) *Memory[V] {
	return &Memory[V]{
		entries: make(map[string]memoryEntry[V]),
		now:     now,
	}
}

func (m *Memory[V]) Get(_ context.Context, key string) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if !m.now().Before(entry.expiresAt) {
		delete(m.entries, key)
		var zero V
		return zero, false
	}
	return entry.value, true
}

func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweepLocked()
	m.entries[key] = memoryEntry[V]{
		value:     value,
		expiresAt: m.now().Add(ttl),
	}
}

func (m *Memory[V]) Delete(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Len reports the number of live entries, expired or not yet swept
// included.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// sweepLocked drops up to sweepSample expired entries. Map iteration
// order is randomized by the runtime, which gives the random sampling
// for free.
func (m *Memory[V]) sweepLocked() {
	now := m.now()
	inspected := 0
	for key, entry := range m.entries {
		if inspected >= sweepSample {
			break
		}
		inspected++
		if !now.Before(entry.expiresAt) {
			delete(m.entries, key)
		}
	}
}
