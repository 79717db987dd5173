package threatfeed

import (
	"sync"
	"time"

	"github.com/riskdigest/digest-backend/model"
)

// cacheKey identifies one fetch window. Key-space stays small because only a
// handful of (days, limit) combinations are ever requested.
type cacheKey struct {
	Days  int
	Limit int
}

type cacheEntry struct {
	fetchedAt time.Time
	records   []model.VulnerabilityRecord
}

// Cache is a process-wide TTL cache for normalized vulnerability records.
// Entries older than the TTL are never returned. There is no per-key locking
// around misses: concurrent callers may both fetch and both write, last write
// wins, which is fine because results for the same window are idempotent
// within the TTL.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[cacheKey]cacheEntry
}

// NewCache creates a cache with the given TTL
func NewCache(ttl time.Duration) *Cache {
	return NewCacheWithClock(ttl, time.Now)
}

// NewCacheWithClock creates a cache with an injectable clock for tests
func NewCacheWithClock(ttl time.Duration, now func() time.Time) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     now,
		entries: make(map[cacheKey]cacheEntry),
	}
}

// Get returns the cached records for the window if present and fresh
func (c *Cache) Get(days, limit int) ([]model.VulnerabilityRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[cacheKey{Days: days, Limit: limit}]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		return nil, false
	}
	return entry.records, true
}

// Put overwrites the entry for the window with fresh records
func (c *Cache) Put(days, limit int, records []model.VulnerabilityRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey{Days: days, Limit: limit}] = cacheEntry{
		fetchedAt: c.now(),
		records:   records,
	}
}

// Len reports how many windows are currently cached, fresh or stale
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
