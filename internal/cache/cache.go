// Package cache memoizes fetched snapshots for a bounded time window so
// repeated dashboard requests don't hammer the upstream provider.
package cache

import (
	"fmt"
	"sync"
	"time"

	"StockScope/internal/model"
)

type entry struct {
	snap    *model.Snapshot
	expires time.Time
}

// SnapshotCache is a TTL-bounded memo of (ticker, period) → Snapshot.
// Safe for concurrent use from multiple request handlers.
type SnapshotCache struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]entry

	// now is swappable for tests.
	now func() time.Time
}

// New creates a cache whose entries expire after ttl.
func New(ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func key(ticker string, period model.Period) string {
	return fmt.Sprintf("%s|%s", ticker, period)
}

// Get returns a cached snapshot if present and not yet expired.
func (c *SnapshotCache) Get(ticker string, period model.Period) (*model.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(ticker, period)
	e, ok := c.entries[k]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expires) {
		delete(c.entries, k)
		return nil, false
	}
	return e.snap, true
}

// Put stores a snapshot, replacing any previous entry for the same key.
func (c *SnapshotCache) Put(snap *model.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key(snap.Ticker, snap.Period)] = entry{
		snap:    snap,
		expires: c.now().Add(c.ttl),
	}
}

// Len returns the number of stored entries, expired ones included.
func (c *SnapshotCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
