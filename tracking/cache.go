// SPDX-License-Identifier: GPL-3.0-only

package tracking

import (
	"sync"
	"time"
)

type cacheEntry struct {
	value     LookupResult
	expiresAt time.Time
}

// ResultCache memoizes enriched lookup results per canonical number. Expired
// entries are treated as misses and purged lazily on the next access; there
// is no background sweep. Concurrent writers racing on the same key are fine,
// last writer wins.
//
// With MaxEntries > 0 the cache additionally evicts the oldest-inserted entry
// once the bound is exceeded, matching the offline client's bounded cache.
// Eviction is by insertion order, not access order.
type ResultCache struct {
	mu         sync.Mutex
	entries    map[string]cacheEntry
	order      []string
	ttl        time.Duration
	maxEntries int

	// Now is swappable so tests can pin expiry.
	Now func() time.Time
}

func NewResultCache(ttl time.Duration, maxEntries int) *ResultCache {
	return &ResultCache{
		entries:    make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		Now:        time.Now,
	}
}

func (c *ResultCache) Get(key string) (LookupResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return LookupResult{}, false
	}
	if c.Now().After(entry.expiresAt) {
		c.remove(key)
		return LookupResult{}, false
	}
	return entry.value.Clone(), true
}

// Put stores a result under key. A non-positive ttl falls back to the cache
// default.
func (c *ResultCache) Put(key string, value LookupResult, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.ttl
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = cacheEntry{
		value:     value.Clone(),
		expiresAt: c.Now().Add(ttl),
	}

	for c.maxEntries > 0 && len(c.entries) > c.maxEntries {
		c.remove(c.order[0])
	}
}

func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove must be called with the lock held.
func (c *ResultCache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
