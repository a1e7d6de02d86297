// Package sheet owns everything between generated CSS text and the host
// stylesheet: the bounded rule cache, the flush batcher, and the injection
// layer with its literal-rule dedup and per-scope replacement.
package sheet

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheCapacity bounds the rule cache when no capacity is given.
const DefaultCacheCapacity = 1024

// RuleCache memoizes generated CSS blocks by canonical request key. It is
// LRU-bounded so long sessions with many distinct configurations do not
// grow memory without limit.
type RuleCache struct {
	mu       sync.RWMutex
	lru      *lru.Cache[string, []string]
	capacity int
	hits     uint64
	misses   uint64
}

// NewRuleCache creates a cache holding at most capacity entries.
// capacity <= 0 selects DefaultCacheCapacity.
func NewRuleCache(capacity int) *RuleCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	// lru.New only fails on non-positive capacity.
	c, _ := lru.New[string, []string](capacity)
	return &RuleCache{lru: c, capacity: capacity}
}

// Capacity reports the maximum number of entries the cache holds.
func (c *RuleCache) Capacity() int {
	return c.capacity
}

// Get returns the cached blocks for key and records a hit or miss.
func (c *RuleCache) Get(key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	blocks, ok := c.lru.Get(key)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return blocks, ok
}

// Set stores blocks under key, possibly evicting the least recently used
// entry.
func (c *RuleCache) Set(key string, blocks []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, blocks)
}

// Len reports the number of cached entries.
func (c *RuleCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lru.Len()
}

// Hits reports lookups served from cache.
func (c *RuleCache) Hits() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits
}

// Misses reports lookups that required generation.
func (c *RuleCache) Misses() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.misses
}

// HitRate reports hits/(hits+misses), or 0 before any lookup.
func (c *RuleCache) HitRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	if total == 0 {
		return 0
	}
	return float64(c.hits) / float64(total)
}

// Reset discards all entries and counters. Intended for dev tooling and
// test isolation.
func (c *RuleCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
	c.hits = 0
	c.misses = 0
}
