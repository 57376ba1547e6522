package text

import (
	"slices"
	"sync"
)

// maxCachedAdvances is the soft limit of an OutlineFont's advance cache.
// UI code measures the same handful of labels every frame.
const maxCachedAdvances = 256

// advanceCache remembers shaped advances of strings for one face.
// When it grows past its soft limit, the least recently used quarter is
// evicted.
//
// advanceCache is safe for concurrent use.
type advanceCache struct {
	mu        sync.Mutex
	entries   map[string]*advanceEntry
	softLimit int
	tick      int64
}

type advanceEntry struct {
	advance float64
	atime   int64
}

// newAdvanceCache creates a cache holding about softLimit strings.
// A softLimit of 0 means unlimited.
func newAdvanceCache(softLimit int) *advanceCache {
	return &advanceCache{
		entries:   make(map[string]*advanceEntry),
		softLimit: softLimit,
	}
}

// advance returns the cached advance of s, calling measure on a miss.
// measure runs under the lock, so each string is shaped once.
func (c *advanceCache) advance(s string, measure func(string) float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[s]; ok {
		e.atime = c.tick
		return e.advance
	}

	adv := measure(s)
	c.entries[s] = &advanceEntry{advance: adv, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evict()
	}
	return adv
}

// len returns the number of cached strings.
func (c *advanceCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// clear drops every entry.
func (c *advanceCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*advanceEntry)
	c.tick = 0
}

// evict shrinks the cache to three quarters of its soft limit.
// Caller must hold c.mu.
func (c *advanceCache) evict() {
	target := max(c.softLimit*3/4, 1)
	excess := len(c.entries) - target
	if excess <= 0 {
		return
	}

	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return int(c.entries[a].atime - c.entries[b].atime)
	})
	for _, k := range keys[:excess] {
		delete(c.entries, k)
	}
}
