package fontengine

// fontCache maps requested logical sizes to fonts for one mode.
// Entries are never evicted; Clear closes and drops all of them.
//
// fontCache is not safe for concurrent use.
type fontCache struct {
	entries map[uint32]Font
}

// newFontCache creates an empty cache.
func newFontCache() *fontCache {
	return &fontCache{entries: make(map[uint32]Font)}
}

// Get retrieves the font cached for size.
func (c *fontCache) Get(size uint32) (Font, bool) {
	f, ok := c.entries[size]
	return f, ok
}

// Set stores f for size unless an entry already exists. It reports
// whether f was stored; a font that was not stored stays with the caller.
func (c *fontCache) Set(size uint32, f Font) bool {
	if _, ok := c.entries[size]; ok {
		return false
	}
	c.entries[size] = f
	return true
}

// Len returns the number of cached fonts.
func (c *fontCache) Len() int {
	return len(c.entries)
}

// Clear removes every entry, passing each one to release first.
func (c *fontCache) Clear(release func(size uint32, f Font)) {
	for size, f := range c.entries {
		release(size, f)
	}
	c.entries = make(map[uint32]Font)
}
