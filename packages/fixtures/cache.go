package fixtures

import (
	"sync"
)

// Cache holds fixture content keyed by logical path. Once stored an entry is
// not replaced until Clear.
type Cache struct {
	entries map[string]string
	mutex   sync.RWMutex
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]string),
	}
}

// Get returns the cached content and whether it was present
func (c *Cache) Get(path string) (string, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	content, ok := c.entries[path]
	return content, ok
}

// Add stores content unless the path is already cached. It reports whether
// the entry was added.
func (c *Cache) Add(path, content string) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if _, ok := c.entries[path]; ok {
		return false
	}
	c.entries[path] = content
	return true
}

// Len returns the number of cached fixtures
func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}

// Clear removes every entry
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = make(map[string]string)
}
