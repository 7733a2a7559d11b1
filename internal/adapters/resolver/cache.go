package resolver

import (
	"sync"

	"go.trai.ch/plugkit/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes resolution results for the process lifetime. It is safe
// for concurrent use; concurrent fills of the same key collapse into a
// single computation. Resolution is a pure function of environment and
// filesystem at a point in time, so recomputing after a racing Clear is
// harmless.
type Cache struct {
	mu      sync.RWMutex
	entries map[domain.CacheKey]string
	group   singleflight.Group
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[domain.CacheKey]string)}
}

// Resolve returns the memoized result for key, computing it with fn on the
// first call. Failed computations are not memoized.
func (c *Cache) Resolve(key domain.CacheKey, fn func() (string, error)) (string, error) {
	c.mu.RLock()
	path, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return path, nil
	}

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		path, err := fn()
		if err != nil {
			return "", err
		}
		c.mu.Lock()
		c.entries[key] = path
		c.mu.Unlock()
		return path, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Len reports the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops all memoized entries immediately.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}
