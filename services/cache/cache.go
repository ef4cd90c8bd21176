// Package cache is a small in-memory TTL cache for read-heavy list
// endpoints (employees, categories, tags). Staff and taxonomy mutations
// invalidate the affected keys; readers fall through to the database on a
// miss.
package cache

import (
	"sync"
	"time"
)

type Cache struct {
	mu   sync.RWMutex
	data map[string]cacheItem
	ttl  time.Duration
}

type cacheItem struct {
	value    []byte
	cachedAt time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		data: make(map[string]cacheItem),
		ttl:  ttl,
	}
}

func (c *Cache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = cacheItem{
		value:    value,
		cachedAt: time.Now(),
	}
}

func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, false
	}

	if time.Since(item.cachedAt) > c.ttl {
		return nil, false
	}

	return item.value, true
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[string]cacheItem)
}

// Well-known keys for the cached lists.
const (
	KeyEmployees  = "list:employees"
	KeyCategories = "list:categories"
	KeyTags       = "list:tags"
)
