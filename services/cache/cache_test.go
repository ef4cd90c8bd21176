package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGetDelete(t *testing.T) {
	c := NewCache(time.Minute)

	_, exists := c.Get(KeyTags)
	assert.False(t, exists)

	c.Set(KeyTags, []byte(`["go","sql"]`))
	data, exists := c.Get(KeyTags)
	assert.True(t, exists)
	assert.Equal(t, []byte(`["go","sql"]`), data)

	c.Delete(KeyTags)
	_, exists = c.Get(KeyTags)
	assert.False(t, exists)
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(10 * time.Millisecond)

	c.Set(KeyEmployees, []byte(`[]`))
	time.Sleep(25 * time.Millisecond)

	_, exists := c.Get(KeyEmployees)
	assert.False(t, exists)
}

func TestCacheClear(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set(KeyCategories, []byte(`[]`))
	c.Set(KeyTags, []byte(`[]`))
	c.Clear()

	_, exists := c.Get(KeyCategories)
	assert.False(t, exists)
	_, exists = c.Get(KeyTags)
	assert.False(t, exists)
}
