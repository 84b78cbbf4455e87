package text

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGetOrCreate(t *testing.T) {
	cache := NewCache[string, int](0)

	_, ok := cache.Get("key1")
	assert.False(t, ok)

	createCount := 0
	create := func() int {
		createCount++
		return 42
	}

	assert.Equal(t, 42, cache.GetOrCreate("key1", create))
	assert.Equal(t, 42, cache.GetOrCreate("key1", create))
	assert.Equal(t, 1, createCount, "second call must hit the cache")

	cache.GetOrCreate("key2", create)
	assert.Equal(t, 2, createCount)
	assert.Equal(t, 2, cache.Len())

	val, ok := cache.Get("key2")
	require.True(t, ok)
	assert.Equal(t, 42, val)
}

func TestCacheLRUEviction(t *testing.T) {
	cache := NewCache[string, int](4)
	for i, k := range []string{"a", "b", "c", "d"} {
		cache.GetOrCreate(k, func() int { return i })
	}
	_, ok := cache.Get("a") // a becomes the most recently used
	require.True(t, ok)

	cache.GetOrCreate("e", func() int { return 4 })

	assert.Equal(t, 3, cache.Len())
	for _, k := range []string{"a", "d", "e"} {
		_, ok := cache.Get(k)
		assert.True(t, ok, "key %q should survive eviction", k)
	}
	for _, k := range []string{"b", "c"} {
		_, ok := cache.Get(k)
		assert.False(t, ok, "key %q should be evicted", k)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	cache := NewCache[int, int](64)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				key := (g*200 + i) % 100
				assert.Equal(t, key*2, cache.GetOrCreate(key, func() int { return key * 2 }))
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 64)
}
