package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicmunky/chronic/utils/cache"
)

func TestLRU(t *testing.T) {
	c, err := cache.NewLRU[string, int](2)
	require.NoError(t, err)

	c.Add("a", 1)
	c.Add("b", 2)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	c.Add("c", 3)
	assert.Equal(t, 2, c.Len())

	// "b" was least recently used and should have been evicted.
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestGetOrAdd(t *testing.T) {
	c, err := cache.NewLRU[string, int](4)
	require.NoError(t, err)

	calls := 0
	build := func() int {
		calls++
		return 42
	}

	assert.Equal(t, 42, c.GetOrAdd("k", build))
	assert.Equal(t, 42, c.GetOrAdd("k", build))
	assert.Equal(t, 1, calls, "build runs once per key")
}
