// Package cache provides a thread-safe generic LRU cache used for memoizing
// derived parser state, such as the grammar definition tables keyed by
// endian precedence.
package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU provides a thread-safe wrapper around the `lru.Cache` library.
// It implements a simple Least Recently Used (LRU) cache with a fixed capacity.
//
// The LRU ensures thread safety by using a mutex to synchronize access to the
// underlying `lru.Cache` instance, so multiple goroutines may safely read from
// and write to the cache concurrently.
type LRU[K comparable, V any] struct {
	cache *lru.Cache[K, V] // Underlying lru.Cache instance
	mu    sync.Mutex       // Mutex for thread-safe access
}

// NewLRU creates a new LRU instance with the specified maximum size.
// It returns an error if the provided maxSize is invalid (e.g., negative).
func NewLRU[K comparable, V any](maxSize int) (*LRU[K, V], error) {
	cache, err := lru.New[K, V](maxSize)
	if err != nil {
		return nil, err
	}
	return &LRU[K, V]{cache: cache}, nil
}

// Add adds a key-value pair to the cache. If the cache is full, the least recently used entry will be evicted.
func (l *LRU[K, V]) Add(key K, value V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Add(key, value)
}

// Get retrieves the value associated with the given key from the cache.
// Returns the value and a boolean indicating whether the key was found.
func (l *LRU[K, V]) Get(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	value, ok := l.cache.Get(key)
	return value, ok
}

// GetOrAdd returns the cached value for key, computing and storing it with
// build on a miss. The build function runs outside the cache lock and may
// race with other callers; the first stored value wins.
func (l *LRU[K, V]) GetOrAdd(key K, build func() V) V {
	if v, ok := l.Get(key); ok {
		return v
	}
	v := build()
	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.cache.Get(key); ok {
		return existing
	}
	l.cache.Add(key, v)
	return v
}

// Remove removes the entry associated with the given key from the cache.
func (l *LRU[K, V]) Remove(key K) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Remove(key)
}

// Purge removes all entries from the cache.
func (l *LRU[K, V]) Purge() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Purge()
}

// Len returns the current number of entries in the cache.
func (l *LRU[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Len()
}
