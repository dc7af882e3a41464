package storage

import (
	"github.com/maypok86/otter/v2"
	"sync/atomic"
	"time"
)

// Cache is a bounded string-keyed cache. With ttl > 0 entries expire ttl
// after they were written.
type Cache[T any] struct {
	outer *otter.Cache[string, T]

	ttl atomic.Int64
	cap atomic.Int64
}

func NewCache[T any](capacity int, ttl time.Duration) *Cache[T] {
	var expiry otter.ExpiryCalculator[string, T]
	if ttl > 0 {
		expiry = otter.ExpiryWriting[string, T](ttl)
	}
	return newCache(capacity, ttl, expiry)
}

// NewIdleCache is like NewCache, but entries expire ttl after they were last
// read or written.
func NewIdleCache[T any](capacity int, ttl time.Duration) *Cache[T] {
	var expiry otter.ExpiryCalculator[string, T]
	if ttl > 0 {
		expiry = otter.ExpiryAccessing[string, T](ttl)
	}
	return newCache(capacity, ttl, expiry)
}

func newCache[T any](capacity int, ttl time.Duration, expiry otter.ExpiryCalculator[string, T]) *Cache[T] {
	opts := &otter.Options[string, T]{
		MaximumSize:      capacity,
		InitialCapacity:  min(capacity, 1024),
		ExpiryCalculator: expiry,
	}

	c := &Cache[T]{outer: otter.Must(opts)}
	c.ttl.Store(ttl.Nanoseconds())
	c.cap.Store(int64(capacity))

	return c
}

func (c *Cache[T]) Set(key string, val T) {
	c.outer.Set(key, val)
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.outer.GetIfPresent(key)
}

// GetOrSet returns the value stored under key, storing create() first if
// there is none. Concurrent callers for the same key share one value.
func (c *Cache[T]) GetOrSet(key string, create func() T) T {
	val, _ := c.outer.ComputeIfAbsent(key, func() (T, bool) {
		return create(), false
	})
	return val
}

func (c *Cache[T]) Len() int {
	return c.outer.EstimatedSize()
}

func (c *Cache[T]) ClearKey(key string) {
	c.outer.Invalidate(key)
}

func (c *Cache[T]) ClearAll() {
	c.outer.InvalidateAll()
}

func (c *Cache[T]) GetCapacity() int {
	return int(c.cap.Load())
}

func (c *Cache[T]) GetTTL() time.Duration {
	return time.Duration(c.ttl.Load())
}
