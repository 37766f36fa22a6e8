// Package cache memoizes loaded definition sets between reloads.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

const (
	DefaultExpiration      = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute

	// NoExpiration keeps entries until deleted
	NoExpiration = gocache.NoExpiration
)

// Cache represents a typed key/value cache
type Cache[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V)
	Delete(ctx context.Context, keys ...string)
	Flush(ctx context.Context)
}

// InMemory is a go-cache backed Cache
type InMemory[V any] struct {
	useCase string
	ttl     time.Duration
	cache   *gocache.Cache
}

// Get returns cached value
func (c *InMemory[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V
	value, found := c.cache.Get(key)
	if !found {
		return zero, false
	}
	ret, ok := value.(V)
	if !ok {
		log.Error().Str("cache", c.useCase).Str("key", key).Msg("wrong type assertion when getting value")
		return zero, false
	}
	log.Debug().Str("cache", c.useCase).Str("key", key).Msg("cache hit")
	return ret, true
}

// Set stores value with the cache TTL
func (c *InMemory[V]) Set(ctx context.Context, key string, value V) {
	c.cache.Set(key, value, c.ttl)
}

// Delete removes keys
func (c *InMemory[V]) Delete(ctx context.Context, keys ...string) {
	for _, key := range keys {
		c.cache.Delete(key)
	}
}

// Flush removes every entry
func (c *InMemory[V]) Flush(ctx context.Context) {
	c.cache.Flush()
}

// Len returns number of cached entries, expired but not yet evicted included
func (c *InMemory[V]) Len() int {
	return c.cache.ItemCount()
}

// NewInMemory creates an in-memory cache; ttl <= 0 means entries never expire
func NewInMemory[V any](useCase string, ttl time.Duration) *InMemory[V] {
	if ttl <= 0 {
		ttl = NoExpiration
	}
	cleanup := DefaultCleanupInterval
	if ttl != NoExpiration && ttl < cleanup {
		cleanup = ttl
	}
	return &InMemory[V]{
		useCase: useCase,
		ttl:     ttl,
		cache:   gocache.New(ttl, cleanup),
	}
}
