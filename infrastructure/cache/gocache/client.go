// ABOUTME: Cache implementation backed by the patrickmn/go-cache library
// ABOUTME: Delegates expiry bookkeeping and cleanup to the library's janitor

package gocache

import (
	"context"
	"time"

	coreerrors "chatkit/core/errors"

	"github.com/patrickmn/go-cache"
)

// defaultCleanupInterval is how often the library's janitor purges
// expired entries.
const defaultCleanupInterval = 5 * time.Minute

// GoCache implements the Cache interface using the go-cache library.
// Unlike the plain in-memory cache, expired entry removal is handled by
// the library's own janitor goroutine.
type GoCache struct {
	cache *cache.Cache
}

// NewGoCache creates a go-cache backed cache. cleanupInterval controls
// the janitor cadence; values <= 0 fall back to the 5 minute default.
func NewGoCache(cleanupInterval time.Duration) *GoCache {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}
	return &GoCache{cache: cache.New(cache.NoExpiration, cleanupInterval)}
}

// Get retrieves a value from the cache
func (c *GoCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	val, found := c.cache.Get(key)
	if !found {
		return nil, coreerrors.ErrCacheMiss
	}

	stored, ok := val.([]byte)
	if !ok {
		return nil, coreerrors.ErrCacheMiss
	}

	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache, replacing any existing entry.
// A zero ttl maps onto the library's no-expiration marker.
func (c *GoCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	expiration := ttl
	if ttl == 0 {
		expiration = cache.NoExpiration
	}

	c.cache.Set(key, valueCopy, expiration)
	return nil
}

// Delete removes a key from the cache
func (c *GoCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}

// Count returns the number of entries, expired ones included until the
// janitor's next pass
func (c *GoCache) Count() int {
	return c.cache.ItemCount()
}
