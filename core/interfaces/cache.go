// Package interfaces defines the core interfaces used throughout the library.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations can be in-memory, Redis, SQLite, or any other store.
//
// Example usage:
//
//	cache := someCache // implements Cache interface
//
//	// Store a value for an hour
//	err := cache.Set(ctx, "guild:81384788765712384", data, 1*time.Hour)
//
//	// Store a value that never expires
//	err = cache.Set(ctx, "application:commands", data, 0)
//
//	// Retrieve a value
//	data, err := cache.Get(ctx, "guild:81384788765712384")
//	if errors.Is(err, coreerrors.ErrCacheMiss) {
//		// absent or expired
//	}
//
//	// Delete a value
//	err = cache.Delete(ctx, "guild:81384788765712384")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns ErrCacheMiss if the key is absent or its entry has expired.
	// Reading an expired entry removes it.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL,
	// replacing any existing entry and its expiry.
	// If ttl is 0, the value is stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
