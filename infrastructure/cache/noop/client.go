// ABOUTME: No-op cache implementation for callers that opt out of caching
// ABOUTME: Reads always miss and writes are discarded

package noop

import (
	"context"
	"time"

	coreerrors "chatkit/core/errors"
)

// NoopCache satisfies the Cache interface without storing anything.
// It lets the rest of the client treat caching as always present.
type NoopCache struct{}

// NewNoopCache creates a no-op cache
func NewNoopCache() NoopCache {
	return NoopCache{}
}

// Get never finds anything
func (NoopCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, coreerrors.ErrCacheMiss
}

// Set discards the value
func (NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing
func (NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}
