// ABOUTME: Byte-oriented adapter over the RedisJSON document cache
// ABOUTME: Lets JSON payloads flow through the generic cache contract

package rejson

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chatkit/pkg/config"
)

// JSONCache implements the Cache interface on top of RedisJSON.
// Values must be serialized JSON documents.
type JSONCache struct {
	doc *DocumentCache
}

// NewJSONCache creates a byte-oriented cache backed by RedisJSON. Keys
// are namespaced with prefix when it is non-empty.
func NewJSONCache(cfg config.RedisConfig, prefix string) (*JSONCache, error) {
	doc, err := NewDocumentCache(cfg, prefix)
	if err != nil {
		return nil, err
	}
	return &JSONCache{doc: doc}, nil
}

// Get retrieves the serialized document under key.
// Returns ErrCacheMiss if no document exists.
func (c *JSONCache) Get(ctx context.Context, key string) ([]byte, error) {
	var raw json.RawMessage
	if err := c.doc.Get(ctx, key, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Set stores value under key, replacing any existing document and its
// expiry. A zero ttl stores the document indefinitely.
func (c *JSONCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for key %q is not valid JSON", key)
	}
	return c.doc.Set(ctx, key, json.RawMessage(value), ttl)
}

// Delete removes the document under key.
// Removing an absent key is not an error.
func (c *JSONCache) Delete(ctx context.Context, key string) error {
	return c.doc.Delete(ctx, key)
}

// Close closes the Redis connection
func (c *JSONCache) Close() error {
	return c.doc.Close()
}
