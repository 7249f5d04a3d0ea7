// ABOUTME: In-memory cache implementation using sync.Map for thread-safe operations
// ABOUTME: Entries expire lazily on read, with a periodic sweep for abandoned keys

package memory

import (
	"context"
	"sync"
	"time"

	coreerrors "chatkit/core/errors"
	"chatkit/core/interfaces"

	"github.com/bool64/stats"
)

// defaultSweepInterval is how often the background sweep scans for
// expired entries.
const defaultSweepInterval = 5 * time.Minute

// Metric names reported to the stats tracker.
const (
	MetricHit     = "cache_hit"
	MetricMiss    = "cache_miss"
	MetricExpired = "cache_expired"
	MetricWrite   = "cache_write"
	MetricDelete  = "cache_delete"
	MetricSwept   = "cache_swept"
)

// item represents a cached item with expiration
type item struct {
	value      []byte
	expiration time.Time
	noExpire   bool
}

func (i *item) expired(now time.Time) bool {
	return !i.noExpire && now.After(i.expiration)
}

// Config controls optional cache behavior.
type Config struct {
	// SweepInterval is the delay between background scans for expired
	// entries, default 5m.
	SweepInterval time.Duration

	// Logger receives per-operation debug events, can be nil.
	Logger interfaces.Logger

	// Stats is metrics collector, can be nil.
	Stats stats.Tracker
}

// MemoryCache implements the Cache interface using in-memory storage.
// An expired entry is removed by the read that finds it; the background
// sweep removes entries nothing reads anymore. Close stops the sweep.
type MemoryCache struct {
	items sync.Map
	log   interfaces.Logger
	stat  stats.Tracker

	sweepInterval time.Duration
	done          chan struct{}
	closeOnce     sync.Once
}

// NewMemoryCache creates an in-memory cache with the default sweep interval
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithConfig(Config{})
}

// NewMemoryCacheWithConfig creates an in-memory cache with optional logging,
// metrics, and a custom sweep interval
func NewMemoryCacheWithConfig(cfg Config) *MemoryCache {
	interval := cfg.SweepInterval
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	c := &MemoryCache{
		log:           cfg.Logger,
		stat:          cfg.Stats,
		sweepInterval: interval,
		done:          make(chan struct{}),
	}

	go c.sweepLoop()

	return c
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := c.items.Load(key)
	if !ok {
		if c.stat != nil {
			c.stat.Add(ctx, MetricMiss, 1)
		}
		return nil, coreerrors.ErrCacheMiss
	}

	entry := value.(*item)

	if entry.expired(time.Now()) {
		// Reads are authoritative for expiry; drop the entry now instead
		// of waiting for the next sweep. CompareAndDelete leaves the
		// entry alone if a concurrent Set already replaced it.
		c.items.CompareAndDelete(key, value)
		if c.log != nil {
			c.log.Debug("Cache entry expired", map[string]interface{}{"key": key})
		}
		if c.stat != nil {
			c.stat.Add(ctx, MetricExpired, 1)
		}
		return nil, coreerrors.ErrCacheMiss
	}

	if c.stat != nil {
		c.stat.Add(ctx, MetricHit, 1)
	}

	// Return a copy of the value
	result := make([]byte, len(entry.value))
	copy(result, entry.value)
	return result, nil
}

// Set stores a value in the cache, replacing any existing entry and its
// expiry. A zero ttl stores the value indefinitely.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Create a copy of the value
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	newItem := &item{
		value:    valueCopy,
		noExpire: ttl == 0,
	}

	if ttl > 0 {
		newItem.expiration = time.Now().Add(ttl)
	}

	c.items.Store(key, newItem)

	if c.log != nil {
		c.log.Debug("Cache entry stored", map[string]interface{}{
			"key": key,
			"ttl": ttl.String(),
		})
	}
	if c.stat != nil {
		c.stat.Add(ctx, MetricWrite, 1)
	}

	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.items.Delete(key)

	if c.stat != nil {
		c.stat.Add(ctx, MetricDelete, 1)
	}

	return nil
}

// Close stops the background sweep. The cache itself stays usable;
// expired entries are still dropped on read. Safe to call more than once.
func (c *MemoryCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
	})
	return nil
}

// sweepLoop periodically removes expired entries until Close is called
func (c *MemoryCache) sweepLoop() {
	ticker := time.NewTicker(c.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.done:
			return
		}
	}
}

// sweep removes expired entries in a single pass
func (c *MemoryCache) sweep() {
	now := time.Now()
	swept := 0

	c.items.Range(func(key, value interface{}) bool {
		entry := value.(*item)
		if entry.expired(now) && c.items.CompareAndDelete(key, value) {
			swept++
		}
		return true
	})

	if swept == 0 {
		return
	}

	if c.log != nil {
		c.log.Debug("Swept expired cache entries", map[string]interface{}{"count": swept})
	}
	if c.stat != nil {
		c.stat.Add(context.Background(), MetricSwept, float64(swept))
	}
}
