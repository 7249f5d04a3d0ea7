// ABOUTME: Main client for the chatkit library wiring transport, retry, cache, and logging
// ABOUTME: Offers a configured entry point for platform requests without manual assembly

package chatkit

import (
	"context"
	"io"

	coreerrors "chatkit/core/errors"
	"chatkit/core/interfaces"
	"chatkit/infrastructure/cache/gocache"
	"chatkit/infrastructure/cache/memory"
	"chatkit/infrastructure/cache/noop"
	rediscache "chatkit/infrastructure/cache/redis"
	"chatkit/infrastructure/cache/rejson"
	"chatkit/infrastructure/cache/sqlite"
	"chatkit/infrastructure/logger/standard"
	"chatkit/infrastructure/transport/rest"
	"chatkit/infrastructure/transport/retry"
	"chatkit/pkg/config"
)

// Client is the main entry point for the library. It sends mutating
// requests through a retrying transport and exposes the shared cache
// and logger.
type Client struct {
	transport interfaces.Transport
	deps      interfaces.Dependencies
	config    Config

	// ownsCache marks a cache constructed here rather than injected,
	// so Close only releases what NewClient created.
	ownsCache bool
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	var config Config

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	logger := config.Logger
	if logger == nil {
		logger = standard.NewStandardLogger()
	}

	cache := config.Cache
	ownsCache := false
	if cache == nil {
		built, err := buildCache(config.cacheConfig, logger, config)
		if err != nil {
			return nil, err
		}
		cache = built
		ownsCache = true
	}

	transport := config.Transport
	if transport == nil {
		transport = rest.NewRESTTransport(rest.Config{
			BaseURL:   config.BaseURL,
			Timeout:   config.Timeout,
			UserAgent: config.UserAgent,
		})
	}

	if !config.DisableRetry {
		retryCfg := config.Retry
		retryCfg.Logger = logger
		retryCfg.Stats = config.Stats
		transport = retry.NewRetryTransport(transport, retryCfg)
	}

	deps := interfaces.Dependencies{
		Cache:     cache,
		Transport: transport,
		Logger:    logger,
	}

	return &Client{
		transport: transport,
		deps:      deps,
		config:    config,
		ownsCache: ownsCache,
	}, nil
}

// buildCache constructs the cache backend selected by cc. A nil cc
// means no external configuration was supplied and the in-memory cache
// is used.
func buildCache(cc *config.CacheConfig, logger interfaces.Logger, cfg Config) (interfaces.Cache, error) {
	if cc == nil {
		return memory.NewMemoryCacheWithConfig(memory.Config{
			Logger: logger,
			Stats:  cfg.Stats,
		}), nil
	}

	switch cc.Type {
	case config.CacheTypeMemory, "":
		return memory.NewMemoryCacheWithConfig(memory.Config{
			SweepInterval: cc.Memory.SweepInterval(),
			Logger:        logger,
			Stats:         cfg.Stats,
		}), nil
	case config.CacheTypeGoCache:
		return gocache.NewGoCache(cc.Memory.SweepInterval()), nil
	case config.CacheTypeRedis:
		return rediscache.NewRedisCache(cc.Redis)
	case config.CacheTypeRedisJSON:
		return rejson.NewJSONCache(cc.Redis, "")
	case config.CacheTypeSQLite:
		return sqlite.NewSQLiteCache(cc.SQLite.Path)
	case config.CacheTypeNone:
		return noop.NewNoopCache(), nil
	default:
		return nil, &coreerrors.ValidationError{Field: "cache.type", Message: "unknown cache backend " + cc.Type}
	}
}

// Post sends a POST request through the retrying transport
func (c *Client) Post(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	return c.transport.Post(ctx, route, opts)
}

// Patch sends a PATCH request through the retrying transport
func (c *Client) Patch(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	return c.transport.Patch(ctx, route, opts)
}

// Delete sends a DELETE request through the retrying transport
func (c *Client) Delete(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	return c.transport.Delete(ctx, route, opts)
}

// Cache returns the configured cache backend
func (c *Client) Cache() interfaces.Cache {
	return c.deps.Cache
}

// Logger returns the configured logger
func (c *Client) Logger() interfaces.Logger {
	return c.deps.Logger
}

// Transport returns the transport requests are sent through, including
// the retry decorator unless retrying was disabled
func (c *Client) Transport() interfaces.Transport {
	return c.transport
}

// Dependencies returns the assembled dependency container for callers
// that construct services themselves
func (c *Client) Dependencies() interfaces.Dependencies {
	return c.deps
}

// Close releases resources held by a cache the client constructed.
// Injected caches are left for their owners to close.
func (c *Client) Close() error {
	if !c.ownsCache {
		return nil
	}
	if closer, ok := c.deps.Cache.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
