// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - transport/rest: HTTP transport for the platform REST API
// - transport/retry: Retrying decorator with failure classification and backoff
// - cache/memory: In-memory cache with TTL support using sync.Map
// - cache/redis: Redis-based cache implementation
// - cache/rejson: RedisJSON-backed document and JSON caches
// - cache/gocache: Cache backed by the go-cache library
// - cache/sqlite: File-based cache that survives restarts
// - cache/noop: Cache stub for callers that opt out of caching
// - logger/standard: Simple structured logger on the standard log package
// - logger/logrus: Leveled structured logger backed by logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Transport
//
// The REST transport maps non-success responses to typed errors, and the
// retry decorator wraps any Transport with backoff:
//
//	base := rest.NewRESTTransport(rest.Config{BaseURL: "https://chat.example.com/api"})
//	transport := retry.NewRetryTransport(base, retry.Config{})
//	resp, err := transport.Post(ctx, "/channels/123/messages", opts)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	defer cache.Close()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cfg := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	cache, err := redis.NewRedisCache(cfg)
//
// # Logger
//
// The loggers support structured logging with fields:
//
//	logger := standard.NewStandardLogger()
//	logger.Info("Sending request", map[string]interface{}{
//	    "method": "POST",
//	    "route":  "/channels/123/messages",
//	})
package infrastructure
