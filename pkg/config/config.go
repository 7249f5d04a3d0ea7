// ABOUTME: Configuration management for the client with environment variable support
// ABOUTME: Defines configuration structures for transport, retry, and cache settings

package config

import (
	"os"
	"strconv"
	"time"

	coreerrors "chatkit/core/errors"
)

// Cache backend names accepted by CacheConfig.Type.
const (
	CacheTypeMemory    = "memory"
	CacheTypeRedis     = "redis"
	CacheTypeRedisJSON = "rejson"
	CacheTypeGoCache   = "gocache"
	CacheTypeSQLite    = "sqlite"
	CacheTypeNone      = "none"
)

// Config holds all client configuration
type Config struct {
	// Transport contains HTTP transport configuration
	Transport TransportConfig

	// Retry contains retry policy configuration
	Retry RetryConfig

	// Cache contains cache configuration
	Cache CacheConfig
}

// TransportConfig holds HTTP transport configuration
type TransportConfig struct {
	// BaseURL is prepended to relative routes. Empty means routes must
	// be absolute.
	BaseURL string

	// TimeoutSeconds is the per-request timeout in seconds
	TimeoutSeconds int

	// UserAgent overrides the default User-Agent header
	UserAgent string
}

// Timeout returns the per-request timeout as a duration
func (t TransportConfig) Timeout() time.Duration {
	return time.Duration(t.TimeoutSeconds) * time.Second
}

// RetryConfig holds retry policy configuration
type RetryConfig struct {
	// MaxRetries is the number of retries after the initial attempt.
	// -1 disables retrying.
	MaxRetries int

	// BaseDelayMs is the first backoff delay in milliseconds
	BaseDelayMs int
}

// BaseDelay returns the first backoff delay as a duration
func (r RetryConfig) BaseDelay() time.Duration {
	return time.Duration(r.BaseDelayMs) * time.Millisecond
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/rejson/gocache/sqlite/none)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// SweepIntervalSeconds is the cadence of the expired-entry sweep in
	// seconds
	SweepIntervalSeconds int
}

// SweepInterval returns the sweep cadence as a duration
func (m MemoryConfig) SweepInterval() time.Duration {
	return time.Duration(m.SweepIntervalSeconds) * time.Second
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Transport: TransportConfig{
			BaseURL:        getEnvOrDefault("BASE_URL", ""),
			TimeoutSeconds: getEnvAsIntOrDefault("REQUEST_TIMEOUT_SECONDS", 30),
			UserAgent:      getEnvOrDefault("USER_AGENT", ""),
		},
		Retry: RetryConfig{
			MaxRetries:  getEnvAsIntOrDefault("MAX_RETRIES", 3),
			BaseDelayMs: getEnvAsIntOrDefault("RETRY_BASE_DELAY_MS", 1000),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", CacheTypeMemory),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			},
			Memory: MemoryConfig{
				SweepIntervalSeconds: getEnvAsIntOrDefault("MEMORY_SWEEP_INTERVAL", 300),
			},
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Transport.TimeoutSeconds < 0 {
		return &coreerrors.ValidationError{Field: "transport.timeout_seconds", Message: "cannot be negative"}
	}

	if c.Retry.MaxRetries < -1 {
		return &coreerrors.ValidationError{Field: "retry.max_retries", Message: "must be -1 or greater"}
	}

	if c.Retry.BaseDelayMs < 0 {
		return &coreerrors.ValidationError{Field: "retry.base_delay_ms", Message: "cannot be negative"}
	}

	switch c.Cache.Type {
	case CacheTypeMemory, CacheTypeGoCache, CacheTypeNone:
	case CacheTypeRedis, CacheTypeRedisJSON:
		if c.Cache.Redis.Address == "" {
			return &coreerrors.ValidationError{Field: "cache.redis.address", Message: "cannot be empty when using a redis cache"}
		}
	case CacheTypeSQLite:
		if c.Cache.SQLite.Path == "" {
			return &coreerrors.ValidationError{Field: "cache.sqlite.path", Message: "cannot be empty when using the sqlite cache"}
		}
	default:
		return &coreerrors.ValidationError{Field: "cache.type", Message: "must be one of memory, redis, rejson, gocache, sqlite, none"}
	}

	if c.Cache.Memory.SweepIntervalSeconds < 0 {
		return &coreerrors.ValidationError{Field: "cache.memory.sweep_interval_seconds", Message: "cannot be negative"}
	}

	return nil
}
