// ABOUTME: Configuration options for the chatkit client
// ABOUTME: Provides functional options for flexible client assembly

package chatkit

import (
	"time"

	"chatkit/core/interfaces"
	"chatkit/infrastructure/cache/noop"
	"chatkit/infrastructure/transport/retry"
	"chatkit/pkg/config"

	"github.com/bool64/stats"
)

// Config holds the assembled client configuration. Zero values resolve
// to defaults when the client is built.
type Config struct {
	// Transport overrides the default HTTP transport
	Transport interfaces.Transport

	// BaseURL is prepended to relative routes by the default transport
	BaseURL string

	// Timeout is the per-request timeout of the default transport
	Timeout time.Duration

	// UserAgent overrides the default User-Agent header
	UserAgent string

	// Cache overrides the default in-memory cache
	Cache interfaces.Cache

	// Logger overrides the default console logger
	Logger interfaces.Logger

	// Stats receives retry and cache metrics, can be nil
	Stats stats.Tracker

	// Retry controls the retry decorator
	Retry retry.Config

	// DisableRetry sends requests without the retry decorator
	DisableRetry bool

	// cacheConfig selects a cache backend from external configuration.
	// Used only when Cache is nil.
	cacheConfig *config.CacheConfig
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithTransport sets a custom transport implementation
func WithTransport(transport interfaces.Transport) Option {
	return func(c *Config) error {
		c.Transport = transport
		return nil
	}
}

// WithBaseURL sets the base URL relative routes are resolved against
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		c.BaseURL = baseURL
		return nil
	}
}

// WithTimeout sets the per-request timeout of the default transport
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		c.Timeout = timeout
		return nil
	}
}

// WithUserAgent sets the User-Agent header of the default transport
func WithUserAgent(userAgent string) Option {
	return func(c *Config) error {
		c.UserAgent = userAgent
		return nil
	}
}

// WithCache sets a custom cache implementation. The caller keeps
// ownership and closes it.
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithoutCache disables caching. Reads miss and writes are discarded.
func WithoutCache() Option {
	return func(c *Config) error {
		c.Cache = noop.NewNoopCache()
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithStats sets the metrics tracker retry and cache counters report to
func WithStats(tracker stats.Tracker) Option {
	return func(c *Config) error {
		c.Stats = tracker
		return nil
	}
}

// WithRetryConfig sets the retry ceiling and the first backoff delay.
// maxRetries -1 disables retrying entirely.
func WithRetryConfig(maxRetries int, baseDelay time.Duration) Option {
	return func(c *Config) error {
		c.Retry.MaxRetries = maxRetries
		c.Retry.BaseDelay = baseDelay
		return nil
	}
}

// WithClassifier sets the failure classifier used by the retry decorator
func WithClassifier(classifier retry.Classifier) Option {
	return func(c *Config) error {
		c.Retry.Classifier = classifier
		return nil
	}
}

// WithoutRetry sends requests directly without retrying failures
func WithoutRetry() Option {
	return func(c *Config) error {
		c.DisableRetry = true
		return nil
	}
}

// WithConfig applies environment-driven configuration. The transport,
// retry policy, and cache backend are all taken from cfg; explicit
// options still win when they are applied after this one.
func WithConfig(cfg *config.Config) Option {
	return func(c *Config) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		c.BaseURL = cfg.Transport.BaseURL
		c.Timeout = cfg.Transport.Timeout()
		c.UserAgent = cfg.Transport.UserAgent
		c.Retry.MaxRetries = cfg.Retry.MaxRetries
		c.Retry.BaseDelay = cfg.Retry.BaseDelay()
		c.cacheConfig = &cfg.Cache
		return nil
	}
}
