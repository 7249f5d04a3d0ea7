// ABOUTME: Retrying transport decorator with failure classification and exponential backoff
// ABOUTME: Wraps a Transport so transient request failures are retried with jittered delays

package retry

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	coreerrors "chatkit/core/errors"
	"chatkit/core/interfaces"
	"chatkit/infrastructure/logger/standard"

	"github.com/bool64/stats"
)

const (
	// DefaultMaxRetries is the number of retries after the initial attempt.
	DefaultMaxRetries = 3

	// DefaultBaseDelay seeds the exponential backoff.
	DefaultBaseDelay = time.Second

	// maxJitter bounds the random component added to every delay so
	// concurrent retries spread out instead of arriving in lockstep.
	maxJitter = 250 * time.Millisecond
)

// Metric names reported to the stats tracker.
const (
	MetricRetry     = "transport_retry"
	MetricExhausted = "transport_retries_exhausted"
)

// Classification buckets a request failure by how the transport reacts to it.
type Classification int

const (
	// Retryable failures may succeed on a later attempt.
	Retryable Classification = iota

	// Fatal failures will not improve with repetition and end the
	// request immediately.
	Fatal
)

// Classifier decides how a failed request is treated.
type Classifier func(err error) Classification

// DefaultClassifier treats client errors as fatal, except 429 which the
// platform uses for rate limiting. Server errors, rate limits, network
// failures, and errors without a status code are all retryable.
func DefaultClassifier(err error) Classification {
	code, ok := coreerrors.StatusCode(err)
	if !ok {
		return Retryable
	}
	if code >= 400 && code < 500 && code != http.StatusTooManyRequests {
		return Fatal
	}
	return Retryable
}

// Config controls the retry behavior.
type Config struct {
	// MaxRetries is the number of retries after the initial attempt,
	// default 3. Use -1 to disable retries.
	MaxRetries int

	// BaseDelay is the delay before the first retry; each further retry
	// doubles it. Default 1s.
	BaseDelay time.Duration

	// Logger receives retry and exhaustion events. Defaults to the
	// console logger.
	Logger interfaces.Logger

	// Classifier decides which failures are retried. Defaults to
	// DefaultClassifier.
	Classifier Classifier

	// Stats is metrics collector, can be nil.
	Stats stats.Tracker
}

// RetryTransport wraps a Transport and retries failed requests.
// It implements the Transport interface itself, so it can stand in for
// the wrapped implementation at any call site.
type RetryTransport struct {
	inner      interfaces.Transport
	maxRetries int
	baseDelay  time.Duration
	log        interfaces.Logger
	classify   Classifier
	stat       stats.Tracker

	// sleep is swapped out by tests to observe computed delays.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRetryTransport wraps inner with retry behavior per cfg.
func NewRetryTransport(inner interfaces.Transport, cfg Config) *RetryTransport {
	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = DefaultMaxRetries
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	baseDelay := cfg.BaseDelay
	if baseDelay == 0 {
		baseDelay = DefaultBaseDelay
	}

	log := cfg.Logger
	if log == nil {
		log = standard.NewStandardLogger()
	}

	classify := cfg.Classifier
	if classify == nil {
		classify = DefaultClassifier
	}

	return &RetryTransport{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		log:        log,
		classify:   classify,
		stat:       cfg.Stats,
		sleep:      sleepContext,
	}
}

// Post performs an HTTP POST request, retrying transient failures
func (t *RetryTransport) Post(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	return t.send(ctx, "POST", route, opts, t.inner.Post)
}

// Patch performs an HTTP PATCH request, retrying transient failures
func (t *RetryTransport) Patch(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	return t.send(ctx, "PATCH", route, opts, t.inner.Patch)
}

// Delete performs an HTTP DELETE request, retrying transient failures
func (t *RetryTransport) Delete(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	return t.send(ctx, "DELETE", route, opts, t.inner.Delete)
}

type requestFunc func(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error)

// send runs the retry loop around a single transport method.
// The final error is returned exactly as the wrapped transport produced it.
func (t *RetryTransport) send(ctx context.Context, method string, route string, opts interfaces.RequestOptions, call requestFunc) (interfaces.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= t.maxRetries; attempt++ {
		resp, err := call(ctx, route, opts)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if t.classify(err) == Fatal {
			t.log.Debug("Not retrying request", map[string]interface{}{
				"method": method,
				"route":  route,
				"error":  err.Error(),
			})
			return nil, err
		}

		if attempt == t.maxRetries {
			break
		}

		delay := t.backoff(attempt)
		t.log.Warn("Retrying request", map[string]interface{}{
			"method":      method,
			"route":       route,
			"attempt":     attempt + 1,
			"max_retries": t.maxRetries,
			"delay":       delay.String(),
			"error":       err.Error(),
		})
		if t.stat != nil {
			t.stat.Add(ctx, MetricRetry, 1, "method", method)
		}

		if err := t.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}

	t.log.Error("Request retries exhausted", map[string]interface{}{
		"method":   method,
		"route":    route,
		"attempts": t.maxRetries + 1,
		"error":    lastErr.Error(),
	})
	if t.stat != nil {
		t.stat.Add(ctx, MetricExhausted, 1, "method", method)
	}

	return nil, lastErr
}

// backoff computes the delay before the next attempt: the base delay
// doubled per completed attempt, plus jitter in [0, 250ms).
func (t *RetryTransport) backoff(attempt int) time.Duration {
	return t.baseDelay<<uint(attempt) + time.Duration(rand.Int63n(int64(maxJitter)))
}

// sleepContext waits for d unless the context ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
