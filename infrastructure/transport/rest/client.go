// ABOUTME: REST transport implementation using the standard library HTTP client
// ABOUTME: Maps non-success responses to structured errors carrying the status code

package rest

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	coreerrors "chatkit/core/errors"
	"chatkit/core/interfaces"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "chatkit/1.0"

	// maxErrorBody bounds how much of an error response is read into the
	// error message.
	maxErrorBody = 4096
)

// Config controls the REST transport.
type Config struct {
	// BaseURL is prefixed to relative routes. Routes that are already
	// absolute URLs are sent unchanged.
	BaseURL string

	// Timeout bounds each request including the response body read.
	// Defaults to 30 seconds when zero.
	Timeout time.Duration

	// UserAgent overrides the default User-Agent header when non-empty.
	UserAgent string
}

// RESTTransport implements the Transport interface using the standard library
type RESTTransport struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewRESTTransport creates a REST transport with the given configuration
func NewRESTTransport(cfg Config) *RESTTransport {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &RESTTransport{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: userAgent,
	}
}

// Post performs an HTTP POST request to the given route
func (t *RESTTransport) Post(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	return t.do(ctx, http.MethodPost, route, opts)
}

// Patch performs an HTTP PATCH request to the given route
func (t *RESTTransport) Patch(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	return t.do(ctx, http.MethodPatch, route, opts)
}

// Delete performs an HTTP DELETE request to the given route
func (t *RESTTransport) Delete(ctx context.Context, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	return t.do(ctx, http.MethodDelete, route, opts)
}

func (t *RESTTransport) do(ctx context.Context, method string, route string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.resolve(route), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", t.userAgent)
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}

	// Non-success responses are surfaced as structured errors so callers
	// can inspect the status code without touching the response.
	if resp.StatusCode >= 400 {
		message := readErrorMessage(resp.Body)
		resp.Body.Close()
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode,
			Message:    message,
			API:        route,
		}
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// resolve joins a relative route onto the configured base URL
func (t *RESTTransport) resolve(route string) string {
	if strings.HasPrefix(route, "http://") || strings.HasPrefix(route, "https://") {
		return route
	}
	if t.baseURL == "" {
		return route
	}
	if strings.HasPrefix(route, "/") {
		return t.baseURL + route
	}
	return t.baseURL + "/" + route
}

// readErrorMessage reads at most maxErrorBody bytes of an error response
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
