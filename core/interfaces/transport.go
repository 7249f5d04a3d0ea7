package interfaces

import (
	"context"
	"io"
)

// RequestOptions carries the payload and headers for a mutating request.
// The body is kept as a byte slice rather than an io.Reader so the same
// request can be sent more than once without the caller rebuilding it.
type RequestOptions struct {
	// Body is the encoded request payload, typically JSON. A nil body
	// sends a request without a payload.
	Body []byte

	// Headers holds additional headers to attach to the request.
	// They are applied after the transport's own defaults.
	Headers map[string]string
}

// Transport defines the interface for mutating calls against the chat
// platform REST API. This abstraction allows for easy mocking in tests
// and for layering cross-cutting behavior (retries, instrumentation)
// over a base implementation without changing call sites.
type Transport interface {
	// Post performs an HTTP POST request to the specified route.
	// Returns a Response interface or an error if the request fails.
	Post(ctx context.Context, route string, opts RequestOptions) (Response, error)

	// Patch performs an HTTP PATCH request to the specified route.
	Patch(ctx context.Context, route string, opts RequestOptions) (Response, error)

	// Delete performs an HTTP DELETE request to the specified route.
	Delete(ctx context.Context, route string, opts RequestOptions) (Response, error)
}

// Response defines the interface for HTTP responses.
// This abstraction allows different transport implementations to provide
// their own response types while maintaining a consistent interface.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string
}
