// ABOUTME: Custom error types shared by the transport and cache layers
// ABOUTME: Provides structured errors for classification and a cache miss sentinel

package errors

import (
	"errors"
	"fmt"
)

// ErrCacheMiss is the error returned when a key is not found in the cache,
// either because it was never set or because its entry has expired.
var ErrCacheMiss = errors.New("cache: key not found")

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a non-success response from the platform API.
// StatusCode carries the HTTP status so callers can decide how to react.
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// StatusCode extracts the HTTP status code from an error chain.
// Returns 0 and false if no ExternalAPIError is present.
func StatusCode(err error) (int, bool) {
	var apiErr *ExternalAPIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	return 0, false
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
