package radionet

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a non-2xx response from the radio.net API.
//
// The Error type carries the HTTP status code and a short excerpt of the
// response body. It implements error, and provides additional methods
// for retry logic.
type Error struct {
	StatusCode int    // HTTP status code
	Message    string // Response body excerpt, possibly empty
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("radionet: status %d", e.StatusCode)
	}
	return fmt.Sprintf("radionet: status %d: %s", e.StatusCode, e.Message)
}

// Is checks if the target error is a radionet error with the same status.
//
// This allows errors.Is() to work with *Error types.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// Temporary returns true if the request may succeed when repeated.
//
// Only server errors (5xx) are considered temporary. 429 is not retried.
func (e *Error) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// Predefined errors for common cases.
var (
	// ErrEmptyResponse is returned when the API answers 2xx with an empty
	// or null payload.
	ErrEmptyResponse = errors.New("radionet: empty response")

	// ErrNotFound is returned by Details when no station matches the id.
	ErrNotFound = errors.New("radionet: station not found")
)

// isRetryableError determines if an error should trigger a retry.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}

	return shouldRetryNetworkError(err)
}
