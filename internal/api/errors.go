package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrUnauthorized indicates the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// HTTPError represents a >= 300 answer from the verification endpoint. The
// body of such a response is never decoded.
type HTTPError struct {
	StatusCode int
	// RetryAfterSeconds carries the numeric Retry-After header of a 429
	// response. Zero means the server sent no usable hint.
	RetryAfterSeconds int
	TraceID           string
}

func (e *HTTPError) Error() string {
	if e.TraceID != "" {
		return fmt.Sprintf("API error %d (trace_id: %s)", e.StatusCode, e.TraceID)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *HTTPError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a failure that produced no usable response,
// including a response body that could not be decoded.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
