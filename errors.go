package privatecaptcha

import (
	"errors"
	"fmt"

	"github.com/privatecaptcha/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrEmptySolution is returned when verification is attempted with an
	// empty solution.
	ErrEmptySolution = errors.New("captcha solution is empty")

	// ErrNilExtractor is returned when VerifyForm is given a nil extractor.
	ErrNilExtractor = errors.New("form extractor is nil")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrVerificationFailed is returned when every verification attempt has
	// been spent without an answer.
	ErrVerificationFailed = errors.New("captcha verification failed")
)

// PrivateCaptchaError is implemented by all SDK errors.
type PrivateCaptchaError interface {
	error
	PrivateCaptchaError() // marker method
}

// HTTPError represents a >= 300 answer from the Private Captcha API. Such
// responses carry no decodable verification body.
type HTTPError struct {
	StatusCode int

	// RetryAfterSeconds is the server's numeric Retry-After hint on 429
	// responses. Zero when the server sent none.
	RetryAfterSeconds int

	// TraceID identifies the exchange server-side, if returned.
	TraceID string
}

func (e *HTTPError) Error() string {
	if e.TraceID != "" {
		return fmt.Sprintf("API error %d (trace_id: %s)", e.StatusCode, e.TraceID)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// PrivateCaptchaError implements the PrivateCaptchaError interface.
func (e *HTTPError) PrivateCaptchaError() {}

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

// NetworkError represents a network-level failure: the request never
// produced a decodable response.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// PrivateCaptchaError implements the PrivateCaptchaError interface.
func (e *NetworkError) PrivateCaptchaError() {}

// VerificationFailedError is returned when all attempts of a verification
// have been spent. Err holds the failure of the last attempt, or the
// context error when the wait between attempts was cut short.
type VerificationFailedError struct {
	Attempts int
	Err      error
}

func (e *VerificationFailedError) Error() string {
	return fmt.Sprintf("captcha verification failed after %d attempts: %v", e.Attempts, e.Err)
}

// Unwrap returns the underlying error.
func (e *VerificationFailedError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *VerificationFailedError) Is(target error) bool {
	return target == ErrVerificationFailed
}

// PrivateCaptchaError implements the PrivateCaptchaError interface.
func (e *VerificationFailedError) PrivateCaptchaError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error, attempt int) error {
	if err == nil {
		return nil
	}

	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		return &HTTPError{
			StatusCode:        httpErr.StatusCode,
			RetryAfterSeconds: httpErr.RetryAfterSeconds,
			TraceID:           httpErr.TraceID,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Attempt: attempt,
		}
	}

	return err
}
