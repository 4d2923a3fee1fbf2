package privatecaptcha

import "time"

// Defaults applied by Verify when the corresponding VerifyInput field is
// zero or negative.
const (
	// DefaultMaxAttempts is the total number of transport attempts
	// (first try plus retries).
	DefaultMaxAttempts = 5
	// DefaultMaxBackoff caps the delay between transport attempts.
	DefaultMaxBackoff = 20 * time.Second
)

// VerifyInput carries the parameters for one verification call. The zero
// value of every optional field selects the documented default; only
// Solution is required.
type VerifyInput struct {
	// Solution is the puzzle solution obtained client-side. Required.
	Solution string

	// Sitekey optionally scopes the solution to a specific property.
	// Empty means it is not sent.
	Sitekey string

	// MaxAttempts is the total number of transport attempts, the first
	// try included. Non-positive values select DefaultMaxAttempts.
	MaxAttempts int

	// MaxBackoff caps the delay between attempts. Non-positive values
	// select DefaultMaxBackoff.
	MaxBackoff time.Duration
}

// VerifyOutput is the result of a verification call. It is built once per
// call and not modified afterwards.
type VerifyOutput struct {
	// Success reports whether the API accepted and processed the request.
	// It does not by itself mean the solution verified; see OK.
	Success bool

	// Code is the verification outcome code.
	Code VerifyCode

	// Origin is the request origin as reported by the API.
	Origin string

	// Timestamp is the verification timestamp as reported by the API.
	Timestamp string

	// TraceID correlates this result with one HTTP exchange, for
	// debugging and support.
	TraceID string

	// Attempts is the number of transport attempts it took to obtain
	// this result.
	Attempts int
}

// OK reports whether the verification fully succeeded: the API processed
// the request and reported no error code. A response can carry
// Success == true together with a non-zero code (for example
// CodeTestProperty); OK is false in that case.
func (o *VerifyOutput) OK() bool {
	return o.Success && o.Code == CodeNoError
}

// ErrorMessage returns the error string for the result's code, or the
// empty string when the code is CodeNoError.
func (o *VerifyOutput) ErrorMessage() string {
	return o.Code.String()
}
