// Package api implements the HTTP exchange with the Private Captcha
// verification endpoint. It performs exactly one POST per call; retry and
// backoff decisions belong to the caller.
//
// # Request Shape
//
// The captcha solution travels as the raw request body with Content-Type
// text/plain. Authentication uses the X-Api-Key header, and an optional
// sitekey rides along in X-PC-Sitekey when non-empty.
//
// # Error Classification
//
// Failures surface as one of two types:
//
//   - [HTTPError]: the server answered with a status >= 300. For 429
//     responses the numeric Retry-After header, when present, is carried
//     as a retry hint in seconds.
//   - [NetworkError]: the request never produced a usable response
//     (dial, DNS or timeout failures, truncated or malformed bodies).
//
// A malformed JSON body on an otherwise successful status is reported as a
// NetworkError: response corruption is treated like any other transport
// fault.
//
// Use errors.As to inspect the failure:
//
//	var httpErr *api.HTTPError
//	if errors.As(err, &httpErr) {
//	    // Inspect httpErr.StatusCode
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// [Client.Verify] on a single Client simultaneously.
package api
