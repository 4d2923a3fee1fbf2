package api

// VerifyResult is one decoded answer from the verification endpoint.
// Code is the raw verify code as sent on the wire; interpreting it is left
// to the caller.
type VerifyResult struct {
	Success   bool
	Code      int
	Origin    string
	Timestamp string
	TraceID   string
}

// verifyAPIResponse represents the POST /verify response body. Unknown
// fields are ignored so server-side schema additions never break decoding.
type verifyAPIResponse struct {
	Success   bool   `json:"success"`
	Code      int    `json:"code"`
	Origin    string `json:"origin"`
	Timestamp string `json:"timestamp"`
}
