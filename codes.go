package privatecaptcha

// VerifyCode is a verification outcome code reported by the Private Captcha
// API. The zero value CodeNoError is the only code a fully successful
// verification carries; every other code maps to a stable kebab-case error
// string via String.
type VerifyCode int

const (
	// CodeNoError means the solution verified without errors.
	CodeNoError VerifyCode = iota
	// CodeErrorOther means an unspecified error occurred.
	CodeErrorOther
	// CodeDuplicateSolutions means duplicate solutions were detected.
	CodeDuplicateSolutions
	// CodeInvalidSolution means the solution is invalid.
	CodeInvalidSolution
	// CodeParseResponse means the solution payload could not be parsed.
	CodeParseResponse
	// CodePuzzleExpired means the puzzle has expired.
	CodePuzzleExpired
	// CodeInvalidProperty means the property configuration is invalid.
	CodeInvalidProperty
	// CodeWrongOwner means the property belongs to a different owner.
	CodeWrongOwner
	// CodeVerifiedBefore means the solution has already been verified.
	CodeVerifiedBefore
	// CodeMaintenanceMode means the service is in maintenance mode.
	CodeMaintenanceMode
	// CodeTestProperty means a test property was used.
	CodeTestProperty
	// CodeIntegrity means an integrity check failed.
	CodeIntegrity
	// CodeOrgScope means the request failed an organization scope check.
	CodeOrgScope
)

// codeFromWire maps a wire-level integer code to its VerifyCode. Values the
// client does not know about map to CodeErrorOther, so new server-side codes
// never break decoding.
func codeFromWire(code int) VerifyCode {
	if code < int(CodeNoError) || code > int(CodeOrgScope) {
		return CodeErrorOther
	}
	return VerifyCode(code)
}

// String returns the stable error string for the code. CodeNoError returns
// the empty string.
func (c VerifyCode) String() string {
	switch c {
	case CodeNoError:
		return ""
	case CodeDuplicateSolutions:
		return "solution-duplicates"
	case CodeInvalidSolution:
		return "solution-invalid"
	case CodeParseResponse:
		return "solution-bad-format"
	case CodePuzzleExpired:
		return "puzzle-expired"
	case CodeInvalidProperty:
		return "property-invalid"
	case CodeWrongOwner:
		return "property-owner-mismatch"
	case CodeVerifiedBefore:
		return "solution-verified-before"
	case CodeMaintenanceMode:
		return "maintenance-mode"
	case CodeTestProperty:
		return "property-test"
	case CodeIntegrity:
		return "integrity-error"
	case CodeOrgScope:
		return "org-scope-error"
	default:
		return "error-other"
	}
}
