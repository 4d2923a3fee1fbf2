package privatecaptcha

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultFormField is the form field name solutions are read from when no
// custom field is configured.
const DefaultFormField = "private-captcha-solution"

// clientConfig holds configuration for the client.
type clientConfig struct {
	domain           string
	formField        string
	failedStatusCode int
	connectTimeout   time.Duration
	readTimeout      time.Duration
	httpClient       *http.Client
	logger           *slog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithDomain sets the API domain. Use for self-hosted deployments or for
// the EU environment (EUDomain). A scheme prefix and trailing slashes are
// tolerated; verification always happens over https.
func WithDomain(domain string) Option {
	return func(c *clientConfig) {
		c.domain = domain
	}
}

// WithFormField sets the form field name solutions are read from.
// Default: DefaultFormField
func WithFormField(name string) Option {
	return func(c *clientConfig) {
		c.formField = name
	}
}

// WithFailedStatusCode sets the HTTP status code Middleware responds with
// when verification fails.
// Default: 403 Forbidden
func WithFailedStatusCode(code int) Option {
	return func(c *clientConfig) {
		c.failedStatusCode = code
	}
}

// WithConnectTimeout sets the timeout for establishing a connection, TLS
// handshake included.
// Default: 10 seconds
func WithConnectTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.connectTimeout = timeout
	}
}

// WithReadTimeout sets the timeout for a whole verification exchange,
// response body included.
// Default: 30 seconds
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.readTimeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. The connect and read timeouts
// are not applied to it; the custom client's own settings rule.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets a logger for debug records of verification attempts.
// Default: discard all records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
