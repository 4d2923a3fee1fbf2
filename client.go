package privatecaptcha

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/privatecaptcha/client-go/internal/api"
)

// transport performs one verification exchange per call.
type transport interface {
	Verify(ctx context.Context, solution, sitekey string) (*api.VerifyResult, error)
}

// Client verifies captcha solutions against the Private Captcha API.
// It is safe for concurrent use.
type Client struct {
	transport        transport
	formField        string
	failedStatusCode int
	minBackoff       time.Duration
	logger           *slog.Logger
}

// New creates a new Private Captcha client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		domain:           GlobalDomain,
		formField:        DefaultFormField,
		failedStatusCode: http.StatusForbidden,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	apiClient, err := api.NewClient(api.Config{
		Endpoint:       endpointFor(cfg.domain),
		APIKey:         apiKey,
		UserAgent:      userAgent,
		ConnectTimeout: cfg.connectTimeout,
		ReadTimeout:    cfg.readTimeout,
		HTTPClient:     cfg.httpClient,
		Logger:         cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		transport:        apiClient,
		formField:        cfg.formField,
		failedStatusCode: cfg.failedStatusCode,
		minBackoff:       defaultMinBackoff,
		logger:           cfg.logger,
	}, nil
}

// endpointFor builds the verification URL for a configured domain. A scheme
// prefix and trailing slashes are stripped first; the exchange always goes
// over https.
func endpointFor(domain string) string {
	if domain == "" {
		domain = GlobalDomain
	}
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimRight(domain, "/")
	return "https://" + domain + "/verify"
}

// FormField returns the form field name this client reads solutions from.
func (c *Client) FormField() string {
	return c.formField
}

// FailedStatusCode returns the HTTP status code used for failed
// verifications.
func (c *Client) FailedStatusCode() int {
	return c.failedStatusCode
}

// Verify checks a captcha solution against the API. Transient failures are
// retried with exponential backoff until the solution is answered, a
// non-retriable error occurs or the attempts are spent. A 429 answer's
// Retry-After hint lengthens the next wait when it exceeds the schedule,
// capped at the maximum backoff.
func (c *Client) Verify(ctx context.Context, input VerifyInput) (*VerifyOutput, error) {
	if input.Solution == "" {
		return nil, ErrEmptySolution
	}

	maxAttempts := input.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	maxBackoff := input.MaxBackoff
	if maxBackoff <= 0 {
		maxBackoff = DefaultMaxBackoff
	}

	c.logger.Debug("starting verification",
		"max_attempts", maxAttempts,
		"max_backoff", maxBackoff)

	backoffDelay := c.minBackoff
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			delay := retryDelay(backoffDelay, lastErr, maxBackoff)

			c.logger.Debug("attempt failed",
				"attempt", attempt,
				"error", lastErr,
				"backoff", delay)

			if err := waitBackoff(ctx, delay); err != nil {
				return nil, &VerificationFailedError{Attempts: attempt + 1, Err: err}
			}

			backoffDelay = nextBackoff(backoffDelay, maxBackoff)
		}

		result, err := c.transport.Verify(ctx, input.Solution, input.Sitekey)
		if err != nil {
			err = wrapError(err, attempt+1)

			var httpErr *HTTPError
			if errors.As(err, &httpErr) && !isRetriableStatus(httpErr.StatusCode) {
				return nil, err
			}

			lastErr = err
			continue
		}

		out := &VerifyOutput{
			Success:   result.Success,
			Code:      codeFromWire(result.Code),
			Origin:    result.Origin,
			Timestamp: result.Timestamp,
			TraceID:   result.TraceID,
			Attempts:  attempt + 1,
		}

		c.logger.Debug("verification completed",
			"attempt", attempt+1,
			"success", out.Success)

		return out, nil
	}

	return nil, &VerificationFailedError{Attempts: maxAttempts, Err: lastErr}
}

// FormExtractor returns a form value by name, empty when absent. It adapts
// any HTTP framework's form accessor to VerifyForm.
type FormExtractor func(name string) string

// VerifyForm reads the solution from the configured form field and verifies
// it.
func (c *Client) VerifyForm(ctx context.Context, extract FormExtractor) (*VerifyOutput, error) {
	if extract == nil {
		return nil, ErrNilExtractor
	}
	return c.Verify(ctx, VerifyInput{Solution: extract(c.formField)})
}

// VerifyRequest reads the solution from the request's form data and
// verifies it.
func (c *Client) VerifyRequest(ctx context.Context, r *http.Request) (*VerifyOutput, error) {
	return c.VerifyForm(ctx, r.FormValue)
}
