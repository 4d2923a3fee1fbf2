package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Default transport timeouts used when Config leaves them zero.
const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultReadTimeout    = 30 * time.Second
)

// Headers understood by the verification endpoint.
const (
	headerAPIKey     = "X-Api-Key"
	headerSitekey    = "X-PC-Sitekey"
	headerTraceID    = "X-Trace-ID"
	headerRetryAfter = "Retry-After"
)

// Config holds the settings for an API client.
type Config struct {
	// Endpoint is the full verification URL,
	// e.g. https://api.privatecaptcha.com/verify.
	Endpoint string
	// APIKey authenticates every request via the X-Api-Key header.
	APIKey string
	// UserAgent is sent verbatim on every request when non-empty.
	UserAgent string
	// ConnectTimeout bounds connection establishment, TLS handshake
	// included. Zero means DefaultConnectTimeout.
	ConnectTimeout time.Duration
	// ReadTimeout bounds the whole exchange, headers and body included.
	// Zero means DefaultReadTimeout.
	ReadTimeout time.Duration
	// HTTPClient, when set, replaces the client built from the timeouts
	// above.
	HTTPClient *http.Client
	// Logger receives a debug record per exchange. Defaults to a discard
	// logger.
	Logger *slog.Logger
}

// Client performs verification exchanges against a single endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an API client from explicit configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}
	readTimeout := cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: readTimeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
				TLSHandshakeTimeout: connectTimeout,
			},
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Endpoint returns the verification URL this client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Verify posts one solution to the endpoint and decodes the answer. It
// performs no retries; each call is exactly one HTTP exchange.
func (c *Client) Verify(ctx context.Context, solution, sitekey string) (*VerifyResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(solution))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set(headerAPIKey, c.apiKey)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if sitekey != "" {
		req.Header.Set(headerSitekey, sitekey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: c.endpoint}
	}
	defer resp.Body.Close()

	traceID := resp.Header.Get(headerTraceID)
	c.logger.Debug("verify response received",
		"status", resp.StatusCode,
		"trace_id", traceID)

	if resp.StatusCode >= 300 {
		return nil, &HTTPError{
			StatusCode:        resp.StatusCode,
			RetryAfterSeconds: retryAfterSeconds(resp),
			TraceID:           traceID,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to read response: %w", err), URL: c.endpoint}
	}

	var apiResp verifyAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to decode response: %w", err), URL: c.endpoint}
	}

	return &VerifyResult{
		Success:   apiResp.Success,
		Code:      apiResp.Code,
		Origin:    apiResp.Origin,
		Timestamp: apiResp.Timestamp,
		TraceID:   traceID,
	}, nil
}

// retryAfterSeconds extracts the numeric Retry-After hint from a 429
// response. Absent, non-numeric or negative values yield zero; HTTP-date
// values are not parsed.
func retryAfterSeconds(resp *http.Response) int {
	if resp.StatusCode != http.StatusTooManyRequests {
		return 0
	}
	v := resp.Header.Get(headerRetryAfter)
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return secs
}
