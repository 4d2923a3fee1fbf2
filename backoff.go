package privatecaptcha

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// defaultMinBackoff is the delay before the first retry.
const defaultMinBackoff = 500 * time.Millisecond

// nextBackoff advances the retry schedule: the delay doubles, gains up to a
// quarter of itself as jitter and never exceeds maxBackoff.
func nextBackoff(cur, maxBackoff time.Duration) time.Duration {
	jitter := time.Duration(rand.Int63n(max(1, int64(cur/4))))
	next := cur*2 + jitter
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

// retryDelay resolves the wait before the next attempt: the scheduled
// backoff, stretched to the server's Retry-After hint when that is longer,
// never beyond maxBackoff.
func retryDelay(scheduled time.Duration, lastErr error, maxBackoff time.Duration) time.Duration {
	var httpErr *HTTPError
	if errors.As(lastErr, &httpErr) && httpErr.RetryAfterSeconds > 0 {
		if hint := time.Duration(httpErr.RetryAfterSeconds) * time.Second; hint > scheduled {
			return min(hint, maxBackoff)
		}
	}
	return scheduled
}

// waitBackoff sleeps for delay, honoring context cancellation.
func waitBackoff(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// isRetriableStatus reports whether an HTTP status code is worth another
// attempt.
func isRetriableStatus(statusCode int) bool {
	switch statusCode {
	case 408, 429, 500, 502, 503, 504:
		return true
	default:
		return false
	}
}
