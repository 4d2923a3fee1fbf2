package privatecaptcha

import "net/http"

// Middleware wraps next with captcha verification. The solution is read
// from the configured form field; requests that do not verify are rejected
// with the configured failed status code and never reach next.
func (c *Client) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		out, err := c.VerifyRequest(r.Context(), r)
		if err != nil {
			c.logger.Debug("captcha verification errored", "error", err)
			http.Error(w, http.StatusText(c.failedStatusCode), c.failedStatusCode)
			return
		}
		if !out.OK() {
			c.logger.Debug("captcha verification rejected", "code", out.Code)
			http.Error(w, http.StatusText(c.failedStatusCode), c.failedStatusCode)
			return
		}

		next.ServeHTTP(w, r)
	})
}
