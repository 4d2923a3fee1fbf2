// Package privatecaptcha provides a Go client for the Private Captcha API,
// a privacy-first proof-of-work captcha service.
//
// The client verifies captcha solutions submitted by site visitors. Failed
// exchanges are retried with exponential backoff, and rate-limit answers
// carrying a Retry-After hint stretch the wait accordingly.
//
// Basic usage:
//
//	client, err := privatecaptcha.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := client.Verify(ctx, privatecaptcha.VerifyInput{
//	    Solution: solution,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if out.OK() {
//	    // Captcha verified successfully
//	}
//
// Servers built on net/http can protect a handler with [Client.Middleware],
// or call [Client.VerifyRequest] for manual control over the rejection
// response.
package privatecaptcha
