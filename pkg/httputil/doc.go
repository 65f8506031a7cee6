// Package httputil provides HTTP utilities shared by the API clients.
//
// # Retry
//
// [RetryPolicy] wraps a request with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Callers mark an error as transient by wrapping it in [RetryableError]:
//
//	err := httputil.DefaultRetryPolicy.Do(ctx, func() error {
//	    return fetch(ctx)
//	})
//
// # Pacing
//
// [Pacer] enforces a minimum spacing between requests using a token bucket
// with a burst of one. GitHub asks clients to avoid bursts, and unauthenticated
// callers get only 60 requests per hour:
//
//	pacer := httputil.NewPacer(500 * time.Millisecond)
//	for page := 1; ; page++ {
//	    if err := pacer.Wait(ctx); err != nil {
//	        return err
//	    }
//	    // request page
//	}
//
// # Defaults
//
//   - Max attempts: 3
//   - Base backoff: 1 second, doubling
package httputil
