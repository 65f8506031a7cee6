package integrations

import (
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/matzehuels/emailfinder/pkg/errors"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the requested resource doesn't exist.
	ErrNotFound = apperrors.New(apperrors.ErrCodeNotFound, "resource not found")

	// ErrForbidden is returned when the credential may not read the resource.
	ErrForbidden = apperrors.New(apperrors.ErrCodeForbidden, "access denied")

	// ErrRateLimited is returned when the API refuses requests until the quota resets.
	ErrRateLimited = apperrors.New(apperrors.ErrCodeRateLimited, "rate limit exceeded")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = apperrors.New(apperrors.ErrCodeNetwork, "network error")
)

// NewHTTPClient creates an HTTP client with the given timeout, falling back
// to [DefaultTimeout] when timeout is zero or negative.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// URLEncode percent-encodes a string for use in URL query values.
// This is a convenience wrapper around [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }
