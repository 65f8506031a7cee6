package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/emailfinder/pkg/httputil"
	"github.com/matzehuels/emailfinder/pkg/observability"
)

// Client provides shared HTTP functionality for REST API clients.
// It handles retry logic, status classification, and common request headers.
type Client struct {
	http    *http.Client
	retry   httputil.RetryPolicy
	headers map[string]string
}

// Options configures a Client. The zero value uses the default timeout and
// [httputil.DefaultRetryPolicy].
type Options struct {
	// Timeout bounds one HTTP round trip, including reading the body.
	Timeout time.Duration

	// Retry controls how transient failures are retried. A zero Attempts
	// field selects the default policy.
	Retry httputil.RetryPolicy
}

// NewClient creates a Client with the given default headers and options.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string, opts Options) *Client {
	retry := opts.Retry
	if retry.Attempts == 0 {
		retry = httputil.DefaultRetryPolicy
	}
	return &Client{
		http:    NewHTTPClient(opts.Timeout),
		retry:   retry,
		headers: headers,
	}
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
// It uses the client's default headers and retries transient failures.
func (c *Client) Get(ctx context.Context, rawURL string, v any) error {
	return c.GetWithHeaders(ctx, rawURL, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) GetWithHeaders(ctx context.Context, rawURL string, headers map[string]string, v any) error {
	return c.retry.Do(ctx, func() error {
		body, err := c.doRequest(ctx, rawURL, headers)
		if err != nil {
			return err
		}
		defer body.Close()
		if err := json.NewDecoder(body).Decode(v); err != nil {
			return fmt.Errorf("%w: decode response: %w", ErrNetwork, err)
		}
		return nil
	})
}

func (c *Client) doRequest(ctx context.Context, rawURL string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	host, path := hostPath(req.URL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: %w", ErrNetwork, err)}
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusForbidden:
		// GitHub reports an exhausted quota as 403 with zero remaining.
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			return fmt.Errorf("%w: %w", ErrForbidden, ErrRateLimited)
		}
		return ErrForbidden
	case code == http.StatusTooManyRequests:
		return &httputil.RetryableError{Err: ErrRateLimited}
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

func hostPath(u *url.URL) (host, path string) {
	if u == nil {
		return "", ""
	}
	return u.Host, u.Path
}
