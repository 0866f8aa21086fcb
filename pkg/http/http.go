package http

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

const (
	DefaultMaxRetries  = 3
	DefaultBaseBackoff = time.Millisecond * 500
	DefaultTimeout     = time.Second * 15
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RetryingClient wraps an HTTPClient and retries requests that hit a 429,
// honoring the Retry-After header when present.
type RetryingClient struct {
	client      HTTPClient
	baseBackoff time.Duration
	maxRetries  int
}

// ClientOption is a function that can be used to configure a RetryingClient
type ClientOption func(*RetryingClient)

// NewRetryingClient creates a new RetryingClient that respects 429 status codes.
// The client can be used concurrently.
func NewRetryingClient(opts ...ClientOption) *RetryingClient {
	c := &RetryingClient{
		client:      &http.Client{Timeout: DefaultTimeout},
		maxRetries:  DefaultMaxRetries,
		baseBackoff: DefaultBaseBackoff,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithMaxRetries sets the maximum number of retries for the client
func WithMaxRetries(maxRetries int) ClientOption {
	return func(c *RetryingClient) {
		c.maxRetries = maxRetries
	}
}

// WithBaseBackoff sets the base backoff time for the client
func WithBaseBackoff(baseBackoff time.Duration) ClientOption {
	return func(c *RetryingClient) {
		c.baseBackoff = baseBackoff
	}
}

// WithHTTPClient sets the http client to use for the client
func WithHTTPClient(client HTTPClient) ClientOption {
	return func(c *RetryingClient) {
		c.client = client
	}
}

// Do executes the HTTP request while respecting 429 rate limits.
// This blocks until the request completes or the retry budget is spent.
// A 429 that survives every retry is returned as-is, with an open body and a
// nil error, so callers can map the status themselves.
func (c *RetryingClient) Do(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		resp, err = c.client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		if attempt == c.maxRetries-1 {
			break
		}

		retryAfter := c.retryAfter(resp, attempt)
		resp.Body.Close()

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(retryAfter):
		}
	}

	return resp, nil
}

// retryAfter calculates the appropriate retry delay
func (c *RetryingClient) retryAfter(resp *http.Response, attempt int) time.Duration {
	retryAfterHeader := resp.Header.Get("Retry-After")

	if retryAfterHeader != "" {
		seconds, err := strconv.Atoi(retryAfterHeader)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}

	// 2^n backoff
	expBackoff := time.Duration(1<<attempt) * c.baseBackoff

	// staggers the backoff to avoid a thundering herd
	jitter := time.Duration(rand.Int63n(int64(c.baseBackoff)))

	return expBackoff + jitter
}
