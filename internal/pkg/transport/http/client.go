// Package http builds the retrying HTTP client shared by the Horizon and
// Stellar RPC adapters, on top of hashicorp's retryablehttp.
//
// Responses with a non-2xx status are turned into *StatusError values that
// keep the status code and body, so callers can classify provider failures
// without re-reading the response.
package http

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration // per-attempt request timeout
	retryWaitMin time.Duration // shortest backoff between attempts
	retryWaitMax time.Duration // longest backoff between attempts
	retryMax     int           // transport-level retries after the first attempt
	userAgent    string        // User-Agent sent with every attempt, empty keeps Go's default
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// NewClient returns a retryablehttp.Client. Defaults:
//
//   - timeout:      5 seconds
//   - retryWaitMin: 500 milliseconds
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
//
// Connection errors, 429 and 5xx responses are retried here. Once retries
// are exhausted the last response is handed back instead of discarded, so a
// final 5xx still surfaces as a StatusError.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 500 * time.Millisecond,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if cfg.userAgent != "" {
		userAgent := cfg.userAgent
		client.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, _ int) {
			req.Header.Set("User-Agent", userAgent)
		}
	}

	return client
}

// WithTimeout bounds every single attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the shortest backoff between attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax caps the backoff between attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a request is retried. Zero disables
// transport retries and leaves them to the caller's retry policy.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithUserAgent sets the User-Agent header of every request.
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}
