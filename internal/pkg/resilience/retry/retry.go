// Package retry provides a configurable retry mechanism for operations that may fail temporarily.
// It wraps the retry-go package from Avast and exposes a small interface with functional
// options for customizing retry behavior.
//
// Delays grow exponentially from a base delay and every wait adds a random jitter:
//
//	delay(n) = base * 2^n + rand[0, maxJitter)
//
// where n is the zero-based index of the failed attempt. A predicate set with
// WithRetryIf lets callers reject failures that retrying cannot fix; such an
// error is returned after the first attempt.
//
// Basic usage:
//
//	r := retry.New(retry.WithMaxRetries(3), retry.WithRetryIf(isTransient))
//	v, err := retry.Do(ctx, r, func() (int, error) {
//	    return fetch(ctx)
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"

	"github.com/gabapcia/streampay/internal/pkg/logger"
)

// Retry defines the interface for retry operations.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted, the
	// retry predicate rejects the error, or ctx is done. It returns nil on
	// success and the last observed error otherwise.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts  uint             // total number of attempts, including the first one
	delay     time.Duration    // base delay before the first retry
	maxDelay  time.Duration    // cap applied to every computed delay (0 disables the cap)
	maxJitter time.Duration    // upper bound of the random component added to each delay
	retryIf   func(error) bool // reports whether an error may be retried
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates a Retry configured with the provided options.
//
// Default configuration:
//   - attempts:  4 (1 initial attempt + 3 retries)
//   - delay:     1 second
//   - maxDelay:  no cap
//   - maxJitter: 250 milliseconds
//   - retryIf:   every error is retried
func New(opts ...Option) Retry {
	cfg := config{
		attempts:  4,
		delay:     1 * time.Second,
		maxDelay:  0,
		maxJitter: 250 * time.Millisecond,
		retryIf:   func(error) bool { return true },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.MaxJitter(r.cfg.maxJitter),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.RetryIf(r.cfg.retryIf),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn(ctx, "operation failed, retrying",
				"retry.attempt", n+1,
				"retry.max_attempts", r.cfg.attempts,
				"error", err,
			)
		}),
	}

	return retry.Do(operation, options...)
}

// Do runs operation through r and returns its value. It is the generic
// counterpart of Retry.Execute for operations that produce a result.
func Do[T any](ctx context.Context, r Retry, operation func() (T, error)) (T, error) {
	var result T
	err := r.Execute(ctx, func() error {
		v, err := operation()
		if err != nil {
			return err
		}

		result = v
		return nil
	})

	return result, err
}

// WithAttempts sets the total number of attempts (including the initial attempt).
// Values below 1 are raised to 1, since retry-go treats 0 as "retry forever".
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = max(n, 1)
	}
}

// WithMaxRetries sets how many times a failed operation is retried, so the
// operation runs at most n+1 times.
func WithMaxRetries(n uint) Option {
	return WithAttempts(n + 1)
}

// WithDelay sets the base delay between retry attempts.
// Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps every computed delay. Zero disables the cap.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithMaxJitter sets the upper bound of the random delay added to every wait.
// It must be positive; smaller values are raised to one nanosecond.
func WithMaxJitter(d time.Duration) Option {
	return func(c *config) {
		c.maxJitter = max(d, time.Nanosecond)
	}
}

// WithRetryIf sets the predicate deciding whether an error is worth retrying.
// An error rejected by the predicate is returned immediately.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}
