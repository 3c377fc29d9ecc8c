package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sevigo/pr-verdict/internal/core"
)

// APIError is a non-200 answer from the chat-completion service.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("API error (status %d, %s): %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// RateLimited reports whether the service asked us to slow down.
func (e *APIError) RateLimited() bool { return e.StatusCode == http.StatusTooManyRequests }

// Retryable reports whether the failure is a transient gateway error.
func (e *APIError) Retryable() bool { return e.StatusCode == http.StatusBadGateway }

// TimeoutError wraps a request that did not complete in time.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string { return "request timed out: " + e.Err.Error() }

func (e *TimeoutError) Unwrap() error { return e.Err }

func (e *TimeoutError) Retryable() bool { return true }

type retryableError interface {
	Retryable() bool
}

type rateLimitedError interface {
	RateLimited() bool
}

func isRateLimited(err error) bool {
	var rl rateLimitedError
	return errors.As(err, &rl) && rl.RateLimited()
}

func isRetryable(err error) bool {
	var r retryableError
	return errors.As(err, &r) && r.Retryable()
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// backoffFor returns the wait before the retry that follows attempt
// (zero-based): 4s, 8s, 16s, ...
func backoffFor(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt+2)) * time.Second
}

type sleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryWithBackoff calls fn up to maxAttempts times. Rate limits, bad gateways
// and timeouts are retried with the same exponential schedule; every other
// error ends the loop at once.
func retryWithBackoff(ctx context.Context, logger *slog.Logger, maxAttempts int, sleep sleepFunc, fn func() error) error {
	warnedUser := false

	for attempt := 0; attempt < maxAttempts; attempt++ {
		backoff := backoffFor(attempt)
		lastAttempt := attempt == maxAttempts-1

		err := fn()
		if err == nil {
			return nil
		}

		switch {
		case isRateLimited(err):
			logger.Debug("reached rate limit, retrying", "attempt", attempt+1, "error", err)
			if !warnedUser {
				logger.Warn("chat completion is being rate limited; please double check that the API account has paid access",
					"attempt", attempt+1)
				warnedUser = true
			}
		case isRetryable(err):
			if lastAttempt {
				return &core.ChatCompletionError{Attempts: attempt + 1, Exhausted: true, Err: err}
			}
			logger.Debug("transient chat completion error", "attempt", attempt+1, "error", err)
		default:
			return &core.ChatCompletionError{Attempts: attempt + 1, Err: err}
		}

		if lastAttempt {
			break
		}

		logger.Debug("waiting before next attempt", "backoff", backoff)
		if err := sleep(ctx, backoff); err != nil {
			return fmt.Errorf("waiting to retry chat completion: %w", err)
		}
	}

	logger.Error("failed to get a response from the chat completion service", "attempts", maxAttempts)
	return &core.NoResponseError{Attempts: maxAttempts}
}
