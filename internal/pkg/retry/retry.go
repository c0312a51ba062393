package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/routefinder/internal/pkg/logger"
)

// ErrAttemptsExhausted wraps the last error once every attempt has failed
var ErrAttemptsExhausted = errors.New("retry attempts exhausted")

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// BackoffFunc returns the delay before the given retry (attempt is 1-based: the delay after attempt N)
type BackoffFunc func(attempt int) time.Duration

// SleepFunc waits for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

// Policy holds retry configuration
type Policy struct {
	MaxAttempts int              // Total tries, first one included
	Backoff     BackoffFunc      // Delay between tries
	Retryable   func(error) bool // Decides whether an error is worth another try
	Sleep       SleepFunc        // Injected in tests to avoid real delays
}

// FixedBackoff waits the same interval before every retry
func FixedBackoff(d time.Duration) BackoffFunc {
	return func(int) time.Duration { return d }
}

// ContextSleep is the default SleepFunc
func ContextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FixedPolicy returns a policy with a constant backoff that retries errors accepted by retryable
func FixedPolicy(attempts int, backoff time.Duration, retryable func(error) bool) Policy {
	return Policy{
		MaxAttempts: attempts,
		Backoff:     FixedBackoff(backoff),
		Retryable:   retryable,
		Sleep:       ContextSleep,
	}
}

// Retrier runs a function under a Policy
type Retrier struct {
	policy Policy
	logger *logger.ZapLogger
}

// New creates a new retrier, filling in defaults for unset policy fields
func New(policy Policy, l *logger.ZapLogger) *Retrier {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.Backoff == nil {
		policy.Backoff = FixedBackoff(0)
	}
	if policy.Retryable == nil {
		policy.Retryable = func(error) bool { return true }
	}
	if policy.Sleep == nil {
		policy.Sleep = ContextSleep
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Retrier{policy: policy, logger: l}
}

// Policy returns the effective policy
func (r *Retrier) Policy() Policy {
	return r.policy
}

// Execute executes fn until it succeeds, returns a non-retryable error, or runs out of attempts.
// Non-retryable errors are returned unwrapped; exhaustion wraps the last error in ErrAttemptsExhausted.
func (r *Retrier) Execute(ctx context.Context, fn RetryableFunc) error {
	var lastErr error

	for attempt := 1; attempt <= r.policy.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 1 {
				r.logger.Info("Function succeeded after retries",
					logger.Int("attempt", attempt))
			}
			return nil
		}

		lastErr = err

		if !r.policy.Retryable(err) {
			r.logger.Debug("Error is not retryable, stopping",
				logger.Err(err),
				logger.Int("attempt", attempt))
			return err
		}

		// Don't sleep after the last attempt
		if attempt == r.policy.MaxAttempts {
			break
		}

		delay := r.policy.Backoff(attempt)
		r.logger.Warn("Function failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt),
			logger.Duration("delay", delay),
			logger.Int("max_attempts", r.policy.MaxAttempts))

		if err := r.policy.Sleep(ctx, delay); err != nil {
			return err
		}
	}

	r.logger.Error("Function failed after all attempts",
		logger.Err(lastErr),
		logger.Int("total_attempts", r.policy.MaxAttempts))

	return fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, r.policy.MaxAttempts, lastErr)
}
