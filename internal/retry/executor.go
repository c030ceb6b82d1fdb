package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/vvka-141/ftpr/internal/logging"
	"github.com/vvka-141/ftpr/pkg/ftpr"
)

// Executor orchestrates retry attempts with backoff and error classification.
// Every operation routed through Execute gets an identical retry envelope:
// obtain a live session, invoke, classify, back off, repeat.
//
// Thread Safety:
// The Executor itself is safe for concurrent use when calling Execute().
// However, WithOnRetry() returns a NEW instance with the callback configured,
// so each caller can have its own observation hook without shared state.
type Executor struct {
	classifier ftpr.ErrorClassifier
	strategy   ftpr.BackoffStrategy
	logger     ftpr.Logger
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates a new retry executor with the given configuration.
// Panics if classifier or strategy is nil; a nil logger discards output.
func NewExecutor(
	classifier ftpr.ErrorClassifier,
	strategy ftpr.BackoffStrategy,
	logger ftpr.Logger,
) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Executor{
		classifier: classifier,
		strategy:   strategy,
		logger:     logger,
	}
}

// WithOnRetry returns a new Executor with the specified retry callback.
// The callback fires once per backoff sleep, before the sleep starts.
//
// This method does NOT modify the receiver; it returns a new instance.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Execute runs the operation against sessions supplied by the provider.
//
// For each attempt up to the strategy's budget it asks the provider for a live
// session (which reconnects stale ones) and invokes op. On success the result
// is final. A fatal error propagates immediately with no further attempts and
// no sleep. A transient error consumes one backoff delay and the loop
// continues; once the budget is spent, the last transient error is returned
// wrapped in ftpr.ErrRetryExhausted.
//
// Failures from the provider itself (dial errors during reconnect) pass
// through the same classification, so an unreachable server is retried while
// a credential rejection is not.
func (e *Executor) Execute(ctx context.Context, provider ftpr.SessionProvider, op ftpr.Operation) error {
	maxAttempts := e.strategy.MaxAttempts()
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		session, err := provider.EnsureLive(ctx)
		if err == nil {
			err = op(ctx, session)
		}
		if err == nil {
			return nil
		}

		if !e.classifier.IsTransient(err) {
			return err
		}
		lastErr = err

		if attempt == maxAttempts {
			break
		}

		// NextDelay is zero-indexed over retries
		delay := e.strategy.NextDelay(attempt - 1)
		e.logger.Verbose("attempt %d/%d failed (%v), retrying in %v", attempt, maxAttempts, err, delay)
		if e.onRetry != nil {
			e.onRetry(attempt, err, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ftpr.ErrRetryExhausted, maxAttempts, lastErr)
}
