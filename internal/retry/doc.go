// Package retry provides automatic retry logic with exponential backoff
// for transient FTP connection failures.
//
// The package supports pluggable error classification and backoff strategies.
// The executor is parameterized by a session provider, so each attempt runs
// against a session that has just passed a liveness check (or a fresh one
// after reconnection).
//
// # Example Usage
//
//	classifier := retry.NewFTPErrorClassifier()
//	strategy := retry.NewExponentialBackoff(5)
//	executor := retry.NewExecutor(classifier, strategy, logger)
//
//	err := executor.Execute(ctx, manager, func(ctx context.Context, s ftpr.Session) error {
//	    return s.ChangeDir("/incoming")
//	})
//
// # Error Classification
//
// The ftpr.ErrorClassifier interface determines which errors are transient
// (retryable) versus fatal (non-retryable). FTPErrorClassifier recognizes 4yz
// protocol replies, connection resets, timeouts and similar network faults as
// transient; authentication rejections, 5yz replies, local filesystem errors
// and anything unrecognized are fatal.
//
// # Backoff Strategies
//
// The ftpr.BackoffStrategy interface controls retry timing. ExponentialBackoff
// implements capped exponential growth with injectable jitter, making delays
// deterministic under test.
package retry
