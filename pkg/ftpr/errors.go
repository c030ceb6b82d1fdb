package ftpr

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := client.DownloadFile(ctx, req)
//	if errors.Is(err, ftpr.ErrIntegrityMismatch) {
//	    // Handle checksum verification failure
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionFailed indicates the FTP server could not be reached
	// or the control connection could not be established.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrAuthFailed indicates the server rejected the supplied credentials.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRetryExhausted indicates a transient failure persisted past the
	// retry budget. It always wraps the last transient error observed.
	ErrRetryExhausted = errors.New("retry budget exhausted")

	// ErrIntegrityMismatch indicates a downloaded file's digest did not match
	// the expected checksum. The downloaded bytes are left on disk so the
	// caller can inspect them.
	ErrIntegrityMismatch = errors.New("integrity check failed")

	// ErrUnsupportedOperation indicates a delegated operation name is not in
	// the supported capability set.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrAuthFailed):
		return ExitAuthError
	case errors.Is(err, ErrIntegrityMismatch):
		return ExitIntegrityError
	case errors.Is(err, ErrRetryExhausted):
		return ExitRetryExhausted
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrUnsupportedOperation):
		return ExitUsageError
	}

	errStr := err.Error()

	// Cobra surfaces argument and flag misuse as plain errors
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "arg(s)") {
		return ExitUsageError
	}

	// Check for common connection error patterns
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
