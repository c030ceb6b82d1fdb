package ftpr

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Operation completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitConnectionError = 11 // Failed to connect to the FTP server
	ExitAuthError       = 12 // Server rejected the supplied credentials
	ExitRetryExhausted  = 13 // Transient failures persisted past the retry budget
	ExitIntegrityError  = 14 // Downloaded file failed checksum verification
)

const (
	// DefaultPort is the standard FTP control port.
	DefaultPort = 21

	// DefaultUsername and DefaultPassword are used for anonymous logins
	// when no credentials are configured.
	DefaultUsername = "anonymous"
	DefaultPassword = "anonymous"

	// DefaultDialTimeout bounds the initial TCP dial and greeting exchange.
	DefaultDialTimeout = 30 * time.Second

	// DefaultRetryMaxAttempts is the default retry budget per wrapped operation.
	DefaultRetryMaxAttempts = 5

	// DefaultRetryInitialDelay is the default delay before the first retry attempt.
	DefaultRetryInitialDelay = 500 * time.Millisecond

	// DefaultRetryMaxDelay is the default cap on the delay between retry attempts.
	DefaultRetryMaxDelay = 30 * time.Second

	// DefaultRetryMultiplier is the default exponential growth factor.
	DefaultRetryMultiplier = 2.0

	// DefaultChecksumAlgorithm is the digest used for integrity verification
	// when none is configured.
	DefaultChecksumAlgorithm = "sha256"
)
