package ftpr

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

// RetryPolicy holds the backoff parameters for one connection configuration.
type RetryPolicy struct {
	// MaxAttempts is the retry budget: the maximum number of attempts for one
	// wrapped operation invocation, including the first.
	MaxAttempts int

	// InitialDelay is the delay before the first retry attempt.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retry attempts.
	MaxDelay time.Duration

	// Multiplier is the exponential growth factor (typically 2.0).
	Multiplier float64

	// Jitter adds randomness to delays (0.0-1.0). Zero disables jitter,
	// making delays fully deterministic.
	Jitter float64
}

// ConnectionConfig contains all parameters needed to reach and authenticate
// against an FTP server, plus the retry behavior for operations on it.
// It is set at construction and never mutated afterwards.
type ConnectionConfig struct {
	// Host is the FTP server hostname or address (required).
	Host string

	// Port is the control port. Zero means DefaultPort (21).
	Port int

	// Username and Password are the login credentials.
	// Both empty means anonymous login.
	Username string
	Password string

	// DialTimeout bounds connection establishment. Zero means DefaultDialTimeout.
	DialTimeout time.Duration

	// Retry configures the retry envelope applied to every wrapped operation.
	Retry RetryPolicy

	// ChecksumAlgorithm selects the digest used for integrity verification:
	// "sha256", "md5" or "crc32". Empty means DefaultChecksumAlgorithm.
	ChecksumAlgorithm string
}

// ApplyDefaults fills unset fields with package defaults.
func (c *ConnectionConfig) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Username == "" {
		c.Username = DefaultUsername
	}
	if c.Username == DefaultUsername && c.Password == "" {
		c.Password = DefaultPassword
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = DefaultDialTimeout
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = DefaultRetryMaxAttempts
	}
	if c.Retry.InitialDelay == 0 {
		c.Retry.InitialDelay = DefaultRetryInitialDelay
	}
	if c.Retry.MaxDelay == 0 {
		c.Retry.MaxDelay = DefaultRetryMaxDelay
	}
	if c.Retry.Multiplier == 0 {
		c.Retry.Multiplier = DefaultRetryMultiplier
	}
	if c.ChecksumAlgorithm == "" {
		c.ChecksumAlgorithm = DefaultChecksumAlgorithm
	}
}

// Validate checks if the ConnectionConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ConnectionConfig) Validate() error {
	var errs []error

	if c.Host == "" {
		errs = append(errs, fmt.Errorf("host is required: %w", ErrInvalidConfig))
	}

	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is out of range: %w", c.Port, ErrInvalidConfig))
	}

	if c.DialTimeout < 0 {
		errs = append(errs, fmt.Errorf("dial timeout cannot be negative: %w", ErrInvalidConfig))
	}

	if c.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("retry budget must be at least 1: %w", ErrInvalidConfig))
	}

	if c.Retry.InitialDelay < 0 || c.Retry.MaxDelay < 0 {
		errs = append(errs, fmt.Errorf("retry delays cannot be negative: %w", ErrInvalidConfig))
	}

	if c.Retry.Multiplier < 1 {
		errs = append(errs, fmt.Errorf("retry multiplier must be at least 1: %w", ErrInvalidConfig))
	}

	if c.Retry.Jitter < 0 || c.Retry.Jitter > 1 {
		errs = append(errs, fmt.Errorf("retry jitter must be between 0 and 1: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Addr returns the host:port dial address.
func (c *ConnectionConfig) Addr() string {
	port := c.Port
	if port == 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

// DownloadRequest describes a single file download. Scoped to one
// DownloadFile call; never persisted.
type DownloadRequest struct {
	// RemotePath is the file to fetch from the server.
	RemotePath string

	// LocalPath is where the downloaded bytes land.
	LocalPath string

	// ExpectedChecksum, if non-empty, is the hex digest the downloaded file
	// must match. Comparison is case-insensitive.
	ExpectedChecksum string
}

// Validate checks if the DownloadRequest has all required fields.
func (r *DownloadRequest) Validate() error {
	var errs []error

	if r.RemotePath == "" {
		errs = append(errs, fmt.Errorf("remote path is required: %w", ErrInvalidConfig))
	}

	if r.LocalPath == "" {
		errs = append(errs, fmt.Errorf("local path is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
