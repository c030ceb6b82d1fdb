package retry

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net"
	"net/textproto"
	"strings"
	"syscall"

	"github.com/vvka-141/ftpr/pkg/ftpr"
)

// FTP reply code boundaries per RFC 959. A 4yz reply is a transient negative
// completion ("try again"); a 5yz reply is a permanent negative completion.
const (
	replyTransientMin = 400
	replyTransientMax = 499
)

// FTPErrorClassifier implements ftpr.ErrorClassifier for errors raised by an
// FTP session. Anything it does not recognize is fatal: retry scope stays
// narrow and unknown failures never loop.
type FTPErrorClassifier struct{}

// NewFTPErrorClassifier creates a new FTP error classifier.
func NewFTPErrorClassifier() *FTPErrorClassifier {
	return &FTPErrorClassifier{}
}

// IsTransient determines if an error is temporary and retryable.
func (c *FTPErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	// Fatal by taxonomy: auth rejections, integrity mismatches, programmer
	// errors. These must never trigger reconnect or retry.
	if errors.Is(err, ftpr.ErrAuthFailed) ||
		errors.Is(err, ftpr.ErrIntegrityMismatch) ||
		errors.Is(err, ftpr.ErrUnsupportedOperation) ||
		errors.Is(err, ftpr.ErrInvalidConfig) {
		return false
	}

	// Protocol-level replies from the server
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		return protoErr.Code >= replyTransientMin && protoErr.Code <= replyTransientMax
	}

	// Local filesystem errors (missing directory, permission denied) are
	// never fixed by reconnecting to the server
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return false
	}

	// DNS resolution failures carry their own verdict: a nonexistent host
	// is permanent, only resolver hiccups and timeouts are retryable.
	// Decided here so the message fallback below cannot override it.
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.Temporary() || dnsErr.Timeout()
	}

	if c.isNetworkError(err) {
		return true
	}

	if c.isConnectionError(err) {
		return true
	}

	return false
}

// isNetworkError checks for network-level errors.
func (c *FTPErrorClassifier) isNetworkError(err error) bool {
	// A torn-down control or data connection surfaces as EOF mid-exchange
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	// Network operation errors
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() {
			return true
		}

		if opErr.Err != nil {
			switch {
			case errors.Is(opErr.Err, syscall.ECONNREFUSED),
				errors.Is(opErr.Err, syscall.ECONNRESET),
				errors.Is(opErr.Err, syscall.ECONNABORTED),
				errors.Is(opErr.Err, syscall.EPIPE),
				errors.Is(opErr.Err, syscall.ETIMEDOUT),
				errors.Is(opErr.Err, syscall.ENETUNREACH),
				errors.Is(opErr.Err, syscall.EHOSTUNREACH):
				return true
			}
		}
	}

	// Raw syscall errors outside a net.OpError wrapper
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}

// isConnectionError checks for connection-class errors by message pattern.
// Libraries and servers are inconsistent about error types, so string
// matching remains the fallback of last resort.
func (c *FTPErrorClassifier) isConnectionError(err error) bool {
	errMsg := strings.ToLower(err.Error())

	transientPatterns := []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"broken pipe",
		"i/o timeout",
		"network is unreachable",
		"use of closed network connection",
		"not connected",
		"transfer aborted",
		"unexpected eof",
	}

	for _, pattern := range transientPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}
