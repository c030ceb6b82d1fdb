package conn

import (
	"github.com/vvka-141/ftpr/internal/logging"
	"github.com/vvka-141/ftpr/pkg/ftpr"
)

// HealthChecker reports whether a session is still usable.
type HealthChecker interface {
	// IsAlive probes the session and returns false on any failure.
	// Implementations must not propagate probe errors.
	IsAlive(session ftpr.Session) bool
}

// NoopProbe checks liveness by sending a NOOP command, one round trip per
// call. Callers should probe once per operation invocation, not on every
// retry of the same invocation.
type NoopProbe struct {
	logger ftpr.Logger
}

// NewNoopProbe creates a NoopProbe. A nil logger discards output.
func NewNoopProbe(logger ftpr.Logger) *NoopProbe {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &NoopProbe{logger: logger}
}

// IsAlive sends a NOOP on the session's control connection. Any failure,
// including a nil session, means "not alive".
func (p *NoopProbe) IsAlive(session ftpr.Session) bool {
	if session == nil {
		return false
	}
	if err := session.NoOp(); err != nil {
		p.logger.Verbose("liveness probe failed: %v", err)
		return false
	}
	return true
}
