package conn

import (
	"context"

	"github.com/vvka-141/ftpr/internal/logging"
	"github.com/vvka-141/ftpr/pkg/ftpr"
)

// Manager owns the underlying FTP session handle. It holds at most one live
// session at a time, detects staleness lazily through a health probe, and
// replaces dead sessions on demand. There is no background polling.
//
// Lifecycle: Disconnected until Open or EnsureLive succeeds; back to
// Disconnected via Close. The manager is reusable after Close.
//
// Thread-Safety: NOT safe for concurrent use. Each goroutine should drive its
// own Manager; only the manager itself mutates the session handle.
type Manager struct {
	config  ftpr.ConnectionConfig
	dialer  ftpr.Dialer
	health  HealthChecker
	logger  ftpr.Logger
	session ftpr.Session
}

// NewManager creates a Manager for the given configuration.
//
// Panics if dialer or health is nil. This is intentional fail-fast behavior
// to prevent cryptic nil pointer dereferences later; panics indicate
// programmer error in dependency wiring. A nil logger discards output.
func NewManager(config ftpr.ConnectionConfig, dialer ftpr.Dialer, health HealthChecker, logger ftpr.Logger) *Manager {
	if dialer == nil {
		panic("dialer cannot be nil")
	}
	if health == nil {
		panic("health checker cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}

	return &Manager{
		config: config,
		dialer: dialer,
		health: health,
		logger: logger,
	}
}

// Open returns the current session, or connects and authenticates if none
// exists. Dial failures wrap ftpr.ErrConnectionFailed and credential
// rejections wrap ftpr.ErrAuthFailed; neither is retried at this layer.
func (m *Manager) Open(ctx context.Context) (ftpr.Session, error) {
	if m.session != nil {
		return m.session, nil
	}

	session, err := m.dialer.Dial(ctx, m.config)
	if err != nil {
		return nil, err
	}

	m.logger.Verbose("connected to %s as %s", m.config.Addr(), m.config.Username)
	m.session = session
	return session, nil
}

// EnsureLive returns the current session if the health probe reports it
// alive. Otherwise it discards the stale handle (best effort, errors
// swallowed) and opens a fresh session.
func (m *Manager) EnsureLive(ctx context.Context) (ftpr.Session, error) {
	if m.session != nil {
		if m.health.IsAlive(m.session) {
			return m.session, nil
		}

		m.logger.Verbose("session to %s went stale, reconnecting", m.config.Addr())
		_ = m.session.Quit()
		m.session = nil
	}

	return m.Open(ctx)
}

// Close gracefully terminates the session, swallowing errors from an already
// dead peer. Idempotent: closing a closed manager is a no-op.
func (m *Manager) Close() error {
	if m.session == nil {
		return nil
	}

	if err := m.session.Quit(); err != nil {
		m.logger.Verbose("quit failed (peer already gone?): %v", err)
	}
	m.session = nil
	return nil
}

// Verify Manager implements the SessionProvider interface at compile time
var _ ftpr.SessionProvider = (*Manager)(nil)
