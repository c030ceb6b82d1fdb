package client

import (
	"context"
	"fmt"
	"time"

	"github.com/vvka-141/ftpr/internal/checksum"
	"github.com/vvka-141/ftpr/internal/conn"
	"github.com/vvka-141/ftpr/internal/ftpconn"
	"github.com/vvka-141/ftpr/internal/logging"
	"github.com/vvka-141/ftpr/internal/retry"
	"github.com/vvka-141/ftpr/pkg/ftpr"
)

// Client is the resilient façade over a single FTP connection. Every public
// method runs inside the retry envelope: the connection manager supplies a
// live session (reconnecting stale ones), the executor classifies failures
// and backs off between attempts.
//
// Thread-Safety: NOT safe for concurrent use; each goroutine should create
// its own Client.
type Client struct {
	config   ftpr.ConnectionConfig
	manager  *conn.Manager
	executor *retry.Executor
	digest   checksum.Calculator
	logger   ftpr.Logger
}

// Option customizes Client construction.
type Option func(*options)

type options struct {
	dialer   ftpr.Dialer
	logger   ftpr.Logger
	health   conn.HealthChecker
	onRetry  func(attempt int, err error, delay time.Duration)
	strategy ftpr.BackoffStrategy
}

// WithDialer replaces the production FTP dialer. Tests inject fakes here.
func WithDialer(d ftpr.Dialer) Option {
	return func(o *options) {
		o.dialer = d
	}
}

// WithLogger sets the logger for the client and all its internals.
func WithLogger(l ftpr.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithHealthChecker replaces the liveness probe used to detect stale sessions.
func WithHealthChecker(h conn.HealthChecker) Option {
	return func(o *options) {
		o.health = h
	}
}

// WithRetryObserver registers a callback fired once per backoff sleep,
// before the sleep starts.
func WithRetryObserver(f func(attempt int, err error, delay time.Duration)) Option {
	return func(o *options) {
		o.onRetry = f
	}
}

// WithBackoffStrategy replaces the backoff strategy derived from the
// configuration's retry policy. Tests use this to avoid real sleeps.
func WithBackoffStrategy(s ftpr.BackoffStrategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// New creates a Client for the given configuration. Defaults are applied
// before validation, so a config carrying only a host is usable.
func New(cfg ftpr.ConnectionConfig, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.NewNullLogger()
	}
	if o.dialer == nil {
		o.dialer = ftpconn.NewDialer()
	}
	if o.health == nil {
		o.health = conn.NewNoopProbe(o.logger)
	}
	if o.strategy == nil {
		o.strategy = retry.NewExponentialBackoff(cfg.Retry.MaxAttempts,
			retry.WithInitialDelay(cfg.Retry.InitialDelay),
			retry.WithMaxDelay(cfg.Retry.MaxDelay),
			retry.WithMultiplier(cfg.Retry.Multiplier),
			retry.WithJitter(cfg.Retry.Jitter),
		)
	}

	digest, err := checksum.New(cfg.ChecksumAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ftpr.ErrInvalidConfig, err)
	}

	executor := retry.NewExecutor(retry.NewFTPErrorClassifier(), o.strategy, o.logger)
	if o.onRetry != nil {
		executor = executor.WithOnRetry(o.onRetry)
	}

	return &Client{
		config:   cfg,
		manager:  conn.NewManager(cfg, o.dialer, o.health, o.logger),
		executor: executor,
		digest:   digest,
		logger:   o.logger,
	}, nil
}

// Open eagerly establishes the connection. Optional: every operation ensures
// a live session on its own, but callers that want to surface connection or
// credential problems up front can call Open first.
func (c *Client) Open(ctx context.Context) error {
	_, err := c.manager.Open(ctx)
	return err
}

// Close terminates the connection gracefully. Idempotent.
func (c *Client) Close() error {
	return c.manager.Close()
}

// Do runs an arbitrary operation inside the retry envelope. The operation may
// be invoked multiple times with distinct sessions, so it must be restartable
// from the beginning.
func (c *Client) Do(ctx context.Context, op ftpr.Operation) error {
	return c.executor.Execute(ctx, c.manager, op)
}

// Run creates a Client scoped to fn: connect on scope entry, invoke fn, then
// close regardless of outcome. Connection and credential problems surface
// before fn runs; fn's error wins over the close error.
func Run(ctx context.Context, cfg ftpr.ConnectionConfig, fn func(ctx context.Context, c *Client) error, opts ...Option) error {
	c, err := New(cfg, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	if err := c.Open(ctx); err != nil {
		return err
	}
	return fn(ctx, c)
}
