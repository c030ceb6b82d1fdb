// Package conn manages the lifecycle of a single FTP session.
//
// The Manager owns zero or one live session and exposes three operations:
//
//   - Open: connect and authenticate if no session exists
//   - EnsureLive: return the session if a NOOP probe succeeds, otherwise
//     reconnect; staleness is detected lazily, on demand
//   - Close: graceful, idempotent teardown
//
// The retry executor calls EnsureLive before every attempt, so an operation
// retried after a network fault transparently lands on a fresh session.
//
// # Thread Safety
//
// Manager is NOT safe for concurrent use. Create separate instances
// for concurrent workloads, one per goroutine.
package conn
