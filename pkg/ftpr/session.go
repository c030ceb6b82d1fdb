package ftpr

import (
	"context"
	"io"
	"time"
)

// EntryType describes the kind of a remote directory entry.
type EntryType int

const (
	EntryTypeFile EntryType = iota
	EntryTypeFolder
	EntryTypeLink
)

// Entry describes a single remote file or directory returned by List.
// It decouples callers from the underlying FTP library's listing types.
type Entry struct {
	Name   string
	Target string // target of a symbolic link, if Type is EntryTypeLink
	Type   EntryType
	Size   uint64
	Time   time.Time
}

// Session is an authenticated, live connection handle to a remote FTP server.
// It abstracts the underlying wire-protocol implementation; the wrapper layers
// (connection manager, retry executor, command façade) only ever see this
// interface, which keeps them testable against fakes.
//
// Any method may return network-fault errors; the retry layer classifies them.
//
// Thread-Safety: NOT safe for concurrent use. A session carries a single FTP
// control connection, which supports one in-flight command at a time.
type Session interface {
	// NoOp sends a NOOP command, the liveness probe round trip.
	NoOp() error

	// Retr opens a download stream for the remote path. The caller must close
	// the returned reader before issuing further commands on the session;
	// closing also surfaces the server's final transfer status.
	Retr(path string) (io.ReadCloser, error)

	// Stor uploads the reader's content to the remote path.
	Stor(path string, r io.Reader) error

	// List returns the entries of the remote directory.
	List(path string) ([]Entry, error)

	// ChangeDir changes the session's working directory.
	ChangeDir(path string) error

	// CurrentDir reports the session's working directory.
	CurrentDir() (string, error)

	// FileSize reports the size of the remote file in bytes.
	FileSize(path string) (int64, error)

	// Delete removes the remote file.
	Delete(path string) error

	// MakeDir creates a remote directory.
	MakeDir(path string) error

	// RemoveDir removes a remote directory.
	RemoveDir(path string) error

	// Rename moves a remote file or directory.
	Rename(from, to string) error

	// Quit sends a graceful logout and closes the control connection.
	// The session must not be used afterwards.
	Quit() error
}

// Dialer establishes authenticated sessions. The production implementation
// dials a real FTP server; tests inject fakes.
type Dialer interface {
	// Dial connects and logs in using the supplied configuration.
	// Dial failures wrap ErrConnectionFailed; credential rejections wrap
	// ErrAuthFailed.
	Dial(ctx context.Context, cfg ConnectionConfig) (Session, error)
}

// SessionProvider supplies a live session on demand, reconnecting if the
// current one has gone stale. Implemented by the connection manager.
type SessionProvider interface {
	EnsureLive(ctx context.Context) (Session, error)
}

// Operation is a unit of work to run against a live session. Operations are
// invoked by the retry executor, possibly multiple times with distinct
// sessions, so they must be safe to re-run from the beginning.
type Operation func(ctx context.Context, session Session) error
