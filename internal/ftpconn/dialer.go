// Package ftpconn implements the ftpr.Dialer and ftpr.Session interfaces on
// top of github.com/jlaffaye/ftp. It is the only package that touches the
// wire-protocol library; everything above it works against the ftpr
// abstractions.
package ftpconn

import (
	"context"
	"fmt"
	"io"

	"github.com/jlaffaye/ftp"

	"github.com/vvka-141/ftpr/pkg/ftpr"
)

// Dialer establishes authenticated FTP sessions.
type Dialer struct{}

// NewDialer creates a Dialer.
func NewDialer() *Dialer {
	return &Dialer{}
}

// Dial connects to cfg.Addr() and logs in. Unreachable hosts wrap
// ftpr.ErrConnectionFailed; rejected credentials wrap ftpr.ErrAuthFailed
// (the half-open control connection is quit first).
func (d *Dialer) Dial(ctx context.Context, cfg ftpr.ConnectionConfig) (ftpr.Session, error) {
	timeout := cfg.DialTimeout
	if timeout == 0 {
		timeout = ftpr.DefaultDialTimeout
	}

	conn, err := ftp.Dial(cfg.Addr(),
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w: %w", cfg.Addr(), ftpr.ErrConnectionFailed, err)
	}

	user := cfg.Username
	if user == "" {
		user = ftpr.DefaultUsername
	}
	password := cfg.Password
	if password == "" && user == ftpr.DefaultUsername {
		password = ftpr.DefaultPassword
	}

	if err := conn.Login(user, password); err != nil {
		_ = conn.Quit()
		return nil, fmt.Errorf("login %q: %w: %w", user, ftpr.ErrAuthFailed, err)
	}

	return &serverSession{conn: conn}, nil
}

// serverSession adapts *ftp.ServerConn to the ftpr.Session interface.
type serverSession struct {
	conn *ftp.ServerConn
}

func (s *serverSession) NoOp() error {
	return s.conn.NoOp()
}

func (s *serverSession) Retr(path string) (io.ReadCloser, error) {
	resp, err := s.conn.Retr(path)
	if err != nil {
		return nil, err
	}
	// *ftp.Response surfaces the final transfer status on Close
	return resp, nil
}

func (s *serverSession) Stor(path string, r io.Reader) error {
	return s.conn.Stor(path, r)
}

func (s *serverSession) List(path string) ([]ftpr.Entry, error) {
	raw, err := s.conn.List(path)
	if err != nil {
		return nil, err
	}

	entries := make([]ftpr.Entry, 0, len(raw))
	for _, e := range raw {
		entries = append(entries, ftpr.Entry{
			Name:   e.Name,
			Target: e.Target,
			Type:   entryType(e.Type),
			Size:   e.Size,
			Time:   e.Time,
		})
	}
	return entries, nil
}

func (s *serverSession) ChangeDir(path string) error {
	return s.conn.ChangeDir(path)
}

func (s *serverSession) CurrentDir() (string, error) {
	return s.conn.CurrentDir()
}

func (s *serverSession) FileSize(path string) (int64, error) {
	return s.conn.FileSize(path)
}

func (s *serverSession) Delete(path string) error {
	return s.conn.Delete(path)
}

func (s *serverSession) MakeDir(path string) error {
	return s.conn.MakeDir(path)
}

func (s *serverSession) RemoveDir(path string) error {
	return s.conn.RemoveDir(path)
}

func (s *serverSession) Rename(from, to string) error {
	return s.conn.Rename(from, to)
}

func (s *serverSession) Quit() error {
	return s.conn.Quit()
}

func entryType(t ftp.EntryType) ftpr.EntryType {
	switch t {
	case ftp.EntryTypeFolder:
		return ftpr.EntryTypeFolder
	case ftp.EntryTypeLink:
		return ftpr.EntryTypeLink
	default:
		return ftpr.EntryTypeFile
	}
}

// Verify the adapter implements the interfaces at compile time
var (
	_ ftpr.Dialer  = (*Dialer)(nil)
	_ ftpr.Session = (*serverSession)(nil)
)
