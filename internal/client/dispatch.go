package client

import (
	"context"
	"fmt"

	"github.com/vvka-141/ftpr/pkg/ftpr"
)

// opSpec describes one delegable named operation: its arity bounds and how to
// run it against a live session. run returns the operation's result value,
// which may be nil for commands that only succeed or fail.
type opSpec struct {
	minArgs int
	maxArgs int
	run     func(session ftpr.Session, args []string) (interface{}, error)
}

// operations is the closed set of names Call accepts. Dispatch is a lookup
// here, not reflection, so an unknown name is rejected before any bytes hit
// the wire.
var operations = map[string]opSpec{
	"noop": {0, 0, func(s ftpr.Session, _ []string) (interface{}, error) {
		return nil, s.NoOp()
	}},
	"pwd": {0, 0, func(s ftpr.Session, _ []string) (interface{}, error) {
		return s.CurrentDir()
	}},
	"cwd": {1, 1, func(s ftpr.Session, args []string) (interface{}, error) {
		return nil, s.ChangeDir(args[0])
	}},
	"list": {0, 1, func(s ftpr.Session, args []string) (interface{}, error) {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		return s.List(path)
	}},
	"size": {1, 1, func(s ftpr.Session, args []string) (interface{}, error) {
		return s.FileSize(args[0])
	}},
	"delete": {1, 1, func(s ftpr.Session, args []string) (interface{}, error) {
		return nil, s.Delete(args[0])
	}},
	"mkdir": {1, 1, func(s ftpr.Session, args []string) (interface{}, error) {
		return nil, s.MakeDir(args[0])
	}},
	"rmdir": {1, 1, func(s ftpr.Session, args []string) (interface{}, error) {
		return nil, s.RemoveDir(args[0])
	}},
	"rename": {2, 2, func(s ftpr.Session, args []string) (interface{}, error) {
		return nil, s.Rename(args[0], args[1])
	}},
}

// Call runs a named session operation inside the retry envelope and returns
// its result. Supported names: noop, pwd, cwd, list, size, delete, mkdir,
// rmdir and rename. An unknown name or wrong argument count fails with
// ftpr.ErrUnsupportedOperation without touching the connection.
func (c *Client) Call(ctx context.Context, name string, args ...string) (interface{}, error) {
	spec, ok := operations[name]
	if !ok {
		return nil, fmt.Errorf("operation %q: %w", name, ftpr.ErrUnsupportedOperation)
	}
	if len(args) < spec.minArgs || len(args) > spec.maxArgs {
		want := fmt.Sprintf("%d", spec.minArgs)
		if spec.maxArgs != spec.minArgs {
			want = fmt.Sprintf("%d to %d", spec.minArgs, spec.maxArgs)
		}
		return nil, fmt.Errorf("operation %q takes %s argument(s), got %d: %w",
			name, want, len(args), ftpr.ErrUnsupportedOperation)
	}

	var result interface{}
	err := c.Do(ctx, func(ctx context.Context, session ftpr.Session) error {
		var opErr error
		result, opErr = spec.run(session, args)
		return opErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
