package client

import (
	"context"
	"fmt"
	"os"

	"github.com/vvka-141/ftpr/pkg/ftpr"
)

// UploadFile stores a local file on the server with retry. The local file is
// reopened on every attempt so a retry always streams from the beginning.
func (c *Client) UploadFile(ctx context.Context, localPath, remotePath string) error {
	if localPath == "" || remotePath == "" {
		return fmt.Errorf("local and remote paths are required: %w", ftpr.ErrInvalidConfig)
	}

	err := c.Do(ctx, func(ctx context.Context, session ftpr.Session) error {
		f, err := os.Open(localPath)
		if err != nil {
			return fmt.Errorf("open %s: %w", localPath, err)
		}
		defer func() { _ = f.Close() }()

		return session.Stor(remotePath, f)
	})
	if err != nil {
		return err
	}

	c.logger.Verbose("uploaded %s to %s", localPath, remotePath)
	return nil
}
