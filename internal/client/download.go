package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/vvka-141/ftpr/internal/checksum"
	"github.com/vvka-141/ftpr/pkg/ftpr"
)

// DownloadFile fetches a remote file to the local filesystem with retry and,
// when the request carries an expected checksum, integrity verification.
//
// The transfer streams into a uniquely named part file next to the final
// destination; each attempt truncates it, so a retry after a mid-stream fault
// never concatenates partial content. Only a completed transfer is renamed
// into place. The rename happens before verification: on a checksum mismatch
// the downloaded bytes stay at LocalPath for inspection and the call returns
// an error wrapping ftpr.ErrIntegrityMismatch. Integrity failures are final,
// never retried; re-reading the same corrupt source would waste the budget.
func (c *Client) DownloadFile(ctx context.Context, req ftpr.DownloadRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	partPath := fmt.Sprintf("%s.%s.part", req.LocalPath, uuid.New().String())

	err := c.Do(ctx, func(ctx context.Context, session ftpr.Session) error {
		return fetchToFile(session, req.RemotePath, partPath)
	})
	if err != nil {
		_ = os.Remove(partPath)
		return err
	}

	if err := os.Rename(partPath, req.LocalPath); err != nil {
		_ = os.Remove(partPath)
		return fmt.Errorf("finalize download %s: %w", req.LocalPath, err)
	}
	c.logger.Verbose("downloaded %s to %s", req.RemotePath, req.LocalPath)

	if req.ExpectedChecksum == "" {
		return nil
	}
	return c.verifyDownload(req)
}

// fetchToFile performs one transfer attempt. Creating with O_TRUNC discards
// any bytes a previous attempt left behind.
func fetchToFile(session ftpr.Session, remotePath, localPath string) error {
	f, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", localPath, err)
	}
	defer func() { _ = f.Close() }()

	r, err := session.Retr(remotePath)
	if err != nil {
		return err
	}

	_, copyErr := io.Copy(f, r)
	// Close surfaces the server's final transfer status; it matters even
	// when the copy already failed, but the copy error wins.
	closeErr := r.Close()
	if copyErr != nil {
		return copyErr
	}
	if closeErr != nil {
		return closeErr
	}
	return f.Sync()
}

func (c *Client) verifyDownload(req ftpr.DownloadRequest) error {
	actual, err := c.digest.DigestFile(req.LocalPath)
	if err != nil {
		return fmt.Errorf("verify %s: %w", req.LocalPath, err)
	}

	if !checksum.Equal(actual, req.ExpectedChecksum) {
		return fmt.Errorf("%s digest of %s is %s, expected %s: %w",
			c.digest.Algorithm(), filepath.Base(req.LocalPath),
			actual, req.ExpectedChecksum, ftpr.ErrIntegrityMismatch)
	}

	c.logger.Verbose("%s digest of %s verified", c.digest.Algorithm(), req.LocalPath)
	return nil
}
