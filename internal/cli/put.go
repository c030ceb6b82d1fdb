package cli

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ftpr/internal/client"
	"github.com/vvka-141/ftpr/internal/logging"
)

var putCmd = &cobra.Command{
	Use:   "put <local_path> [remote_path]",
	Short: "Upload a file with retry",
	Long: `Put uploads a local file, retrying transient network faults with
exponential backoff. Each attempt reopens the local file and streams from the
beginning, so a retried upload never sends a partial tail.

Arguments:
  local_path     File to upload
  remote_path    Destination path on the server (default: local file's base name)

Examples:
  ftpr put ./release.tar.gz /incoming/release.tar.gz -h ftp.example.com -U deploy

  # Read the password from stdin in CI
  echo "$DEPLOY_PASSWORD" | ftpr put ./release.tar.gz -h ftp.example.com \
    -U deploy --password-stdin`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPut,
}

var putFlags connectionFlags

func init() {
	rootCmd.AddCommand(putCmd)
	addConnectionFlags(putCmd, &putFlags)
}

func runPut(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	cfg, err := resolveConfig(cmd, &putFlags, verbose)
	if err != nil {
		return err
	}

	localPath := args[0]
	remotePath := path.Base(filepath.ToSlash(localPath))
	if len(args) == 2 {
		remotePath = args[1]
	}

	logger := logging.NewConsoleLogger(verbose)
	ctx, cancel := signalContext()
	defer cancel()

	err = client.Run(ctx, cfg, func(ctx context.Context, c *client.Client) error {
		return c.UploadFile(ctx, localPath, remotePath)
	}, client.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	logger.Info("Uploaded %s to %s", localPath, remotePath)
	return nil
}
