package cli

import (
	"context"
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ftpr/internal/client"
	"github.com/vvka-141/ftpr/internal/logging"
	"github.com/vvka-141/ftpr/pkg/ftpr"
)

var getCmd = &cobra.Command{
	Use:   "get <remote_path> [local_path]",
	Short: "Download a file with retry and optional checksum verification",
	Long: `Get downloads a remote file, retrying transient network faults with
exponential backoff. The transfer streams into a temporary part file and is
only renamed into place once complete, so an interrupted run never leaves a
truncated file behind under the destination name.

With --checksum, the downloaded file's digest is compared against the given
hex value (case-insensitive). On a mismatch the file is kept for inspection
and the command exits with code 14.

Arguments:
  remote_path    File to fetch from the server
  local_path     Destination path (default: remote file's base name)

Examples:
  # Anonymous download
  ftpr get /pub/release.tar.gz -h ftp.example.com

  # Authenticated, verified download
  FTPR_PASSWORD=secret ftpr get /pub/release.tar.gz ./release.tar.gz \
    -h ftp.example.com -U deploy \
    --checksum 6b86b273ff34fce19d6b804eff5a3f5747ada4eaa22f1d49c01e52ddb7875b4b

  # Tighter retry budget for flaky links
  ftpr get /pub/release.tar.gz -h ftp.example.com --retries 8 --retry-delay 1s`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGet,
}

type getFlagValues struct {
	conn     connectionFlags
	checksum string
}

var getFlags getFlagValues

func init() {
	rootCmd.AddCommand(getCmd)
	addConnectionFlags(getCmd, &getFlags.conn)
	getCmd.Flags().StringVar(&getFlags.checksum, "checksum", "",
		"Expected hex digest of the downloaded file\n"+
			"Algorithm selected by --checksum-algorithm (default sha256)")
}

func runGet(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	cfg, err := resolveConfig(cmd, &getFlags.conn, verbose)
	if err != nil {
		return err
	}

	remotePath := args[0]
	localPath := path.Base(remotePath)
	if len(args) == 2 {
		localPath = args[1]
	}

	logger := logging.NewConsoleLogger(verbose)
	ctx, cancel := signalContext()
	defer cancel()

	err = client.Run(ctx, cfg, func(ctx context.Context, c *client.Client) error {
		return c.DownloadFile(ctx, ftpr.DownloadRequest{
			RemotePath:       remotePath,
			LocalPath:        localPath,
			ExpectedChecksum: getFlags.checksum,
		})
	}, client.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	logger.Info("Downloaded %s to %s", remotePath, localPath)
	return nil
}
