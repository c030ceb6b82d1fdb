package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ftpr/internal/client"
	"github.com/vvka-141/ftpr/internal/logging"
	"github.com/vvka-141/ftpr/pkg/ftpr"
)

var execCmd = &cobra.Command{
	Use:   "exec <operation> [args...]",
	Short: "Run a named session operation inside the retry envelope",
	Long: `Exec runs one of the supported session operations with the same
reconnect-and-retry behavior as transfers. Unknown operations are rejected
before a connection is opened.

Operations:
  noop                 Probe the connection
  pwd                  Print the working directory
  cwd <path>           Change the working directory
  list [path]          List a directory (default ".")
  size <path>          Print a file's size in bytes
  delete <path>        Remove a file
  mkdir <path>         Create a directory
  rmdir <path>         Remove a directory
  rename <from> <to>   Move a file or directory

Examples:
  ftpr exec pwd -h ftp.example.com
  ftpr exec rename /incoming/a.tar.gz /archive/a.tar.gz -h ftp.example.com -U deploy`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

var execFlags connectionFlags

func init() {
	rootCmd.AddCommand(execCmd)
	addConnectionFlags(execCmd, &execFlags)
}

func runExec(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	cfg, err := resolveConfig(cmd, &execFlags, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	ctx, cancel := signalContext()
	defer cancel()

	var result interface{}
	err = client.Run(ctx, cfg, func(ctx context.Context, c *client.Client) error {
		var callErr error
		result, callErr = c.Call(ctx, args[0], args[1:]...)
		return callErr
	}, client.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("operation %s failed: %w", args[0], err)
	}

	printOperationResult(result)
	return nil
}

// printOperationResult writes the operation's result to stdout for pipeline
// consumption. Operations without a result print nothing.
func printOperationResult(result interface{}) {
	switch v := result.(type) {
	case nil:
	case string:
		fmt.Fprintln(os.Stdout, v)
	case int64:
		fmt.Fprintln(os.Stdout, v)
	case []ftpr.Entry:
		for _, entry := range v {
			fmt.Fprintln(os.Stdout, entry.Name)
		}
	default:
		fmt.Fprintln(os.Stdout, v)
	}
}
