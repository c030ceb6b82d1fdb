package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vvka-141/ftpr/internal/client"
	"github.com/vvka-141/ftpr/internal/logging"
	"github.com/vvka-141/ftpr/pkg/ftpr"
)

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List a remote directory",
	Long: `Ls lists a remote directory (default ".") with type, size and
modification time. Directories and links are colorized on terminals;
pipe the output to strip colors automatically.

Examples:
  ftpr ls -h ftp.example.com
  ftpr ls /pub -h ftp.example.com`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLs,
}

var lsFlags connectionFlags

func init() {
	rootCmd.AddCommand(lsCmd)
	addConnectionFlags(lsCmd, &lsFlags)
}

func runLs(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	cfg, err := resolveConfig(cmd, &lsFlags, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	ctx, cancel := signalContext()
	defer cancel()

	var entries []ftpr.Entry
	err = client.Run(ctx, cfg, func(ctx context.Context, c *client.Client) error {
		callArgs := args
		result, callErr := c.Call(ctx, "list", callArgs...)
		if callErr != nil {
			return callErr
		}
		listing, ok := result.([]ftpr.Entry)
		if !ok {
			return fmt.Errorf("unexpected listing result type %T", result)
		}
		entries = listing
		return nil
	}, client.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("listing failed: %w", err)
	}

	printListing(entries)
	return nil
}

var (
	dirColor  = color.New(color.FgBlue, color.Bold)
	linkColor = color.New(color.FgCyan)
)

func printListing(entries []ftpr.Entry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, entry := range entries {
		switch entry.Type {
		case ftpr.EntryTypeFolder:
			fmt.Fprintf(w, "d\t-\t%s\t%s/\n",
				entry.Time.Format("2006-01-02 15:04"), dirColor.Sprint(entry.Name))
		case ftpr.EntryTypeLink:
			fmt.Fprintf(w, "l\t-\t%s\t%s -> %s\n",
				entry.Time.Format("2006-01-02 15:04"), linkColor.Sprint(entry.Name), entry.Target)
		default:
			fmt.Fprintf(w, "-\t%d\t%s\t%s\n",
				entry.Size, entry.Time.Format("2006-01-02 15:04"), entry.Name)
		}
	}
	_ = w.Flush()
}
