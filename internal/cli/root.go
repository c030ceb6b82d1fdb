package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `  __ _
 / _| |_ _ __  _ __
| |_| __| '_ \| '__|
|  _| |_| |_) | |
|_|  \__| .__/|_|
        |_|`

var rootCmd = &cobra.Command{
	Use:   "ftpr",
	Short: "Resilient FTP transfer tool",
	Long: asciiLogo + `

ftpr wraps plain FTP transfers in a resilience layer: dead connections are
detected and re-established transparently, transient network faults are
retried with capped exponential backoff, and downloads can be verified
against an expected checksum.

Fatal conditions (bad credentials, missing remote files, integrity
mismatches) fail immediately without burning the retry budget.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Connection failed
  12 - Authentication rejected
  13 - Retry budget exhausted
  14 - Checksum verification failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for ftpr")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
