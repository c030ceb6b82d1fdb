package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vvka-141/ftpr/internal/config"
	"github.com/vvka-141/ftpr/pkg/ftpr"
)

// connectionFlags holds the common connection-related flag values.
type connectionFlags struct {
	host           string
	port           int
	username       string
	passwordStdin  bool
	promptPassword bool
	timeout        time.Duration
	maxAttempts    int
	initialDelay   time.Duration
	maxDelay       time.Duration
	multiplier     float64
	jitter         float64
	checksum       string
}

// addConnectionFlags registers the shared connection and retry flags on cmd.
func addConnectionFlags(cmd *cobra.Command, flags *connectionFlags) {
	cmd.Flags().StringVarP(&flags.host, "host", "h", "",
		"FTP server host (required unless set in ftpr.yaml)")
	cmd.Flags().IntVarP(&flags.port, "port", "p", 0,
		"FTP control port (default 21)")
	cmd.Flags().StringVarP(&flags.username, "username", "U", "",
		"FTP user (default: anonymous)")
	cmd.Flags().BoolVar(&flags.passwordStdin, "password-stdin", false,
		"Read the password from the first line of stdin\n"+
			"Alternative: $FTPR_PASSWORD environment variable")
	cmd.Flags().BoolVarP(&flags.promptPassword, "prompt-password", "W", false,
		"Prompt for the password interactively (never echoed)")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0,
		"Connection establishment timeout (default 30s)\n"+
			"Examples: 10s, 1m")
	cmd.Flags().IntVar(&flags.maxAttempts, "retries", 0,
		"Retry budget per operation, including the first attempt (default 5)")
	cmd.Flags().DurationVar(&flags.initialDelay, "retry-delay", 0,
		"Delay before the first retry (default 500ms); doubles per attempt, capped")
	cmd.Flags().DurationVar(&flags.maxDelay, "retry-max-delay", 0,
		"Upper bound on the delay between retries (default 30s)")
	cmd.Flags().Float64Var(&flags.multiplier, "retry-multiplier", 0,
		"Exponential backoff growth factor (default 2.0)")
	cmd.Flags().Float64Var(&flags.jitter, "retry-jitter", 0,
		"Backoff jitter fraction 0.0-1.0 (default 0, fully deterministic delays)")
	cmd.Flags().StringVar(&flags.checksum, "checksum-algorithm", "",
		"Digest used for --checksum verification: sha256|md5|crc32 (default sha256)")
}

// resolveConfig builds the connection configuration for a command.
// Priority (highest to lowest): CLI flags > ftpr.yaml > defaults.
// The password additionally resolves from -W prompt, --password-stdin or
// $FTPR_PASSWORD; it is never accepted as a flag value.
func resolveConfig(cmd *cobra.Command, flags *connectionFlags, verbose bool) (ftpr.ConnectionConfig, error) {
	_ = godotenv.Load()

	var cfg ftpr.ConnectionConfig

	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return cfg, err
	}
	if projectCfg != nil {
		if err := projectCfg.Apply(&cfg); err != nil {
			return cfg, err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Loaded %s\n", config.ConfigFileName)
		}
	}

	if flags.host != "" {
		cfg.Host = flags.host
	}
	if flags.port != 0 {
		cfg.Port = flags.port
	}
	if flags.username != "" {
		cfg.Username = flags.username
	}
	if cmd.Flags().Changed("timeout") {
		cfg.DialTimeout = flags.timeout
	}
	if flags.maxAttempts != 0 {
		cfg.Retry.MaxAttempts = flags.maxAttempts
	}
	if cmd.Flags().Changed("retry-delay") {
		cfg.Retry.InitialDelay = flags.initialDelay
	}
	if cmd.Flags().Changed("retry-max-delay") {
		cfg.Retry.MaxDelay = flags.maxDelay
	}
	if cmd.Flags().Changed("retry-multiplier") {
		cfg.Retry.Multiplier = flags.multiplier
	}
	if cmd.Flags().Changed("retry-jitter") {
		cfg.Retry.Jitter = flags.jitter
	}
	if flags.checksum != "" {
		cfg.ChecksumAlgorithm = flags.checksum
	}

	password, err := resolvePassword(flags)
	if err != nil {
		return cfg, err
	}
	if password != "" {
		cfg.Password = password
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if verbose {
		logConnectionVerbose(&cfg)
	}
	return cfg, nil
}

// resolvePassword resolves the login password without ever reading it from a
// flag value (flags leak into shell history and process listings).
// Priority: -W prompt > --password-stdin > $FTPR_PASSWORD.
func resolvePassword(flags *connectionFlags) (string, error) {
	if flags.promptPassword && flags.passwordStdin {
		return "", fmt.Errorf("--prompt-password and --password-stdin are mutually exclusive: %w", ftpr.ErrInvalidConfig)
	}

	if flags.promptPassword {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	if flags.passwordStdin {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("failed to read password from stdin: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	return os.Getenv("FTPR_PASSWORD"), nil
}

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if ftpr.yaml does not exist (not an error).
func loadProjectConfig(sourcePath string) (*config.ProjectConfig, error) {
	projectCfg, err := config.Load(sourcePath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// logConnectionVerbose logs connection details when verbose mode is enabled.
func logConnectionVerbose(cfg *ftpr.ConnectionConfig) {
	fmt.Fprintf(os.Stderr, "[VERBOSE] Connection resolved:\n")
	fmt.Fprintf(os.Stderr, "  Host: %s\n", cfg.Host)
	fmt.Fprintf(os.Stderr, "  Port: %d\n", cfg.Port)
	fmt.Fprintf(os.Stderr, "  User: %s\n", cfg.Username)
	fmt.Fprintf(os.Stderr, "  Dial Timeout: %s\n", cfg.DialTimeout)
	fmt.Fprintf(os.Stderr, "  Retries: %d (delay %s, cap %s, x%.1f)\n",
		cfg.Retry.MaxAttempts, cfg.Retry.InitialDelay, cfg.Retry.MaxDelay, cfg.Retry.Multiplier)
	fmt.Fprintf(os.Stderr, "  Checksum: %s\n", cfg.ChecksumAlgorithm)
}
