package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ftpr/internal/config"
	"github.com/vvka-141/ftpr/pkg/ftpr"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func newTestCommand() (*cobra.Command, *connectionFlags) {
	flags := &connectionFlags{}
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	addConnectionFlags(cmd, flags)
	return cmd, flags
}

func TestResolveConfig_DefaultsApplied(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FTPR_PASSWORD", "")

	cmd, flags := newTestCommand()
	flags.host = "ftp.example.com"

	cfg, err := resolveConfig(cmd, flags, false)
	require.NoError(t, err)

	assert.Equal(t, "ftp.example.com", cfg.Host)
	assert.Equal(t, ftpr.DefaultPort, cfg.Port)
	assert.Equal(t, ftpr.DefaultUsername, cfg.Username)
	assert.Equal(t, ftpr.DefaultPassword, cfg.Password)
	assert.Equal(t, ftpr.DefaultRetryMaxAttempts, cfg.Retry.MaxAttempts)
	assert.Equal(t, ftpr.DefaultChecksumAlgorithm, cfg.ChecksumAlgorithm)
}

func TestResolveConfig_MissingHost(t *testing.T) {
	chdir(t, t.TempDir())

	cmd, flags := newTestCommand()
	_, err := resolveConfig(cmd, flags, false)
	assert.True(t, errors.Is(err, ftpr.ErrInvalidConfig))
}

func TestResolveConfig_FlagsOverrideProjectFile(t *testing.T) {
	dir := t.TempDir()
	content := `connection:
  host: file-host
  port: 2121
  username: file-user

retry:
  max_attempts: 9
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0644))
	chdir(t, dir)
	t.Setenv("FTPR_PASSWORD", "")

	cmd, flags := newTestCommand()
	flags.host = "flag-host"
	require.NoError(t, cmd.Flags().Set("timeout", "5s"))
	flags.timeout = 5 * time.Second

	cfg, err := resolveConfig(cmd, flags, false)
	require.NoError(t, err)

	assert.Equal(t, "flag-host", cfg.Host, "flag beats ftpr.yaml")
	assert.Equal(t, 2121, cfg.Port, "ftpr.yaml beats default")
	assert.Equal(t, "file-user", cfg.Username)
	assert.Equal(t, 9, cfg.Retry.MaxAttempts)
	assert.Equal(t, 5*time.Second, cfg.DialTimeout)
}

func TestResolveConfig_PasswordFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FTPR_PASSWORD", "sekrit")

	cmd, flags := newTestCommand()
	flags.host = "ftp.example.com"
	flags.username = "deploy"

	cfg, err := resolveConfig(cmd, flags, false)
	require.NoError(t, err)
	assert.Equal(t, "sekrit", cfg.Password)
}

func TestResolvePassword_MutuallyExclusiveSources(t *testing.T) {
	flags := &connectionFlags{promptPassword: true, passwordStdin: true}
	_, err := resolvePassword(flags)
	assert.True(t, errors.Is(err, ftpr.ErrInvalidConfig))
}

func TestCommandRegistration(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"get", "put", "exec", "ls", "version"} {
		assert.True(t, names[want], "expected %q command to be registered", want)
	}
}
