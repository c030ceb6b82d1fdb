package ftpr_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vvka-141/ftpr/pkg/ftpr"
)

func TestConnectionConfig_Validate(t *testing.T) {
	valid := ftpr.ConnectionConfig{Host: "ftp.example.com"}
	valid.ApplyDefaults()

	tests := []struct {
		name      string
		mutate    func(c *ftpr.ConnectionConfig)
		wantError bool
	}{
		{
			name:      "valid config",
			mutate:    func(c *ftpr.ConnectionConfig) {},
			wantError: false,
		},
		{
			name:      "missing host",
			mutate:    func(c *ftpr.ConnectionConfig) { c.Host = "" },
			wantError: true,
		},
		{
			name:      "port out of range",
			mutate:    func(c *ftpr.ConnectionConfig) { c.Port = 70000 },
			wantError: true,
		},
		{
			name:      "negative dial timeout",
			mutate:    func(c *ftpr.ConnectionConfig) { c.DialTimeout = -time.Second },
			wantError: true,
		},
		{
			name:      "zero retry budget",
			mutate:    func(c *ftpr.ConnectionConfig) { c.Retry.MaxAttempts = 0 },
			wantError: true,
		},
		{
			name:      "multiplier below one",
			mutate:    func(c *ftpr.ConnectionConfig) { c.Retry.Multiplier = 0.5 },
			wantError: true,
		},
		{
			name:      "jitter above one",
			mutate:    func(c *ftpr.ConnectionConfig) { c.Retry.Jitter = 1.5 },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantError {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !errors.Is(err, ftpr.ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			} else if err != nil {
				t.Errorf("expected valid config, got %v", err)
			}
		})
	}
}

func TestConnectionConfig_ApplyDefaults(t *testing.T) {
	cfg := ftpr.ConnectionConfig{Host: "ftp.example.com"}
	cfg.ApplyDefaults()

	if cfg.Port != ftpr.DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, ftpr.DefaultPort)
	}
	if cfg.Username != ftpr.DefaultUsername || cfg.Password != ftpr.DefaultPassword {
		t.Errorf("expected anonymous credentials, got %q/%q", cfg.Username, cfg.Password)
	}
	if cfg.Retry.MaxAttempts != ftpr.DefaultRetryMaxAttempts {
		t.Errorf("Retry.MaxAttempts = %d, want %d", cfg.Retry.MaxAttempts, ftpr.DefaultRetryMaxAttempts)
	}
	if cfg.Retry.InitialDelay != ftpr.DefaultRetryInitialDelay {
		t.Errorf("Retry.InitialDelay = %v, want %v", cfg.Retry.InitialDelay, ftpr.DefaultRetryInitialDelay)
	}
	if cfg.ChecksumAlgorithm != ftpr.DefaultChecksumAlgorithm {
		t.Errorf("ChecksumAlgorithm = %q, want %q", cfg.ChecksumAlgorithm, ftpr.DefaultChecksumAlgorithm)
	}
}

func TestConnectionConfig_ApplyDefaults_KeepsExplicitCredentials(t *testing.T) {
	cfg := ftpr.ConnectionConfig{Host: "ftp.example.com", Username: "deploy", Password: ""}
	cfg.ApplyDefaults()

	if cfg.Username != "deploy" {
		t.Errorf("Username = %q, want %q", cfg.Username, "deploy")
	}
	// A named user with an empty password must not be given the anonymous one
	if cfg.Password != "" {
		t.Errorf("Password = %q, want empty", cfg.Password)
	}
}

func TestConnectionConfig_Addr(t *testing.T) {
	cfg := ftpr.ConnectionConfig{Host: "ftp.example.com"}
	if got := cfg.Addr(); got != "ftp.example.com:21" {
		t.Errorf("Addr() = %q, want %q", got, "ftp.example.com:21")
	}

	cfg.Port = 2121
	if got := cfg.Addr(); got != "ftp.example.com:2121" {
		t.Errorf("Addr() = %q, want %q", got, "ftp.example.com:2121")
	}
}

func TestDownloadRequest_Validate(t *testing.T) {
	req := ftpr.DownloadRequest{RemotePath: "/data/report.csv", LocalPath: "report.csv"}
	if err := req.Validate(); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}

	missing := ftpr.DownloadRequest{LocalPath: "report.csv"}
	if err := missing.Validate(); !errors.Is(err, ftpr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for missing remote path, got %v", err)
	}
}
