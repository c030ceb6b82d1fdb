package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/ftpr/pkg/ftpr"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ConnectionConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password,omitempty"`
	Timeout  string `yaml:"timeout,omitempty"`
}

type RetryConfig struct {
	MaxAttempts  int     `yaml:"max_attempts,omitempty"`
	InitialDelay string  `yaml:"initial_delay,omitempty"`
	MaxDelay     string  `yaml:"max_delay,omitempty"`
	Multiplier   float64 `yaml:"multiplier,omitempty"`
	Jitter       float64 `yaml:"jitter,omitempty"`
}

type ProjectConfig struct {
	Connection ConnectionConfig `yaml:"connection"`
	Retry      RetryConfig      `yaml:"retry"`
	Checksum   string           `yaml:"checksum,omitempty"`
}

const ConfigFileName = "ftpr.yaml"

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Apply copies the file's values into the connection config. Only set fields
// are applied, so flag and default values survive an absent key. Durations
// use Go syntax ("30s", "1m30s").
func (p *ProjectConfig) Apply(cfg *ftpr.ConnectionConfig) error {
	if p.Connection.Host != "" {
		cfg.Host = p.Connection.Host
	}
	if p.Connection.Port != 0 {
		cfg.Port = p.Connection.Port
	}
	if p.Connection.Username != "" {
		cfg.Username = p.Connection.Username
	}
	if p.Connection.Password != "" {
		cfg.Password = p.Connection.Password
	}
	if p.Connection.Timeout != "" {
		d, err := parseDuration("connection.timeout", p.Connection.Timeout)
		if err != nil {
			return err
		}
		cfg.DialTimeout = d
	}

	if p.Retry.MaxAttempts != 0 {
		cfg.Retry.MaxAttempts = p.Retry.MaxAttempts
	}
	if p.Retry.InitialDelay != "" {
		d, err := parseDuration("retry.initial_delay", p.Retry.InitialDelay)
		if err != nil {
			return err
		}
		cfg.Retry.InitialDelay = d
	}
	if p.Retry.MaxDelay != "" {
		d, err := parseDuration("retry.max_delay", p.Retry.MaxDelay)
		if err != nil {
			return err
		}
		cfg.Retry.MaxDelay = d
	}
	if p.Retry.Multiplier != 0 {
		cfg.Retry.Multiplier = p.Retry.Multiplier
	}
	if p.Retry.Jitter != 0 {
		cfg.Retry.Jitter = p.Retry.Jitter
	}

	if p.Checksum != "" {
		cfg.ChecksumAlgorithm = p.Checksum
	}
	return nil
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s in %s: %w: %w", key, ConfigFileName, ftpr.ErrInvalidConfig, err)
	}
	return d, nil
}
