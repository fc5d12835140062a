package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"etherion/internal/types"
)

var ErrInvalidOutputDir = errors.New("output directory must not be empty")

// Config holds generator settings. Precedence: defaults < YAML < env < flags.
type Config struct {
	// Reporting interval: daily, tplus3 (t+3) or weekly
	Cadence string `yaml:"cadence" env:"CADENCE"`

	// Directory the documents are written to
	OutputDir string `yaml:"output_dir" env:"EOS_OUTPUT_DIR"`

	SchemaVersion string `yaml:"schema_version" env:"EOS_SCHEMA_VERSION"`

	// Also write board.csv
	CSV bool `yaml:"csv" env:"EOS_CSV"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level" env:"EOS_LOG_LEVEL"` // debug, info, warn, error
}

func DefaultConfig() *Config {
	return &Config{
		Cadence:       "daily",
		OutputDir:     "output",
		SchemaVersion: "1.3.x",
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults and applies environment overrides. An
// empty or missing path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields whose environment variables are set.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate rejects settings the generator cannot run with. Unknown cadences
// are allowed; they behave as daily.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return ErrInvalidOutputDir
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}
	return nil
}

func (c *Config) ParsedCadence() types.Cadence { return types.ParseCadence(c.Cadence) }
