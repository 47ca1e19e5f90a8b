// Package config handles loading and saving user configuration for texbot.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/texbot/internal/post"
	"github.com/f3rmion/texbot/internal/render"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up inside the config directory.
const FileName = "config.yaml"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds all user configuration for texbot.
type Config struct {
	Weekdays        []string  `yaml:"weekdays"`          // first-line names that mark a schedule post
	SplitLines      int       `yaml:"split_lines"`       // lines per message for long help output
	CopyToClipboard bool      `yaml:"copy_to_clipboard"` // copy command output by default
	Log             LogConfig `yaml:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	JSON  bool   `yaml:"json"`  // JSON lines instead of console output
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	weekdays := make([]string, len(post.DefaultWeekdays))
	copy(weekdays, post.DefaultWeekdays)

	return &Config{
		Weekdays:   weekdays,
		SplitLines: render.DefaultSplitLines,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks that the configuration can drive the classifier and logger.
func (c *Config) Validate() error {
	if len(c.Weekdays) != 7 {
		return fmt.Errorf("%w: expected 7 weekdays, got %d", ErrInvalidConfig, len(c.Weekdays))
	}

	seen := make(map[string]bool, len(c.Weekdays))
	for _, d := range c.Weekdays {
		key := strings.ToUpper(strings.TrimSpace(d))
		if key == "" {
			return fmt.Errorf("%w: empty weekday name", ErrInvalidConfig)
		}
		if seen[key] {
			return fmt.Errorf("%w: duplicate weekday %q", ErrInvalidConfig, d)
		}
		seen[key] = true
	}

	if c.SplitLines <= 0 {
		return fmt.Errorf("%w: split_lines must be positive, got %d", ErrInvalidConfig, c.SplitLines)
	}

	if !validLevel(c.Log.Level) {
		return fmt.Errorf("%w: unknown log level %q (want one of %s)",
			ErrInvalidConfig, c.Log.Level, strings.Join(logLevels, ", "))
	}

	return nil
}

func validLevel(level string) bool {
	for _, l := range logLevels {
		if level == l {
			return true
		}
	}
	return false
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "texbot"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
