// Package config loads the YAML configuration of the scribe terminal app.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/scribe/pkg/core"
)

// Config is the application configuration, usually read from scribe.yaml.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file,omitempty"`
	IDStrategy  string `yaml:"id_strategy"`
	EventBuffer int    `yaml:"event_buffer"`
	Editor      Editor `yaml:"editor"`
	Theme       Theme  `yaml:"theme"`
}

// Editor sizes the modal form.
type Editor struct {
	Width         int `yaml:"width"`
	ContentHeight int `yaml:"content_height"`
}

// Theme holds the colours of the list and the modal.
type Theme struct {
	Background string `yaml:"background"`
	Title      string `yaml:"title"`
	Card       string `yaml:"card"`
	Muted      string `yaml:"muted"`
	Accent     string `yaml:"accent"`  // add button, Save
	Danger     string `yaml:"danger"`  // Cancel
	Warning    string `yaml:"warning"` // Delete
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:    "info",
		IDStrategy:  core.StrategyMonotonic,
		EventBuffer: 100,
		Editor: Editor{
			Width:         60,
			ContentHeight: 6,
		},
		Theme: Theme{
			Background: "#F2F2F7",
			Title:      "#1C1C1E",
			Card:       "#333333",
			Muted:      "#666666",
			Accent:     "#007AFF",
			Danger:     "#FF3B30",
			Warning:    "#FF9500",
		},
	}
}

// Load reads the file at path on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be fixed by defaults.
func (c Config) Validate() error {
	var errs []error
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.IDStrategy {
	case core.StrategyMonotonic, core.StrategyTimestamp:
	default:
		errs = append(errs, fmt.Errorf("unknown id_strategy %q", c.IDStrategy))
	}
	if c.EventBuffer < 0 {
		errs = append(errs, fmt.Errorf("event_buffer must not be negative"))
	}
	if c.Editor.Width < 20 {
		errs = append(errs, fmt.Errorf("editor.width must be at least 20"))
	}
	if c.Editor.ContentHeight < 1 {
		errs = append(errs, fmt.Errorf("editor.content_height must be at least 1"))
	}
	return errors.Join(errs...)
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", name)
	}
}
