package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/scribe"
	"github.com/aretw0/scribe/internal/config"
)

// loadConfig returns the effective configuration and the file it came from.
// Without --config and without a scribe.yaml up the tree, the defaults are used and the path is empty.
func loadConfig() (config.Config, string, error) {
	path := configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return config.Config{}, "", fmt.Errorf("getting working directory: %w", err)
		}
		path, err = scribe.FindConfig(wd)
		if errors.Is(err, scribe.ErrConfigNotFound) {
			slog.Debug("no config file found, using defaults", "start", wd)
			cfg := config.Default()
			return cfg, "", applyLogLevel(cfg)
		}
		if err != nil {
			return config.Config{}, "", err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	if err := applyLogLevel(cfg); err != nil {
		return config.Config{}, "", err
	}
	slog.Debug("config loaded", "path", path)
	return cfg, path, nil
}

// applyLogLevel sets the stderr log level from log_level. --verbose wins.
func applyLogLevel(cfg config.Config) error {
	if verbose {
		logLevel.Set(slog.LevelDebug)
		return nil
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logLevel.Set(level)
	return nil
}

func newNotebook(cfg config.Config, logger *slog.Logger) (*scribe.Notebook, error) {
	strategy := cfg.IDStrategy
	if idStrategy != "" {
		strategy = idStrategy
	}
	return scribe.New(
		scribe.WithLogger(logger),
		scribe.WithIDStrategy(strategy),
		scribe.WithEventBuffer(cfg.EventBuffer),
	)
}

// fileLogger opens the log file named by the config. The interactive screen owns the terminal,
// so without a log file everything is discarded.
func fileLogger(cfg config.Config) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}
