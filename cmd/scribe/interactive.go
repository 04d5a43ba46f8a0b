package main

import (
	"context"
	"strings"

	"github.com/aretw0/scribe"
	"github.com/aretw0/scribe/internal/tui"
)

func runInteractive(ctx context.Context) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := fileLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	nb, err := newNotebook(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("scribe started", "version", strings.TrimSpace(scribe.Version), "config", path)
	return tui.Run(ctx, nb, tui.RunOptions{
		Config:     cfg,
		ConfigPath: path,
		Logger:     logger,
		AltScreen:  true,
	})
}
