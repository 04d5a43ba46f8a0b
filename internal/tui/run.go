package tui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/scribe/internal/config"
	lifecycleadapter "github.com/aretw0/scribe/pkg/adapters/lifecycle"
	"github.com/aretw0/scribe/pkg/core"
)

// RunOptions configures Run.
type RunOptions struct {
	Config     config.Config
	ConfigPath string // when set, the file is watched and reloads restyle the screen
	Logger     *slog.Logger
	AltScreen  bool
}

// Run starts the interactive program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, nb *core.Notebook, opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(New(nb, opts.Config, logger), progOpts...)

	src := lifecycleadapter.NewSource(nb.Events())
	if err := lifecycleadapter.Forward(ctx, src, func(e core.Event) {
		logger.Debug("notebook event", "event", e.String())
		p.Send(EventMsg{Event: e})
	}); err != nil {
		return err
	}

	if opts.ConfigPath != "" {
		err := config.Watch(ctx, opts.ConfigPath,
			func(cfg config.Config) { p.Send(ConfigMsg{Config: cfg}) },
			func(err error) { logger.Warn("config reload failed", "path", opts.ConfigPath, "error", err) },
		)
		if err != nil {
			logger.Warn("config watch disabled", "path", opts.ConfigPath, "error", err)
		}
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
