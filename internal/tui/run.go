package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/neuromind/internal/config"
	"github.com/javiermolinar/neuromind/internal/scheduler"
	"github.com/javiermolinar/neuromind/internal/tui/theme"
)

// LiveStore is the storage the dashboard reads, watches and writes.
type LiveStore interface {
	Store
	scheduler.Source
	scheduler.Watcher
}

// Run starts the dashboard and blocks until the user quits.
func Run(ctx context.Context, store LiveStore, cfg *config.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	th, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	live := scheduler.NewLive(scheduler.New(cfg.SchedulerOptions()), store, store, scheduler.WithLogger(logger))
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = live.Run(ctx)
	}()

	model := New(ctx, store, live,
		WithStyles(NewStyles(theme.NewPalette(th))),
		WithLogger(logger),
	)
	logger.Debug("dashboard started", "theme", th.Name)

	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	cancel()
	<-done
	if err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
