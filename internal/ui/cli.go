package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neuromind/internal/config"
	"github.com/javiermolinar/neuromind/internal/db"
	"github.com/javiermolinar/neuromind/internal/feedback"
	"github.com/javiermolinar/neuromind/internal/logging"
	"github.com/javiermolinar/neuromind/internal/scheduler"
	"github.com/javiermolinar/neuromind/internal/task"
	"github.com/javiermolinar/neuromind/internal/timetable"
	"github.com/javiermolinar/neuromind/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// Store is everything the commands need from storage.
type Store interface {
	task.Repository
	timetable.Repository
	feedback.Repository
	scheduler.Source
	scheduler.Watcher
	Reset(ctx context.Context) error
	Close() error
}

// App holds the CLI application state.
type App struct {
	store     Store
	ownsStore bool
	config    *config.Config
	root      *cobra.Command
	debug     bool // Enable debug logging
	logger    *slog.Logger
	logCloser io.Closer
	now       func() time.Time
}

// NewApp creates a new CLI application. A nil store is opened lazily from
// the configured database path.
func NewApp(store Store, cfg *config.Config) *App {
	a := &App{
		store:  store,
		config: cfg,
		logger: logging.Discard(),
		now:    time.Now,
	}

	a.root = &cobra.Command{
		Use:   "neuromind",
		Short: "A personal planner that fits tasks around your timetable",
		Long: `Neuromind keeps your tasks, weekly timetable and daily mood feedback,
and suggests a plan for the day by fitting pending tasks into the free
time between your commitments.

Run without arguments to open the live dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.openLogger()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			return tui.Run(cmd.Context(), a.store, a.config, a.logger)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+logging.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.taskCmd())
	a.root.AddCommand(a.timetableCmd())
	a.root.AddCommand(a.planCmd())
	a.root.AddCommand(a.feedbackCmd())
	a.root.AddCommand(a.insightsCmd())
	a.root.AddCommand(a.watchCmd())
	a.root.AddCommand(a.demoCmd())
	a.root.AddCommand(a.resetCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "neuromind %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) openLogger() error {
	if a.logCloser != nil {
		return nil
	}
	logger, closer, err := logging.Open(logging.DebugLogPath, a.debug)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logCloser = closer
	return nil
}

// ensureStore opens the database on first use.
func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}
	store, err := db.Open(a.config.Storage.DBPath)
	if err != nil {
		return err
	}
	a.logger.Debug("database opened", "path", a.config.Storage.DBPath)
	a.store = store
	a.ownsStore = true
	return nil
}

func (a *App) scheduler() *scheduler.Scheduler {
	return scheduler.New(a.config.SchedulerOptions())
}

// Close releases the store and the debug log if the app opened them.
func (a *App) Close() error {
	var err error
	if a.ownsStore && a.store != nil {
		err = a.store.Close()
		a.store = nil
	}
	if a.logCloser != nil {
		if cerr := a.logCloser.Close(); err == nil {
			err = cerr
		}
		a.logCloser = nil
	}
	return err
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	defer func() { _ = a.Close() }()
	return a.root.Execute()
}

// ExecuteContext runs the CLI application with ctx.
func (a *App) ExecuteContext(ctx context.Context) error {
	defer func() { _ = a.Close() }()
	return a.root.ExecuteContext(ctx)
}
