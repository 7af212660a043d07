// Package logging sets up the debug log shared by the CLI and the TUI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DebugLogPath is the fixed path for debug logs, in the working directory so
// it is easy to find.
const DebugLogPath = "neuromind-debug.log"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns a JSON lines logger writing to path when enabled, or a logger
// that discards everything. The returned closer must be called on exit.
func Open(path string, enabled bool) (*slog.Logger, io.Closer, error) {
	if !enabled {
		return Discard(), nopCloser{}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating debug log: %w", err)
	}

	logger := New(f)
	logger.Debug("debug started", "log_file", path)
	return logger, f, nil
}

// New returns a debug level JSON logger writing to w.
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
