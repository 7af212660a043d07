package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/neuromind/internal/config"
	"github.com/javiermolinar/neuromind/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := ui.NewApp(nil, cfg)
	return app.Execute()
}
