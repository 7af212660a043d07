package ui

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neuromind/internal/notify"
)

func (a *App) watchCmd() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print reminders for tasks and commitments coming up",
		Long: `Check periodically for tasks due soon and commitments about to start,
and print a reminder for each one. Interval and lookahead come from the
[notify] section of the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := notify.NewWatcher(a.store, notify.NewTerminal(out),
				notify.WithInterval(a.config.Interval()),
				notify.WithLookahead(a.config.Lookahead()),
				notify.WithLogger(a.logger),
				notify.WithNow(a.now),
			)

			if once {
				n, err := w.Tick(cmd.Context())
				if err != nil {
					return err
				}
				if n == 0 {
					fmt.Fprintln(out, "Nothing coming up.")
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintln(out, formatMuted(fmt.Sprintf("Checking every %s for the next %s. Ctrl+C to stop.",
				a.config.Interval(), a.config.Lookahead())))
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Check once and exit")
	return cmd
}
