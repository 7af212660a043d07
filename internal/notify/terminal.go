package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Terminal prints reminders as colored lines.
type Terminal struct {
	w io.Writer
}

// NewTerminal creates a Terminal notifier writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// Notify writes the reminder.
func (t *Terminal) Notify(_ context.Context, r Reminder) error {
	head := color.New(color.FgYellow, color.Bold)
	if r.Kind == KindCommitment {
		head = color.New(color.FgCyan, color.Bold)
	}
	_, err := fmt.Fprintf(t.w, "%s %s\n  %s\n",
		color.New(color.Faint).Sprint(r.At.Format("Mon 15:04")),
		head.Sprint(r.Headline()),
		r.Message(),
	)
	return err
}
