package local

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/confusion/pkg/device"
)

// TerminalNotifier prints notifications as a highlighted banner.
type TerminalNotifier struct {
	Out     io.Writer
	Console *Console
}

// Schedule implements device.Notifier.
func (t *TerminalNotifier) Schedule(_ context.Context, n device.Notification) error {
	out := t.Out
	if out == nil {
		out = os.Stdout
	}
	var err error
	t.Console.Do(func() {
		title := color.New(color.FgHiYellow, color.Bold)
		_, _ = title.Fprintf(out, "🔔 %s\n", n.Title)
		_, err = fmt.Fprintf(out, "   %s\n", n.Body)
	})
	if err != nil {
		return fmt.Errorf("local: write notification: %w", err)
	}
	return nil
}
