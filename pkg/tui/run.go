package tui

import (
	"context"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/confusion/pkg/app"
	"tableflip.dev/confusion/pkg/device"
	"tableflip.dev/confusion/pkg/device/local"
)

// DebugEnv names the environment variable that turns on the debug log file.
const DebugEnv = "CONFUSION_DEBUG"

const debugLog = "confusion-debug.log"

// Options configures Run.
type Options struct {
	App *app.Service
	// Effects builds what a confirmed reservation triggers. Permission
	// prompts, alerts and notices it receives are shown inside the UI.
	Effects func(prompt local.PromptFunc, alerts device.Alerter, notices device.Notifier) app.Runner
}

// Run launches the interactive TUI program.
func Run(ctx context.Context, opts Options) error {
	if os.Getenv(DebugEnv) != "" {
		f, err := tea.LogToFile(debugLog, "confusion")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		// Anything logged while the alt screen is up would corrupt it.
		prev := log.Writer()
		log.SetOutput(io.Discard)
		defer log.SetOutput(prev)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(opts.App)
	m.ctx = ctx
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if opts.Effects != nil {
		m.SetEffects(opts.Effects(promptVia(p), alertVia(p), noticeVia{p}))
	}
	_, err := p.Run()
	m.stopWatch()
	return err
}

// promptVia asks for a permission through the running program and waits
// for the user's answer.
func promptVia(p *tea.Program) local.PromptFunc {
	return func(ctx context.Context, c device.Capability) (bool, error) {
		reply := make(chan bool, 1)
		p.Send(permissionAskMsg{capability: c, reply: reply})
		select {
		case ok := <-reply:
			return ok, nil
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}

func alertVia(p *tea.Program) device.Alerter {
	return device.AlertFunc(func(_ context.Context, a device.Alert) {
		p.Send(alertMsg{alert: a})
	})
}

// noticeVia shows local notifications as a banner above the status line.
type noticeVia struct {
	p *tea.Program
}

func (n noticeVia) Schedule(_ context.Context, note device.Notification) error {
	n.p.Send(noticeMsg{note: note})
	return nil
}
