package local

import (
	"context"
	"sync"

	"tableflip.dev/confusion/pkg/device"
)

// Console serializes prompts, notifications and alerts that share one
// terminal. A nil Console does not lock.
type Console struct {
	mu sync.Mutex
}

// Do runs fn while holding the terminal.
func (c *Console) Do(fn func()) {
	if c == nil {
		fn()
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
}

// Alerter wraps a so each alert waits for the terminal.
func (c *Console) Alerter(a device.Alerter) device.Alerter {
	if a == nil {
		return nil
	}
	return device.AlertFunc(func(ctx context.Context, al device.Alert) {
		c.Do(func() { a.Alert(ctx, al) })
	})
}
