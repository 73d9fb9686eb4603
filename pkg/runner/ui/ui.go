// Package ui opens the interactive terminal interface.
package ui

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/confusion/pkg/app"
	"tableflip.dev/confusion/pkg/config"
	"tableflip.dev/confusion/pkg/device"
	"tableflip.dev/confusion/pkg/device/local"
	"tableflip.dev/confusion/pkg/runner/reserve"
	"tableflip.dev/confusion/pkg/tui"
)

type UI struct {
	App      *app.Service
	Settings *config.Settings
}

func (d *UI) Do(ctx context.Context) error {
	if d.App == nil {
		return errors.New("can not open the ui, no app service")
	}
	opts := tui.Options{App: d.App}
	if d.Settings != nil {
		opts.Effects = func(prompt local.PromptFunc, alerts device.Alerter, notices device.Notifier) app.Runner {
			e := reserve.NewEffects(d.Settings, prompt, alerts, io.Discard)
			if d.Settings.Notifications.Driver != config.DriverAMQP {
				e.Notifier = notices
			}
			return e
		}
	}
	return tui.Run(ctx, opts)
}
