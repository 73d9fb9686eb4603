package reserve

import (
	"io"

	"tableflip.dev/confusion/pkg/config"
	"tableflip.dev/confusion/pkg/device"
	"tableflip.dev/confusion/pkg/device/amqpnotify"
	"tableflip.dev/confusion/pkg/device/local"
	"tableflip.dev/confusion/pkg/reservation"
)

// NewEffects builds the reservation side effects from the settings.
// Notifications go to out unless the amqp driver is configured. Prompts,
// terminal notifications and alerts take turns on the terminal.
func NewEffects(s *config.Settings, prompt local.PromptFunc, alerts device.Alerter, out io.Writer) *reservation.Effects {
	console := &local.Console{}
	var notifier device.Notifier = &local.TerminalNotifier{Out: out, Console: console}
	if s.Notifications.Driver == config.DriverAMQP {
		notifier = amqpnotify.New(s.Notifications.AMQP.URL, s.Notifications.AMQP.Queue)
	}
	tmpl := reservation.DefaultEventTemplate()
	if s.Reservation.Title != "" {
		tmpl.Title = s.Reservation.Title
	}
	if s.Reservation.Duration > 0 {
		tmpl.Duration = s.Reservation.Duration
	}
	if s.Restaurant.Location != "" {
		tmpl.Location = s.Restaurant.Location
	}
	if s.Restaurant.TimeZone != "" {
		tmpl.TimeZone = s.Restaurant.TimeZone
	}
	permissions := local.NewPermissions(s.Permissions.Notifications, s.Permissions.Calendar, prompt)
	permissions.Console = console
	return &reservation.Effects{
		Permissions: permissions,
		Notifier:    notifier,
		Calendars: &local.ICSCalendars{
			Dir:  s.Calendar.Dir,
			List: s.Calendar.Calendars,
		},
		Alerts: console.Alerter(alerts),
		Event:  tmpl,
	}
}
