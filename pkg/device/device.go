// Package device describes the narrow device services the app reaches out
// to: permissions, local notifications, calendars and user alerts.
package device

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Capability names a permission-guarded device feature.
type Capability string

const (
	// Notifications lets the app present local notifications.
	Notifications Capability = "notifications"
	// Calendar lets the app write events into the user's calendars.
	Calendar Capability = "calendar"
)

// PermissionStatus is the answer a capability currently has.
type PermissionStatus string

const (
	// Granted means the capability may be used.
	Granted PermissionStatus = "granted"
	// Denied means the user refused the capability.
	Denied PermissionStatus = "denied"
	// Undetermined means the user was never asked.
	Undetermined PermissionStatus = "undetermined"
)

// ParsePermissionStatus maps config strings onto a status. Unknown values are
// treated as undetermined.
func ParsePermissionStatus(s string) PermissionStatus {
	switch PermissionStatus(s) {
	case Granted, Denied:
		return PermissionStatus(s)
	default:
		return Undetermined
	}
}

// Permissions reads and requests capability permissions.
type Permissions interface {
	Get(ctx context.Context, c Capability) (PermissionStatus, error)
	Ask(ctx context.Context, c Capability) (PermissionStatus, error)
}

// Obtain returns the current status, asking the user only when the
// capability is not granted yet.
func Obtain(ctx context.Context, p Permissions, c Capability) (PermissionStatus, error) {
	if p == nil {
		return Denied, errors.New("device: no permission service")
	}
	status, err := p.Get(ctx, c)
	if err != nil {
		return Denied, err
	}
	if status == Granted {
		return status, nil
	}
	return p.Ask(ctx, c)
}

// Notification is a local notification presented immediately.
type Notification struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
	At    time.Time `json:"at"`
}

// Notifier schedules local notifications.
type Notifier interface {
	Schedule(ctx context.Context, n Notification) error
}

// CalendarInfo identifies one of the user's calendars.
type CalendarInfo struct {
	ID      string `mapstructure:"id" json:"id"`
	Title   string `mapstructure:"title" json:"title"`
	Primary bool   `mapstructure:"primary" json:"primary"`
}

// Event is a calendar entry.
type Event struct {
	UID      string
	Title    string
	Start    time.Time
	End      time.Time
	TimeZone string
	Location string
}

// Calendars lists calendars and writes events into them.
type Calendars interface {
	Calendars(ctx context.Context) ([]CalendarInfo, error)
	CreateEvent(ctx context.Context, calendarID string, e Event) (string, error)
}

// DefaultCalendarProvider is implemented by calendar services that know the
// user's default calendar directly.
type DefaultCalendarProvider interface {
	DefaultCalendar(ctx context.Context) (*CalendarInfo, error)
}

// ResolveDefaultCalendar prefers an explicit default, then the primary
// calendar, then the first one listed. It returns nil when there is none.
func ResolveDefaultCalendar(ctx context.Context, c Calendars) (*CalendarInfo, error) {
	if c == nil {
		return nil, nil
	}
	if dp, ok := c.(DefaultCalendarProvider); ok {
		cal, err := dp.DefaultCalendar(ctx)
		if err != nil || cal != nil {
			return cal, err
		}
	}
	all, err := c.Calendars(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	for i := range all {
		if all[i].Primary {
			cal := all[i]
			return &cal, nil
		}
	}
	cal := all[0]
	return &cal, nil
}

// Alert is a user-visible, non-blocking message.
type Alert struct {
	Title   string
	Message string
}

// Alerter shows alerts to the user.
type Alerter interface {
	Alert(ctx context.Context, a Alert)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(ctx context.Context, a Alert)

// Alert implements Alerter.
func (f AlertFunc) Alert(ctx context.Context, a Alert) { f(ctx, a) }

// AlertRecorder keeps alerts so they can be shown later. Safe for concurrent
// use.
type AlertRecorder struct {
	mu     sync.Mutex
	alerts []Alert
}

// Alert implements Alerter.
func (r *AlertRecorder) Alert(_ context.Context, a Alert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, a)
}

// Alerts returns a copy of the recorded alerts.
func (r *AlertRecorder) Alerts() []Alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Alert(nil), r.alerts...)
}
