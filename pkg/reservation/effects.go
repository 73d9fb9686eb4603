package reservation

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/confusion/pkg/device"
)

// EventTemplate holds the fixed metadata of reservation calendar events.
type EventTemplate struct {
	Title    string
	Location string
	TimeZone string
	Duration time.Duration
}

// DefaultEventTemplate is the restaurant's calendar entry.
func DefaultEventTemplate() EventTemplate {
	return EventTemplate{
		Title:    "Con Fusion Table Reservation",
		Location: "121, Clear Water Bay Road, Clear Water Bay, Kowloon, Hong Kong",
		TimeZone: "Asia/Hong_Kong",
		Duration: 2 * time.Hour,
	}
}

// Status is how one side effect ended.
type Status int

const (
	// StatusDone means the effect happened.
	StatusDone Status = iota
	// StatusDenied means the capability permission was refused; the effect
	// was skipped and the user alerted.
	StatusDenied
	// StatusNoCalendar means no calendar was available; the event was
	// skipped.
	StatusNoCalendar
	// StatusFailed means the device service returned an error.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusDenied:
		return "permission-denied"
	case StatusNoCalendar:
		return "no-calendar"
	default:
		return "failed"
	}
}

// Outcome describes a single side effect.
type Outcome struct {
	Capability device.Capability
	Status     Status
	// Ref identifies what was created: the notification id or the event id.
	Ref string
	Err error
}

// Report is the result of both side effects of a reservation.
type Report struct {
	Notification Outcome
	Calendar     Outcome
}

// Effects runs the device side effects of a confirmed reservation.
type Effects struct {
	Permissions device.Permissions
	Notifier    device.Notifier
	Calendars   device.Calendars
	Alerts      device.Alerter
	Event       EventTemplate

	Logf  func(format string, args ...any)
	NewID func() string
}

func (e *Effects) logf(format string, args ...any) {
	if e.Logf != nil {
		e.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func (e *Effects) newID() string {
	if e.NewID != nil {
		return e.NewID()
	}
	return uuid.NewString()
}

func (e *Effects) alert(ctx context.Context, title, msg string) {
	if e.Alerts == nil {
		e.logf("%s: %s", title, msg)
		return
	}
	e.Alerts.Alert(ctx, device.Alert{Title: title, Message: msg})
}

// Run triggers the notification and the calendar event independently and
// waits for both. Neither failure stops the other.
func (e *Effects) Run(ctx context.Context, req Request) Report {
	var (
		wg     sync.WaitGroup
		report Report
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		report.Notification = e.Notify(ctx, req)
	}()
	go func() {
		defer wg.Done()
		report.Calendar = e.AddToCalendar(ctx, req)
	}()
	wg.Wait()
	return report
}

// Notify presents a local notification summarizing the reservation.
func (e *Effects) Notify(ctx context.Context, req Request) Outcome {
	out := Outcome{Capability: device.Notifications}
	status, err := device.Obtain(ctx, e.Permissions, device.Notifications)
	if err != nil || status != device.Granted {
		e.alert(ctx, "Permission", "Permission not granted to show notifications")
		out.Status = StatusDenied
		out.Err = err
		return out
	}
	if e.Notifier == nil {
		out.Status = StatusFailed
		out.Err = fmt.Errorf("reservation: no notifier configured")
		return out
	}

	n := device.Notification{
		ID:    e.newID(),
		Title: "Your Reservation",
		Body:  fmt.Sprintf("Reservation for %s requested", req.DateTime.Format(DisplayLayout)),
		At:    time.Now(),
	}
	if err := e.Notifier.Schedule(ctx, n); err != nil {
		e.logf("reservation: schedule notification: %v", err)
		out.Status = StatusFailed
		out.Err = err
		return out
	}
	out.Status = StatusDone
	out.Ref = n.ID
	return out
}

// AddToCalendar writes the reservation into the default calendar.
func (e *Effects) AddToCalendar(ctx context.Context, req Request) Outcome {
	out := Outcome{Capability: device.Calendar}
	status, err := device.Obtain(ctx, e.Permissions, device.Calendar)
	if err != nil || status != device.Granted {
		e.alert(ctx, "Permission", "Permission not granted to access the calendar")
		out.Status = StatusDenied
		out.Err = err
		return out
	}

	cal, err := device.ResolveDefaultCalendar(ctx, e.Calendars)
	if err != nil {
		e.logf("reservation: resolve calendar: %v", err)
		out.Status = StatusFailed
		out.Err = err
		return out
	}
	if cal == nil {
		e.logf("reservation: no calendar available, skipping event")
		out.Status = StatusNoCalendar
		return out
	}

	tmpl := e.Event
	if tmpl.Duration <= 0 {
		tmpl.Duration = DefaultEventTemplate().Duration
	}
	ev := device.Event{
		UID:      e.newID(),
		Title:    tmpl.Title,
		Start:    req.DateTime,
		End:      req.DateTime.Add(tmpl.Duration),
		TimeZone: tmpl.TimeZone,
		Location: tmpl.Location,
	}
	ref, err := e.Calendars.CreateEvent(ctx, cal.ID, ev)
	if err != nil {
		e.logf("reservation: create event in %s: %v", cal.ID, err)
		out.Status = StatusFailed
		out.Err = err
		return out
	}
	out.Status = StatusDone
	out.Ref = ref
	return out
}
