package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	ics "github.com/arran4/golang-ical"

	"tableflip.dev/confusion/pkg/device"
)

const productID = "-//Con Fusion//confusion//EN"

// ErrUnknownCalendar is returned for calendar ids that are not configured.
var ErrUnknownCalendar = errors.New("local: unknown calendar")

// ICSCalendars keeps one iCalendar file per configured calendar in Dir.
type ICSCalendars struct {
	Dir  string
	List []device.CalendarInfo
	// Default names the calendar to use before falling back to the primary.
	Default string

	mu sync.Mutex
}

// Calendars implements device.Calendars.
func (c *ICSCalendars) Calendars(_ context.Context) ([]device.CalendarInfo, error) {
	return append([]device.CalendarInfo(nil), c.List...), nil
}

// DefaultCalendar implements device.DefaultCalendarProvider.
func (c *ICSCalendars) DefaultCalendar(_ context.Context) (*device.CalendarInfo, error) {
	if c.Default == "" {
		return nil, nil
	}
	info, ok := c.lookup(c.Default)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCalendar, c.Default)
	}
	return &info, nil
}

func (c *ICSCalendars) lookup(id string) (device.CalendarInfo, bool) {
	for _, info := range c.List {
		if info.ID == id {
			return info, true
		}
	}
	return device.CalendarInfo{}, false
}

// Path returns the file backing the calendar.
func (c *ICSCalendars) Path(calendarID string) string {
	return filepath.Join(c.Dir, calendarID+".ics")
}

// CreateEvent implements device.Calendars. The event is appended to the
// calendar file, which is created on first use.
func (c *ICSCalendars) CreateEvent(_ context.Context, calendarID string, e device.Event) (string, error) {
	info, ok := c.lookup(calendarID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCalendar, calendarID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cal, err := c.open(info)
	if err != nil {
		return "", err
	}

	start, end := e.Start, e.End
	if e.TimeZone != "" {
		if loc, err := time.LoadLocation(e.TimeZone); err == nil {
			start, end = start.In(loc), end.In(loc)
		}
	}

	now := time.Now()
	ev := cal.AddEvent(e.UID)
	ev.SetCreatedTime(now)
	ev.SetDtStampTime(now)
	ev.SetStartAt(start)
	ev.SetEndAt(end)
	ev.SetSummary(e.Title)
	if e.Location != "" {
		ev.SetLocation(e.Location)
	}

	if err := c.save(calendarID, cal); err != nil {
		return "", err
	}
	return e.UID, nil
}

// Events parses the calendar file and returns its events.
func (c *ICSCalendars) Events(calendarID string) ([]*ics.VEvent, error) {
	info, ok := c.lookup(calendarID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCalendar, calendarID)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	cal, err := c.open(info)
	if err != nil {
		return nil, err
	}
	return cal.Events(), nil
}

func (c *ICSCalendars) open(info device.CalendarInfo) (*ics.Calendar, error) {
	f, err := os.Open(c.Path(info.ID))
	if errors.Is(err, os.ErrNotExist) {
		cal := ics.NewCalendar()
		cal.SetMethod(ics.MethodPublish)
		cal.SetProductId(productID)
		cal.SetXWRCalName(info.Title)
		return cal, nil
	}
	if err != nil {
		return nil, fmt.Errorf("local: open calendar %s: %w", info.ID, err)
	}
	defer f.Close()
	cal, err := ics.ParseCalendar(f)
	if err != nil {
		return nil, fmt.Errorf("local: parse calendar %s: %w", info.ID, err)
	}
	return cal, nil
}

func (c *ICSCalendars) save(calendarID string, cal *ics.Calendar) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("local: ensure calendar dir: %w", err)
	}
	path := c.Path(calendarID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(cal.Serialize()), 0o644); err != nil {
		return fmt.Errorf("local: write calendar %s: %w", calendarID, err)
	}
	return os.Rename(tmp, path)
}
