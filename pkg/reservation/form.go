// Package reservation drives the table reservation form and the device side
// effects a confirmed reservation triggers.
package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// MinGuests is the smallest party the picker offers.
	MinGuests = 1
	// MaxGuests is the largest party the picker offers.
	MaxGuests = 6
	// SlotInterval is the granularity of the time picker.
	SlotInterval = 30 * time.Minute

	// DisplayLayout renders the chosen date and time on the form.
	DisplayLayout = "02-Jan-2006 3:04 PM"
)

var (
	// ErrGuestCount is returned for a party size outside the picker range.
	ErrGuestCount = fmt.Errorf("reservation: guests must be between %d and %d", MinGuests, MaxGuests)
	// ErrPastDate is returned when picking a day before today.
	ErrPastDate = errors.New("reservation: date is in the past")
	// ErrPickerClosed is returned when selecting without an open picker.
	ErrPickerClosed = errors.New("reservation: picker is not open")
	// ErrNotIdle is returned when the form is waiting for confirmation.
	ErrNotIdle = errors.New("reservation: confirmation pending")
	// ErrNotPending is returned when confirming without a request.
	ErrNotPending = errors.New("reservation: no reservation to confirm")
)

// State is the reservation form lifecycle state.
type State int

const (
	// Idle means the fields are editable.
	Idle State = iota
	// ConfirmPending means the summary is shown and awaits an answer.
	ConfirmPending
)

func (s State) String() string {
	if s == ConfirmPending {
		return "confirm-pending"
	}
	return "idle"
}

// PickerMode is the phase of the two-step date/time picker.
type PickerMode int

const (
	// PickDate selects the calendar day.
	PickDate PickerMode = iota
	// PickTime selects the clock time.
	PickTime
)

func (m PickerMode) String() string {
	if m == PickTime {
		return "time"
	}
	return "date"
}

// Picker is the date/time picker visibility and phase.
type Picker struct {
	Open bool
	Mode PickerMode
}

// Fields are the editable reservation values.
type Fields struct {
	Guests   int
	Smoking  bool
	DateTime time.Time
}

// Request is a confirmed reservation. It is not persisted.
type Request struct {
	Guests   int
	Smoking  bool
	DateTime time.Time
}

// Summary is what the confirmation dialog shows.
type Summary struct {
	Title string
	Lines []string
}

// Body joins the summary lines for dialog bodies.
func (s Summary) Body() string {
	return strings.Join(s.Lines, "\n")
}

// GuestOptions lists every party size the picker offers.
func GuestOptions() []int {
	opts := make([]int, 0, MaxGuests-MinGuests+1)
	for n := MinGuests; n <= MaxGuests; n++ {
		opts = append(opts, n)
	}
	return opts
}

// Form is the reservation screen state.
type Form struct {
	now func() time.Time

	state  State
	fields Fields
	picker Picker
}

// NewForm returns an idle form holding the defaults.
func NewForm(now func() time.Time) *Form {
	if now == nil {
		now = time.Now
	}
	f := &Form{now: now}
	f.Reset()
	return f
}

// Defaults returns the values a fresh form starts with.
func (f *Form) Defaults() Fields {
	return Fields{Guests: MinGuests, Smoking: false, DateTime: f.now()}
}

// State returns the lifecycle state.
func (f *Form) State() State { return f.state }

// Fields returns the current values.
func (f *Form) Fields() Fields { return f.fields }

// Picker returns the picker state.
func (f *Form) Picker() Picker { return f.picker }

// SetGuests stores the party size, refusing anything the picker would not
// offer.
func (f *Form) SetGuests(n int) error {
	if f.state != Idle {
		return ErrNotIdle
	}
	if n < MinGuests || n > MaxGuests {
		return ErrGuestCount
	}
	f.fields.Guests = n
	return nil
}

// StepGuests moves the party size by delta, clamped to the picker range.
func (f *Form) StepGuests(delta int) error {
	n := f.fields.Guests + delta
	if n < MinGuests {
		n = MinGuests
	}
	if n > MaxGuests {
		n = MaxGuests
	}
	return f.SetGuests(n)
}

// SetSmoking stores the smoking preference.
func (f *Form) SetSmoking(smoking bool) error {
	if f.state != Idle {
		return ErrNotIdle
	}
	f.fields.Smoking = smoking
	return nil
}

// OpenPicker shows the picker on its date phase.
func (f *Form) OpenPicker() error {
	if f.state != Idle {
		return ErrNotIdle
	}
	f.picker = Picker{Open: true, Mode: PickDate}
	return nil
}

// PickerSelect applies a picked value. The date phase keeps the clock and
// moves on to the time phase; the time phase keeps the day, snaps to the
// slot interval and closes the picker.
func (f *Form) PickerSelect(v time.Time) error {
	if !f.picker.Open {
		return ErrPickerClosed
	}
	cur := f.fields.DateTime
	loc := cur.Location()
	v = v.In(loc)

	switch f.picker.Mode {
	case PickDate:
		today := startOfDay(f.now().In(loc))
		picked := time.Date(v.Year(), v.Month(), v.Day(), cur.Hour(), cur.Minute(), 0, 0, loc)
		if startOfDay(picked).Before(today) {
			return ErrPastDate
		}
		f.fields.DateTime = picked
		f.picker.Mode = PickTime
	case PickTime:
		clock := time.Date(cur.Year(), cur.Month(), cur.Day(), v.Hour(), v.Minute(), 0, 0, loc)
		f.fields.DateTime = snap(clock)
		f.picker = Picker{Open: false, Mode: PickTime}
	}
	return nil
}

// PickerDismiss closes the picker without a value, leaving the stored date
// and time untouched.
func (f *Form) PickerDismiss() {
	f.picker.Open = false
}

// RequestReservation moves to the confirmation step and returns what the
// dialog should show.
func (f *Form) RequestReservation() (Summary, error) {
	if f.state != Idle {
		return Summary{}, ErrNotIdle
	}
	f.picker.Open = false
	f.state = ConfirmPending
	return f.summary(), nil
}

// Confirm accepts the pending reservation, resets the form and hands back
// the request for the side effects.
func (f *Form) Confirm() (Request, error) {
	if f.state != ConfirmPending {
		return Request{}, ErrNotPending
	}
	req := Request{
		Guests:   f.fields.Guests,
		Smoking:  f.fields.Smoking,
		DateTime: f.fields.DateTime,
	}
	f.Reset()
	return req, nil
}

// Cancel drops the pending reservation and resets the form.
func (f *Form) Cancel() error {
	if f.state != ConfirmPending {
		return ErrNotPending
	}
	f.Reset()
	return nil
}

// Reset restores every default.
func (f *Form) Reset() {
	f.state = Idle
	f.fields = f.Defaults()
	f.picker = Picker{Open: false, Mode: PickDate}
}

func (f *Form) summary() Summary {
	return Summary{
		Title: "Your Reservation OK?",
		Lines: []string{
			fmt.Sprintf("Number of Guests: %d", f.fields.Guests),
			fmt.Sprintf("Smoking: %t", f.fields.Smoking),
			fmt.Sprintf("Date and Time: %s", f.fields.DateTime.Format(DisplayLayout)),
		},
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func snap(t time.Time) time.Time {
	mins := t.Hour()*60 + t.Minute()
	slot := int(SlotInterval / time.Minute)
	mins = (mins / slot) * slot
	return time.Date(t.Year(), t.Month(), t.Day(), mins/60, mins%60, 0, 0, t.Location())
}
