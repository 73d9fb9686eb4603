package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/confusion/pkg/reservation"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Reservation prints the confirmation summary and a month view with the
// reserved day highlighted.
func (pp *PrettyPrint) Reservation(s reservation.Summary, at time.Time) {
	pp.Title(s.Title)
	for _, l := range s.Lines {
		_, _ = fmt.Fprintf(pp.out(), "  %s\n", l)
	}
	pp.NewLine()
	pp.PrintMonth(at)
}

// Report prints how each side effect of a reservation ended.
func (pp *PrettyPrint) Report(r reservation.Report) {
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	for _, o := range []reservation.Outcome{r.Notification, r.Calendar} {
		printer := warn
		if o.Status == reservation.StatusDone {
			printer = ok
		}
		_, _ = printer.Fprintf(pp.out(), "%-14s %s", o.Capability, o.Status)
		if o.Ref != "" {
			_, _ = fmt.Fprintf(pp.out(), " (%s)", o.Ref)
		}
		if o.Err != nil {
			_, _ = fmt.Fprintf(pp.out(), ": %v", o.Err)
		}
		pp.NewLine()
	}
}

// PrintMonth renders the month of then, with then's day in bold.
func (pp *PrettyPrint) PrintMonth(then time.Time) {
	out := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite, color.Underline)

	for i := 0; i < DaysIn(then); i++ {
		if i+1 == then.Day() {
			_, _ = l2.Fprintf(out, "%2d", i+1)
			_, _ = fmt.Fprint(out, " ")
		} else {
			_, _ = l1.Fprintf(out, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
