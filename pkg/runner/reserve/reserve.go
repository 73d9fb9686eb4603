// Package reserve books a table from the command line.
package reserve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/confusion/pkg/app"
	"tableflip.dev/confusion/pkg/confirm"
	"tableflip.dev/confusion/pkg/printers"
)

// Reserve fills the reservation form, asks for confirmation and runs the
// notification and calendar side effects.
type Reserve struct {
	Effects app.Runner
	Asker   confirm.Asker
	Now     func() time.Time

	Guests  int
	Smoking bool
	At      *time.Time
	// Yes skips the confirmation question.
	Yes bool

	Out io.Writer
}

func (n *Reserve) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

func (n *Reserve) Do(ctx context.Context) error {
	rt := app.NewReserveTable(n.Now, n.Effects)
	form := rt.Form()

	if err := form.SetGuests(n.Guests); err != nil {
		return fmt.Errorf("%w: %d", err, n.Guests)
	}
	if err := form.SetSmoking(n.Smoking); err != nil {
		return err
	}
	if n.At != nil {
		if err := rt.OpenPicker(); err != nil {
			return err
		}
		// Date phase, then time phase.
		if err := rt.PickerSelect(*n.At); err != nil {
			rt.PickerDismiss()
			return err
		}
		if err := rt.PickerSelect(*n.At); err != nil {
			rt.PickerDismiss()
			return err
		}
	}

	summary, err := rt.Reserve()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Reservation(summary, form.Fields().DateTime)

	choice := confirm.OK
	if !n.Yes {
		if n.Asker == nil {
			return errors.New("reserve: no way to confirm, use --yes")
		}
		choice, err = n.Asker.Ask(ctx, summary.Title, summary.Body())
		if err != nil {
			choice = confirm.Cancel
		}
	}

	outcome, reports, rerr := rt.ResolveConfirmation(ctx, choice)
	if rerr != nil {
		return rerr
	}
	if outcome != confirm.OutcomeConfirmed {
		_, _ = fmt.Fprintln(n.out(), "Reservation cancelled.")
		return err
	}
	_, _ = fmt.Fprintln(n.out(), "Reservation requested.")

	select {
	case rep, ok := <-reports:
		if ok {
			pp.Report(rep)
		}
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
