package app

import (
	"context"
	"time"

	"tableflip.dev/confusion/pkg/confirm"
	"tableflip.dev/confusion/pkg/reservation"
)

// Runner runs the side effects of a confirmed reservation.
type Runner interface {
	Run(ctx context.Context, req reservation.Request) reservation.Report
}

// ReserveTable drives the reservation screen: the form, its date/time
// picker and the confirmation dialog.
type ReserveTable struct {
	screen  *Screen
	form    *reservation.Form
	confirm *confirm.Controller
	effects Runner

	ctx     context.Context
	reports chan reservation.Report
}

// NewReserveTable returns an idle reservation screen.
func NewReserveTable(now func() time.Time, effects Runner) *ReserveTable {
	return &ReserveTable{
		screen:  NewScreen(ReserveScreen),
		form:    reservation.NewForm(now),
		confirm: confirm.NewController(),
		effects: effects,
		ctx:     context.Background(),
	}
}

// Screen exposes the modal slot.
func (r *ReserveTable) Screen() *Screen { return r.screen }

// Form is the reservation form state.
func (r *ReserveTable) Form() *reservation.Form { return r.form }

// OpenPicker shows the date/time picker as the screen modal.
func (r *ReserveTable) OpenPicker() error {
	if err := r.screen.OpenModal(PickerModal); err != nil {
		return err
	}
	if err := r.form.OpenPicker(); err != nil {
		r.screen.CloseModal(PickerModal)
		return err
	}
	return nil
}

// PickerSelect applies a picked date or time.
func (r *ReserveTable) PickerSelect(v time.Time) error {
	err := r.form.PickerSelect(v)
	if !r.form.Picker().Open {
		r.screen.CloseModal(PickerModal)
	}
	return err
}

// PickerDismiss closes the picker without changing the date.
func (r *ReserveTable) PickerDismiss() {
	r.form.PickerDismiss()
	r.screen.CloseModal(PickerModal)
}

func (r *ReserveTable) action(summary reservation.Summary) confirm.Action {
	return confirm.Action{
		Title: summary.Title,
		Body:  summary.Body(),
		OnConfirm: func() error {
			req, err := r.form.Confirm()
			if err != nil {
				return err
			}
			r.reports = r.start(r.ctx, req)
			return nil
		},
		OnCancel: func() {
			_ = r.form.Cancel()
		},
	}
}

// start runs the effects in the background. The form is already reset.
func (r *ReserveTable) start(ctx context.Context, req reservation.Request) chan reservation.Report {
	ch := make(chan reservation.Report, 1)
	if r.effects == nil {
		close(ch)
		return ch
	}
	go func() {
		defer close(ch)
		ch <- r.effects.Run(ctx, req)
	}()
	return ch
}

// Reserve asks for confirmation of the current fields and opens the dialog.
func (r *ReserveTable) Reserve() (reservation.Summary, error) {
	if r.screen.Modal() == PickerModal {
		r.PickerDismiss()
	}
	if err := r.screen.OpenModal(ConfirmModal); err != nil {
		return reservation.Summary{}, err
	}
	summary, err := r.form.RequestReservation()
	if err != nil {
		r.screen.CloseModal(ConfirmModal)
		return reservation.Summary{}, err
	}
	if err := r.confirm.Request(r.action(summary)); err != nil {
		_ = r.form.Cancel()
		r.screen.CloseModal(ConfirmModal)
		return reservation.Summary{}, err
	}
	return summary, nil
}

// PendingConfirmation is the dialog currently shown.
func (r *ReserveTable) PendingConfirmation() (confirm.Action, bool) {
	return r.confirm.Pending()
}

// ResolveConfirmation answers the dialog. On OK the form resets at once and
// the side effects start; their report arrives on the returned channel,
// which is nil when the reservation was cancelled.
func (r *ReserveTable) ResolveConfirmation(ctx context.Context, choice confirm.Choice) (confirm.Outcome, <-chan reservation.Report, error) {
	r.ctx = ctx
	r.reports = nil
	defer r.screen.CloseModal(ConfirmModal)

	outcome, err := r.confirm.Resolve(choice)
	reports := r.reports
	r.reports = nil
	return outcome, reports, err
}
