package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/confusion/pkg/printers"
	"tableflip.dev/confusion/pkg/reservation"
)

func (m *Model) handleReserveKey(key string) tea.Cmd {
	form := m.reserve.Form()
	var err error
	switch key {
	case "+", "=", "right", "l":
		err = form.StepGuests(1)
	case "-", "left", "h":
		err = form.StepGuests(-1)
	case "s", "space":
		err = form.SetSmoking(!form.Fields().Smoking)
	case "d", "p":
		if err = m.reserve.OpenPicker(); err == nil {
			m.picker = form.Fields().DateTime
		}
	case "enter", "r":
		_, err = m.reserve.Reserve()
	}
	if err != nil {
		m.setError(err)
	}
	return nil
}

// handlePickerKey moves the picker candidate: days in the date phase, slots
// in the time phase.
func (m *Model) handlePickerKey(key string) {
	form := m.reserve.Form()
	step, big := 24*time.Hour, 7*24*time.Hour
	if form.Picker().Mode == reservation.PickTime {
		step, big = reservation.SlotInterval, 2*time.Hour
	}

	switch key {
	case "left", "h":
		m.picker = m.picker.Add(-step)
	case "right", "l":
		m.picker = m.picker.Add(step)
	case "up", "k":
		m.picker = m.picker.Add(-big)
	case "down", "j":
		m.picker = m.picker.Add(big)
	case "esc":
		m.reserve.PickerDismiss()
		m.setStatus("Date unchanged")
	case "enter":
		err := m.reserve.PickerSelect(m.picker)
		switch {
		case errors.Is(err, reservation.ErrPastDate):
			m.setError(err)
			m.picker = form.Fields().DateTime
		case err != nil:
			m.setError(err)
		}
	}
}

func (m *Model) renderReserve() string {
	ct := m.theme.Card
	f := m.reserve.Form().Fields()
	smoking := "No"
	if f.Smoking {
		smoking = "Yes"
	}
	lines := []string{
		fmt.Sprintf("%-18s %d", "Number of Guests", f.Guests),
		fmt.Sprintf("%-18s %s", "Smoking/Non-Smoking?", smoking),
		fmt.Sprintf("%-18s %s", "Date and Time", f.DateTime.Format(reservation.DisplayLayout)),
	}
	help := m.theme.Footer.Help.Render("+/- guests · s smoking · d pick date · enter reserve")
	return strings.Join([]string{ct.Frame.Render(strings.Join(lines, "\n")), help}, "\n")
}

func (m *Model) renderPicker() string {
	mt := m.theme.Modal
	var b strings.Builder
	if m.reserve.Form().Picker().Mode == reservation.PickDate {
		b.WriteString(mt.Title.Render("Select a date") + "\n\n")
		pp := printers.PrettyPrint{Out: &b}
		pp.PrintMonth(m.picker)
		b.WriteString(m.picker.Format("Mon 02-Jan-2006") + "\n")
		b.WriteString(mt.Button.Render("←/→ day · ↑/↓ week · enter next · esc close"))
	} else {
		b.WriteString(mt.Title.Render("Select a time") + "\n\n")
		b.WriteString(mt.Focused.Render(m.picker.Format("3:04 PM")) + "\n\n")
		b.WriteString(mt.Button.Render("←/→ 30 min · ↑/↓ 2 hours · enter done · esc close"))
	}
	return mt.Frame.Render(b.String())
}
