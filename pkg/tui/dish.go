package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/confusion/pkg/app"
	"tableflip.dev/confusion/pkg/confirm"
	"tableflip.dev/confusion/pkg/gesture"
	"tableflip.dev/confusion/pkg/reservation"
)

type dragState struct {
	active bool
	startX int
}

func (m *Model) openDish(id int) {
	if m.svc == nil {
		return
	}
	d, err := m.svc.NewDishDetail(id)
	if err != nil {
		m.setError(err)
		return
	}
	d.SetLogger(func(format string, args ...any) {
		m.setStatus(format, args...)
	})
	m.detail = d
	m.nav.OpenDish(id)
	m.refreshDish()
}

func (m *Model) refreshDish() {
	if m.detail == nil {
		return
	}
	m.detailFavorite = m.detail.IsFavorite(m.ctx)
	m.detailComments = m.detail.Comments(m.ctx)
}

func (m *Model) handleDishKey(key string) tea.Cmd {
	if m.detail == nil {
		return nil
	}
	switch key {
	case "f":
		added, err := m.detail.PressFavorite(m.ctx)
		if err != nil {
			m.setError(err)
			return nil
		}
		if added {
			m.setStatus("Added %s to favorites", m.detail.Dish().Name)
			m.refreshDish()
			return m.loadDishes()
		}
	case "c":
		return m.openComment()
	}
	return nil
}

func (m *Model) startDrag(x int) {
	if m.current().Screen != app.DishScreen || m.detail == nil || m.detail.Screen().HasModal() {
		return
	}
	m.drag = dragState{active: true, startX: x}
}

// endDrag classifies a finished mouse drag on the dish screen. A long enough
// leftward drag opens the favorite confirmation.
func (m *Model) endDrag(x int) {
	if !m.drag.active {
		return
	}
	start := m.drag.startX
	m.drag = dragState{}
	if m.detail == nil {
		return
	}
	if _, err := m.detail.Swipe(gesture.FromCells(start, x, gesture.DefaultCellScale)); err != nil {
		m.setError(err)
	}
}

func (m *Model) handleConfirmKey(key string) tea.Cmd {
	var choice confirm.Choice
	switch key {
	case "y", "enter":
		choice = confirm.OK
	case "n", "esc":
		choice = confirm.Cancel
	default:
		return nil
	}

	if m.current().Screen == app.ReserveScreen {
		outcome, reports, err := m.reserve.ResolveConfirmation(m.ctx, choice)
		if err != nil {
			m.setError(err)
			return nil
		}
		if outcome != confirm.OutcomeConfirmed {
			m.setStatus("Reservation cancelled")
			return nil
		}
		m.setStatus("Reservation requested")
		return waitForReport(reports)
	}

	outcome, err := m.detail.ResolveConfirmation(m.ctx, choice)
	if err != nil {
		m.setError(err)
		return nil
	}
	if outcome == confirm.OutcomeConfirmed {
		m.setStatus("Added %s to favorites", m.detail.Dish().Name)
		m.refreshDish()
		return m.loadDishes()
	}
	return nil
}

func waitForReport(ch <-chan reservation.Report) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if r, ok := <-ch; ok {
			return reportMsg{report: r}
		}
		return nil
	}
}

func (m *Model) renderConfirm() string {
	mt := m.theme.Modal
	var body string
	if m.current().Screen == app.ReserveScreen {
		a, _ := m.reserve.PendingConfirmation()
		body = a.Body
	} else {
		a, _ := m.detail.PendingConfirmation()
		body = a.Body
	}
	w, _ := m.contentSize()
	return mt.Frame.Render(strings.Join([]string{
		mt.Title.Render(m.pendingTitle()),
		mt.Body.Render(wordwrap.String(body, max(w/2, 30))),
		"",
		mt.Button.Render("[y] OK   [n] Cancel"),
	}, "\n"))
}

func (m *Model) renderDish() string {
	if m.detail == nil {
		return ""
	}
	ct := m.theme.Card
	w, _ := m.contentSize()
	inner := max(w-4, 10)

	d := m.detail.Dish()
	heart := ct.Heart.Render("♡")
	if m.detailFavorite {
		heart = ct.Heart.Render("♥")
	}
	lines := []string{ct.Title.Render(d.Title()) + "  " + heart}
	if meta := strings.TrimSpace(price(d.Price) + " " + d.Category); meta != "" {
		lines = append(lines, ct.Meta.Render(meta))
	}
	lines = append(lines, ct.Body.Render(wordwrap.String(d.Description, inner)))
	card := ct.Frame.Width(w - 2).Render(strings.Join(lines, "\n"))

	comments := []string{ct.Title.Render("Comments")}
	if len(m.detailComments) == 0 {
		comments = append(comments, ct.Meta.Render("No comments yet."))
	}
	for _, c := range m.detailComments {
		comments = append(comments,
			wordwrap.String(c.Text, inner),
			ct.Stars.Render(c.Stars()),
			ct.Byline.Render(c.Byline()),
			"",
		)
	}
	help := m.theme.Footer.Help.Render("f favorite · c comment · drag left to favorite · esc back")
	return strings.Join([]string{card, strings.Join(comments, "\n"), help}, "\n")
}

func price(p string) string {
	if p == "" {
		return ""
	}
	return fmt.Sprintf("$%s", p)
}
