package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/confusion/pkg/app"
	"tableflip.dev/confusion/pkg/device"
	"tableflip.dev/confusion/pkg/menu"
	"tableflip.dev/confusion/pkg/reservation"
	"tableflip.dev/confusion/pkg/store"
	"tableflip.dev/confusion/pkg/tui/overlay"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

var testNow = func() time.Time { return time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC) }

func newTestModel(t *testing.T) *Model {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	svc := &app.Service{Catalog: menu.Default(), Persistence: p, Now: testNow}
	m := New(svc)
	m.termWidth = 100
	m.termHeight = 30
	m.applySizes()
	if msg, ok := m.loadDishes()().(dishesLoadedMsg); ok {
		m.Update(msg)
	} else {
		t.Fatal("expected dishes to load")
	}
	return m
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.handleKey(key(string(r)))
	}
}

func stripANSI(s string) string {
	return overlay.Plain(s)
}

// flatten drops styling and frame runes and joins wrapped lines, so text
// can be matched regardless of where the modal wrapped it.
func flatten(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '│', '─', '╭', '╮', '╰', '╯':
			return ' '
		}
		return r
	}, stripANSI(s))
	return strings.Join(strings.Fields(s), " ")
}

func TestDrawerNavigation(t *testing.T) {
	m := newTestModel(t)
	if got := m.current().Screen; got != app.HomeScreen {
		t.Fatalf("expected home screen, got %s", got)
	}

	m.handleKey(key("tab"))
	if got := m.current().Screen; got != app.AboutScreen {
		t.Fatalf("expected about screen after tab, got %s", got)
	}

	m.handleKey(key("3"))
	if got := m.current().Screen; got != app.MenuScreen {
		t.Fatalf("expected menu screen, got %s", got)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "› 3 Menu") {
		t.Fatalf("expected menu highlighted in drawer; view=%q", view)
	}
	if !strings.Contains(view, "Uthappizza") {
		t.Fatalf("expected dishes listed; view=%q", view)
	}
}

func TestMenuOpensDishAndBack(t *testing.T) {
	m := newTestModel(t)
	m.handleKey(key("3"))
	m.handleKey(key("enter"))

	if got := m.current(); got.Screen != app.DishScreen || got.DishID != 0 {
		t.Fatalf("expected dish 0 detail, got %+v", got)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "Dish Details") || !strings.Contains(view, "No comments yet.") {
		t.Fatalf("unexpected dish view %q", view)
	}

	m.handleKey(key("esc"))
	if got := m.current().Screen; got != app.MenuScreen {
		t.Fatalf("expected back on menu, got %s", got)
	}
}

func TestHeartPressAddsFavoriteOnce(t *testing.T) {
	m := newTestModel(t)
	m.openDish(1)

	m.handleKey(key("f"))
	if !m.detailFavorite {
		t.Fatal("expected dish to be favorite")
	}
	if !strings.Contains(m.status, "Added Zucchipakoda") {
		t.Fatalf("unexpected status %q", m.status)
	}

	m.handleKey(key("f"))
	if m.status != "Already favorite" {
		t.Fatalf("expected already favorite status, got %q", m.status)
	}
	if favs := m.svc.Persistence.Favorites(context.Background()); len(favs) != 1 {
		t.Fatalf("expected one favorite, got %v", favs)
	}
}

func TestSwipeLeftAsksBeforeFavorite(t *testing.T) {
	m := newTestModel(t)
	m.openDish(2)

	// 20 cells is exactly the threshold and does nothing.
	m.startDrag(50)
	m.endDrag(30)
	if m.pendingTitle() != "" {
		t.Fatal("a drag at the threshold must not ask")
	}

	m.startDrag(60)
	m.endDrag(30)
	if got := m.pendingTitle(); got != "Add to Favorites?" {
		t.Fatalf("expected favorite confirmation, got %q", got)
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "Add to Favorites?") {
		t.Fatalf("expected dialog title in view; view=%q", view)
	}
	if body := flatten(m.renderConfirm()); !strings.Contains(body, "Are you sure you wish to add Vadonut to your favorites?") {
		t.Fatalf("expected dialog body; got %q", body)
	}

	m.handleKey(key("y"))
	if m.pendingTitle() != "" {
		t.Fatal("dialog should be closed")
	}
	if !m.detailFavorite {
		t.Fatal("expected favorite after OK")
	}
}

func TestSwipeCancelLeavesFavorites(t *testing.T) {
	m := newTestModel(t)
	m.openDish(3)
	m.startDrag(80)
	m.endDrag(10)
	m.handleKey(key("n"))

	if m.detailFavorite {
		t.Fatal("cancel must not add a favorite")
	}
	if m.status != "Cancel pressed" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestCommentModal(t *testing.T) {
	m := newTestModel(t)
	m.openDish(0)
	m.handleKey(key("c"))
	if m.comment == nil {
		t.Fatal("expected comment modal")
	}

	m.handleKey(key("enter"))
	if m.comment == nil {
		t.Fatal("invalid comment must keep the modal open")
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "is required") {
		t.Fatalf("expected validation problems; view=%q", view)
	}

	m.handleKey(key("3"))
	m.handleKey(key("tab"))
	typeText(m, "Ada")
	m.handleKey(key("tab"))
	typeText(m, "Tasty")
	m.handleKey(key("enter"))

	if m.comment != nil {
		t.Fatal("expected modal closed after submit")
	}
	if len(m.detailComments) != 1 {
		t.Fatalf("expected one comment, got %d", len(m.detailComments))
	}
	c := m.detailComments[0]
	if c.Rating != 3 || c.Author != "Ada" || c.Text != "Tasty" {
		t.Fatalf("unexpected comment %+v", c)
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "-- Ada,") {
		t.Fatalf("expected byline in view; view=%q", view)
	}
}

func TestCommentModalEscDiscards(t *testing.T) {
	m := newTestModel(t)
	m.openDish(0)
	m.handleKey(key("c"))
	m.handleKey(key("tab"))
	typeText(m, "Bo")
	m.handleKey(key("esc"))

	if m.comment != nil || m.detail.CommentForm().IsOpen() {
		t.Fatal("expected modal closed")
	}
	if m.detail.Screen().HasModal() {
		t.Fatal("expected modal slot freed")
	}
	if len(m.detailComments) != 0 {
		t.Fatal("nothing should be posted")
	}
}

type recordingRunner struct {
	mu   sync.Mutex
	reqs []reservation.Request
}

func (r *recordingRunner) Run(_ context.Context, req reservation.Request) reservation.Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs = append(r.reqs, req)
	return reservation.Report{
		Notification: reservation.Outcome{Capability: device.Notifications, Status: reservation.StatusDone},
		Calendar:     reservation.Outcome{Capability: device.Calendar, Status: reservation.StatusNoCalendar},
	}
}

func TestReserveTable(t *testing.T) {
	m := newTestModel(t)
	runner := &recordingRunner{}
	m.SetEffects(runner)
	m.handleKey(key("4"))
	if got := m.current().Screen; got != app.ReserveScreen {
		t.Fatalf("expected reserve screen, got %s", got)
	}

	m.handleKey(key("+"))
	m.handleKey(key("+"))
	m.handleKey(key("s"))

	m.handleKey(key("d"))
	if !m.reserve.Form().Picker().Open {
		t.Fatal("expected picker open")
	}
	m.handleKey(key("right"))
	m.handleKey(key("enter"))
	if m.reserve.Form().Picker().Mode != reservation.PickTime {
		t.Fatal("expected time phase after picking a date")
	}
	m.handleKey(key("enter"))
	if m.reserve.Form().Picker().Open {
		t.Fatal("expected picker closed after picking a time")
	}

	m.handleKey(key("enter"))
	if got := m.pendingTitle(); got != "Your Reservation OK?" {
		t.Fatalf("expected reservation confirmation, got %q", got)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "Number of Guests: 3") || !strings.Contains(view, "Smoking: true") {
		t.Fatalf("expected summary in dialog; view=%q", view)
	}

	cmd := m.handleKey(key("y"))
	if cmd == nil {
		t.Fatal("expected a command waiting for the report")
	}
	msg, ok := cmd().(reportMsg)
	if !ok {
		t.Fatal("expected report message")
	}
	m.Update(msg)
	if !strings.Contains(m.status, "calendar no-calendar") {
		t.Fatalf("unexpected status %q", m.status)
	}

	if len(runner.reqs) != 1 {
		t.Fatalf("expected one reservation, got %d", len(runner.reqs))
	}
	req := runner.reqs[0]
	want := time.Date(2024, time.June, 2, 9, 0, 0, 0, time.UTC)
	if req.Guests != 3 || !req.Smoking || !req.DateTime.Equal(want) {
		t.Fatalf("unexpected request %+v", req)
	}
	if f := m.reserve.Form().Fields(); f.Guests != 1 || f.Smoking {
		t.Fatalf("expected form reset, got %+v", f)
	}
}

func TestReservePickerRefusesPast(t *testing.T) {
	m := newTestModel(t)
	m.handleKey(key("4"))
	m.handleKey(key("d"))
	m.handleKey(key("left"))
	m.handleKey(key("enter"))

	if !m.statusErr {
		t.Fatal("expected an error status")
	}
	if m.reserve.Form().Picker().Mode != reservation.PickDate {
		t.Fatal("picker should stay on the date phase")
	}
	m.handleKey(key("esc"))
	if m.reserve.Form().Picker().Open {
		t.Fatal("expected picker dismissed")
	}
}

func TestPermissionPrompt(t *testing.T) {
	m := newTestModel(t)
	reply := make(chan bool, 1)
	m.Update(permissionAskMsg{capability: device.Calendar, reply: reply})

	if view := stripANSI(m.View()); !strings.Contains(view, "Allow Con Fusion to use your calendar?") {
		t.Fatalf("expected permission modal; view=%q", view)
	}
	// Other keys are swallowed while asking.
	m.handleKey(key("3"))
	if m.current().Screen != app.HomeScreen {
		t.Fatal("navigation must wait for the answer")
	}
	m.handleKey(key("y"))
	if got := <-reply; !got {
		t.Fatal("expected permission granted")
	}
	if m.permission != nil {
		t.Fatal("expected modal closed")
	}
}

func TestWatchEventRefreshesDish(t *testing.T) {
	m := newTestModel(t)
	m.openDish(0)
	if err := m.svc.PostFavorite(context.Background(), 0); err != nil {
		t.Fatalf("post favorite: %v", err)
	}
	var cmds []tea.Cmd
	m.handleWatchEvent(store.Event{Type: store.EventFavoritesChanged, ItemID: 0}, &cmds)
	if !m.detailFavorite {
		t.Fatal("expected favorite flag refreshed")
	}
	if len(cmds) != 1 {
		t.Fatalf("expected dishes reload, got %d commands", len(cmds))
	}
}

func TestNoticeBanner(t *testing.T) {
	m := newTestModel(t)
	m.Update(noticeMsg{note: device.Notification{Title: "Your Reservation", Body: "Reservation for 02-Jun-2024 9:00 AM requested"}})
	view := stripANSI(m.View())
	if !strings.Contains(view, "🔔 Your Reservation: Reservation for 02-Jun-2024 9:00 AM requested") {
		t.Fatalf("expected notice banner; view=%q", view)
	}
}
