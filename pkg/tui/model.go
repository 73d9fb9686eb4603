// Package tui is the Bubble Tea front-end of the restaurant: a drawer of
// screens, the menu, dish details with comments and the reservation form.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/confusion/pkg/app"
	"tableflip.dev/confusion/pkg/comment"
	"tableflip.dev/confusion/pkg/device"
	"tableflip.dev/confusion/pkg/menu"
	"tableflip.dev/confusion/pkg/reservation"
	"tableflip.dev/confusion/pkg/store"
	"tableflip.dev/confusion/pkg/tui/overlay"
	"tableflip.dev/confusion/pkg/tui/page"
	"tableflip.dev/confusion/pkg/tui/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	drawerWidth   = 18
)

// dishItem adapts a dish to the list delegate.
type dishItem struct {
	dish     menu.Item
	favorite bool
}

func (d dishItem) Title() string {
	if d.favorite {
		return d.dish.Title() + " ♥"
	}
	return d.dish.Title()
}
func (d dishItem) Description() string { return d.dish.Description }
func (d dishItem) FilterValue() string { return d.dish.FilterValue() }

// messages
type errMsg struct{ err error }
type dishesLoadedMsg struct {
	dishes    []list.Item
	favorites []list.Item
}
type reportMsg struct{ report reservation.Report }
type alertMsg struct{ alert device.Alert }
type noticeMsg struct{ note device.Notification }
type permissionAskMsg struct {
	capability device.Capability
	reply      chan bool
}

// Model contains UI state.
type Model struct {
	svc   *app.Service
	ctx   context.Context
	now   func() time.Time
	theme theme.Theme

	nav         *app.Navigator
	drawerIndex int

	dishes    list.Model
	favorites list.Model
	pages     map[app.ScreenID]*page.Model

	detail         *app.DishDetail
	detailFavorite bool
	detailComments []*comment.Comment
	comment        *commentModal
	drag           dragState

	reserve *app.ReserveTable
	effects app.Runner
	picker  time.Time

	permission *permissionAskMsg
	notice     string

	status    string
	statusErr bool

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	termWidth  int
	termHeight int
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) *Model {
	del := list.NewDefaultDelegate()
	del.SetSpacing(0)

	dishes := list.New([]list.Item{}, del, 60, 20)
	dishes.Title = app.MenuScreen.Title()
	dishes.SetShowHelp(false)
	dishes.SetShowStatusBar(false)
	dishes.SetFilteringEnabled(false)

	favorites := list.New([]list.Item{}, del, 60, 20)
	favorites.Title = app.FavoritesScreen.Title()
	favorites.SetShowHelp(false)
	favorites.SetShowStatusBar(false)
	favorites.SetFilteringEnabled(false)

	m := &Model{
		svc:       svc,
		ctx:       context.Background(),
		now:       time.Now,
		theme:     theme.Default(),
		nav:       app.NewNavigator(),
		dishes:    dishes,
		favorites: favorites,
		pages:     make(map[app.ScreenID]*page.Model),
		status:    "tab/shift+tab drawer · enter open · esc back · q quit",
	}
	if svc != nil && svc.Now != nil {
		m.now = svc.Now
	}
	m.reserve = app.NewReserveTable(m.now, nil)
	return m
}

// SetEffects sets what a confirmed reservation triggers. It resets the
// reservation screen.
func (m *Model) SetEffects(effects app.Runner) {
	m.effects = effects
	m.reserve = app.NewReserveTable(m.now, effects)
}

// Init loads initial data and starts watching the store.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadDishes(), startWatchCmd(m.ctx, m.svc))
}

func (m *Model) loadDishes() tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	return func() tea.Msg {
		if svc == nil {
			return dishesLoadedMsg{}
		}
		favs, err := svc.FavoriteDishes(ctx)
		if err != nil {
			return errMsg{err}
		}
		marked := make(map[int]bool, len(favs))
		favItems := make([]list.Item, 0, len(favs))
		for _, d := range favs {
			marked[d.ID] = true
			favItems = append(favItems, dishItem{dish: d, favorite: true})
		}
		all := svc.Dishes()
		items := make([]list.Item, 0, len(all))
		for _, d := range all {
			items = append(items, dishItem{dish: d, favorite: marked[d.ID]})
		}
		return dishesLoadedMsg{dishes: items, favorites: favItems}
	}
}

func (m *Model) current() app.Route { return m.nav.Current() }

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.setError(msg.err)
	case dishesLoadedMsg:
		m.dishes.SetItems(msg.dishes)
		m.favorites.SetItems(msg.favorites)
	case watchStartedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			break
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		m.handleWatchEvent(msg.event, &cmds)
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.watchCh = nil
	case reportMsg:
		m.setStatus("%s", describeReport(msg.report))
	case alertMsg:
		m.setStatus("%s: %s", msg.alert.Title, msg.alert.Message)
		m.statusErr = true
	case noticeMsg:
		m.notice = fmt.Sprintf("🔔 %s: %s", msg.note.Title, msg.note.Body)
	case permissionAskMsg:
		ask := msg
		m.permission = &ask
	case tea.MouseClickMsg:
		m.startDrag(msg.Mouse().X)
	case tea.MouseReleaseMsg:
		m.endDrag(msg.Mouse().X)
	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg))
	default:
		cmds = append(cmds, m.routeToScreen(msg))
	}

	return m, tea.Batch(cmds...)
}

// routeToScreen forwards a message to the component of the visible screen.
func (m *Model) routeToScreen(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.current().Screen {
	case app.MenuScreen:
		m.dishes, cmd = m.dishes.Update(msg)
	case app.FavoritesScreen:
		m.favorites, cmd = m.favorites.Update(msg)
	case app.HomeScreen, app.AboutScreen, app.ContactScreen:
		cmd = m.page(m.current().Screen).Update(msg)
	}
	return cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}

	switch {
	case m.permission != nil:
		m.handlePermissionKey(key)
		return nil
	case m.pendingTitle() != "":
		return m.handleConfirmKey(key)
	case m.comment != nil:
		return m.handleCommentKey(msg)
	case m.reserve.Form().Picker().Open:
		m.handlePickerKey(key)
		return nil
	}

	switch key {
	case "q":
		return m.quit()
	case "tab":
		m.selectDrawer(m.drawerIndex + 1)
		return nil
	case "shift+tab":
		m.selectDrawer(m.drawerIndex - 1)
		return nil
	case "esc", "backspace":
		if m.nav.Back() {
			m.detail = nil
		}
		return nil
	case "1", "2", "3", "4", "5", "6":
		m.selectDrawer(int(key[0] - '1'))
		return nil
	}

	switch m.current().Screen {
	case app.MenuScreen:
		return m.handleListKey(&m.dishes, msg)
	case app.FavoritesScreen:
		return m.handleListKey(&m.favorites, msg)
	case app.DishScreen:
		return m.handleDishKey(key)
	case app.ReserveScreen:
		return m.handleReserveKey(key)
	default:
		return m.page(m.current().Screen).Update(msg)
	}
}

func (m *Model) quit() tea.Cmd {
	m.stopWatch()
	if m.permission != nil {
		m.permission.reply <- false
		m.permission = nil
	}
	return tea.Quit
}

func (m *Model) selectDrawer(i int) {
	screens := app.Drawer()
	n := len(screens)
	i = ((i % n) + n) % n
	m.drawerIndex = i
	m.nav.Select(screens[i])
	m.detail = nil
}

func (m *Model) handleListKey(l *list.Model, msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "enter" {
		if it, ok := l.SelectedItem().(dishItem); ok {
			m.openDish(it.dish.ID)
		}
		return nil
	}
	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return cmd
}

func (m *Model) handlePermissionKey(key string) {
	var granted bool
	switch key {
	case "y", "enter":
		granted = true
	case "n", "esc":
	default:
		return
	}
	m.permission.reply <- granted
	m.permission = nil
}

// pendingTitle is the title of the confirmation dialog on the visible screen.
func (m *Model) pendingTitle() string {
	switch m.current().Screen {
	case app.DishScreen:
		if m.detail != nil {
			if a, ok := m.detail.PendingConfirmation(); ok {
				return a.Title
			}
		}
	case app.ReserveScreen:
		if a, ok := m.reserve.PendingConfirmation(); ok {
			return a.Title
		}
	}
	return ""
}

func (m *Model) page(id app.ScreenID) *page.Model {
	if p, ok := m.pages[id]; ok {
		return p
	}
	var src menu.Page
	switch id {
	case app.AboutScreen:
		src = m.catalog().AboutPage()
	case app.ContactScreen:
		src = menu.ContactPage()
	default:
		src = m.catalog().HomePage()
	}
	w, h := m.contentSize()
	p := page.New(src, w, h)
	m.pages[id] = p
	return p
}

func (m *Model) catalog() *menu.Catalog {
	if m.svc != nil && m.svc.Catalog != nil {
		return m.svc.Catalog
	}
	return menu.Default()
}

func (m *Model) size() (int, int) {
	w, h := m.termWidth, m.termHeight
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// contentSize is the area right of the drawer, between header and footer.
func (m *Model) contentSize() (int, int) {
	w, h := m.size()
	return max(w-drawerWidth-3, 20), max(h-4, 5)
}

// applySizes recalculates component sizes based on current terminal size.
func (m *Model) applySizes() {
	w, h := m.contentSize()
	m.dishes.SetSize(w, h)
	m.favorites.SetSize(w, h)
	for _, p := range m.pages {
		p.SetSize(w, h)
	}
}

// View renders header, drawer, screen, footer and any modal on top.
func (m *Model) View() string {
	w, h := m.size()

	title := m.current().Screen.Title()
	header := m.theme.Header.Width(w).Render(title)
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderDrawer(), " ", m.renderScreen())

	footerStyle := m.theme.Footer.Status
	if m.statusErr {
		footerStyle = m.theme.Footer.Error
	}
	footer := footerStyle.Render(m.status)
	if m.notice != "" {
		footer = m.theme.Footer.Notice.Render(m.notice) + "\n" + footer
	}

	view := strings.Join([]string{header, body, footer}, "\n")
	if modal := m.renderModal(); modal != "" {
		view = overlay.Compose(view, w, h, modal)
	}
	return view
}

func (m *Model) renderDrawer() string {
	lines := make([]string, 0, len(app.Drawer()))
	for i, id := range app.Drawer() {
		label := fmt.Sprintf("%d %s", i+1, id.Title())
		if i == m.drawerIndex {
			lines = append(lines, m.theme.Drawer.Selected.Render("› "+label))
			continue
		}
		lines = append(lines, m.theme.Drawer.Item.Render("  "+label))
	}
	_, h := m.contentSize()
	return m.theme.Drawer.Frame.Width(drawerWidth).Height(h).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderScreen() string {
	switch m.current().Screen {
	case app.MenuScreen:
		return m.dishes.View()
	case app.FavoritesScreen:
		if len(m.favorites.Items()) == 0 {
			return m.theme.Card.Meta.Render("No favorites yet. Swipe a dish left or press f on it.")
		}
		return m.favorites.View()
	case app.DishScreen:
		return m.renderDish()
	case app.ReserveScreen:
		return m.renderReserve()
	default:
		return m.page(m.current().Screen).View()
	}
}

func (m *Model) renderModal() string {
	mt := m.theme.Modal
	if m.permission != nil {
		return mt.Frame.Render(strings.Join([]string{
			mt.Title.Render("Permission"),
			mt.Body.Render(fmt.Sprintf("Allow Con Fusion to use your %s?", m.permission.capability)),
			"",
			mt.Button.Render("[y] Allow   [n] Don't Allow"),
		}, "\n"))
	}
	if m.pendingTitle() != "" {
		return m.renderConfirm()
	}
	if m.comment != nil {
		return m.renderComment()
	}
	if m.reserve.Form().Picker().Open {
		return m.renderPicker()
	}
	return ""
}

func describeReport(r reservation.Report) string {
	parts := make([]string, 0, 2)
	for _, o := range []reservation.Outcome{r.Notification, r.Calendar} {
		parts = append(parts, fmt.Sprintf("%s %s", o.Capability, o.Status))
	}
	return "Reservation: " + strings.Join(parts, " · ")
}
