// Package page renders a static markdown page inside a scrolling viewport.
package page

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"

	"tableflip.dev/confusion/pkg/menu"
)

// Model shows one menu.Page with Glamour styling.
type Model struct {
	page     menu.Page
	viewport viewport.Model
	width    int
	height   int
	err      error
}

// New constructs a page model sized to the provided bounds.
func New(p menu.Page, width, height int) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	m := &Model{page: p, viewport: vp}
	m.SetSize(width, height)
	return m
}

// Title is the page title.
func (m *Model) Title() string { return m.page.Title }

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return cmd
}

// View renders the visible part of the page.
func (m *Model) View() string {
	body := m.viewport.View()
	if strings.TrimSpace(body) == "" && m.err != nil {
		return "page unavailable: " + m.err.Error()
	}
	return body
}

// SetSize re-renders the markdown to fit the new bounds.
func (m *Model) SetSize(width, height int) {
	width = max(width, 20)
	height = max(height, 3)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height
	m.viewport.SetWidth(width)
	m.viewport.SetHeight(height)
	m.render(width)
}

func (m *Model) render(wrap int) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(wrap-2, 10)),
	)
	if err != nil {
		m.err = err
		m.viewport.SetContent(m.page.Markdown)
		return
	}
	content, err := renderer.Render(strings.TrimSpace(m.page.Markdown))
	if err != nil {
		m.err = err
		m.viewport.SetContent(m.page.Markdown)
		return
	}
	m.err = nil
	m.viewport.SetContent(content)
	m.viewport.SetYOffset(0)
}
