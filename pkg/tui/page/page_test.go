package page

import (
	"strings"
	"testing"

	"tableflip.dev/confusion/pkg/menu"
	"tableflip.dev/confusion/pkg/tui/overlay"
)

func TestPageRendersMarkdown(t *testing.T) {
	m := New(menu.ContactPage(), 60, 40)
	if m.Title() != "Contact Us" {
		t.Fatalf("unexpected title %q", m.Title())
	}
	view := m.View()
	if strings.TrimSpace(view) == "" {
		t.Fatal("expected rendered content")
	}
}

func TestPageResizeKeepsContent(t *testing.T) {
	p := menu.Page{Title: "Test", Markdown: "# Heading\n\nSome body text."}
	m := New(p, 30, 10)
	m.SetSize(50, 12)
	if !strings.Contains(stripANSI(m.View()), "body text") {
		t.Fatalf("expected body after resize; view=%q", m.View())
	}
}

func stripANSI(s string) string {
	return overlay.Plain(s)
}
