// Package pages renders the static restaurant pages as markdown.
package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"tableflip.dev/confusion/pkg/menu"
)

// Page renders one page to the terminal.
type Page struct {
	Page  menu.Page
	Width int
	Out   io.Writer
}

func (n *Page) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	width := n.Width
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	rendered, err := r.Render(n.Page.Markdown)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
