package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/confusion/pkg/comment"
	"tableflip.dev/confusion/pkg/menu"
)

// DefaultWidth is the wrap width for long text.
const DefaultWidth = 72

type PrettyPrint struct {
	Out   io.Writer
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return DefaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s", count, noun)
	if count != 1 {
		_, _ = c.Fprint(pp.out(), "s")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Dishes prints the menu as a table. Favorites get a heart.
func (pp *PrettyPrint) Dishes(dishes []menu.Item, favorites map[int]bool) {
	if len(dishes) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	heart := color.New(color.FgHiRed)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50
	tbl.AddRow(bold.Sprint("ID"), "", bold.Sprint("Dish"), bold.Sprint("Price"), bold.Sprint("Category"))
	for _, d := range dishes {
		fav := " "
		if favorites[d.ID] {
			fav = heart.Sprint("♥")
		}
		tbl.AddRow(strconv.Itoa(d.ID), fav, d.Title(), price(d.Price), d.Category)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Dish prints one dish with its description wrapped.
func (pp *PrettyPrint) Dish(d menu.Item, favorite bool) {
	title := d.Title()
	if favorite {
		title += " " + color.New(color.FgHiRed).Sprint("♥")
	}
	pp.Title(title)
	if d.Price != "" || d.Category != "" {
		f := color.New(color.Faint)
		_, _ = f.Fprintln(pp.out(), strings.TrimSpace(price(d.Price)+" "+d.Category))
	}
	_, _ = fmt.Fprintln(pp.out(), wordwrap.String(d.Description, pp.width()))
	pp.NewLine()
}

// Comments prints comment text, stars and byline, newest last.
func (pp *PrettyPrint) Comments(comments []*comment.Comment) {
	pp.TitleWithCount("Comments", len(comments), "comment")
	if len(comments) == 0 {
		pp.none()
		return
	}
	stars := color.New(color.FgHiYellow)
	by := color.New(color.Faint, color.Italic)
	for _, c := range comments {
		_, _ = fmt.Fprintln(pp.out(), indent.String(wordwrap.String(c.Text, pp.width()-2), 2))
		_, _ = stars.Fprintf(pp.out(), "  %s\n", c.Stars())
		_, _ = by.Fprintf(pp.out(), "  %s\n", c.Byline())
		pp.NewLine()
	}
}

// Markdown prints a static page as plain wrapped text.
func (pp *PrettyPrint) Markdown(p menu.Page) {
	pp.Title(p.Title)
	pp.NewLine()
	_, _ = fmt.Fprintln(pp.out(), wordwrap.String(strings.TrimSpace(p.Markdown), pp.width()))
	pp.NewLine()
}

func price(p string) string {
	if p == "" {
		return ""
	}
	return "$" + p
}
