package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/confusion/pkg/comment"
	"tableflip.dev/confusion/pkg/commentform"
)

type commentField int

const (
	fieldRating commentField = iota
	fieldAuthor
	fieldComment
	fieldCount
)

// commentModal holds the text inputs of the comment form. The values live in
// the commentform.Form; the inputs only edit them.
type commentModal struct {
	focus  commentField
	author textinput.Model
	text   textinput.Model
}

func newCommentModal() *commentModal {
	author := textinput.New()
	author.Placeholder = "Author"
	author.CharLimit = 64
	author.Prompt = ""

	text := textinput.New()
	text.Placeholder = "Comment"
	text.CharLimit = 512
	text.Prompt = ""

	return &commentModal{focus: fieldRating, author: author, text: text}
}

func (m *Model) openComment() tea.Cmd {
	if m.detail == nil {
		return nil
	}
	if err := m.detail.OpenCommentForm(); err != nil {
		m.setError(err)
		return nil
	}
	m.comment = newCommentModal()
	return nil
}

func (m *Model) focusComment(f commentField) tea.Cmd {
	c := m.comment
	c.focus = (f + fieldCount) % fieldCount
	c.author.Blur()
	c.text.Blur()
	switch c.focus {
	case fieldAuthor:
		return c.author.Focus()
	case fieldComment:
		return c.text.Focus()
	}
	return nil
}

func (m *Model) handleCommentKey(msg tea.KeyPressMsg) tea.Cmd {
	c := m.comment
	form := m.detail.CommentForm()

	switch msg.String() {
	case "esc":
		if err := m.detail.CancelComment(); err != nil {
			m.setError(err)
		}
		m.comment = nil
		m.setStatus("Comment discarded")
		return nil
	case "enter":
		return m.submitComment()
	case "tab", "down":
		return m.focusComment(c.focus + 1)
	case "shift+tab", "up":
		return m.focusComment(c.focus - 1)
	}

	if c.focus == fieldRating {
		rating := form.Fields().Rating
		switch k := msg.String(); k {
		case "left", "h", "-":
			rating--
		case "right", "l", "+":
			rating++
		case "1", "2", "3", "4", "5":
			rating = int(k[0] - '0')
		default:
			return nil
		}
		rating = min(max(rating, comment.MinRating), comment.MaxRating)
		_ = form.SetRating(rating)
		return nil
	}

	var cmd tea.Cmd
	if c.focus == fieldAuthor {
		c.author, cmd = c.author.Update(msg)
		_ = form.SetAuthor(c.author.Value())
	} else {
		c.text, cmd = c.text.Update(msg)
		_ = form.SetComment(c.text.Value())
	}
	return cmd
}

func (m *Model) submitComment() tea.Cmd {
	posted, err := m.detail.SubmitComment(m.ctx)
	if errors.Is(err, commentform.ErrInvalid) {
		// The form stays open with its problems listed.
		return nil
	}
	m.comment = nil
	if err != nil {
		m.setError(err)
		return nil
	}
	m.setStatus("Comment posted by %s", posted.Author)
	m.refreshDish()
	return nil
}

func (m *Model) renderComment() string {
	mt := m.theme.Modal
	c := m.comment
	form := m.detail.CommentForm()
	fields := form.Fields()
	v := form.Validation()

	label := func(f commentField, name string) string {
		if c.focus == f {
			return mt.Focused.Render("› " + name)
		}
		return "  " + name
	}
	problem := func(field string) string {
		if p, ok := v.Problem(field); ok {
			return " " + mt.Error.Render(p)
		}
		return ""
	}

	stars := strings.Repeat("★", fields.Rating) + strings.Repeat("☆", comment.MaxRating-fields.Rating)
	lines := []string{
		mt.Title.Render("Comment on " + m.detail.Dish().Name),
		"",
		fmt.Sprintf("%s  %s%s", label(fieldRating, "Rating "), m.theme.Card.Stars.Render(stars), problem(commentform.FieldRating)),
		fmt.Sprintf("%s  %s%s", label(fieldAuthor, "Author "), c.author.View(), problem(commentform.FieldAuthor)),
		fmt.Sprintf("%s  %s%s", label(fieldComment, "Comment"), c.text.View(), problem(commentform.FieldComment)),
		"",
		mt.Button.Render("[enter] Submit   [esc] Cancel"),
	}
	return mt.Frame.Render(strings.Join(lines, "\n"))
}
