package comment

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/confusion/pkg/app"
	"tableflip.dev/confusion/pkg/commentform"
	"tableflip.dev/confusion/pkg/printers"
)

// Comment posts a rated comment through the dish comment form.
type Comment struct {
	App    *app.Service
	ID     int
	Rating int
	Author string
	Text   string
	Out    io.Writer
}

func (n *Comment) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

func (n *Comment) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not comment, no app service")
	}
	d, err := n.App.NewDishDetail(n.ID)
	if err != nil {
		return err
	}
	if err := d.OpenCommentForm(); err != nil {
		return err
	}
	form := d.CommentForm()
	_ = form.SetRating(n.Rating)
	_ = form.SetAuthor(n.Author)
	_ = form.SetComment(n.Text)

	c, err := d.SubmitComment(ctx)
	if errors.Is(err, commentform.ErrInvalid) {
		red := color.New(color.FgRed)
		for _, p := range form.Validation().Problems {
			_, _ = red.Fprintf(n.out(), "  %s\n", p.Error())
		}
		_ = d.CancelComment()
		return err
	}
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(n.out(), "Posted comment %d on %s: %s\n", c.ID, d.Dish().Name, c.Stars())
	return nil
}

// Comments prints the comments left on a dish.
type Comments struct {
	App *app.Service
	ID  int
	Out io.Writer
}

func (n *Comments) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not list comments, no app service")
	}
	d, err := n.App.NewDishDetail(n.ID)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Title(d.Dish().Title())
	pp.Comments(d.Comments(ctx))
	return nil
}
