package favorite

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/confusion/pkg/app"
	"tableflip.dev/confusion/pkg/confirm"
)

// Favorite marks a dish as favorite after asking for confirmation.
type Favorite struct {
	App   *app.Service
	ID    int
	Asker confirm.Asker
	// Yes skips the question, like pressing the heart icon.
	Yes bool
	Out io.Writer
}

func (n *Favorite) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

func (n *Favorite) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not mark favorite, no app service")
	}
	d, err := n.App.NewDishDetail(n.ID)
	if err != nil {
		return err
	}
	d.SetLogger(func(format string, args ...any) {
		_, _ = color.New(color.Faint).Fprintf(n.out(), format+"\n", args...)
	})

	name := d.Dish().Name
	if n.Yes || n.Asker == nil {
		added, err := d.PressFavorite(ctx)
		if err != nil {
			return err
		}
		if added {
			_, _ = fmt.Fprintf(n.out(), "%s added to your favorites.\n", name)
		}
		return nil
	}

	outcome, err := d.ConfirmFavorite(ctx, n.Asker)
	if err != nil {
		return err
	}
	if outcome == confirm.OutcomeConfirmed {
		_, _ = fmt.Fprintf(n.out(), "%s added to your favorites.\n", name)
	}
	return nil
}
