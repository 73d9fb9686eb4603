package app

import (
	"context"
	"log"

	"tableflip.dev/confusion/pkg/comment"
	"tableflip.dev/confusion/pkg/commentform"
	"tableflip.dev/confusion/pkg/confirm"
	"tableflip.dev/confusion/pkg/gesture"
	"tableflip.dev/confusion/pkg/menu"
)

const (
	favoriteTitle   = "Add to Favorites?"
	alreadyFavorite = "Already favorite"
)

// DishDetail drives the dish detail screen: favorite by swipe or icon and
// the comment modal.
type DishDetail struct {
	svc     *Service
	dish    menu.Item
	screen  *Screen
	confirm *confirm.Controller
	form    *commentform.Form
	logf    func(format string, args ...any)

	// ctx of the Resolve call in flight, read by the action callbacks.
	ctx context.Context
}

// NewDishDetail opens the detail screen of a dish.
func (s *Service) NewDishDetail(dishID int) (*DishDetail, error) {
	dish, err := s.Dish(dishID)
	if err != nil {
		return nil, err
	}
	d := &DishDetail{
		svc:     s,
		dish:    dish,
		screen:  NewScreen(DishScreen),
		confirm: confirm.NewController(),
		logf:    log.Printf,
		ctx:     context.Background(),
	}
	d.form = commentform.New(dishID, commentform.PosterFunc(s.SaveComment))
	d.form.SetClock(s.now)
	return d, nil
}

// SetLogger redirects diagnostics such as "Already favorite".
func (d *DishDetail) SetLogger(logf func(format string, args ...any)) {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	d.logf = logf
	d.confirm.SetLogger(logf)
}

// Dish is the dish shown.
func (d *DishDetail) Dish() menu.Item { return d.dish }

// Screen exposes the modal slot.
func (d *DishDetail) Screen() *Screen { return d.screen }

// CommentForm is the comment modal state.
func (d *DishDetail) CommentForm() *commentform.Form { return d.form }

// IsFavorite reports the favorite flag shown on the heart icon.
func (d *DishDetail) IsFavorite(ctx context.Context) bool {
	fav, err := d.svc.IsFavorite(ctx, d.dish.ID)
	if err != nil {
		d.logf("dish %d: %v", d.dish.ID, err)
		return false
	}
	return fav
}

// Comments lists the comments of the dish.
func (d *DishDetail) Comments(ctx context.Context) []*comment.Comment {
	list, err := d.svc.Comments(ctx, d.dish.ID)
	if err != nil {
		d.logf("dish %d: %v", d.dish.ID, err)
		return nil
	}
	return list
}

func (d *DishDetail) favoriteAction() confirm.Action {
	return confirm.Action{
		Title: favoriteTitle,
		Body:  "Are you sure you wish to add " + d.dish.Name + " to your favorites?",
		OnConfirm: func() error {
			return d.svc.PostFavorite(d.ctx, d.dish.ID)
		},
		OnCancel: func() {
			d.logf("Cancel pressed")
		},
		Done:        func() bool { return d.IsFavorite(d.ctx) },
		DoneMessage: alreadyFavorite,
	}
}

// Swipe classifies a finished drag. A favorite intent opens the
// confirmation dialog and Swipe reports true; anything else is ignored.
func (d *DishDetail) Swipe(drag gesture.Drag) (bool, error) {
	if gesture.Classify(drag) != gesture.FavoriteIntent {
		return false, nil
	}
	if err := d.screen.OpenModal(ConfirmModal); err != nil {
		return false, err
	}
	if err := d.confirm.Request(d.favoriteAction()); err != nil {
		d.screen.CloseModal(ConfirmModal)
		return false, err
	}
	return true, nil
}

// PendingConfirmation is the dialog currently shown.
func (d *DishDetail) PendingConfirmation() (confirm.Action, bool) {
	return d.confirm.Pending()
}

// ResolveConfirmation answers the dialog and closes it.
func (d *DishDetail) ResolveConfirmation(ctx context.Context, choice confirm.Choice) (confirm.Outcome, error) {
	d.ctx = ctx
	defer d.screen.CloseModal(ConfirmModal)
	return d.confirm.Resolve(choice)
}

// ConfirmFavorite runs the favorite confirmation synchronously through asker.
func (d *DishDetail) ConfirmFavorite(ctx context.Context, asker confirm.Asker) (confirm.Outcome, error) {
	if err := d.screen.OpenModal(ConfirmModal); err != nil {
		return confirm.OutcomeCancelled, err
	}
	defer d.screen.CloseModal(ConfirmModal)
	d.ctx = ctx
	return d.confirm.Confirm(ctx, asker, d.favoriteAction())
}

// PressFavorite handles the heart icon: no dialog, same short-circuit.
// It reports whether a favorite was added.
func (d *DishDetail) PressFavorite(ctx context.Context) (bool, error) {
	if d.IsFavorite(ctx) {
		d.logf("%s", alreadyFavorite)
		return false, nil
	}
	if err := d.svc.PostFavorite(ctx, d.dish.ID); err != nil {
		return false, err
	}
	return true, nil
}

// OpenCommentForm shows the comment modal with default values.
func (d *DishDetail) OpenCommentForm() error {
	if err := d.screen.OpenModal(CommentModal); err != nil {
		return err
	}
	if err := d.form.Open(); err != nil {
		d.screen.CloseModal(CommentModal)
		return err
	}
	return nil
}

// SubmitComment submits the modal. The modal stays open only when the
// fields are invalid.
func (d *DishDetail) SubmitComment(ctx context.Context) (*comment.Comment, error) {
	c, err := d.form.Submit(ctx)
	if !d.form.IsOpen() {
		d.screen.CloseModal(CommentModal)
	}
	return c, err
}

// CancelComment dismisses the modal.
func (d *DishDetail) CancelComment() error {
	if err := d.form.Cancel(); err != nil {
		return err
	}
	d.screen.CloseModal(CommentModal)
	return nil
}
