package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/confusion/pkg/commentform"
	"tableflip.dev/confusion/pkg/confirm"
	"tableflip.dev/confusion/pkg/gesture"
)

func newTestDishDetail(t *testing.T) (*DishDetail, *memoryPersistence, *[]string) {
	t.Helper()
	svc, mp := newTestService()
	d, err := svc.NewDishDetail(0)
	if err != nil {
		t.Fatalf("dish detail: %v", err)
	}
	var logs []string
	d.SetLogger(func(format string, args ...any) {
		logs = append(logs, format)
		if len(args) > 0 {
			if s, ok := args[0].(string); ok {
				logs[len(logs)-1] = s
			}
		}
	})
	return d, mp, &logs
}

func TestSwipeBelowThresholdShowsNothing(t *testing.T) {
	d, mp, _ := newTestDishDetail(t)

	for _, dx := range []float64{-50, -200, 120} {
		shown, err := d.Swipe(gesture.Drag{DX: dx})
		if err != nil {
			t.Fatalf("swipe %v: %v", dx, err)
		}
		if shown {
			t.Fatalf("swipe %v should not open the dialog", dx)
		}
	}
	if d.Screen().HasModal() {
		t.Fatal("no modal expected")
	}
	if mp.adds != 0 {
		t.Fatal("no favorite expected")
	}
}

func TestSwipeConfirmAddsFavoriteOnce(t *testing.T) {
	ctx := context.Background()
	d, mp, _ := newTestDishDetail(t)

	shown, err := d.Swipe(gesture.Drag{DX: -250})
	if err != nil || !shown {
		t.Fatalf("expected dialog, got %v %v", shown, err)
	}
	a, ok := d.PendingConfirmation()
	if !ok {
		t.Fatal("expected a pending confirmation")
	}
	if a.Title != "Add to Favorites?" || !strings.Contains(a.Body, d.Dish().Name) {
		t.Fatalf("unexpected dialog %q / %q", a.Title, a.Body)
	}
	if d.Screen().Modal() != ConfirmModal {
		t.Fatalf("expected confirm modal, got %q", d.Screen().Modal())
	}

	outcome, err := d.ResolveConfirmation(ctx, confirm.OK)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if outcome != confirm.OutcomeConfirmed {
		t.Fatalf("expected confirmed, got %s", outcome)
	}
	if mp.adds != 1 || !d.IsFavorite(ctx) {
		t.Fatalf("expected exactly one favorite, got %d", mp.adds)
	}
	if d.Screen().HasModal() {
		t.Fatal("dialog should be closed")
	}
}

func TestSwipeCancelDoesNothing(t *testing.T) {
	d, mp, logs := newTestDishDetail(t)

	if _, err := d.Swipe(gesture.Drag{DX: -300}); err != nil {
		t.Fatalf("swipe: %v", err)
	}
	outcome, err := d.ResolveConfirmation(context.Background(), confirm.Cancel)
	if err != nil || outcome != confirm.OutcomeCancelled {
		t.Fatalf("expected cancelled, got %s %v", outcome, err)
	}
	if mp.adds != 0 {
		t.Fatal("cancel must not add a favorite")
	}
	if len(*logs) != 1 || (*logs)[0] != "Cancel pressed" {
		t.Fatalf("unexpected logs %v", *logs)
	}
}

func TestSwipeOnFavoriteShortCircuits(t *testing.T) {
	ctx := context.Background()
	d, mp, logs := newTestDishDetail(t)
	if _, err := d.PressFavorite(ctx); err != nil {
		t.Fatalf("press: %v", err)
	}

	if _, err := d.Swipe(gesture.Drag{DX: -250}); err != nil {
		t.Fatalf("swipe: %v", err)
	}
	outcome, err := d.ResolveConfirmation(ctx, confirm.OK)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if outcome != confirm.OutcomeAlreadyDone {
		t.Fatalf("expected already-done, got %s", outcome)
	}
	if mp.adds != 1 {
		t.Fatalf("expected the favorite to be stored once, got %d", mp.adds)
	}
	if len(*logs) == 0 || (*logs)[len(*logs)-1] != "Already favorite" {
		t.Fatalf("expected Already favorite log, got %v", *logs)
	}
}

func TestPressFavoriteTwice(t *testing.T) {
	ctx := context.Background()
	d, mp, logs := newTestDishDetail(t)

	added, err := d.PressFavorite(ctx)
	if err != nil || !added {
		t.Fatalf("first press: %v %v", added, err)
	}
	added, err = d.PressFavorite(ctx)
	if err != nil || added {
		t.Fatalf("second press: %v %v", added, err)
	}
	if mp.adds != 1 {
		t.Fatalf("expected one favorite, got %d", mp.adds)
	}
	if len(*logs) != 1 || (*logs)[0] != "Already favorite" {
		t.Fatalf("unexpected logs %v", *logs)
	}
}

func TestOneModalPerScreen(t *testing.T) {
	d, _, _ := newTestDishDetail(t)

	if err := d.OpenCommentForm(); err != nil {
		t.Fatalf("open form: %v", err)
	}
	if _, err := d.Swipe(gesture.Drag{DX: -250}); !errors.Is(err, ErrModalOpen) {
		t.Fatalf("expected ErrModalOpen, got %v", err)
	}
	if _, ok := d.PendingConfirmation(); ok {
		t.Fatal("no confirmation should be pending")
	}
	if err := d.CancelComment(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := d.Swipe(gesture.Drag{DX: -250}); err != nil {
		t.Fatalf("swipe after cancel: %v", err)
	}
	if err := d.OpenCommentForm(); !errors.Is(err, ErrModalOpen) {
		t.Fatalf("expected ErrModalOpen, got %v", err)
	}
}

func TestSubmitComment(t *testing.T) {
	ctx := context.Background()
	d, mp, _ := newTestDishDetail(t)

	if err := d.OpenCommentForm(); err != nil {
		t.Fatalf("open: %v", err)
	}
	form := d.CommentForm()
	if f := form.Fields(); f.Rating != 5 || f.Author != "" || f.Comment != "" {
		t.Fatalf("unexpected defaults %+v", f)
	}

	// Empty fields keep the modal open.
	if _, err := d.SubmitComment(ctx); !errors.Is(err, commentform.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if d.Screen().Modal() != CommentModal {
		t.Fatal("modal should stay open on invalid input")
	}

	_ = form.SetRating(3)
	_ = form.SetAuthor("Ann")
	_ = form.SetComment("Tasty")
	c, err := d.SubmitComment(ctx)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if c.ItemID != 0 || c.Rating != 3 || c.Author != "Ann" || c.Text != "Tasty" {
		t.Fatalf("unexpected comment %+v", c)
	}
	if !c.Date.Equal(testNow) {
		t.Fatalf("expected date %v, got %v", testNow, c.Date)
	}
	if d.Screen().HasModal() || form.IsOpen() {
		t.Fatal("modal should close after submit")
	}
	if len(mp.comments) != 1 {
		t.Fatalf("expected one stored comment, got %d", len(mp.comments))
	}
	if got := d.Comments(ctx); len(got) != 1 || got[0].Text != "Tasty" {
		t.Fatalf("unexpected comments %+v", got)
	}

	if err := d.OpenCommentForm(); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if f := form.Fields(); f.Rating != 5 || f.Author != "" || f.Comment != "" {
		t.Fatalf("expected reset fields, got %+v", f)
	}
}

func TestSubmitCommentStoreFailureStillCloses(t *testing.T) {
	d, mp, _ := newTestDishDetail(t)
	mp.err = errors.New("disk full")

	if err := d.OpenCommentForm(); err != nil {
		t.Fatalf("open: %v", err)
	}
	form := d.CommentForm()
	_ = form.SetAuthor("Ann")
	_ = form.SetComment("Tasty")
	if _, err := d.SubmitComment(context.Background()); err == nil {
		t.Fatal("expected store error")
	}
	if d.Screen().HasModal() || form.IsOpen() {
		t.Fatal("modal should close even when the store fails")
	}
}

func TestConfirmFavoriteWithAsker(t *testing.T) {
	ctx := context.Background()
	d, mp, _ := newTestDishDetail(t)
	asked := 0
	asker := confirm.AskFunc(func(_ context.Context, title, body string) (confirm.Choice, error) {
		asked++
		return confirm.OK, nil
	})

	outcome, err := d.ConfirmFavorite(ctx, asker)
	if err != nil || outcome != confirm.OutcomeConfirmed {
		t.Fatalf("expected confirmed, got %s %v", outcome, err)
	}
	outcome, err = d.ConfirmFavorite(ctx, asker)
	if err != nil || outcome != confirm.OutcomeAlreadyDone {
		t.Fatalf("expected already-done, got %s %v", outcome, err)
	}
	if asked != 2 || mp.adds != 1 {
		t.Fatalf("asked %d times, %d favorites", asked, mp.adds)
	}
}
