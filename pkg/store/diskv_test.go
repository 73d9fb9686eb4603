package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/confusion/pkg/comment"
)

func newTestPersistence(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	p := newTestPersistence(t)

	if p.IsFavorite(ctx, 0) {
		t.Fatal("expected dish 0 not to be a favorite yet")
	}
	for i := 0; i < 3; i++ {
		if err := p.AddFavorite(0); err != nil {
			t.Fatalf("add favorite: %v", err)
		}
	}
	if err := p.AddFavorite(2); err != nil {
		t.Fatalf("add favorite: %v", err)
	}

	if !p.IsFavorite(ctx, 0) || !p.IsFavorite(ctx, 2) {
		t.Fatal("expected dishes 0 and 2 to be favorites")
	}
	if p.IsFavorite(ctx, 1) {
		t.Fatal("dish 1 should not be a favorite")
	}
	got := p.Favorites(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 favorites, got %v", got)
	}
}

func TestFavoritesKeepMarkOrderWithinASecond(t *testing.T) {
	ctx := context.Background()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	fixed := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	p.(*persistence).now = func() time.Time { return fixed }

	for _, id := range []int{3, 0, 2} {
		if err := p.AddFavorite(id); err != nil {
			t.Fatalf("add favorite %d: %v", id, err)
		}
	}
	got := p.Favorites(ctx)
	want := []int{3, 0, 2}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestAddFavoriteRejectsNegativeID(t *testing.T) {
	p := newTestPersistence(t)
	if err := p.AddFavorite(-1); err == nil {
		t.Fatal("expected error for negative dish id")
	}
}

func TestAddCommentAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	p := newTestPersistence(t)
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	posts := []*comment.Comment{
		comment.New(1, 5, "Ann", "first", at),
		comment.New(0, 3, "Bob", "second", at),
		comment.New(1, 4, "Cy", "third", at),
	}
	for i, c := range posts {
		if err := p.AddComment(c); err != nil {
			t.Fatalf("add comment %d: %v", i, err)
		}
		if c.ID != i {
			t.Fatalf("comment %d got id %d", i, c.ID)
		}
	}

	forOne := p.CommentsForItem(ctx, 1)
	if len(forOne) != 2 {
		t.Fatalf("expected 2 comments for dish 1, got %d", len(forOne))
	}
	if forOne[0].Text != "first" || forOne[1].Text != "third" {
		t.Fatalf("expected insertion order, got %q then %q", forOne[0].Text, forOne[1].Text)
	}
	if !forOne[0].Date.Equal(at) {
		t.Fatalf("date not preserved: %v", forOne[0].Date)
	}
	if got := p.CommentsForItem(ctx, 3); len(got) != 0 {
		t.Fatalf("expected no comments for dish 3, got %d", len(got))
	}
	if got := p.Comments(ctx); len(got) != 3 {
		t.Fatalf("expected 3 comments overall, got %d", len(got))
	}
}

func TestAddCommentContinuesAfterReload(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.AddComment(comment.New(0, 5, "Ann", "one", time.Now())); err != nil {
		t.Fatalf("add: %v", err)
	}

	reloaded, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	c := comment.New(0, 2, "Bob", "two", time.Now())
	if err := reloaded.AddComment(c); err != nil {
		t.Fatalf("add after reload: %v", err)
	}
	if c.ID != 1 {
		t.Fatalf("expected id 1 after reload, got %d", c.ID)
	}
}

func TestAddCommentRejectsNil(t *testing.T) {
	p := newTestPersistence(t)
	if err := p.AddComment(nil); err != ErrInvalidComment {
		t.Fatalf("expected ErrInvalidComment, got %v", err)
	}
}

func TestLoadRequiresBasePath(t *testing.T) {
	if _, err := Load(testConfig{}); err == nil {
		t.Fatal("expected error for empty base path")
	}
}
