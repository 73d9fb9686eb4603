package app

import (
	"errors"
	"testing"
)

func TestScreenModalSlot(t *testing.T) {
	s := NewScreen(DishScreen)
	if s.Title() != "Dish Details" {
		t.Fatalf("unexpected title %q", s.Title())
	}
	if err := s.OpenModal(CommentModal); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.OpenModal(ConfirmModal); !errors.Is(err, ErrModalOpen) {
		t.Fatalf("expected ErrModalOpen, got %v", err)
	}
	s.CloseModal(ConfirmModal)
	if s.Modal() != CommentModal {
		t.Fatal("closing another modal must not free the slot")
	}
	s.CloseModal(CommentModal)
	if s.HasModal() {
		t.Fatal("slot should be free")
	}
}

func TestNavigator(t *testing.T) {
	n := NewNavigator()
	if n.Current().Screen != HomeScreen {
		t.Fatalf("expected home, got %s", n.Current().Screen)
	}
	if n.Back() {
		t.Fatal("cannot go back from the root")
	}
	n.Select(MenuScreen)
	n.OpenDish(3)
	if cur := n.Current(); cur.Screen != DishScreen || cur.DishID != 3 {
		t.Fatalf("unexpected route %+v", cur)
	}
	if !n.Back() || n.Current().Screen != MenuScreen {
		t.Fatal("expected to return to the menu")
	}
	n.OpenDish(1)
	n.Select(ContactScreen)
	if n.Depth() != 1 {
		t.Fatal("drawer selection should drop the stack")
	}
}

func TestDrawerTitles(t *testing.T) {
	want := []string{"Home", "About Us", "Menu", "Reserve Table", "My Favorites", "Contact Us"}
	got := Drawer()
	if len(got) != len(want) {
		t.Fatalf("unexpected drawer %v", got)
	}
	for i, id := range got {
		if id.Title() != want[i] {
			t.Fatalf("drawer[%d] = %q, want %q", i, id.Title(), want[i])
		}
	}
}
