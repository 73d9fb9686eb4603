package app

import "errors"

// ErrModalOpen is returned when a screen already shows a modal.
var ErrModalOpen = errors.New("app: a modal is already open on this screen")

// ScreenID names a screen of the app.
type ScreenID string

const (
	HomeScreen      ScreenID = "home"
	AboutScreen     ScreenID = "about"
	MenuScreen      ScreenID = "menu"
	DishScreen      ScreenID = "dish"
	ReserveScreen   ScreenID = "reserve"
	FavoritesScreen ScreenID = "favorites"
	ContactScreen   ScreenID = "contact"
)

var titles = map[ScreenID]string{
	HomeScreen:      "Home",
	AboutScreen:     "About Us",
	MenuScreen:      "Menu",
	DishScreen:      "Dish Details",
	ReserveScreen:   "Reserve Table",
	FavoritesScreen: "My Favorites",
	ContactScreen:   "Contact Us",
}

// Title returns the header shown for the screen.
func (id ScreenID) Title() string {
	if t, ok := titles[id]; ok {
		return t
	}
	return string(id)
}

// Drawer lists the screens reachable from the side drawer, in order.
func Drawer() []ScreenID {
	return []ScreenID{HomeScreen, AboutScreen, MenuScreen, ReserveScreen, FavoritesScreen, ContactScreen}
}

// Modal identifies the kind of modal occupying a screen.
type Modal string

const (
	NoModal      Modal = ""
	ConfirmModal Modal = "confirm"
	CommentModal Modal = "comment"
	PickerModal  Modal = "picker"
)

// Screen holds the single modal slot of a screen.
type Screen struct {
	ID    ScreenID
	modal Modal
}

// NewScreen returns a screen with no modal.
func NewScreen(id ScreenID) *Screen {
	return &Screen{ID: id}
}

// Title is the screen header.
func (s *Screen) Title() string { return s.ID.Title() }

// Modal returns the visible modal, if any.
func (s *Screen) Modal() Modal { return s.modal }

// HasModal reports whether a modal is visible.
func (s *Screen) HasModal() bool { return s.modal != NoModal }

// OpenModal claims the slot. It fails when another modal holds it.
func (s *Screen) OpenModal(m Modal) error {
	if s.modal != NoModal {
		return ErrModalOpen
	}
	s.modal = m
	return nil
}

// CloseModal frees the slot if m holds it.
func (s *Screen) CloseModal(m Modal) {
	if s.modal == m {
		s.modal = NoModal
	}
}
