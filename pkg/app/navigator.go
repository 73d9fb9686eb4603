package app

// Route is one entry of the navigation stack.
type Route struct {
	Screen ScreenID
	// DishID is set for DishScreen routes.
	DishID int
}

// Navigator keeps the drawer selection and the stack pushed on top of it,
// e.g. Menu then Dish Details.
type Navigator struct {
	stack []Route
}

// NewNavigator starts on the home screen.
func NewNavigator() *Navigator {
	return &Navigator{stack: []Route{{Screen: HomeScreen}}}
}

// Current is the visible route.
func (n *Navigator) Current() Route {
	return n.stack[len(n.stack)-1]
}

// Depth is the number of routes on the stack.
func (n *Navigator) Depth() int { return len(n.stack) }

// Select jumps to a drawer screen and drops the stack.
func (n *Navigator) Select(id ScreenID) {
	n.stack = []Route{{Screen: id}}
}

// OpenDish pushes the dish detail screen.
func (n *Navigator) OpenDish(dishID int) {
	n.stack = append(n.stack, Route{Screen: DishScreen, DishID: dishID})
}

// Back pops the stack. It reports false at the root.
func (n *Navigator) Back() bool {
	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}
