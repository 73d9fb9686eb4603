// Package gesture turns raw drag gestures into discrete intents.
package gesture

// FavoriteThreshold is the horizontal displacement a drag must go beyond
// (leftward) to count as a favorite intent.
const FavoriteThreshold = -200.0

// DefaultCellScale is the number of points a single terminal cell counts for
// when a mouse drag is measured in cells.
const DefaultCellScale = 10.0

// Intent is the classified meaning of a drag.
type Intent int

const (
	// NoOp means the drag carries no action.
	NoOp Intent = iota
	// FavoriteIntent means the user asked to mark the item as favorite.
	FavoriteIntent
)

func (i Intent) String() string {
	switch i {
	case FavoriteIntent:
		return "favorite-intent"
	default:
		return "no-op"
	}
}

// Drag is the net displacement of a completed drag gesture.
type Drag struct {
	DX float64
	DY float64
}

// Classify maps a drag onto an intent. Only a leftward swipe strictly past
// FavoriteThreshold is a favorite intent.
func Classify(d Drag) Intent {
	if d.DX < FavoriteThreshold {
		return FavoriteIntent
	}
	return NoOp
}

// FromCells converts a horizontal mouse drag measured in terminal cells into
// points. A non-positive scale falls back to DefaultCellScale.
func FromCells(startX, endX int, scale float64) Drag {
	if scale <= 0 {
		scale = DefaultCellScale
	}
	return Drag{DX: float64(endX-startX) * scale}
}
