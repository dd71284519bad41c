package geom

import "fmt"

// Axis identifies a logical axis of the switcher layout.
// The dragging axis is the one tabs travel along; the orthogonal axis is
// used for swipe-to-close. The mapping to physical screen axes depends on
// the layout variant (portrait drags vertically, landscape horizontally).
type Axis int

const (
	DraggingAxis Axis = iota
	OrthogonalAxis
)

func (a Axis) String() string {
	switch a {
	case DraggingAxis:
		return "dragging"
	case OrthogonalAxis:
		return "orthogonal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Valid reports whether a is one of the two defined axes
func (a Axis) Valid() bool {
	return a == DraggingAxis || a == OrthogonalAxis
}

// Point is a position in physical screen coordinates
type Point struct {
	X, Y float64
}

// Size is an extent in physical screen coordinates
type Size struct {
	W, H float64
}
