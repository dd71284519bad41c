package engine

import (
	"fmt"

	"github.com/lixenwraith/tabstack/model"
)

// State is the discrete visual state of a tab. Exactly one holds at a time
type State int

const (
	// StateHidden tabs are off screen; their views may be recycled
	StateHidden State = iota

	// StateStackedStart tabs are compressed into the leading edge pile
	StateStackedStart

	// StateStackedStartAtop marks the single tab rendered on top of the
	// leading pile, adjacent to the floating region
	StateStackedStartAtop

	// StateFloating tabs occupy a freely positioned, fully visible slot
	StateFloating

	// StateStackedEnd tabs are compressed into the trailing edge pile
	StateStackedEnd
)

func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateStackedStart:
		return "stacked-start"
	case StateStackedStartAtop:
		return "stacked-start-atop"
	case StateFloating:
		return "floating"
	case StateStackedEnd:
		return "stacked-end"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stacked reports whether the tab sits in either edge pile
func (s State) Stacked() bool {
	return s == StateStackedStart || s == StateStackedStartAtop || s == StateStackedEnd
}

// Tag is the per-tab layout state. It is a plain value: copying it is the
// clone step, so a pass can preserve the prior tag for comparison while
// producing a new one to apply after an animation, with no aliasing
type Tag struct {
	// Position is the offset along the dragging axis from the leading edge
	Position float64

	// State is the derived discrete state
	State State

	// Closing is true while a swipe-to-remove animation is in flight
	Closing bool
}

// TabItem ties a tab to its index in the ordered collection and its tag.
// Items are constructed transiently per algorithm pass and never persist
// beyond a single calculation
type TabItem struct {
	Index int
	Tab   *model.Tab
	Tag   Tag
}

func (it *TabItem) String() string {
	return fmt.Sprintf("item[%d %q pos=%.2f %s]", it.Index, it.Tab.Title(), it.Tag.Position, it.Tag.State)
}
