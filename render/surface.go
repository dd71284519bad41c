package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tabstack/engine"
	"github.com/lixenwraith/tabstack/geom"
	"github.com/lixenwraith/tabstack/model"
)

// Orientation selects which screen axis tabs drag along
type Orientation int

const (
	// Portrait drags vertically: dragging axis = rows, orthogonal = columns
	Portrait Orientation = iota

	// Landscape drags horizontally
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Surface is the tcell realization of the engine's Arithmetics boundary.
// It owns one CardView per visible tab, keyed by tab ID; the engine and
// animator write transforms through the interface and Draw composites the
// frame. Not safe for concurrent use; the switcher loop is the only caller
type Surface struct {
	screen      tcell.Screen
	orientation Orientation
	theme       Theme
	tilt        bool
	model       *model.TabModel

	views     map[uint64]*CardView
	decorator Decorator
}

// Decorator draws host content inside a card body. The region is the
// card interior in screen cells, already clipped to the visible strip
type Decorator interface {
	DecorateCard(screen tcell.Screen, tab *model.Tab, x, y, w, h int)
}

// NewSurface creates a surface over screen for the given layout variant
func NewSurface(screen tcell.Screen, orientation Orientation, theme Theme, tilt bool, m *model.TabModel) *Surface {
	if screen == nil {
		panic("render: nil screen")
	}
	if m == nil {
		panic("render: nil model")
	}
	return &Surface{
		screen:      screen,
		orientation: orientation,
		theme:       theme,
		tilt:        tilt,
		model:       m,
		views:       make(map[uint64]*CardView),
	}
}

// Orientation returns the layout variant of this surface
func (s *Surface) Orientation() Orientation { return s.orientation }

// SetDecorator installs the host content renderer, nil to clear
func (s *Surface) SetDecorator(d Decorator) { s.decorator = d }

// Bind attaches view to tab so the engine can address it. Sizes the card
// to the current container extents
func (s *Surface) Bind(tab *model.Tab, view *CardView) {
	view.Reset(tab)
	view.DragSize = s.ContainerSize(geom.DraggingAxis, true)
	view.OrthSize = s.ContainerSize(geom.OrthogonalAxis, true)
	s.views[tab.ID()] = view
}

// Unbind detaches the view from tab, returning it for pooling
func (s *Surface) Unbind(tab *model.Tab) *CardView {
	view := s.views[tab.ID()]
	delete(s.views, tab.ID())
	return view
}

// View returns the bound view for tab, nil when none
func (s *Surface) View(tab *model.Tab) *CardView {
	return s.views[tab.ID()]
}

// viewOf resolves an item's view. A missing view is a caller bug: the
// engine only addresses tabs the orchestrator has realized
func (s *Surface) viewOf(item *engine.TabItem) *CardView {
	view := s.views[item.Tab.ID()]
	if view == nil {
		panic(fmt.Sprintf("render: no view bound for tab %d (%q)", item.Tab.ID(), item.Tab.Title()))
	}
	return view
}

// ContainerSize implements engine.Arithmetics
func (s *Surface) ContainerSize(axis geom.Axis, includePadding bool) float64 {
	w, h := s.screen.Size()
	var size float64
	if s.dragIsVertical() == (axis == geom.DraggingAxis) {
		size = float64(h)
	} else {
		size = float64(w)
	}
	if !includePadding && axis == geom.DraggingAxis {
		p := s.model.Padding()
		size -= p.Start + p.End
		if size < 0 {
			size = 0
		}
	}
	return size
}

// TouchPosition implements engine.Arithmetics: projects a screen point
// onto a logical axis, drag coordinates relative to the padded edge
func (s *Surface) TouchPosition(axis geom.Axis, p geom.Point) float64 {
	var v float64
	if s.dragIsVertical() == (axis == geom.DraggingAxis) {
		v = p.Y
	} else {
		v = p.X
	}
	if axis == geom.DraggingAxis {
		v -= s.model.Padding().Start
	}
	return v
}

func (s *Surface) Position(axis geom.Axis, item *engine.TabItem) float64 {
	view := s.viewOf(item)
	if axis == geom.DraggingAxis {
		return view.DragPos
	}
	return view.OrthOffset
}

func (s *Surface) SetPosition(axis geom.Axis, item *engine.TabItem, position float64) {
	view := s.viewOf(item)
	if axis == geom.DraggingAxis {
		view.DragPos = position
	} else {
		view.OrthOffset = position
	}
}

func (s *Surface) Size(axis geom.Axis, item *engine.TabItem) float64 {
	view := s.viewOf(item)
	if axis == geom.DraggingAxis {
		return view.DragSize
	}
	return view.OrthSize
}

func (s *Surface) Scale(item *engine.TabItem) float64 { return s.viewOf(item).Scale() }

func (s *Surface) SetScale(item *engine.TabItem, scale float64) {
	s.viewOf(item).SetScale(scale)
}

func (s *Surface) Alpha(item *engine.TabItem) float64 { return s.viewOf(item).Alpha() }

func (s *Surface) SetAlpha(item *engine.TabItem, alpha float64) {
	s.viewOf(item).SetAlpha(alpha)
}

func (s *Surface) Pivot(axis geom.Axis, item *engine.TabItem) float64 {
	view := s.viewOf(item)
	if axis == geom.DraggingAxis {
		return view.pivotDrag
	}
	return view.pivotOrth
}

func (s *Surface) SetPivot(axis geom.Axis, item *engine.TabItem, pivot float64) error {
	if !s.tilt {
		return engine.ErrNotSupported
	}
	view := s.viewOf(item)
	if axis == geom.DraggingAxis {
		view.pivotDrag = pivot
	} else {
		view.pivotOrth = pivot
	}
	return nil
}

func (s *Surface) Rotation(item *engine.TabItem) float64 { return s.viewOf(item).rotation }

func (s *Surface) SetRotation(item *engine.TabItem, angle float64) error {
	if !s.tilt {
		return engine.ErrNotSupported
	}
	s.viewOf(item).rotation = angle
	return nil
}

func (s *Surface) dragIsVertical() bool { return s.orientation == Portrait }

var _ engine.Arithmetics = (*Surface)(nil)
