package engine

import (
	"github.com/lixenwraith/tabstack/geom"
	"github.com/lixenwraith/tabstack/model"
)

// Engine computes positions and states. It holds configuration and
// collaborator boundaries only; per-gesture state travels in and out of
// every call as a DragSession value, so there is no hidden cross-call
// state to reset
type Engine struct {
	caps  Capabilities
	model *model.TabModel
	arith Arithmetics
}

// New creates an engine over the given model and rendering boundary
func New(caps Capabilities, m *model.TabModel, arith Arithmetics) *Engine {
	if m == nil {
		panic("engine: nil model")
	}
	if arith == nil {
		panic("engine: nil arithmetics")
	}
	if caps.StackedTabCount < 1 {
		panic("engine: stacked tab count must be at least 1")
	}
	return &Engine{caps: caps, model: m, arith: arith}
}

// Capabilities returns the layout variant configuration
func (e *Engine) Capabilities() Capabilities { return e.caps }

// Model returns the tab model the engine reads from
func (e *Engine) Model() *model.TabModel { return e.model }

// availableSpace is the drag-axis extent tabs may occupy
func (e *Engine) availableSpace() float64 {
	return e.arith.ContainerSize(geom.DraggingAxis, false)
}

// MaxTabSpacing returns the ideal spacing between neighboring floating
// tabs for count tabs. Spacing is a function of count: fewer tabs get
// proportionally more room, following the breakpoint table
func (e *Engine) MaxTabSpacing(count int) float64 {
	if count < 2 {
		// No spacing is defined for zero or one tab
		return 0
	}
	return fraction(e.caps.SpacingBreakpoints, count) * e.availableSpace()
}

// MinTabSpacing returns the compression floor for count tabs
func (e *Engine) MinTabSpacing(count int) float64 {
	return e.MaxTabSpacing(count) * e.caps.MinSpacingRatio
}

// AttachedPosition returns the drag-axis coordinate at which the selected
// tab attaches before stack compression begins. Recomputed whenever the
// tab count changes; never persisted
func (e *Engine) AttachedPosition(count int) float64 {
	return fraction(e.caps.AttachedBreakpoints, count) * e.availableSpace()
}
