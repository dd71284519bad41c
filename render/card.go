package render

import (
	"github.com/lixenwraith/tabstack/model"
)

// CardView is the visual handle for one tab on the terminal surface. It
// carries the transform the engine and animator write through the
// Arithmetics boundary; Draw reads it back when compositing the frame.
// All values live in container units along logical axes; the surface maps
// them to screen cells at draw time
type CardView struct {
	Tab *model.Tab

	// DragPos mirrors the tab's engine position along the dragging axis.
	// OrthOffset is the swipe displacement along the orthogonal axis
	DragPos    float64
	OrthOffset float64

	// Extent per logical axis
	DragSize float64
	OrthSize float64

	scale    float64
	alpha    float64
	rotation float64

	// pivot per logical axis, fraction of the card extent
	pivotDrag float64
	pivotOrth float64
}

// NewCardView creates a fully opaque, unscaled view for tab
func NewCardView(tab *model.Tab) *CardView {
	return &CardView{Tab: tab, scale: 1, alpha: 1, pivotOrth: 0.5}
}

func (v *CardView) Scale() float64 { return v.scale }

func (v *CardView) SetScale(scale float64) { v.scale = scale }

func (v *CardView) Alpha() float64 { return v.alpha }

func (v *CardView) SetAlpha(alpha float64) { v.alpha = alpha }

func (v *CardView) Rotation() float64 { return v.rotation }

// Reset restores the neutral transform for recycling to another tab
func (v *CardView) Reset(tab *model.Tab) {
	v.Tab = tab
	v.OrthOffset = 0
	v.scale = 1
	v.alpha = 1
	v.rotation = 0
	v.pivotDrag = 0
	v.pivotOrth = 0.5
}
