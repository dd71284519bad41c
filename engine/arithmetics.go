package engine

import (
	"errors"

	"github.com/lixenwraith/tabstack/geom"
)

// ErrNotSupported signals an axis operation a layout variant cannot
// perform, such as rotating around the orthogonal pivot on a surface
// without tilt support. Callers relying on the capability must fail
// visibly rather than silently skip the effect
var ErrNotSupported = errors.New("engine: operation not supported by this layout variant")

// Arithmetics is the axis-abstracted boundary to the rendering surface.
// The same engine algorithm serves portrait and landscape because every
// accessor is parameterized by the logical axis; the surface maps it to a
// physical screen axis.
//
// All setters mutate the externally owned visual handle and hold no state
// here. Requesting geometry for an item with no realized visual handle is
// a caller bug and panics
type Arithmetics interface {
	// ContainerSize returns the extent of the tab container along axis,
	// minus model padding when includePadding is false
	ContainerSize(axis geom.Axis, includePadding bool) float64

	// TouchPosition projects a touch point onto axis
	TouchPosition(axis geom.Axis, p geom.Point) float64

	Position(axis geom.Axis, item *TabItem) float64
	SetPosition(axis geom.Axis, item *TabItem, position float64)

	Size(axis geom.Axis, item *TabItem) float64

	Scale(item *TabItem) float64
	SetScale(item *TabItem, scale float64)

	Alpha(item *TabItem) float64
	SetAlpha(item *TabItem, alpha float64)

	Pivot(axis geom.Axis, item *TabItem) float64
	SetPivot(axis geom.Axis, item *TabItem, pivot float64) error

	Rotation(item *TabItem) float64
	SetRotation(item *TabItem, angle float64) error
}
