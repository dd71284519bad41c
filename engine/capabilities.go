package engine

import (
	"github.com/lixenwraith/tabstack/parameter"
)

// SpacingBreakpoint maps a tab count ceiling to the fraction of the
// container each tab spacing may occupy. Breakpoints are matched in order;
// the last entry serves all larger counts
type SpacingBreakpoint struct {
	MaxCount int // 0 = catch-all
	Fraction float64
}

// Capabilities parameterizes the engine for one layout variant. Device
// and orientation differences are data here, not subclasses: portrait,
// landscape and tablet all run the same algorithm with different values
type Capabilities struct {
	// SpacingBreakpoints is the max-spacing table, fraction of available
	// drag-axis space per tab count
	SpacingBreakpoints []SpacingBreakpoint

	// AttachedBreakpoints positions the selected tab before compression
	AttachedBreakpoints []SpacingBreakpoint

	// MinSpacingRatio scales max spacing down to the compression floor
	MinSpacingRatio float64

	// StackedTabCount is the pile capacity at each edge
	StackedTabCount int

	// StackedTabSpacing is the visible offset between piled tabs
	StackedTabSpacing float64

	// MaxOvershootAngle is the tilt ceiling in degrees
	MaxOvershootAngle float64

	// MaxOvershootDistance is the drag travel at which tilt peaks
	MaxOvershootDistance float64

	// TiltSupported gates rotation effects; surfaces that cannot tilt
	// reject SetRotation with ErrNotSupported and overshoot degrades to
	// position clamping only
	TiltSupported bool
}

// DefaultCapabilities returns the baseline variant shared by portrait and
// landscape phone layouts; the axis mapping lives in the surface
func DefaultCapabilities() Capabilities {
	return Capabilities{
		SpacingBreakpoints: []SpacingBreakpoint{
			{MaxCount: 2, Fraction: parameter.MaxSpacingFraction2},
			{MaxCount: 3, Fraction: parameter.MaxSpacingFraction3},
			{MaxCount: 4, Fraction: parameter.MaxSpacingFraction4},
			{MaxCount: 0, Fraction: parameter.MaxSpacingFraction5},
		},
		AttachedBreakpoints: []SpacingBreakpoint{
			{MaxCount: 3, Fraction: parameter.AttachedFraction3},
			{MaxCount: 4, Fraction: parameter.AttachedFraction4},
			{MaxCount: 0, Fraction: parameter.AttachedFraction5},
		},
		MinSpacingRatio:      parameter.MinSpacingRatio,
		StackedTabCount:      parameter.StackedTabCount,
		StackedTabSpacing:    parameter.StackedTabSpacing,
		MaxOvershootAngle:    parameter.MaxOvershootAngle,
		MaxOvershootDistance: parameter.MaxOvershootDistance,
		TiltSupported:        true,
	}
}

// TabletCapabilities widens the piles and disables tilt; tablet surfaces
// render both piles fully visible instead of tilting on overshoot
func TabletCapabilities() Capabilities {
	caps := DefaultCapabilities()
	caps.StackedTabCount = parameter.StackedTabCount + 2
	caps.TiltSupported = false
	return caps
}

// fraction resolves a breakpoint table for count
func fraction(table []SpacingBreakpoint, count int) float64 {
	for _, bp := range table {
		if bp.MaxCount == 0 || count <= bp.MaxCount {
			return bp.Fraction
		}
	}
	return table[len(table)-1].Fraction
}
