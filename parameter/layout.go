package parameter

// Tab spacing as a fraction of the container size along the dragging axis.
// Fewer tabs get proportionally more room
const (
	MaxSpacingFraction2 = 0.66 // count <= 2
	MaxSpacingFraction3 = 0.33 // count == 3
	MaxSpacingFraction4 = 0.30 // count == 4
	MaxSpacingFraction5 = 0.25 // count >= 5

	// MinSpacingRatio scales max spacing down to the floor used by the
	// relocate compression cascade
	MinSpacingRatio = 0.375
)

// Attached position as a fraction of the container size: where the selected
// tab sits before stack compression begins
const (
	AttachedFraction3 = 0.66 // count <= 3
	AttachedFraction4 = 0.60 // count == 4
	AttachedFraction5 = 0.50 // count >= 5
)

// Edge stacks
const (
	// StackedTabCount is how many tabs may pile up at each edge before
	// further tabs are hidden
	StackedTabCount = 3

	// StackedTabSpacing is the visible offset between successive tabs in
	// an edge pile, in container units (terminal cells on the tcell surface)
	StackedTabSpacing = 1.0
)
