package parameter

// Drag gesture thresholds, in container units and units/second
const (
	// DragThreshold is the minimum travel along the dragging axis before a
	// touch is recognized as a drag rather than a tap
	DragThreshold = 1.0

	// SwipeThreshold is the minimum travel along the orthogonal axis before
	// a touch is recognized as a swipe
	SwipeThreshold = 2.0

	// SwipeCommitFraction of the container's orthogonal extent a swipe must
	// cross for release to commit to closing the tab
	SwipeCommitFraction = 0.35

	// SwipeCommitVelocity closes the tab on release regardless of distance
	SwipeCommitVelocity = 40.0

	// SwipedAlphaMin is the opacity a tab fades toward while swiped out
	SwipedAlphaMin = 0.25

	// SwipedScaleMin is the scale a tab shrinks toward while swiped out
	SwipedScaleMin = 0.85
)

// Fling
const (
	// FlingVelocityThreshold is the minimum release velocity along the
	// dragging axis that continues the drag as a fling
	FlingVelocityThreshold = 15.0

	// FlingDistanceFactor converts release velocity to fling travel
	FlingDistanceFactor = 0.4

	// FlingDurationFactorMs converts release velocity to fling duration in
	// milliseconds, capped by FlingDurationMaxMs
	FlingDurationFactorMs = 8.0
	FlingDurationMaxMs    = 600.0
)

// Overshoot
const (
	// MaxOvershootAngle is the largest tilt, in degrees, applied to edge
	// tabs while dragging past the legal bound
	MaxOvershootAngle = 12.0

	// MaxOvershootDistance is the drag travel past the bound at which the
	// tilt reaches MaxOvershootAngle
	MaxOvershootDistance = 12.0
)
