package event

import "time"

// Event is one entry of the switcher event queue
type Event struct {
	Type      Type
	Payload   any
	Timestamp time.Time
}

// TabPayload carries the tab a request concerns, as an opaque identifier
// plus its index at emission time
type TabPayload struct {
	TabID uint64
	Index int
}

// AnimationDonePayload reports a completed animation
type AnimationDonePayload struct {
	// Key is the animation's identity, usually a tab ID
	Key any

	// Kind discriminates the transition kind the animator ran; values are
	// defined by the anim package
	Kind int

	// Completed is false when the animation was cancelled or superseded
	Completed bool
}

// SoundRequestPayload names the feedback sound to play
type SoundRequestPayload struct {
	Sound int
}
