package parameter

import "time"

// Animation timing per transition kind
const (
	ShowSwitcherDuration    = 300 * time.Millisecond
	HideSwitcherDuration    = 260 * time.Millisecond
	RelocateDuration        = 220 * time.Millisecond
	SwipeOutDuration        = 180 * time.Millisecond
	SpringBackDuration      = 160 * time.Millisecond
	RevertOvershootDuration = 200 * time.Millisecond
	RevealDuration          = 240 * time.Millisecond

	// RelocateStagger delays each successive tab in a relocate cascade so
	// the compaction reads as a wave rather than a block move
	RelocateStagger = 20 * time.Millisecond
)

// RevealStartScale is the scale a newly added tab's card grows from
const RevealStartScale = 0.85

// Animator tick interval; one frame of every running animation per tick
const AnimatorTickInterval = 16 * time.Millisecond
