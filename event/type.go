package event

// Type identifies a switcher event
type Type int

const (
	// EventAnimationDone signals one animation reached its end state
	// Trigger: Animator tick completing an animation
	// Consumer: switcher loop | Payload: *AnimationDonePayload
	EventAnimationDone Type = iota

	// EventCloseRequest asks the host to remove a tab after a committed swipe
	// Trigger: swipe-out animation completion
	// Consumer: switcher loop | Payload: *TabPayload
	EventCloseRequest

	// EventSelectRequest asks the host to select a tapped tab
	// Trigger: tap release on a tab in the shown switcher
	// Consumer: switcher loop | Payload: *TabPayload
	EventSelectRequest

	// EventSwitcherShown signals the show-switcher transition finished
	// Trigger: last show animation completion
	// Consumer: switcher loop, host callbacks | Payload: nil
	EventSwitcherShown

	// EventSwitcherHidden signals the hide-switcher transition finished
	// Trigger: last hide animation completion
	// Consumer: switcher loop, host callbacks | Payload: nil
	EventSwitcherHidden

	// EventViewReleasable signals a tab's view may return to the recycler
	// Trigger: animation into the hidden state completing
	// Consumer: switcher loop | Payload: *TabPayload
	EventViewReleasable

	// EventFlingFinished signals a fling exhausted its distance
	// Trigger: fling animation completion
	// Consumer: switcher loop | Payload: nil
	EventFlingFinished

	// EventSoundRequest requests gesture feedback audio
	// Trigger: snap, swipe-out, overshoot
	// Consumer: audio service | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventAddRequest asks the host to create a new tab
	// Trigger: tap on the new-tab affordance in the shown switcher
	// Consumer: host callbacks | Payload: nil
	EventAddRequest
)
