// Package anim runs property animations as tasks on the switcher's
// single-threaded event loop. An animation is a function of eased
// progress; completion is reported as an event on the shared queue, so
// dependent effects are sequenced by queue order instead of nested
// listener objects. Starting an animation for a key that already has one
// supersedes the old animation: its callbacks become stale and no-op.
package anim

import (
	"time"

	"github.com/lixenwraith/tabstack/event"
	"github.com/lixenwraith/tabstack/geom"
)

// Kind discriminates the transition an animation performs; duration and
// easing policy is chosen per kind by the orchestrator
type Kind int

const (
	KindShowSwitcher Kind = iota
	KindHideSwitcher
	KindRelocate
	KindSwipeOut
	KindSpringBack
	KindRevertOvershoot
	KindFling
	KindReveal
)

func (k Kind) String() string {
	switch k {
	case KindShowSwitcher:
		return "show-switcher"
	case KindHideSwitcher:
		return "hide-switcher"
	case KindRelocate:
		return "relocate"
	case KindSwipeOut:
		return "swipe-out"
	case KindSpringBack:
		return "spring-back"
	case KindRevertOvershoot:
		return "revert-overshoot"
	case KindFling:
		return "fling"
	case KindReveal:
		return "reveal"
	default:
		return "unknown"
	}
}

// Animation describes one running transition. Apply receives eased
// progress in [0, 1] once per tick; Done fires exactly once when the
// animation completes or is cancelled, never when it is superseded after
// cancellation already fired
type Animation struct {
	// Key identifies the animated subject; at most one animation runs per
	// key, so two animations can never fight over the same tab
	Key any

	Kind     Kind
	Duration time.Duration
	Delay    time.Duration
	Easing   geom.Easing

	// Apply writes the interpolated property values
	Apply func(progress float64)

	// Done receives true on natural completion, false on cancellation
	Done func(completed bool)

	start      time.Time // set by the animator, includes delay
	generation uint64
}

// Animator owns every running animation. Single-threaded: Start, Cancel
// and Tick must all be called from the switcher loop
type Animator struct {
	queue      *event.Queue
	running    map[any]*Animation
	order      []any // stable tick order
	generation uint64

	// now is the latest time Start or Tick saw; completion events are
	// stamped with it so they carry the moment the animation ended, not
	// the moment it was scheduled
	now time.Time
}

// NewAnimator creates an animator reporting completions to queue
func NewAnimator(queue *event.Queue) *Animator {
	if queue == nil {
		panic("anim: nil event queue")
	}
	return &Animator{queue: queue, running: make(map[any]*Animation)}
}

// Start schedules an animation, superseding any running one for the same
// key. The superseded animation's Done fires with completed=false and its
// pending completion event is never emitted
func (a *Animator) Start(now time.Time, anim Animation) {
	if anim.Apply == nil {
		panic("anim: animation without Apply")
	}
	if anim.Easing == nil {
		anim.Easing = geom.EaseInOut
	}
	if anim.Duration <= 0 {
		anim.Duration = time.Millisecond
	}
	a.now = now

	if old, ok := a.running[anim.Key]; ok {
		a.finish(old, false)
		delete(a.running, anim.Key)
		a.dropFromOrder(anim.Key)
	}

	a.generation++
	run := anim
	run.generation = a.generation
	run.start = now.Add(anim.Delay)
	a.running[anim.Key] = &run
	a.order = append(a.order, anim.Key)
}

// Cancel stops the animation for key without applying its end state. The
// tag the caller owns must already be consistent before Cancel returns;
// the animator only guarantees the stale completion never fires
func (a *Animator) Cancel(key any) {
	if run, ok := a.running[key]; ok {
		a.finish(run, false)
		delete(a.running, key)
		a.dropFromOrder(key)
	}
}

// CancelAll stops everything, used when a touch-down or structural change
// interrupts in-flight transitions
func (a *Animator) CancelAll() {
	for key, run := range a.running {
		a.finish(run, false)
		delete(a.running, key)
	}
	a.order = a.order[:0]
}

// Running reports whether an animation exists for key
func (a *Animator) Running(key any) bool {
	_, ok := a.running[key]
	return ok
}

// Idle reports whether no animations are running
func (a *Animator) Idle() bool {
	return len(a.running) == 0
}

// Tick advances every running animation to now, applying eased progress
// and emitting completion events for those that finished
func (a *Animator) Tick(now time.Time) {
	a.now = now
	if len(a.running) == 0 {
		return
	}
	// Iterate a snapshot of the order: Apply callbacks may start or
	// cancel animations re-entrantly
	keys := make([]any, len(a.order))
	copy(keys, a.order)

	for _, key := range keys {
		run, ok := a.running[key]
		if !ok {
			continue
		}
		generation := run.generation

		elapsed := now.Sub(run.start)
		if elapsed < 0 {
			continue // still delayed
		}
		t := float64(elapsed) / float64(run.Duration)
		if t >= 1 {
			run.Apply(run.Easing(1))
			// Apply may have superseded this run; only finish if it is
			// still the registered animation
			if cur, ok := a.running[key]; ok && cur.generation == generation {
				delete(a.running, key)
				a.dropFromOrder(key)
				a.finish(run, true)
			}
			continue
		}
		run.Apply(run.Easing(t))
	}
}

// finish fires Done once and emits the completion event
func (a *Animator) finish(run *Animation, completed bool) {
	if run.Done != nil {
		done := run.Done
		run.Done = nil
		done(completed)
	}
	a.queue.Push(event.Event{
		Type: event.EventAnimationDone,
		Payload: &event.AnimationDonePayload{
			Key:       run.Key,
			Kind:      int(run.Kind),
			Completed: completed,
		},
		Timestamp: a.now,
	})
}

func (a *Animator) dropFromOrder(key any) {
	for i, k := range a.order {
		if k == key {
			a.order = append(a.order[:i], a.order[i+1:]...)
			return
		}
	}
}
