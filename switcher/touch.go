package switcher

import (
	"errors"
	"time"

	"github.com/lixenwraith/tabstack/anim"
	"github.com/lixenwraith/tabstack/audio"
	"github.com/lixenwraith/tabstack/engine"
	"github.com/lixenwraith/tabstack/event"
	"github.com/lixenwraith/tabstack/geom"
	"github.com/lixenwraith/tabstack/parameter"
)

// TouchKind is the phase of a touch event delivered by the host
type TouchKind int

const (
	TouchDown TouchKind = iota
	TouchMove
	TouchUp
)

// TouchEvent is one touch sample in surface coordinates
type TouchEvent struct {
	Kind  TouchKind
	Point geom.Point
	Time  time.Time
}

// HandleTouchEvent feeds one touch sample through the gesture engine and
// realizes whatever it changed. Ignored while the overview is hidden
func (s *Switcher) HandleTouchEvent(ev TouchEvent) {
	if !s.shown || s.model.IsEmpty() {
		return
	}
	// A press on the new-tab affordance claims the whole gesture; the
	// request fires only if the finger also lifts on it
	if ev.Kind == TouchDown {
		s.addArmed = s.surface.AddButtonContains(ev.Point)
		if s.addArmed {
			return
		}
	} else if s.addArmed {
		if ev.Kind == TouchUp {
			s.addArmed = false
			if s.surface.AddButtonContains(ev.Point) {
				s.sound(audio.SoundSnap)
				s.queue.Push(event.Event{Type: event.EventAddRequest, Timestamp: ev.Time})
				s.processEvents()
			}
		}
		return
	}
	// A session reset mid-gesture orphans the held finger; feeding its
	// moves into the fresh session would measure travel from the origin
	if s.gestureStale && ev.Kind != TouchDown {
		return
	}
	src := s.source()
	switch ev.Kind {
	case TouchDown:
		// A touch grabs whatever a running fling or relocate left on
		// screen; the animations stop where they are
		s.animator.CancelAll()
		s.processEvents()
		s.overshooting = false
		s.gestureStale = false
		src = s.source()
		s.sess = s.engine.TouchDown(s.sess, src, ev.Point, ev.Time)

	case TouchMove:
		var res engine.MoveResult
		s.sess, res = s.engine.TouchMove(s.sess, src, ev.Point, ev.Time)
		s.applyMove(res)
		s.persist(src)

	case TouchUp:
		var action engine.ReleaseAction
		s.sess, action = s.engine.TouchUp(s.sess, src, ev.Point, ev.Time)
		s.persist(src)
		s.applyRelease(src, action, ev.Time)
	}
	s.processEvents()
}

// applyMove realizes one movement result on the surface
func (s *Switcher) applyMove(res engine.MoveResult) {
	switch res.Kind {
	case engine.MoveDrag:
		for _, item := range res.Changed {
			if item.Tag.State == engine.StateHidden {
				s.releaseView(item.Tab)
				continue
			}
			s.ensureView(item)
			s.surface.SetPosition(geom.DraggingAxis, item, item.Tag.Position)
		}
		s.applyTilt(res)

	case engine.MoveSwipe:
		u := res.Swipe
		s.ensureView(u.Item)
		s.surface.SetPosition(geom.OrthogonalAxis, u.Item, u.Offset)
		s.surface.SetScale(u.Item, u.Scale)
		s.surface.SetAlpha(u.Item, u.Alpha)
	}
}

// applyTilt writes the overshoot rotation onto the visible cards. The
// sound fires once per overshoot episode, on the frame that enters it
func (s *Switcher) applyTilt(res engine.MoveResult) {
	if res.OvershootAngle != 0 {
		if !s.overshooting {
			s.overshooting = true
			s.sound(audio.SoundOvershoot)
		}
	} else if !s.overshooting {
		return
	} else if s.sess.State == engine.DragDrag {
		s.overshooting = false
	}
	for _, item := range res.Changed {
		if item.Tag.State == engine.StateHidden {
			continue
		}
		if errors.Is(s.surface.SetRotation(item, res.OvershootAngle), engine.ErrNotSupported) {
			return
		}
	}
}

// applyRelease starts whatever transition the engine committed to
func (s *Switcher) applyRelease(src *engine.ModelSource, action engine.ReleaseAction, now time.Time) {
	switch action.Kind {
	case engine.ReleaseTap:
		s.sound(audio.SoundSnap)
		s.queue.Push(event.Event{
			Type:      event.EventSelectRequest,
			Payload:   &event.TabPayload{TabID: action.Item.Tab.ID(), Index: action.Item.Index},
			Timestamp: now,
		})
		s.model.Select(action.Item.Index)
		s.HideSwitcher()

	case engine.ReleaseFling:
		s.startFling(src, action, now)

	case engine.ReleaseRevertOvershoot:
		s.startOvershootRevert(src, now)

	case engine.ReleaseSwipeCommit:
		s.startSwipeOut(action.Item, now)

	case engine.ReleaseSwipeSpringBack:
		s.startSpringBack(action.Item, now)
	}
}

// startFling continues the drag programmatically. The session survives
// the touch-up so each frame feeds its position delta through the same
// origin snapshot the finger was using
func (s *Switcher) startFling(src *engine.ModelSource, action engine.ReleaseAction, now time.Time) {
	distance := action.FlingDistance
	applied := 0.0
	s.animator.Start(now, anim.Animation{
		Key:      keyFling,
		Kind:     anim.KindFling,
		Duration: action.FlingDuration,
		Easing:   geom.EaseDecelerate,
		Apply: func(p float64) {
			target := distance * p
			delta := target - applied
			applied = target
			var res engine.MoveResult
			s.sess, res = s.engine.DragBy(s.sess, src, delta)
			s.applyMove(res)
			s.persist(src)
		},
		Done: func(completed bool) {
			s.sess = s.engine.EndFling(s.sess)
			if completed {
				s.queue.Push(event.Event{Type: event.EventFlingFinished, Timestamp: s.clock()})
			}
		},
	})
}

// startOvershootRevert eases every tilted card back to zero rotation
func (s *Switcher) startOvershootRevert(src *engine.ModelSource, now time.Time) {
	type tilted struct {
		item  *engine.TabItem
		angle float64
	}
	var cards []tilted
	for _, item := range src.Items() {
		if item.Tag.State == engine.StateHidden {
			continue
		}
		if _, ok := s.views.View(item.Tab); !ok {
			continue
		}
		if a := s.surface.Rotation(item); a != 0 {
			cards = append(cards, tilted{item: item, angle: a})
		}
	}
	if len(cards) == 0 {
		s.overshooting = false
		return
	}
	s.animator.Start(now, anim.Animation{
		Key:      keyOvershoot,
		Kind:     anim.KindRevertOvershoot,
		Duration: parameter.RevertOvershootDuration,
		Easing:   geom.EaseOut,
		Apply: func(p float64) {
			for _, c := range cards {
				_ = s.surface.SetRotation(c.item, c.angle*(1-p))
			}
		},
		Done: func(completed bool) {
			s.overshooting = false
			if completed {
				s.sound(audio.SoundSnap)
			}
		},
	})
}

// startSwipeOut slides the swiped card off the orthogonal edge, then asks
// for its removal
func (s *Switcher) startSwipeOut(item *engine.TabItem, now time.Time) {
	view, ok := s.views.View(item.Tab)
	if !ok {
		return
	}
	from := view.OrthOffset
	target := s.surface.ContainerSize(geom.OrthogonalAxis, true)
	if from < 0 {
		target = -target
	}
	fromAlpha := view.Alpha()
	tab := item.Tab
	index := item.Index
	s.sound(audio.SoundSwipe)
	s.animator.Start(now, anim.Animation{
		Key:      tab,
		Kind:     anim.KindSwipeOut,
		Duration: parameter.SwipeOutDuration,
		Easing:   geom.EaseIn,
		Apply: func(p float64) {
			s.surface.SetPosition(geom.OrthogonalAxis, item, geom.Lerp(from, target, p))
			s.surface.SetAlpha(item, geom.Lerp(fromAlpha, 0, p))
		},
		Done: func(completed bool) {
			if completed {
				s.queue.Push(event.Event{
					Type:      event.EventCloseRequest,
					Payload:   &event.TabPayload{TabID: tab.ID(), Index: index},
					Timestamp: s.clock(),
				})
			}
		},
	})
}

// startSpringBack restores an uncommitted swipe to its resting transform
func (s *Switcher) startSpringBack(item *engine.TabItem, now time.Time) {
	view, ok := s.views.View(item.Tab)
	if !ok {
		return
	}
	fromOffset := view.OrthOffset
	fromScale := view.Scale()
	fromAlpha := view.Alpha()
	s.animator.Start(now, anim.Animation{
		Key:      item.Tab,
		Kind:     anim.KindSpringBack,
		Duration: parameter.SpringBackDuration,
		Easing:   geom.EaseOut,
		Apply: func(p float64) {
			s.surface.SetPosition(geom.OrthogonalAxis, item, geom.Lerp(fromOffset, 0, p))
			s.surface.SetScale(item, geom.Lerp(fromScale, 1, p))
			s.surface.SetAlpha(item, geom.Lerp(fromAlpha, 1, p))
		},
		Done: func(completed bool) {
			if completed {
				s.sound(audio.SoundSnap)
			}
		},
	})
}
