package switcher

import (
	"time"

	"github.com/lixenwraith/tabstack/anim"
	"github.com/lixenwraith/tabstack/audio"
	"github.com/lixenwraith/tabstack/engine"
	"github.com/lixenwraith/tabstack/event"
	"github.com/lixenwraith/tabstack/geom"
	"github.com/lixenwraith/tabstack/model"
	"github.com/lixenwraith/tabstack/parameter"
)

// The switcher listens to its own model so that host-driven mutations
// (add, remove, select) animate the same way gesture-driven ones do.

func (s *Switcher) OnTabAdded(index int, tab *model.Tab, selectionChanged bool) {
	s.resetSession()
	if !s.shown {
		s.tags[tab] = engine.Tag{}
		return
	}
	now := s.clock()
	s.animator.CancelAll()

	src := s.source()
	reveal, relocations := s.engine.RelocateOnAdd(src, index)
	s.persist(src)
	s.startRelocations(relocations, now)

	item := src.Item(index)
	if reveal.State == engine.StateHidden {
		return
	}
	view := s.ensureView(item)
	s.surface.SetPosition(geom.DraggingAxis, item, reveal.Position)
	view.SetAlpha(0)
	view.SetScale(parameter.RevealStartScale)
	s.animator.Start(now, anim.Animation{
		Key:      tab,
		Kind:     anim.KindReveal,
		Duration: parameter.RevealDuration,
		Easing:   geom.EaseOut,
		Apply: func(p float64) {
			s.surface.SetAlpha(item, p)
			s.surface.SetScale(item, geom.Lerp(parameter.RevealStartScale, 1, p))
		},
		Done: func(completed bool) {
			if completed {
				s.sound(audio.SoundSnap)
			}
		},
	})
}

func (s *Switcher) OnTabRemoved(index int, tab *model.Tab, selected *model.Tab, selectionChanged bool) {
	s.resetSession()
	removedTag, tracked := s.tags[tab]
	delete(s.tags, tab)
	s.releaseView(tab)
	if !s.shown {
		return
	}
	if s.model.IsEmpty() {
		s.dismissEmpty()
		return
	}
	now := s.clock()
	if !tracked {
		s.OnGlobalLayout()
		return
	}
	src := s.source()
	relocations := s.engine.RelocateOnRemove(src, index, removedTag)
	s.persist(src)
	s.startRelocations(relocations, now)
}

func (s *Switcher) OnAllTabsAdded(tabs []*model.Tab) {
	s.resetSession()
	for _, tab := range tabs {
		s.tags[tab] = engine.Tag{}
	}
	if s.shown {
		s.OnGlobalLayout()
	}
}

func (s *Switcher) OnAllTabsRemoved(tabs []*model.Tab) {
	s.resetSession()
	for _, tab := range tabs {
		delete(s.tags, tab)
		s.releaseView(tab)
	}
	if s.shown {
		s.dismissEmpty()
	}
}

func (s *Switcher) OnSelectionChanged(previousIndex, newIndex int, tab *model.Tab) {
	s.resetSession()
	if !s.shown {
		return
	}
	now := s.clock()
	src := s.source()
	relocations := s.engine.RelocateOnSelect(src, newIndex)
	s.persist(src)
	s.startRelocations(relocations, now)
}

// resetSession discards the gesture session. Structural and selection
// changes invalidate its origin snapshot and its spacing fields, and a
// finger that is still down belongs to the discarded session: its
// samples are dropped until it lifts and touches down again
func (s *Switcher) resetSession() {
	s.sess = s.engine.NewSession(s.dragThreshold)
	s.gestureStale = true
}

// dismissEmpty drops out of the overview without a transition when the
// last tab disappears
func (s *Switcher) dismissEmpty() {
	s.shown = false
	s.animator.CancelAll()
	s.queue.Push(event.Event{Type: event.EventSwitcherHidden, Timestamp: s.clock()})
}

// startRelocations animates each relocated tab from its previous tag to
// its new one, staggered so the cascade reads as a wave. Tabs entering
// the hidden state release their views on completion; tabs leaving it
// are inflated at their previous bound first
func (s *Switcher) startRelocations(relocations []engine.Relocation, now time.Time) {
	delay := time.Duration(0)
	for _, r := range relocations {
		if r.Tag.State == engine.StateHidden && r.PreviousTag.State == engine.StateHidden {
			s.tags[r.Item.Tab] = r.Tag
			continue
		}
		item := r.Item
		from := r.PreviousTag.Position
		to := r.Tag.Position
		hides := r.Tag.State == engine.StateHidden
		s.ensureView(item)
		if r.PreviousTag.State == engine.StateHidden {
			s.surface.SetPosition(geom.DraggingAxis, item, from)
		}
		s.animator.Start(now, anim.Animation{
			Key:      item.Tab,
			Kind:     anim.KindRelocate,
			Duration: parameter.RelocateDuration,
			Delay:    delay,
			Easing:   geom.EaseInOut,
			Apply: func(p float64) {
				s.surface.SetPosition(geom.DraggingAxis, item, geom.Lerp(from, to, p))
			},
			Done: func(completed bool) {
				if completed && hides {
					s.queue.Push(event.Event{
						Type:      event.EventViewReleasable,
						Payload:   &event.TabPayload{TabID: item.Tab.ID(), Index: item.Index},
						Timestamp: s.clock(),
					})
				}
			},
		})
		delay += parameter.RelocateStagger
	}
}
