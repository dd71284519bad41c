package switcher

import (
	"github.com/lixenwraith/tabstack/anim"
	"github.com/lixenwraith/tabstack/audio"
	"github.com/lixenwraith/tabstack/engine"
	"github.com/lixenwraith/tabstack/event"
	"github.com/lixenwraith/tabstack/geom"
	"github.com/lixenwraith/tabstack/parameter"
)

// cardSpan is one card's travel within a whole-strip transition
type cardSpan struct {
	item     *engine.TabItem
	from, to float64
}

// ShowSwitcher brings the overview on screen: the selected card and its
// predecessors enter from the leading edge, successors from the trailing
// edge, settling into the reference layout
func (s *Switcher) ShowSwitcher() {
	if s.shown || s.model.IsEmpty() {
		return
	}
	s.shown = true
	s.animator.CancelAll()
	s.sess = s.engine.NewSession(s.dragThreshold)
	now := s.clock()

	src := s.source()
	selected := s.model.SelectedIndex()
	items := s.engine.ComputeReferenceLayout(src, selected)
	s.persist(src)

	trailing := s.surface.ContainerSize(geom.DraggingAxis, false)
	var spans []cardSpan
	for _, item := range items {
		if item.Tag.State == engine.StateHidden {
			s.releaseView(item.Tab)
			continue
		}
		s.ensureView(item)
		from := 0.0
		if item.Index > selected {
			from = trailing
		}
		s.surface.SetPosition(geom.DraggingAxis, item, from)
		spans = append(spans, cardSpan{item: item, from: from, to: item.Tag.Position})
	}

	s.animator.Start(now, anim.Animation{
		Key:      keyShowHide,
		Kind:     anim.KindShowSwitcher,
		Duration: parameter.ShowSwitcherDuration,
		Easing:   geom.EaseOut,
		Apply: func(p float64) {
			for _, sp := range spans {
				s.surface.SetPosition(geom.DraggingAxis, sp.item, geom.Lerp(sp.from, sp.to, p))
			}
		},
		Done: func(completed bool) {
			if completed {
				s.queue.Push(event.Event{Type: event.EventSwitcherShown, Timestamp: s.clock()})
			}
		},
	})
	s.sound(audio.SoundShow)
}

// HideSwitcher dismisses the overview: the selected card grows to cover
// the screen while the rest slide out. Gestures stop immediately; views
// are released when the transition completes
func (s *Switcher) HideSwitcher() {
	if !s.shown {
		return
	}
	s.shown = false
	s.animator.CancelAll()
	now := s.clock()

	src := s.source()
	selected := s.model.SelectedIndex()
	trailing := s.surface.ContainerSize(geom.DraggingAxis, false)

	var spans []cardSpan
	for _, item := range src.Items() {
		view, ok := s.views.View(item.Tab)
		if !ok {
			continue
		}
		to := 0.0
		if item.Index > selected {
			to = trailing
		}
		// Depart from wherever the card currently is, not its settled tag;
		// hiding can interrupt a transition mid-flight
		spans = append(spans, cardSpan{item: item, from: view.DragPos, to: to})
	}

	s.animator.Start(now, anim.Animation{
		Key:      keyShowHide,
		Kind:     anim.KindHideSwitcher,
		Duration: parameter.HideSwitcherDuration,
		Easing:   geom.EaseIn,
		Apply: func(p float64) {
			for _, sp := range spans {
				s.surface.SetPosition(geom.DraggingAxis, sp.item, geom.Lerp(sp.from, sp.to, p))
			}
		},
		Done: func(completed bool) {
			for _, sp := range spans {
				s.releaseView(sp.item.Tab)
			}
			if completed {
				s.queue.Push(event.Event{Type: event.EventSwitcherHidden, Timestamp: s.clock()})
			}
		},
	})
	s.sound(audio.SoundHide)
}

// ToggleSwitcher shows the overview when hidden and hides it when shown
func (s *Switcher) ToggleSwitcher() {
	if s.shown {
		s.HideSwitcher()
	} else {
		s.ShowSwitcher()
	}
}
