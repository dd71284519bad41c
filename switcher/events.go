package switcher

import (
	"github.com/lixenwraith/tabstack/audio"
	"github.com/lixenwraith/tabstack/event"
	"github.com/lixenwraith/tabstack/model"
)

// processEvents drains the queue until it stays empty. Handlers may push
// follow-up events; draining in rounds keeps their order causal
func (s *Switcher) processEvents() {
	for {
		events := s.queue.Consume()
		if len(events) == 0 {
			return
		}
		for _, ev := range events {
			s.handleEvent(ev)
			if s.onEvent != nil {
				s.onEvent(ev)
			}
		}
	}
}

func (s *Switcher) handleEvent(ev event.Event) {
	switch ev.Type {
	case event.EventCloseRequest:
		p := ev.Payload.(*event.TabPayload)
		if index := s.indexOfID(p.TabID); index >= 0 {
			s.model.Remove(index)
		}

	case event.EventSoundRequest:
		if s.feedback != nil {
			p := ev.Payload.(*event.SoundRequestPayload)
			s.feedback.Play(audio.SoundType(p.Sound))
		}

	case event.EventViewReleasable:
		p := ev.Payload.(*event.TabPayload)
		if tab := s.tabByID(p.TabID); tab != nil {
			s.releaseView(tab)
		}
	}
}

// indexOfID resolves a tab identifier to its current model index, -1 when
// the tab is already gone
func (s *Switcher) indexOfID(id uint64) int {
	for i := 0; i < s.model.Count(); i++ {
		if s.model.Tab(i).ID() == id {
			return i
		}
	}
	return -1
}

func (s *Switcher) tabByID(id uint64) *model.Tab {
	if index := s.indexOfID(id); index >= 0 {
		return s.model.Tab(index)
	}
	return nil
}
