// Package switcher wires the tab model, drag engine, animator, recycler
// and rendering surface into the widget the host embeds. Everything runs
// on one goroutine: the host feeds touch events and frame ticks in, and
// consumes requests the switcher emits on its event queue.
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
	"github.com/lixenwraith/tabstack/recycler"
	"github.com/lixenwraith/tabstack/render"
)

// animation keys for whole-strip transitions; per-tab animations key on
// the tab pointer
type stripKey int

const (
	keyShowHide stripKey = iota
	keyFling
	keyOvershoot
)

// Switcher is the card-stack tab switcher façade. Not safe for concurrent
// use; one goroutine owns it
type Switcher struct {
	model    *model.TabModel
	engine   *engine.Engine
	surface  *render.Surface
	queue    *event.Queue
	animator *anim.Animator
	views    *recycler.Recycler[*model.Tab, *render.CardView]
	feedback *audio.Feedback

	// tags is the persisted layout state per tab, the source every engine
	// pass starts from
	tags map[*model.Tab]engine.Tag

	sess          engine.DragSession
	dragThreshold float64
	shown         bool
	overshooting  bool

	// gestureStale marks the held finger invalid after a session reset
	// mid-gesture; its moves are dropped until the next touch-down
	gestureStale bool

	// addArmed tracks a press that started on the new-tab affordance
	addArmed bool

	clock func() time.Time

	// onEvent observes every processed event, nil when the host does not care
	onEvent func(event.Event)
}

type cardAdapter struct {
	surface *render.Surface
}

func (a *cardAdapter) ViewType(tab *model.Tab) int { return 0 }

func (a *cardAdapter) OnInflate(tab *model.Tab, viewType int) *render.CardView {
	return render.NewCardView(tab)
}

func (a *cardAdapter) OnBind(tab *model.Tab, view *render.CardView, recycled bool) {
	a.surface.Bind(tab, view)
}

func (a *cardAdapter) OnRelease(tab *model.Tab, view *render.CardView) {
	a.surface.Unbind(tab)
}

// New creates a switcher over model and surface with the given layout
// variant. The switcher registers itself as a model listener; structural
// changes made directly on the model are picked up the same way as ones
// made through AddTab and friends
func New(m *model.TabModel, surface *render.Surface, caps engine.Capabilities) *Switcher {
	queue := event.NewQueue()
	s := &Switcher{
		model:         m,
		engine:        engine.New(caps, m, surface),
		surface:       surface,
		queue:         queue,
		animator:      anim.NewAnimator(queue),
		views:         recycler.New[*model.Tab, *render.CardView](&cardAdapter{surface: surface}),
		tags:          make(map[*model.Tab]engine.Tag),
		dragThreshold: parameter.DragThreshold,
		clock:         time.Now,
	}
	s.sess = s.engine.NewSession(s.dragThreshold)
	m.AddListener(s)
	return s
}

// SetFeedback installs the audio service, nil to silence
func (s *Switcher) SetFeedback(f *audio.Feedback) { s.feedback = f }

// SetEventHandler registers a callback invoked for every event the
// switcher loop processes, after the switcher's own handling
func (s *Switcher) SetEventHandler(fn func(event.Event)) { s.onEvent = fn }

// Queue exposes the event queue so hosts can observe switcher requests
func (s *Switcher) Queue() *event.Queue { return s.queue }

// Shown reports whether the overview is on screen
func (s *Switcher) Shown() bool { return s.shown }

// Model returns the tab model
func (s *Switcher) Model() *model.TabModel { return s.model }

// Reset aborts everything in flight and starts a fresh gesture session
// with the given drag threshold
func (s *Switcher) Reset(dragThreshold float64) {
	s.animator.CancelAll()
	s.queue.Consume()
	s.dragThreshold = dragThreshold
	s.sess = s.engine.NewSession(dragThreshold)
	s.overshooting = false
	s.gestureStale = true
	s.addArmed = false
}

// AddTab appends tab and selects it
func (s *Switcher) AddTab(tab *model.Tab) { s.model.Add(tab) }

// RemoveTab removes the tab at index
func (s *Switcher) RemoveTab(index int) { s.model.Remove(index) }

// SelectTab moves the selection to index
func (s *Switcher) SelectTab(index int) { s.model.Select(index) }

// Advance runs one animation frame and processes the events it produced.
// The host calls this on its frame tick while Busy reports true
func (s *Switcher) Advance(now time.Time) {
	s.animator.Tick(now)
	s.processEvents()
}

// Busy reports whether animations are still running or events are pending
func (s *Switcher) Busy() bool {
	return !s.animator.Idle() || s.queue.Len() > 0
}

// OnGlobalLayout recomputes the layout after a container size change and
// applies it without animation
func (s *Switcher) OnGlobalLayout() {
	s.animator.CancelAll()
	s.resetSession()
	if !s.shown || s.model.IsEmpty() {
		return
	}
	src := s.source()
	items := s.engine.ComputeReferenceLayout(src, s.model.SelectedIndex())
	s.persist(src)
	s.applyImmediate(items)
}

// source materializes a fresh engine pass over the persisted tags
func (s *Switcher) source() *engine.ModelSource {
	return engine.NewModelSource(s.model, func(index int, tab *model.Tab) engine.Tag {
		return s.tags[tab]
	})
}

// persist writes every materialized tag back to the store
func (s *Switcher) persist(src *engine.ModelSource) {
	for _, item := range src.Items() {
		s.tags[item.Tab] = item.Tag
	}
}

// applyImmediate realizes items on the surface at their final transform
func (s *Switcher) applyImmediate(items []*engine.TabItem) {
	for _, item := range items {
		if item.Tag.State == engine.StateHidden {
			s.releaseView(item.Tab)
			continue
		}
		s.ensureView(item)
		s.surface.SetPosition(geom.DraggingAxis, item, item.Tag.Position)
	}
}

func (s *Switcher) ensureView(item *engine.TabItem) *render.CardView {
	view, _ := s.views.Inflate(item.Tab)
	return view
}

func (s *Switcher) releaseView(tab *model.Tab) {
	if _, ok := s.views.View(tab); ok {
		s.views.Remove(tab)
	}
}

// sound queues a feedback request; played when events are processed
func (s *Switcher) sound(st audio.SoundType) {
	s.queue.Push(event.Event{
		Type:      event.EventSoundRequest,
		Payload:   &event.SoundRequestPayload{Sound: int(st)},
		Timestamp: s.clock(),
	})
}
