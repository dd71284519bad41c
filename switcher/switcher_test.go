package switcher

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tabstack/engine"
	"github.com/lixenwraith/tabstack/event"
	"github.com/lixenwraith/tabstack/geom"
	"github.com/lixenwraith/tabstack/model"
	"github.com/lixenwraith/tabstack/parameter"
	"github.com/lixenwraith/tabstack/render"
)

// harness drives the switcher with a deterministic clock over a
// simulation screen. Drag axis is vertical (24 cells), orthogonal
// horizontal (40 cells)
type harness struct {
	t      *testing.T
	m      *model.TabModel
	sw     *Switcher
	now    time.Time
	events []event.Type
}

func newHarness(t *testing.T, count, selected int) *harness {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("sim screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 24)

	m := model.NewTabModel()
	surface := render.NewSurface(screen, render.Portrait, render.DefaultTheme(), true, m)
	sw := New(m, surface, engine.DefaultCapabilities())

	h := &harness{t: t, m: m, sw: sw, now: time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)}
	sw.clock = func() time.Time { return h.now }
	sw.SetEventHandler(func(ev event.Event) { h.events = append(h.events, ev.Type) })

	for i := 0; i < count; i++ {
		m.Add(model.NewTab(string(rune('a' + i))))
	}
	if count > 0 {
		m.Select(selected)
	}
	return h
}

// settle ticks frames until nothing is running
func (h *harness) settle() {
	h.t.Helper()
	for i := 0; i < 200; i++ {
		if !h.sw.Busy() {
			return
		}
		h.now = h.now.Add(parameter.AnimatorTickInterval)
		h.sw.Advance(h.now)
	}
	h.t.Fatal("switcher did not settle within 200 frames")
}

func (h *harness) touch(kind TouchKind, x, y float64, advance time.Duration) {
	h.now = h.now.Add(advance)
	h.sw.HandleTouchEvent(TouchEvent{Kind: kind, Point: geom.Point{X: x, Y: y}, Time: h.now})
}

func (h *harness) saw(want event.Type) bool {
	for _, got := range h.events {
		if got == want {
			return true
		}
	}
	return false
}

func TestShowSettlesIntoReferenceLayout(t *testing.T) {
	h := newHarness(t, 5, 2)
	h.sw.ShowSwitcher()
	h.settle()

	if !h.sw.Shown() {
		t.Fatal("switcher not shown after show transition")
	}
	if !h.saw(event.EventSwitcherShown) {
		t.Error("EventSwitcherShown not observed")
	}

	// The persisted tags must equal a reference layout computed from scratch
	src := engine.NewModelSource(h.m, func(int, *model.Tab) engine.Tag { return engine.Tag{} })
	want := h.sw.engine.ComputeReferenceLayout(src, 2)
	visible := 0
	for _, item := range want {
		got, ok := h.sw.tags[item.Tab]
		if !ok {
			t.Fatalf("tab %d has no persisted tag", item.Index)
		}
		if got != item.Tag {
			t.Errorf("tab %d tag = %+v, want %+v", item.Index, got, item.Tag)
		}
		if item.Tag.State != engine.StateHidden {
			visible++
			view, bound := h.sw.views.View(item.Tab)
			if !bound {
				t.Fatalf("visible tab %d has no view", item.Index)
			}
			if view.DragPos != item.Tag.Position {
				t.Errorf("tab %d view at %.2f, want %.2f", item.Index, view.DragPos, item.Tag.Position)
			}
		}
	}
	if got := h.sw.views.ActiveCount(); got != visible {
		t.Errorf("active views = %d, want %d", got, visible)
	}
}

func TestToggleHidesAndReleasesViews(t *testing.T) {
	h := newHarness(t, 4, 1)
	h.sw.ToggleSwitcher()
	h.settle()
	if !h.sw.Shown() {
		t.Fatal("toggle did not show")
	}

	h.sw.ToggleSwitcher()
	if h.sw.Shown() {
		t.Error("gestures must stop the moment hiding starts")
	}
	h.settle()
	if !h.saw(event.EventSwitcherHidden) {
		t.Error("EventSwitcherHidden not observed")
	}
	if got := h.sw.views.ActiveCount(); got != 0 {
		t.Errorf("views still active after hide: %d", got)
	}
}

func TestShowOnEmptyModelIsNoOp(t *testing.T) {
	h := newHarness(t, 0, 0)
	h.sw.ShowSwitcher()
	if h.sw.Shown() || h.sw.Busy() {
		t.Error("empty model must not show")
	}
}

func TestTouchIgnoredWhileHidden(t *testing.T) {
	h := newHarness(t, 3, 0)
	h.touch(TouchDown, 20, 12, 0)
	h.touch(TouchUp, 20, 12, 50*time.Millisecond)
	if h.sw.Busy() || len(h.events) != 0 {
		t.Error("touches must be inert while the switcher is hidden")
	}
}

func TestTapSelectsTabAndDismisses(t *testing.T) {
	h := newHarness(t, 5, 2)
	h.sw.ShowSwitcher()
	h.settle()

	// Attached position is 12 for five tabs in a 24-cell container; the
	// successor floats one max spacing later at 18
	h.touch(TouchDown, 20, 19, 0)
	h.touch(TouchUp, 20, 19, 60*time.Millisecond)
	h.settle()

	if got := h.m.SelectedIndex(); got != 3 {
		t.Errorf("selected = %d, want 3", got)
	}
	if !h.saw(event.EventSelectRequest) {
		t.Error("EventSelectRequest not observed")
	}
	if h.sw.Shown() {
		t.Error("tap must dismiss the switcher")
	}
	if got := h.sw.views.ActiveCount(); got != 0 {
		t.Errorf("views still active after tap dismiss: %d", got)
	}
}

func TestSwipeCommitClosesTab(t *testing.T) {
	h := newHarness(t, 5, 2)
	h.sw.ShowSwitcher()
	h.settle()
	swiped := h.m.Tab(2)

	// Selected tab sits at drag position 12. Orthogonal travel of 22
	// cells clears both the engage threshold and the commit fraction
	h.touch(TouchDown, 10, 12.5, 0)
	h.touch(TouchMove, 16, 12.5, 20*time.Millisecond)
	h.touch(TouchMove, 32, 12.5, 40*time.Millisecond)
	h.touch(TouchUp, 32, 12.5, 60*time.Millisecond)
	h.settle()

	if got := h.m.Count(); got != 4 {
		t.Fatalf("count after swipe commit = %d, want 4", got)
	}
	if h.m.IndexOf(swiped) != -1 {
		t.Error("swiped tab still in the model")
	}
	if !h.saw(event.EventCloseRequest) {
		t.Error("EventCloseRequest not observed")
	}
	if _, bound := h.sw.views.View(swiped); bound {
		t.Error("swiped tab's view not released")
	}
}

func TestSwipeOnPinnedTabSpringsBack(t *testing.T) {
	h := newHarness(t, 5, 2)
	pinned := h.m.Tab(2)
	pinned.SetCloseable(false)
	h.sw.ShowSwitcher()
	h.settle()

	h.touch(TouchDown, 10, 12.5, 0)
	h.touch(TouchMove, 24, 12.5, 20*time.Millisecond)
	h.touch(TouchUp, 32, 12.5, 40*time.Millisecond)
	h.settle()

	if got := h.m.Count(); got != 5 {
		t.Fatalf("count = %d, a pinned tab must survive a swipe", got)
	}
	view, bound := h.sw.views.View(pinned)
	if !bound {
		t.Fatal("pinned tab lost its view")
	}
	if view.OrthOffset != 0 || view.Scale() != 1 || view.Alpha() != 1 {
		t.Errorf("spring-back did not restore the resting transform: offset=%.2f scale=%.2f alpha=%.2f",
			view.OrthOffset, view.Scale(), view.Alpha())
	}
}

func TestFlingContinuesAfterRelease(t *testing.T) {
	h := newHarness(t, 7, 3)
	h.sw.ShowSwitcher()
	h.settle()
	before := h.sw.tags[h.m.Tab(3)].Position

	// Fast upward strokes on the selected tab, 200 cells per second
	h.touch(TouchDown, 20, 14, 0)
	h.touch(TouchMove, 20, 12, 10*time.Millisecond)
	h.touch(TouchMove, 20, 10, 10*time.Millisecond)
	h.touch(TouchMove, 20, 8, 10*time.Millisecond)
	h.touch(TouchUp, 20, 8, 5*time.Millisecond)

	if !h.sw.Busy() {
		t.Fatal("release at speed must start a fling")
	}
	h.settle()

	if !h.saw(event.EventFlingFinished) {
		t.Error("EventFlingFinished not observed")
	}
	after := h.sw.tags[h.m.Tab(3)].Position
	if after >= before {
		t.Errorf("fling toward the start must carry position down: %.2f -> %.2f", before, after)
	}
	assertTagsOrdered(t, h)
}

func TestAddTabWhileShownReveals(t *testing.T) {
	h := newHarness(t, 4, 3)
	h.sw.ShowSwitcher()
	h.settle()

	tab := model.NewTab("fresh")
	h.sw.AddTab(tab)
	if !h.sw.Busy() {
		t.Fatal("adding while shown must animate")
	}
	h.settle()

	if got := h.m.SelectedIndex(); got != 4 {
		t.Errorf("selected = %d, want the added tab", got)
	}
	view, bound := h.sw.views.View(tab)
	if !bound {
		t.Fatal("added tab has no view")
	}
	attached := h.sw.engine.AttachedPosition(5)
	if view.DragPos != attached {
		t.Errorf("added tab at %.2f, want attached position %.2f", view.DragPos, attached)
	}
	if view.Alpha() != 1 || view.Scale() != 1 {
		t.Errorf("reveal did not finish: alpha=%.2f scale=%.2f", view.Alpha(), view.Scale())
	}
	assertTagsOrdered(t, h)
}

func TestAddTabWhileHiddenIsSilent(t *testing.T) {
	h := newHarness(t, 3, 0)
	tab := model.NewTab("quiet")
	h.sw.AddTab(tab)

	if h.sw.Busy() {
		t.Error("hidden switcher must not animate on add")
	}
	if got := h.sw.views.ActiveCount(); got != 0 {
		t.Errorf("hidden switcher inflated %d views", got)
	}
	if _, ok := h.sw.tags[tab]; !ok {
		t.Error("added tab must still get a tag entry")
	}
}

func TestRemoveTabWhileShownRelocates(t *testing.T) {
	h := newHarness(t, 5, 2)
	h.sw.ShowSwitcher()
	h.settle()
	removed := h.m.Tab(0)

	h.sw.RemoveTab(0)
	h.settle()

	if got := h.m.Count(); got != 4 {
		t.Fatalf("count = %d, want 4", got)
	}
	if _, ok := h.sw.tags[removed]; ok {
		t.Error("removed tab's tag not dropped")
	}
	if _, bound := h.sw.views.View(removed); bound {
		t.Error("removed tab's view not released")
	}
	assertTagsOrdered(t, h)
}

func TestRemovingLastTabDismisses(t *testing.T) {
	h := newHarness(t, 1, 0)
	h.sw.ShowSwitcher()
	h.settle()

	h.sw.RemoveTab(0)
	h.settle()

	if h.sw.Shown() {
		t.Error("emptying the model must dismiss the switcher")
	}
	if !h.saw(event.EventSwitcherHidden) {
		t.Error("EventSwitcherHidden not observed")
	}
	if got := h.sw.views.ActiveCount(); got != 0 {
		t.Errorf("views still active: %d", got)
	}
}

func TestSelectWhileShownMovesSelectionToAttached(t *testing.T) {
	h := newHarness(t, 6, 0)
	h.sw.ShowSwitcher()
	h.settle()

	h.sw.SelectTab(4)
	h.settle()

	attached := h.sw.engine.AttachedPosition(6)
	if got := h.sw.tags[h.m.Tab(4)].Position; got != attached {
		t.Errorf("selected tab at %.2f, want %.2f", got, attached)
	}
	assertTagsOrdered(t, h)
}

func TestResetAbortsEverything(t *testing.T) {
	h := newHarness(t, 5, 2)
	h.sw.ShowSwitcher()
	if !h.sw.Busy() {
		t.Fatal("show must be animating")
	}

	h.sw.Reset(parameter.DragThreshold)
	if h.sw.Busy() {
		t.Error("reset must cancel animations and drain the queue")
	}
}

func TestReleaseInOvershootEasesTiltBack(t *testing.T) {
	h := newHarness(t, 5, 2)
	h.sw.ShowSwitcher()
	h.settle()

	// Slow drag well past the legal travel; the surplus tilts the
	// visible cards instead of moving them
	h.touch(TouchDown, 20, 12.5, 0)
	h.touch(TouchMove, 20, 20, 200*time.Millisecond)
	h.touch(TouchMove, 20, 30, 200*time.Millisecond)

	tilted := 0
	for i := 0; i < h.m.Count(); i++ {
		if view, ok := h.sw.views.View(h.m.Tab(i)); ok && view.Rotation() != 0 {
			tilted++
		}
	}
	if tilted == 0 {
		t.Fatal("drag past the cap did not tilt any card")
	}

	h.touch(TouchUp, 20, 30, 200*time.Millisecond)
	if !h.sw.Busy() {
		t.Fatal("release in overshoot must animate the revert")
	}
	h.settle()

	for i := 0; i < h.m.Count(); i++ {
		if view, ok := h.sw.views.View(h.m.Tab(i)); ok && view.Rotation() != 0 {
			t.Errorf("tab %d still tilted %.2f after revert", i, view.Rotation())
		}
	}
	if h.sw.overshooting {
		t.Error("overshoot episode not closed after revert")
	}
	assertTagsOrdered(t, h)
}

func TestHeldFingerDroppedAfterStructuralChange(t *testing.T) {
	h := newHarness(t, 5, 2)
	h.sw.ShowSwitcher()
	h.settle()

	// Engage a drag on the selected tab
	h.touch(TouchDown, 20, 12.5, 0)
	h.touch(TouchMove, 20, 14, 16*time.Millisecond)
	if h.sw.sess.State != engine.DragDrag {
		t.Fatalf("drag not engaged, state = %v", h.sw.sess.State)
	}

	// A structural change lands while the finger is still down,
	// discarding the session it was driving
	h.sw.AddTab(model.NewTab("fresh"))

	before := make(map[*model.Tab]engine.Tag, len(h.sw.tags))
	for tab, tag := range h.sw.tags {
		before[tab] = tag
	}

	// The finger's remaining samples must be dropped; fed into the fresh
	// session, a one-cell move would measure its travel from the origin
	// and teleport the strip
	h.touch(TouchMove, 20, 15, 16*time.Millisecond)
	if h.sw.sess.State != engine.DragNone {
		t.Errorf("orphaned move engaged a gesture, state = %v", h.sw.sess.State)
	}
	for tab, tag := range before {
		if h.sw.tags[tab] != tag {
			t.Errorf("orphaned move shifted tab %q: %+v -> %+v", tab.Title(), tag, h.sw.tags[tab])
		}
	}
	h.touch(TouchUp, 20, 15, 16*time.Millisecond)
	h.settle()

	// The next touch-down starts a working gesture again
	h.touch(TouchDown, 20, 12.5, 0)
	h.touch(TouchMove, 20, 15, 16*time.Millisecond)
	if h.sw.sess.State != engine.DragDrag {
		t.Errorf("fresh gesture did not engage, state = %v", h.sw.sess.State)
	}
	h.touch(TouchUp, 20, 15, 16*time.Millisecond)
	h.settle()
	assertTagsOrdered(t, h)
}

func TestTapOnAddAffordanceRequestsNewTab(t *testing.T) {
	h := newHarness(t, 3, 1)
	h.m.SetAddButtonShown(true)
	h.sw.ShowSwitcher()
	h.settle()

	// The affordance occupies the trailing top corner of the 40x24 screen
	h.touch(TouchDown, 37, 1, 0)
	h.touch(TouchUp, 37, 1, 60*time.Millisecond)

	if !h.saw(event.EventAddRequest) {
		t.Error("EventAddRequest not observed")
	}
	if got := h.m.Count(); got != 3 {
		t.Errorf("count = %d; creating the tab is the host's call", got)
	}
	if !h.sw.Shown() {
		t.Error("requesting a tab must not dismiss the overview")
	}

	// A press that lifts off the affordance is abandoned
	h.events = nil
	h.touch(TouchDown, 37, 1, 0)
	h.touch(TouchMove, 20, 12, 30*time.Millisecond)
	h.touch(TouchUp, 20, 12, 30*time.Millisecond)
	if h.saw(event.EventAddRequest) {
		t.Error("press ending off the affordance must not request a tab")
	}
	h.settle()
}

func TestSoundRequestsFlowThroughQueue(t *testing.T) {
	h := newHarness(t, 3, 1)
	h.sw.ShowSwitcher()
	h.settle()
	if !h.saw(event.EventSoundRequest) {
		t.Error("show must request feedback audio")
	}
}

// assertTagsOrdered checks the persisted positions stay monotonic in
// model order after whatever transition just settled
func assertTagsOrdered(t *testing.T, h *harness) {
	t.Helper()
	prev := -1.0
	for i := 0; i < h.m.Count(); i++ {
		tag, ok := h.sw.tags[h.m.Tab(i)]
		if !ok {
			t.Fatalf("tab %d has no tag", i)
		}
		if tag.Position < prev-1e-9 {
			t.Fatalf("positions out of order at %d: %.2f after %.2f", i, tag.Position, prev)
		}
		prev = tag.Position
	}
}
