package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/tabstack/geom"
	"github.com/lixenwraith/tabstack/parameter"
)

// DragState is the phase of the current touch gesture
type DragState int

const (
	DragNone DragState = iota
	DragDrag
	DragSwipe
	DragOvershootStart
	DragOvershootEnd
)

func (s DragState) String() string {
	switch s {
	case DragNone:
		return "none"
	case DragDrag:
		return "drag"
	case DragSwipe:
		return "swipe"
	case DragOvershootStart:
		return "overshoot-start"
	case DragOvershootEnd:
		return "overshoot-end"
	default:
		return fmt.Sprintf("DragState(%d)", int(s))
	}
}

// DragSession is the state of one continuous touch gesture or
// programmatic relayout. It is a value passed into and returned from
// every engine call; nothing about a gesture hides inside the engine.
// A fresh session is created by NewSession at the start of every
// switcher-shown calculation
type DragSession struct {
	State DragState

	// Threshold is the drag-axis travel before a touch becomes a drag
	Threshold float64

	// SwipeThreshold is the orthogonal travel before a touch becomes a swipe
	SwipeThreshold float64

	DownPoint geom.Point
	DownTime  time.Time
	LastPoint geom.Point
	LastTime  time.Time

	// FocusedIndex is the tab under the touch point, -1 when none
	FocusedIndex int

	// DragDistance is the accumulated drag-axis travel since the gesture
	// engaged, the single input the position pass is a function of
	DragDistance float64

	// OvershootDistance is the travel requested past the legal bound,
	// positive past the end-most arrangement, negative past the start-most
	OvershootDistance float64

	// SwipedIndex is the tab being swiped, -1 when none
	SwipedIndex int

	// SwipeDistance is the accumulated orthogonal travel of a swipe
	SwipeDistance float64

	// Spacing snapshot, recomputed whenever the tab count changes
	AttachedPosition float64
	MaxSpacing       float64
	MinSpacing       float64

	// FirstVisibleIndex after the latest position pass, -1 when unknown
	FirstVisibleIndex int

	// Smoothed gesture velocities in container units per second
	DragVelocity  float64
	SwipeVelocity float64

	// originTags snapshots every tag at the moment the gesture engaged;
	// the position pass derives each new tag from this snapshot so that
	// equal and opposite drags cancel exactly
	originTags []Tag
}

// NewSession returns a reset session with the given drag threshold.
// Spacing fields are filled from the current model state
func (e *Engine) NewSession(threshold float64) DragSession {
	count := e.model.Count()
	return DragSession{
		Threshold:         threshold,
		SwipeThreshold:    parameter.SwipeThreshold,
		FocusedIndex:      -1,
		SwipedIndex:       -1,
		FirstVisibleIndex: -1,
		AttachedPosition:  e.AttachedPosition(count),
		MaxSpacing:        e.MaxTabSpacing(count),
		MinSpacing:        e.MinTabSpacing(count),
	}
}

// MoveKind classifies the outcome of a touch movement
type MoveKind int

const (
	MoveNone MoveKind = iota
	MoveDrag
	MoveSwipe
)

// SwipeUpdate carries the per-frame visual targets of a swipe gesture
type SwipeUpdate struct {
	Item *TabItem

	// Offset along the orthogonal axis from the tab's resting position
	Offset float64

	Scale float64
	Alpha float64
}

// MoveResult is what one touch movement changed
type MoveResult struct {
	Kind MoveKind

	// Changed holds every item whose tag the position pass rewrote
	Changed []*TabItem

	// OvershootAngle is the tilt to apply, zero outside overshoot.
	// OvershootAtStart tells which edge tilts
	OvershootAngle   float64
	OvershootAtStart bool

	Swipe *SwipeUpdate
}

// ReleaseKind classifies what a touch-up commits to
type ReleaseKind int

const (
	ReleaseNone ReleaseKind = iota

	// ReleaseTap selects the tapped tab
	ReleaseTap

	// ReleaseFling continues the drag with a decelerating animation
	ReleaseFling

	// ReleaseRevertOvershoot eases tilt back to zero
	ReleaseRevertOvershoot

	// ReleaseSwipeCommit removes the swiped tab
	ReleaseSwipeCommit

	// ReleaseSwipeSpringBack restores the swiped tab
	ReleaseSwipeSpringBack
)

// ReleaseAction is the engine's decision for a touch-up
type ReleaseAction struct {
	Kind ReleaseKind
	Item *TabItem

	// FlingDistance and FlingDuration describe the programmatic drag
	// continuation for ReleaseFling; distance is signed
	FlingDistance float64
	FlingDuration time.Duration
}

// TouchDown starts a gesture: records the touch point and resolves the
// focused tab. Any in-flight fling must be cancelled by the caller before
// this is invoked
func (e *Engine) TouchDown(sess DragSession, source ItemSource, p geom.Point, t time.Time) DragSession {
	sess.State = DragNone
	sess.DownPoint = p
	sess.DownTime = t
	sess.LastPoint = p
	sess.LastTime = t
	sess.DragDistance = 0
	sess.OvershootDistance = 0
	sess.SwipeDistance = 0
	sess.DragVelocity = 0
	sess.SwipeVelocity = 0
	sess.SwipedIndex = -1
	sess.FocusedIndex = e.findFocusedIndex(source, p)
	return sess
}

// TouchMove advances a gesture. Until a threshold is crossed the touch is
// neither drag nor swipe; the first axis to cross claims the gesture
func (e *Engine) TouchMove(sess DragSession, source ItemSource, p geom.Point, t time.Time) (DragSession, MoveResult) {
	dragPos := e.arith.TouchPosition(geom.DraggingAxis, p)
	lastDragPos := e.arith.TouchPosition(geom.DraggingAxis, sess.LastPoint)
	orthPos := e.arith.TouchPosition(geom.OrthogonalAxis, p)

	sess = e.trackVelocity(sess, p, t)
	sess.LastPoint = p
	sess.LastTime = t

	switch sess.State {
	case DragNone:
		downDrag := e.arith.TouchPosition(geom.DraggingAxis, sess.DownPoint)
		downOrth := e.arith.TouchPosition(geom.OrthogonalAxis, sess.DownPoint)
		dragTravel := dragPos - downDrag
		swipeTravel := orthPos - downOrth

		if geom.Abs(swipeTravel) > sess.SwipeThreshold && sess.FocusedIndex >= 0 {
			sess.State = DragSwipe
			sess.SwipedIndex = sess.FocusedIndex
			sess.SwipeDistance = swipeTravel - geom.Sign(swipeTravel)*sess.SwipeThreshold
			return sess, e.swipeResult(sess, source)
		}
		if geom.Abs(dragTravel) > sess.Threshold {
			sess = e.engageDrag(sess, source)
			delta := dragTravel - geom.Sign(dragTravel)*sess.Threshold
			return e.DragBy(sess, source, delta)
		}
		return sess, MoveResult{Kind: MoveNone}

	case DragSwipe:
		sess.SwipeDistance = orthPos - e.arith.TouchPosition(geom.OrthogonalAxis, sess.DownPoint)
		return sess, e.swipeResult(sess, source)

	default:
		return e.DragBy(sess, source, dragPos-lastDragPos)
	}
}

// engageDrag snapshots every tag so the position pass becomes a pure
// function of the accumulated drag distance
func (e *Engine) engageDrag(sess DragSession, source ItemSource) DragSession {
	sess.State = DragDrag
	sess.DragDistance = 0
	sess.OvershootDistance = 0
	count := source.Count()
	sess.originTags = make([]Tag, count)
	for i := 0; i < count; i++ {
		sess.originTags[i] = source.Item(i).Tag
	}
	return sess
}

// DragBy advances an engaged drag by delta along the dragging axis and
// recomputes every tab's (position, state). The same entry point serves
// interactive dragging and the per-frame recompute of a fling animation
func (e *Engine) DragBy(sess DragSession, source ItemSource, delta float64) (DragSession, MoveResult) {
	if sess.State != DragDrag && sess.State != DragOvershootStart && sess.State != DragOvershootEnd {
		panic(fmt.Sprintf("engine: DragBy in state %v", sess.State))
	}
	count := source.Count()
	if count == 0 {
		return sess, MoveResult{Kind: MoveNone}
	}
	if len(sess.originTags) != count {
		panic("engine: drag session snapshot does not match tab count; structural change without reset")
	}

	requested := sess.DragDistance + sess.OvershootDistance + delta
	effective, overshoot := e.capDragDistance(sess, source, requested)
	sess.DragDistance = effective
	sess.OvershootDistance = overshoot

	changed := e.applyDragPass(sess, source)
	sess.FirstVisibleIndex = FirstVisibleIndex(changed)

	result := MoveResult{Kind: MoveDrag, Changed: changed}
	switch {
	case overshoot > 0:
		sess.State = DragOvershootStart
		result.OvershootAtStart = true
		result.OvershootAngle = e.overshootAngle(overshoot)
	case overshoot < 0:
		sess.State = DragOvershootEnd
		result.OvershootAtStart = false
		result.OvershootAngle = e.overshootAngle(overshoot)
	default:
		sess.State = DragDrag
	}
	return sess, result
}

// overshootAngle maps travel past the bound to a tilt in degrees,
// saturating at the configured maximum. Sign follows the travel
func (e *Engine) overshootAngle(overshoot float64) float64 {
	if !e.caps.TiltSupported {
		return 0
	}
	ratio := geom.Clamp01(geom.Abs(overshoot) / e.caps.MaxOvershootDistance)
	return geom.Sign(overshoot) * ratio * e.caps.MaxOvershootAngle
}

// applyDragPass recomputes every tag from the engage snapshot and the
// accumulated drag distance. Tabs at and above the focused tab translate
// with the drag; tabs below additionally obey the chain ceiling so they
// compact softly toward the leading edge instead of marching as a block
func (e *Engine) applyDragPass(sess DragSession, source ItemSource) []*TabItem {
	count := source.Count()
	d := sess.DragDistance
	anchor := sess.FocusedIndex
	if anchor < 0 {
		anchor = e.model.SelectedIndex()
	}
	if anchor < 0 {
		anchor = 0
	}

	items := make([]*TabItem, count)

	// Anchor and successors: translate, then clip
	it := NewIterator(source).Start(anchor).Build()
	for item := it.Next(); item != nil; item = it.Next() {
		raw := sess.originTags[item.Index].Position + d
		pos, state := e.Clip(count, item.Index, raw)
		item.Tag.Position = pos
		item.Tag.State = state
		items[item.Index] = item
	}

	// Predecessors: translate, bounded by the chain-derived ceiling of the
	// successor just computed, then clip
	it = NewIterator(source).Reverse(true).Start(anchor - 1).Build()
	for item := it.Next(); item != nil; item = it.Next() {
		above := it.Previous()
		raw := sess.originTags[item.Index].Position + d
		ceiling := chainPrevious(above.Tag.Position, sess.AttachedPosition, sess.MaxSpacing)
		if raw > ceiling {
			raw = ceiling
		}
		pos, state := e.Clip(count, item.Index, raw)
		item.Tag.Position = pos
		item.Tag.State = state
		items[item.Index] = item
	}

	e.promoteAtop(source)
	return items
}

// capDragDistance clamps the requested drag distance to the legal range
// and returns (effective, overshoot). The end-most legal arrangement has
// the first tab at the attached position; the start-most has the last tab
// pinned at its leading pile bound
func (e *Engine) capDragDistance(sess DragSession, source ItemSource, requested float64) (float64, float64) {
	count := source.Count()
	if count <= 1 {
		// No spacing is defined; any travel is overshoot
		return 0, requested
	}

	// Start-most bound: the last tab translates rigidly, so the cap is exact
	lastBound, _ := e.startBound(count - 1)
	minDistance := lastBound - sess.originTags[count-1].Position

	// End-most bound: the first tab's motion is piecewise linear with
	// slope at most one, so walk the cap down until it lands on the bound
	maxDistance := sess.AttachedPosition - sess.originTags[0].Position
	for i := 0; i < 4; i++ {
		pos := e.firstTabPositionAt(sess, source, maxDistance)
		excess := pos - sess.AttachedPosition
		if excess <= 1e-6 {
			break
		}
		maxDistance -= excess
	}
	if maxDistance < minDistance {
		maxDistance = minDistance
	}

	switch {
	case requested > maxDistance:
		return maxDistance, requested - maxDistance
	case requested < minDistance:
		return minDistance, requested - minDistance
	default:
		return requested, 0
	}
}

// firstTabPositionAt evaluates where the first tab would land for a given
// drag distance, without mutating any tags
func (e *Engine) firstTabPositionAt(sess DragSession, source ItemSource, d float64) float64 {
	anchor := sess.FocusedIndex
	if anchor < 0 {
		anchor = e.model.SelectedIndex()
	}
	if anchor < 0 {
		anchor = 0
	}
	if anchor == 0 {
		return sess.originTags[0].Position + d
	}
	pos := sess.originTags[anchor].Position + d
	for i := anchor - 1; i >= 0; i-- {
		raw := sess.originTags[i].Position + d
		ceiling := chainPrevious(pos, sess.AttachedPosition, sess.MaxSpacing)
		if raw > ceiling {
			raw = ceiling
		}
		pos = raw
	}
	return pos
}

// swipeResult computes the per-frame swipe visuals for the swiped tab
func (e *Engine) swipeResult(sess DragSession, source ItemSource) MoveResult {
	item := source.Item(sess.SwipedIndex)
	maxOffset := e.arith.ContainerSize(geom.OrthogonalAxis, true) / 2
	ratio := geom.Clamp01(geom.Abs(sess.SwipeDistance) / maxOffset)
	return MoveResult{
		Kind: MoveSwipe,
		Swipe: &SwipeUpdate{
			Item:   item,
			Offset: sess.SwipeDistance,
			Scale:  geom.Lerp(1, parameter.SwipedScaleMin, ratio),
			Alpha:  geom.Lerp(1, parameter.SwipedAlphaMin, ratio),
		},
	}
}

// TouchUp ends a gesture and decides what release commits to. The
// returned session is reset for the next gesture
func (e *Engine) TouchUp(sess DragSession, source ItemSource, p geom.Point, t time.Time) (DragSession, ReleaseAction) {
	sess = e.trackVelocity(sess, p, t)
	action := ReleaseAction{Kind: ReleaseNone}

	switch sess.State {
	case DragSwipe:
		item := source.Item(sess.SwipedIndex)
		commitDistance := e.arith.ContainerSize(geom.OrthogonalAxis, true) * parameter.SwipeCommitFraction
		committed := item.Tab.Closeable() &&
			(geom.Abs(sess.SwipeDistance) > commitDistance ||
				geom.Abs(sess.SwipeVelocity) > parameter.SwipeCommitVelocity)
		if committed {
			item.Tag.Closing = true
			action = ReleaseAction{Kind: ReleaseSwipeCommit, Item: item}
		} else {
			action = ReleaseAction{Kind: ReleaseSwipeSpringBack, Item: item}
		}

	case DragOvershootStart, DragOvershootEnd:
		action = ReleaseAction{Kind: ReleaseRevertOvershoot}

	case DragDrag:
		if geom.Abs(sess.DragVelocity) > parameter.FlingVelocityThreshold {
			distance := sess.DragVelocity * parameter.FlingDistanceFactor
			durationMs := geom.Abs(sess.DragVelocity) * parameter.FlingDurationFactorMs
			if durationMs > parameter.FlingDurationMaxMs {
				durationMs = parameter.FlingDurationMaxMs
			}
			action = ReleaseAction{
				Kind:          ReleaseFling,
				FlingDistance: distance,
				FlingDuration: time.Duration(durationMs) * time.Millisecond,
			}
		}

	case DragNone:
		if sess.FocusedIndex >= 0 && sess.FocusedIndex < source.Count() {
			action = ReleaseAction{Kind: ReleaseTap, Item: source.Item(sess.FocusedIndex)}
		}
	}

	if action.Kind != ReleaseFling {
		// A fling keeps the session alive; everything else resets it
		sess = e.NewSession(sess.Threshold)
	} else {
		sess.State = DragDrag
	}
	return sess, action
}

// EndFling performs the release handling a manual touch-up would have
// done once a fling animation exhausts its distance
func (e *Engine) EndFling(sess DragSession) DragSession {
	return e.NewSession(sess.Threshold)
}

// trackVelocity folds the latest movement into smoothed per-axis
// velocities, units per second
func (e *Engine) trackVelocity(sess DragSession, p geom.Point, t time.Time) DragSession {
	dt := t.Sub(sess.LastTime).Seconds()
	if dt <= 0 {
		return sess
	}
	dragDelta := e.arith.TouchPosition(geom.DraggingAxis, p) - e.arith.TouchPosition(geom.DraggingAxis, sess.LastPoint)
	orthDelta := e.arith.TouchPosition(geom.OrthogonalAxis, p) - e.arith.TouchPosition(geom.OrthogonalAxis, sess.LastPoint)
	const smoothing = 0.7
	sess.DragVelocity = smoothing*sess.DragVelocity + (1-smoothing)*(dragDelta/dt)
	sess.SwipeVelocity = smoothing*sess.SwipeVelocity + (1-smoothing)*(orthDelta/dt)
	return sess
}

// findFocusedIndex locates the tab under the touch point: scanning
// outward from the selection, the first tab whose on-screen segment along
// the dragging axis contains the coordinate, restricted to states a user
// can grab. Returns -1 when the touch lands on no tab
func (e *Engine) findFocusedIndex(source ItemSource, p geom.Point) int {
	count := source.Count()
	if count == 0 {
		return -1
	}
	touch := e.arith.TouchPosition(geom.DraggingAxis, p)
	selected := e.model.SelectedIndex()
	if selected < 0 {
		selected = 0
	}

	for offset := 0; offset < count; offset++ {
		candidates := []int{selected + offset}
		if offset > 0 {
			candidates = append(candidates, selected-offset)
		}
		for _, idx := range candidates {
			if idx < 0 || idx >= count {
				continue
			}
			item := source.Item(idx)
			if !e.grabbable(source, item) {
				continue
			}
			if e.segmentContains(source, item, touch) {
				return idx
			}
		}
	}
	return -1
}

// grabbable reports whether a tab in its current state responds to touch:
// floating tabs, the top of the leading pile, and the top of the trailing
// pile (the stacked-end tab whose predecessor floats)
func (e *Engine) grabbable(source ItemSource, item *TabItem) bool {
	switch item.Tag.State {
	case StateFloating, StateStackedStartAtop:
		return true
	case StateStackedEnd:
		if item.Index == 0 {
			return true
		}
		prev := source.Item(item.Index - 1)
		return prev.Tag.State == StateFloating
	default:
		return false
	}
}

// segmentContains tests whether the touch coordinate falls into the strip
// of the tab that is actually visible: from its position to the next
// visible tab's position, or to its own extent when nothing covers it
func (e *Engine) segmentContains(source ItemSource, item *TabItem, touch float64) bool {
	start := item.Tag.Position
	end := start + e.arith.Size(geom.DraggingAxis, item)
	for i := item.Index + 1; i < source.Count(); i++ {
		next := source.Item(i)
		if next.Tag.State == StateHidden {
			continue
		}
		if next.Tag.Position < end {
			end = next.Tag.Position
		}
		break
	}
	return touch >= start && touch < end
}
