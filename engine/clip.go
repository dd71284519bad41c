package engine

// startBound returns the lowest legal position for the tab at index and
// the state it takes when pinned there. Low indices bottom out first: tab
// 0 at the leading edge, each successor one pile step further in, until
// the pile is full and deeper tabs hide beneath it
func (e *Engine) startBound(index int) (float64, State) {
	c := e.caps.StackedTabCount
	if index <= c {
		return e.caps.StackedTabSpacing * float64(index), StateStackedStart
	}
	return e.caps.StackedTabSpacing * float64(c), StateHidden
}

// endBound returns the highest legal position for the tab at index of
// count tabs and the state it takes when pinned there. The last tab stops
// one pile step short of the trailing edge; predecessors stack behind it
func (e *Engine) endBound(count, index int) (float64, State) {
	c := e.caps.StackedTabCount
	distFromLast := count - 1 - index
	if distFromLast <= c {
		pos := e.availableSpace() - e.caps.StackedTabSpacing*float64(distFromLast+1)
		return pos, StateStackedEnd
	}
	return e.availableSpace() - e.caps.StackedTabSpacing*float64(c+1), StateHidden
}

// Clip clamps a computed position into the legal range for the tab at
// index and derives the discrete state from the clamping outcome. This is
// the only place states change: a position pushed past a pile boundary
// flips the tab to the stacked or hidden state instead of floating
func (e *Engine) Clip(count, index int, position float64) (float64, State) {
	if index < 0 || index >= count {
		panic("engine: clip index out of range")
	}
	startPos, startState := e.startBound(index)
	if position <= startPos {
		return startPos, startState
	}
	endPos, endState := e.endBound(count, index)
	if position >= endPos {
		return endPos, endState
	}
	return position, StateFloating
}

// promoteAtop walks the items and promotes the start-pile tab adjacent to
// the floating region to the atop state, demoting any stale atop marker.
// The iterator's lookahead identifies the pile top without re-deriving
// neighbor indices
func (e *Engine) promoteAtop(source ItemSource) {
	it := NewIterator(source).Build()
	for item := it.Next(); item != nil; item = it.Next() {
		switch item.Tag.State {
		case StateStackedStartAtop:
			item.Tag.State = StateStackedStart
		case StateStackedStart:
		default:
			continue
		}
		next := it.Peek()
		if next == nil || !stackedAtStart(next.Tag.State) {
			item.Tag.State = StateStackedStartAtop
		}
	}
}

func stackedAtStart(s State) bool {
	return s == StateStackedStart || s == StateStackedStartAtop
}
