package engine

import "github.com/lixenwraith/tabstack/geom"

// Relocation is one tab's movement caused by a structural change. The
// previous tag is preserved so the orchestrator can decide between an
// immediate write and an animated transition, and so view-stored tags can
// be reconciled with the newly computed ones
type Relocation struct {
	Item        *TabItem
	PreviousTag Tag
	Tag         Tag
}

// snapshotTags captures every tag before a structural pass mutates them
func snapshotTags(source ItemSource) []Tag {
	tags := make([]Tag, source.Count())
	for i := range tags {
		tags[i] = source.Item(i).Tag
	}
	return tags
}

// diffTags collects every item whose tag a structural pass changed
func diffTags(source ItemSource, before []Tag) []Relocation {
	var out []Relocation
	for i := range before {
		item := source.Item(i)
		if item.Tag != before[i] {
			out = append(out, Relocation{Item: item, PreviousTag: before[i], Tag: item.Tag})
		}
	}
	return out
}

// relocateCascade walks from the anchor index toward one stack boundary,
// shifting each tab by a delta that decays multiplicatively with the
// ratio of the tab's current spacing to the max spacing. Tight spacing
// absorbs the shift quickly, so a structural change reads as a smooth
// local compaction rather than a global jump.
//
// towardStart selects the walk direction; delta is the shift applied to
// the first affected tab
func (e *Engine) relocateCascade(source ItemSource, anchor int, delta float64, towardStart bool) {
	count := source.Count()
	if count == 0 {
		return
	}
	maxSpacing := e.MaxTabSpacing(count)

	it := NewIterator(source).Reverse(towardStart).Start(anchor).Build()
	for item := it.Next(); item != nil; item = it.Next() {
		// Shifts below a twentieth of a cell are invisible on a terminal
		// surface; stopping here keeps pile tabs pinned on their bounds
		if geom.Abs(delta) < relocateCutoff {
			break
		}
		prev := item.Tag
		raw := prev.Position + delta
		pos, state := e.Clip(count, item.Index, raw)
		item.Tag.Position = pos
		item.Tag.State = state

		// Decay the shift by the pre-change spacing toward the boundary
		next := it.Peek()
		if next == nil {
			break
		}
		var gap float64
		if towardStart {
			gap = prev.Position - next.Tag.Position
		} else {
			gap = next.Tag.Position - prev.Position
		}
		if maxSpacing > 0 {
			delta *= geom.Clamp01(gap / maxSpacing)
		}
	}
}

const relocateCutoff = 0.05

// RelocateOnRemove computes the relocations after the tab at removedIndex
// (carrying removedTag) left the collection. source reflects the model
// after removal; indices have already shifted. The vacated slot is filled
// from the side of the nearest stack boundary: the neighbor moves into
// the slot and the shift decays into the pile behind it
func (e *Engine) RelocateOnRemove(source ItemSource, removedIndex int, removedTag Tag) []Relocation {
	count := source.Count()
	if count == 0 {
		return nil
	}
	before := snapshotTags(source)

	if count == 1 {
		item := source.Item(0)
		item.Tag.Position = e.AttachedPosition(1)
		item.Tag.State = StateFloating
		return diffTags(source, before)
	}

	towardStart := removedIndex <= count-removedIndex
	if towardStart && removedIndex > 0 {
		// Predecessors move up into the vacated slot
		anchor := removedIndex - 1
		delta := removedTag.Position - source.Item(anchor).Tag.Position
		e.relocateCascade(source, anchor, delta, true)
	} else if removedIndex < count {
		// Successors move down into the vacated slot. After removal the
		// old successor sits at removedIndex
		delta := removedTag.Position - source.Item(removedIndex).Tag.Position
		e.relocateCascade(source, removedIndex, delta, false)
	}

	e.correctAttached(source)
	e.promoteAtop(source)
	return diffTags(source, before)
}

// RelocateOnAdd computes the reveal tag for a tab just inserted at
// addedIndex plus the relocations that make room for it. source reflects
// the model after insertion. The new tab is the selection, so it lands at
// the attached position and both neighbors cascade away toward their
// stack boundaries
func (e *Engine) RelocateOnAdd(source ItemSource, addedIndex int) (Tag, []Relocation) {
	count := source.Count()
	attached := e.AttachedPosition(count)

	added := source.Item(addedIndex)
	pos, state := e.Clip(count, addedIndex, attached)
	added.Tag = Tag{Position: pos, State: state}

	if count == 1 {
		return added.Tag, nil
	}
	before := snapshotTags(source)
	before[addedIndex] = added.Tag
	spacing := e.MaxTabSpacing(count)

	// Push the start-side neighbor down to the chained slot below the
	// new tab, the end-side neighbor up by one spacing
	if addedIndex > 0 {
		below := source.Item(addedIndex - 1)
		target := chainPrevious(pos, attached, spacing)
		if below.Tag.Position > target {
			e.relocateCascade(source, addedIndex-1, target-below.Tag.Position, true)
		}
	}
	if addedIndex < count-1 {
		above := source.Item(addedIndex + 1)
		target := pos + spacing
		if above.Tag.Position < target {
			e.relocateCascade(source, addedIndex+1, target-above.Tag.Position, false)
		}
	}

	e.promoteAtop(source)
	added.Tag.State = source.Item(addedIndex).Tag.State
	return added.Tag, diffTags(source, before)
}

// RelocateOnSelect computes the relocations after the selection moved to
// newSelected: the newly selected tab travels to the attached position
// and the shift decays outward in both directions
func (e *Engine) RelocateOnSelect(source ItemSource, newSelected int) []Relocation {
	count := source.Count()
	if count == 0 {
		return nil
	}
	if newSelected < 0 || newSelected >= count {
		panic("engine: selected index out of range")
	}
	before := snapshotTags(source)

	attached := e.AttachedPosition(count)
	delta := attached - source.Item(newSelected).Tag.Position

	e.relocateCascade(source, newSelected, delta, false)
	if newSelected > 0 {
		e.relocateCascade(source, newSelected-1, delta, true)
	}
	e.promoteAtop(source)
	return diffTags(source, before)
}

// correctAttached nudges the selected tab toward the attached position
// recomputed for the new count, decaying outward. Count changes move the
// attached position and every spacing with it
func (e *Engine) correctAttached(source ItemSource) {
	selected := e.model.SelectedIndex()
	if selected < 0 || selected >= source.Count() {
		return
	}
	attached := e.AttachedPosition(source.Count())
	delta := attached - source.Item(selected).Tag.Position
	if geom.Abs(delta) < 1e-9 {
		return
	}
	e.relocateCascade(source, selected, delta, false)
	if selected > 0 {
		e.relocateCascade(source, selected-1, delta, true)
	}
}
