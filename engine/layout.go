package engine

// ComputeReferenceLayout produces the switcher-shown arrangement: the
// selected tab floats at the attached position, its predecessors pile at
// the leading edge, and its successors spread toward the trailing edge at
// max spacing until the end pile absorbs them. The result is a pure
// function of (count, selected, container size), so invoking it twice
// with no intervening change yields identical tags
func (e *Engine) ComputeReferenceLayout(source ItemSource, selected int) []*TabItem {
	count := source.Count()
	if count == 0 {
		return nil
	}
	if selected < 0 || selected >= count {
		panic("engine: selected index out of range")
	}

	items := make([]*TabItem, 0, count)
	attached := e.AttachedPosition(count)

	if count == 1 {
		item := source.Item(0)
		item.Tag.Position = attached
		item.Tag.State = StateFloating
		return append(items, item)
	}

	spacing := e.MaxTabSpacing(count)

	// Predecessors pile at the leading edge
	it := NewIterator(source).Reverse(true).Start(selected - 1).Build()
	for item := it.Next(); item != nil; item = it.Next() {
		pos, state := e.startBound(item.Index)
		item.Tag.Position = pos
		item.Tag.State = state
	}

	// Selected tab and successors
	it = NewIterator(source).Start(selected).Build()
	for item := it.Next(); item != nil; item = it.Next() {
		raw := attached + float64(item.Index-selected)*spacing
		pos, state := e.Clip(count, item.Index, raw)
		item.Tag.Position = pos
		item.Tag.State = state
	}

	for i := 0; i < count; i++ {
		items = append(items, source.Item(i))
	}
	e.promoteAtop(source)
	return items
}

// FirstVisibleIndex returns the lowest index whose tab is not hidden
func FirstVisibleIndex(items []*TabItem) int {
	for _, item := range items {
		if item.Tag.State != StateHidden {
			return item.Index
		}
	}
	return -1
}
