package engine

import (
	"fmt"

	"github.com/lixenwraith/tabstack/model"
)

// ItemSource supplies items for iteration. Item must return a stable
// pointer per index for the lifetime of one pass so that tag mutations
// made through the iterator survive lookbacks
type ItemSource interface {
	Count() int
	Item(index int) *TabItem
}

// TagResolver supplies the current tag for a tab when an item is
// materialized from the model
type TagResolver func(index int, tab *model.Tab) Tag

// ModelSource materializes items lazily from the tab model, caching each
// so repeated access yields the same pointer within a pass
type ModelSource struct {
	model *model.TabModel
	tags  TagResolver
	cache []*TabItem
}

// NewModelSource wraps the model as an item source for one pass
func NewModelSource(m *model.TabModel, tags TagResolver) *ModelSource {
	return &ModelSource{model: m, tags: tags, cache: make([]*TabItem, m.Count())}
}

func (s *ModelSource) Count() int { return s.model.Count() }

func (s *ModelSource) Item(index int) *TabItem {
	if index < 0 || index >= len(s.cache) {
		panic(fmt.Sprintf("engine: item index %d out of range [0, %d)", index, len(s.cache)))
	}
	if s.cache[index] == nil {
		tab := s.model.Tab(index)
		s.cache[index] = &TabItem{Index: index, Tab: tab, Tag: s.tags(index, tab)}
	}
	return s.cache[index]
}

// Items returns every item, materializing the full pass
func (s *ModelSource) Items() []*TabItem {
	out := make([]*TabItem, s.Count())
	for i := range out {
		out[i] = s.Item(i)
	}
	return out
}

// SliceSource serves an already-materialized array, used for initial
// layout passes that operate on precomputed items
type SliceSource []*TabItem

func (s SliceSource) Count() int { return len(s) }

func (s SliceSource) Item(index int) *TabItem {
	if index < 0 || index >= len(s) {
		panic(fmt.Sprintf("engine: item index %d out of range [0, %d)", index, len(s)))
	}
	return s[index]
}

// ItemIterator is a lazy, lock-step, bidirectional traversal over an item
// source. Besides advancing with Next, an algorithm can look one step back
// (Previous) or ahead (Peek) without disturbing the cursor, which is what
// the clip and cascade passes need to consult a neighbor's tag without
// re-deriving indices. Not safe for concurrent use; one pass, one iterator
type ItemIterator struct {
	source  ItemSource
	reverse bool
	cursor  int // index Next will produce
	current *TabItem
}

// IteratorBuilder configures and creates an ItemIterator
type IteratorBuilder struct {
	source   ItemSource
	reverse  bool
	start    int
	startSet bool
}

// NewIterator starts building an iterator over source
func NewIterator(source ItemSource) *IteratorBuilder {
	if source == nil {
		panic("engine: nil item source")
	}
	return &IteratorBuilder{source: source}
}

// Reverse makes the iterator walk from high indices to low
func (b *IteratorBuilder) Reverse(reverse bool) *IteratorBuilder {
	b.reverse = reverse
	return b
}

// Start places the cursor so the first Next returns the item at index.
// An out-of-range start yields an already-exhausted iterator, which lets
// passes over "everything before index i" degrade to a no-op at i == 0
func (b *IteratorBuilder) Start(index int) *IteratorBuilder {
	b.start = index
	b.startSet = true
	return b
}

// Build creates the iterator
func (b *IteratorBuilder) Build() *ItemIterator {
	it := &ItemIterator{source: b.source, reverse: b.reverse}
	switch {
	case b.startSet:
		it.cursor = b.start
	case b.reverse:
		it.cursor = b.source.Count() - 1
	default:
		it.cursor = 0
	}
	return it
}

// Next returns the next item in iteration order, or nil at the end
func (it *ItemIterator) Next() *TabItem {
	if it.cursor < 0 || it.cursor >= it.source.Count() {
		it.current = nil
		return nil
	}
	it.current = it.source.Item(it.cursor)
	if it.reverse {
		it.cursor--
	} else {
		it.cursor++
	}
	return it.current
}

// Peek returns the item Next would produce, without advancing
func (it *ItemIterator) Peek() *TabItem {
	if it.cursor < 0 || it.cursor >= it.source.Count() {
		return nil
	}
	return it.source.Item(it.cursor)
}

// Previous returns the item preceding the current one in iteration order,
// or nil when the current item is the first. Materializes the neighbor on
// demand so a pass starting mid-list can still look back
func (it *ItemIterator) Previous() *TabItem {
	if it.current == nil {
		return nil
	}
	var idx int
	if it.reverse {
		idx = it.current.Index + 1
	} else {
		idx = it.current.Index - 1
	}
	if idx < 0 || idx >= it.source.Count() {
		return nil
	}
	return it.source.Item(idx)
}

// Current returns the item most recently produced by Next, nil before the
// first call or after exhaustion
func (it *ItemIterator) Current() *TabItem {
	return it.current
}
