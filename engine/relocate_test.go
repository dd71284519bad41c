package engine

import (
	"testing"

	"github.com/lixenwraith/tabstack/geom"
	"github.com/lixenwraith/tabstack/model"
)

// carryTags rebuilds a source from the model after a structural change,
// carrying each surviving tab's tag over by identity
func carryTags(m *model.TabModel, prev SliceSource) SliceSource {
	saved := make(map[*model.Tab]Tag, prev.Count())
	for i := 0; i < prev.Count(); i++ {
		saved[prev.Item(i).Tab] = prev.Item(i).Tag
	}
	items := make([]*TabItem, m.Count())
	for i := range items {
		tab := m.Tab(i)
		items[i] = &TabItem{Index: i, Tab: tab, Tag: saved[tab]}
	}
	return SliceSource(items)
}

func TestRemoveAtopTabPromotesPileNeighbor(t *testing.T) {
	e, m := newTestEngine(t, 7, 4)
	items := layoutItems(e, m)
	if items.Item(3).Tag.State != StateStackedStartAtop {
		t.Fatalf("precondition: item 3 = %v", items.Item(3).Tag.State)
	}
	removedTag := items.Item(3).Tag

	m.Remove(3)
	src := carryTags(m, items)

	relocations := e.RelocateOnRemove(src, 3, removedTag)

	if src.Item(1).Tag.State != StateStackedStartAtop {
		t.Errorf("item 1 = %v, want atop", src.Item(1).Tag.State)
	}
	if !geom.ApproxEqual(src.Item(2).Tag.Position, 3, 1e-9) || src.Item(2).Tag.State != StateFloating {
		t.Errorf("item 2 = %+v, want floating at the vacated slot", src.Item(2).Tag)
	}
	assertMonotonic(t, src)
	assertSingleAtop(t, src)

	if len(relocations) == 0 {
		t.Fatal("no relocations reported")
	}
	for _, r := range relocations {
		if r.Tag == r.PreviousTag {
			t.Errorf("unchanged item %d reported", r.Item.Index)
		}
		if r.Item.Tag != r.Tag {
			t.Errorf("item %d tag not applied", r.Item.Index)
		}
	}
}

func TestRemoveDownToSingleTabRecenters(t *testing.T) {
	e, m := newTestEngine(t, 2, 1)
	items := layoutItems(e, m)
	removedTag := items.Item(1).Tag

	m.Remove(1)
	src := carryTags(m, items)

	e.RelocateOnRemove(src, 1, removedTag)
	tag := src.Item(0).Tag
	if !geom.ApproxEqual(tag.Position, 66, 1e-9) || tag.State != StateFloating {
		t.Fatalf("tag = %+v, want floating at 66", tag)
	}
}

func TestRemoveOnEndSidePullsSuccessorsIn(t *testing.T) {
	e, m := newTestEngine(t, 5, 2)
	items := layoutItems(e, m)
	removedTag := items.Item(3).Tag

	m.Remove(3)
	src := carryTags(m, items)

	relocations := e.RelocateOnRemove(src, 3, removedTag)
	if len(relocations) == 0 {
		t.Fatal("no relocations reported")
	}
	assertMonotonic(t, src)

	// The old last tab fills the vacated slot and the selection settles on
	// the attached position recomputed for the smaller count
	if src.Item(3).Tag.Position >= 99 {
		t.Errorf("last tab did not move in: %.2f", src.Item(3).Tag.Position)
	}
	sel := src.Item(m.SelectedIndex()).Tag
	if !geom.ApproxEqual(sel.Position, e.AttachedPosition(4), 1e-6) {
		t.Errorf("selected at %.2f, want %.2f", sel.Position, e.AttachedPosition(4))
	}
}

func TestRemoveFromEmptyModelIsNoOp(t *testing.T) {
	e, m := newTestEngine(t, 1, 0)
	items := layoutItems(e, m)
	removedTag := items.Item(0).Tag

	m.Remove(0)
	src := carryTags(m, items)

	if got := e.RelocateOnRemove(src, 0, removedTag); got != nil {
		t.Fatalf("relocations = %v, want nil", got)
	}
}

func TestAddAtEndRevealsAtAttachedPosition(t *testing.T) {
	e, m := newTestEngine(t, 4, 3)
	items := layoutItems(e, m)

	m.Add(model.NewTab("new"))
	src := carryTags(m, items)

	revealTag, relocations := e.RelocateOnAdd(src, 4)

	if !geom.ApproxEqual(revealTag.Position, 50, 1e-9) || revealTag.State != StateFloating {
		t.Fatalf("reveal tag = %+v, want floating at 50", revealTag)
	}

	// The previously selected tab yields its slot, chained one gap below
	want := chainPrevious(50, 50, 25)
	if !geom.ApproxEqual(src.Item(3).Tag.Position, want, 1e-6) {
		t.Errorf("displaced neighbor at %.2f, want %.2f", src.Item(3).Tag.Position, want)
	}
	if len(relocations) == 0 {
		t.Fatal("no relocations reported")
	}
	assertMonotonic(t, src)
	assertSingleAtop(t, src)
}

func TestAddIntoEmptyModelNeedsNoRelocations(t *testing.T) {
	e, m := newTestEngine(t, 0, 0)

	m.Add(model.NewTab("first"))
	src := SliceSource([]*TabItem{{Index: 0, Tab: m.Tab(0)}})

	revealTag, relocations := e.RelocateOnAdd(src, 0)
	if relocations != nil {
		t.Fatalf("relocations = %v, want nil", relocations)
	}
	if !geom.ApproxEqual(revealTag.Position, 66, 1e-9) || revealTag.State != StateFloating {
		t.Fatalf("reveal tag = %+v", revealTag)
	}
}

func TestSelectMovesNewSelectionToAttached(t *testing.T) {
	e, m := newTestEngine(t, 5, 2)
	items := layoutItems(e, m)

	m.Select(3)
	relocations := e.RelocateOnSelect(items, 3)

	if !geom.ApproxEqual(items.Item(3).Tag.Position, 50, 1e-9) {
		t.Errorf("selected at %.2f, want 50", items.Item(3).Tag.Position)
	}
	if len(relocations) < 2 {
		t.Fatalf("relocations = %d, want the neighbors to shift too", len(relocations))
	}
	assertMonotonic(t, items)
	assertSingleAtop(t, items)
}

func TestSelectOutOfRangePanics(t *testing.T) {
	e, m := newTestEngine(t, 3, 0)
	items := layoutItems(e, m)

	mustPanic(t, func() { e.RelocateOnSelect(items, 3) })
}
