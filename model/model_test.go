package model

import "testing"

// recordingListener captures callback invocations for assertions
type recordingListener struct {
	added      []int
	addChanged []bool
	removed    []int
	selected   [][2]int
	bulkAdd    int
	bulkDrop   int
}

func (r *recordingListener) OnTabAdded(index int, tab *Tab, selectionChanged bool) {
	r.added = append(r.added, index)
	r.addChanged = append(r.addChanged, selectionChanged)
}

func (r *recordingListener) OnTabRemoved(index int, tab *Tab, selected *Tab, selectionChanged bool) {
	r.removed = append(r.removed, index)
}

func (r *recordingListener) OnAllTabsAdded(tabs []*Tab)   { r.bulkAdd += len(tabs) }
func (r *recordingListener) OnAllTabsRemoved(tabs []*Tab) { r.bulkDrop += len(tabs) }

func (r *recordingListener) OnSelectionChanged(prev, next int, tab *Tab) {
	r.selected = append(r.selected, [2]int{prev, next})
}

func TestAddSelectsNewTab(t *testing.T) {
	m := NewTabModel()
	a, b := NewTab("a"), NewTab("b")
	m.Add(a)
	m.Add(b)

	if m.Count() != 2 {
		t.Fatalf("count = %d, want 2", m.Count())
	}
	if m.SelectedTab() != b {
		t.Errorf("selected = %v, want b", m.SelectedTab())
	}
	if m.IndexOf(a) != 0 || m.IndexOf(b) != 1 {
		t.Errorf("unexpected order: a=%d b=%d", m.IndexOf(a), m.IndexOf(b))
	}
}

func TestAddAtShiftsSelection(t *testing.T) {
	m := NewTabModel()
	m.Add(NewTab("a"))
	m.Add(NewTab("b"))
	inserted := NewTab("x")
	m.AddAt(1, inserted)

	if m.SelectedIndex() != 1 || m.SelectedTab() != inserted {
		t.Errorf("selection = %d (%v), want inserted tab at 1", m.SelectedIndex(), m.SelectedTab())
	}
	if m.Tab(2).Title() != "b" {
		t.Errorf("tab 2 = %q, want b", m.Tab(2).Title())
	}
}

func TestAddAtSelectedIndexReportsSelectionChange(t *testing.T) {
	m := NewTabModel()
	m.Add(NewTab("a"))
	m.Add(NewTab("b"))
	m.Select(0)

	r := &recordingListener{}
	m.AddListener(r)

	// The index stays 0 but the tab occupying it is now the insert; the
	// previously selected tab was shifted aside
	m.AddAt(0, NewTab("x"))
	if len(r.addChanged) != 1 || !r.addChanged[0] {
		t.Errorf("insert at the selected index must report a selection change, got %v", r.addChanged)
	}
	if m.SelectedTab().Title() != "x" {
		t.Errorf("selected = %q, want the inserted tab", m.SelectedTab().Title())
	}
}

func TestRemoveSelectedPicksSuccessor(t *testing.T) {
	m := NewTabModel()
	for _, name := range []string{"a", "b", "c"} {
		m.Add(NewTab(name))
	}
	m.Select(1)
	m.Remove(1)

	if m.SelectedIndex() != 1 || m.SelectedTab().Title() != "c" {
		t.Errorf("selection after removing selected = %d (%q), want successor c at 1",
			m.SelectedIndex(), m.SelectedTab().Title())
	}
}

func TestRemoveLastSelectedPicksNewLast(t *testing.T) {
	m := NewTabModel()
	m.Add(NewTab("a"))
	m.Add(NewTab("b"))
	m.Remove(1) // b is selected and last

	if m.SelectedIndex() != 0 || m.SelectedTab().Title() != "a" {
		t.Errorf("selection = %d, want 0 (a)", m.SelectedIndex())
	}
}

func TestRemoveBeforeSelectionShiftsIndex(t *testing.T) {
	m := NewTabModel()
	for _, name := range []string{"a", "b", "c"} {
		m.Add(NewTab(name))
	}
	m.Select(2)
	m.Remove(0)

	if m.SelectedIndex() != 1 || m.SelectedTab().Title() != "c" {
		t.Errorf("selection = %d (%q), want c at 1", m.SelectedIndex(), m.SelectedTab().Title())
	}
}

func TestListenerNotifications(t *testing.T) {
	m := NewTabModel()
	r := &recordingListener{}
	m.AddListener(r)

	m.Add(NewTab("a"))
	m.Add(NewTab("b"))
	m.Select(0)
	m.Remove(0)
	m.AddAll([]*Tab{NewTab("c"), NewTab("d")})
	m.Clear()

	if len(r.added) != 2 {
		t.Errorf("added notifications = %d, want 2", len(r.added))
	}
	if len(r.removed) != 1 || r.removed[0] != 0 {
		t.Errorf("removed notifications = %v, want [0]", r.removed)
	}
	if len(r.selected) != 1 || r.selected[0] != [2]int{1, 0} {
		t.Errorf("selection notifications = %v, want [[1 0]]", r.selected)
	}
	if r.bulkAdd != 2 || r.bulkDrop != 3 {
		t.Errorf("bulk notifications add=%d drop=%d, want 2 and 3", r.bulkAdd, r.bulkDrop)
	}
}

func TestClearEmptiesSelection(t *testing.T) {
	m := NewTabModel()
	m.Add(NewTab("a"))
	m.Clear()
	if m.SelectedIndex() != -1 || m.SelectedTab() != nil {
		t.Errorf("selection after clear = %d, want -1", m.SelectedIndex())
	}
}

func TestTabObserver(t *testing.T) {
	tab := NewTab("a")
	var changed int
	obs := tabObserverFunc(func(*Tab) { changed++ })
	tab.AddObserver(obs)

	tab.SetTitle("b")
	tab.SetTitle("b") // unchanged, no notification
	tab.SetCloseable(false)

	if changed != 2 {
		t.Errorf("observer fired %d times, want 2", changed)
	}
}

type tabObserverFunc func(*Tab)

func (f tabObserverFunc) OnTabChanged(tab *Tab) { f(tab) }
