// Package model owns the ordered tab collection and the selection.
//
// The drag engine is a pure consumer of this package: it reads counts,
// tabs and the selected index, and requests removal or selection changes
// through its own callback surface, never by mutating the model directly.
// All mutation happens here and fans out to registered listeners.
package model

import "fmt"

// Listener receives structural change notifications. Callbacks run
// synchronously on the caller's goroutine, in registration order
type Listener interface {
	// OnTabAdded fires after a tab is inserted at index
	OnTabAdded(index int, tab *Tab, selectionChanged bool)

	// OnTabRemoved fires after a tab is removed from index. selected is
	// the tab selected after removal, or nil when the model became empty
	OnTabRemoved(index int, tab *Tab, selected *Tab, selectionChanged bool)

	// OnAllTabsAdded fires after a bulk AddAll
	OnAllTabsAdded(tabs []*Tab)

	// OnAllTabsRemoved fires after Clear
	OnAllTabsRemoved(tabs []*Tab)

	// OnSelectionChanged fires when the selected index moves without a
	// structural change
	OnSelectionChanged(previousIndex, newIndex int, tab *Tab)
}

// Padding is empty space reserved around the tab container, in container
// units. The engine subtracts it from the available drag-axis space
type Padding struct {
	Start, End float64
}

// TabModel is the ordered tab collection plus selection state.
// Not safe for concurrent use; the switcher event loop is the only caller
type TabModel struct {
	tabs     []*Tab
	selected int // index into tabs, -1 when empty

	addButtonShown bool
	padding        Padding

	listeners []Listener
}

// NewTabModel returns an empty model with no selection
func NewTabModel() *TabModel {
	return &TabModel{selected: -1}
}

// Count returns the number of tabs
func (m *TabModel) Count() int { return len(m.tabs) }

// IsEmpty reports whether the model holds no tabs
func (m *TabModel) IsEmpty() bool { return len(m.tabs) == 0 }

// Tab returns the tab at index. Out-of-range index is a caller bug
func (m *TabModel) Tab(index int) *Tab {
	if index < 0 || index >= len(m.tabs) {
		panic(fmt.Sprintf("model: tab index %d out of range [0, %d)", index, len(m.tabs)))
	}
	return m.tabs[index]
}

// IndexOf returns the index of tab, or -1 when absent
func (m *TabModel) IndexOf(tab *Tab) int {
	for i, t := range m.tabs {
		if t == tab {
			return i
		}
	}
	return -1
}

// SelectedIndex returns the selected tab index, -1 when empty
func (m *TabModel) SelectedIndex() int { return m.selected }

// SelectedTab returns the selected tab, nil when empty
func (m *TabModel) SelectedTab() *Tab {
	if m.selected < 0 {
		return nil
	}
	return m.tabs[m.selected]
}

// AddButtonShown reports whether the surface offers a new-tab affordance
// alongside the strip while the overview is shown
func (m *TabModel) AddButtonShown() bool { return m.addButtonShown }

func (m *TabModel) SetAddButtonShown(shown bool) { m.addButtonShown = shown }

func (m *TabModel) Padding() Padding { return m.padding }

func (m *TabModel) SetPadding(p Padding) { m.padding = p }

// AddListener registers a structural change listener
func (m *TabModel) AddListener(l Listener) {
	m.listeners = append(m.listeners, l)
}

// RemoveListener unregisters a previously added listener
func (m *TabModel) RemoveListener(l Listener) {
	for i, cur := range m.listeners {
		if cur == l {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return
		}
	}
}

// Add appends tab and selects it
func (m *TabModel) Add(tab *Tab) {
	m.AddAt(len(m.tabs), tab)
}

// AddAt inserts tab at index and selects it
func (m *TabModel) AddAt(index int, tab *Tab) {
	if tab == nil {
		panic("model: nil tab")
	}
	if index < 0 || index > len(m.tabs) {
		panic(fmt.Sprintf("model: insert index %d out of range [0, %d]", index, len(m.tabs)))
	}
	// Compare tab identity, not indices: inserting at the selected index
	// shifts the previously selected tab aside, which is a change even
	// though the index stays put
	previous := m.SelectedTab()
	m.tabs = append(m.tabs, nil)
	copy(m.tabs[index+1:], m.tabs[index:])
	m.tabs[index] = tab

	selectionChanged := previous != tab
	m.selected = index

	for _, l := range m.listeners {
		l.OnTabAdded(index, tab, selectionChanged)
	}
}

// AddAll appends tabs, selecting the first added tab. No-op for empty input
func (m *TabModel) AddAll(tabs []*Tab) {
	if len(tabs) == 0 {
		return
	}
	first := len(m.tabs)
	m.tabs = append(m.tabs, tabs...)
	m.selected = first

	for _, l := range m.listeners {
		l.OnAllTabsAdded(tabs)
	}
}

// Remove deletes the tab at index. When the selected tab is removed, the
// successor is selected, or the new last tab when the removed one was last
func (m *TabModel) Remove(index int) *Tab {
	if index < 0 || index >= len(m.tabs) {
		panic(fmt.Sprintf("model: remove index %d out of range [0, %d)", index, len(m.tabs)))
	}
	tab := m.tabs[index]
	m.tabs = append(m.tabs[:index], m.tabs[index+1:]...)

	selectionChanged := false
	switch {
	case len(m.tabs) == 0:
		m.selected = -1
		selectionChanged = true
	case index < m.selected:
		m.selected--
	case index == m.selected:
		if m.selected >= len(m.tabs) {
			m.selected = len(m.tabs) - 1
		}
		selectionChanged = true
	}

	for _, l := range m.listeners {
		l.OnTabRemoved(index, tab, m.SelectedTab(), selectionChanged)
	}
	return tab
}

// Clear removes every tab
func (m *TabModel) Clear() {
	if len(m.tabs) == 0 {
		return
	}
	removed := m.tabs
	m.tabs = nil
	m.selected = -1

	for _, l := range m.listeners {
		l.OnAllTabsRemoved(removed)
	}
}

// Select moves the selection to index
func (m *TabModel) Select(index int) {
	if index < 0 || index >= len(m.tabs) {
		panic(fmt.Sprintf("model: select index %d out of range [0, %d)", index, len(m.tabs)))
	}
	if index == m.selected {
		return
	}
	prev := m.selected
	m.selected = index

	for _, l := range m.listeners {
		l.OnSelectionChanged(prev, index, m.tabs[index])
	}
}
