package model

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

var tabIDCounter atomic.Uint64

// Tab is one entry of the switcher. Identity is by pointer; two tabs with
// the same title are still distinct tabs. Display attributes may change
// after creation and notify registered observers so decorators can redraw
type Tab struct {
	id uint64

	title        string
	icon         rune
	closeable    bool
	contentColor tcell.Color

	observers []TabObserver
}

// TabObserver is notified when a tab's display attributes change
type TabObserver interface {
	OnTabChanged(tab *Tab)
}

// NewTab creates a closeable tab with the given title
func NewTab(title string) *Tab {
	return &Tab{
		id:           tabIDCounter.Add(1),
		title:        title,
		closeable:    true,
		contentColor: tcell.ColorDefault,
	}
}

// ID returns the process-unique tab identifier
func (t *Tab) ID() uint64 { return t.id }

func (t *Tab) Title() string { return t.title }

func (t *Tab) SetTitle(title string) {
	if t.title == title {
		return
	}
	t.title = title
	t.notify()
}

func (t *Tab) Icon() rune { return t.icon }

func (t *Tab) SetIcon(icon rune) {
	if t.icon == icon {
		return
	}
	t.icon = icon
	t.notify()
}

// Closeable reports whether a swipe past the threshold removes the tab.
// Non-closeable tabs always spring back
func (t *Tab) Closeable() bool { return t.closeable }

func (t *Tab) SetCloseable(closeable bool) {
	if t.closeable == closeable {
		return
	}
	t.closeable = closeable
	t.notify()
}

func (t *Tab) ContentColor() tcell.Color { return t.contentColor }

func (t *Tab) SetContentColor(color tcell.Color) {
	if t.contentColor == color {
		return
	}
	t.contentColor = color
	t.notify()
}

// AddObserver registers an observer for display attribute changes
func (t *Tab) AddObserver(o TabObserver) {
	t.observers = append(t.observers, o)
}

// RemoveObserver unregisters a previously added observer
func (t *Tab) RemoveObserver(o TabObserver) {
	for i, cur := range t.observers {
		if cur == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *Tab) notify() {
	for _, o := range t.observers {
		o.OnTabChanged(t)
	}
}
