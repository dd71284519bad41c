// Package recycler pools visual handles per item and view type. When a
// tab leaves the screen its view is detached and parked; when another tab
// of the same view type appears, the parked view is rebound instead of
// building a new one.
package recycler

import "fmt"

// Adapter builds, binds and tears down views. V is the concrete view
// handle type of the rendering surface
type Adapter[K comparable, V any] interface {
	// ViewType groups keys that can share pooled views
	ViewType(key K) int

	// OnInflate builds a fresh view for key
	OnInflate(key K, viewType int) V

	// OnBind attaches a new or recycled view to key before it is shown
	OnBind(key K, view V, recycled bool)

	// OnRelease detaches the view from key before it is pooled
	OnRelease(key K, view V)
}

// Recycler tracks active views by key and parks released ones by view
// type. Single-threaded: the switcher loop is the only caller
type Recycler[K comparable, V any] struct {
	adapter Adapter[K, V]
	active  map[K]V
	types   map[K]int
	pool    map[int][]V
}

// New creates a recycler around adapter
func New[K comparable, V any](adapter Adapter[K, V]) *Recycler[K, V] {
	if adapter == nil {
		panic("recycler: nil adapter")
	}
	return &Recycler[K, V]{
		adapter: adapter,
		active:  make(map[K]V),
		types:   make(map[K]int),
		pool:    make(map[int][]V),
	}
}

// Inflate returns the view for key, binding a pooled or freshly built one
// when the key has none yet. The second result is true when the view was
// newly created rather than reused
func (r *Recycler[K, V]) Inflate(key K) (V, bool) {
	if view, ok := r.active[key]; ok {
		return view, false
	}
	vt := r.adapter.ViewType(key)
	if parked := r.pool[vt]; len(parked) > 0 {
		view := parked[len(parked)-1]
		r.pool[vt] = parked[:len(parked)-1]
		r.adapter.OnBind(key, view, true)
		r.active[key] = view
		r.types[key] = vt
		return view, false
	}
	view := r.adapter.OnInflate(key, vt)
	r.adapter.OnBind(key, view, false)
	r.active[key] = view
	r.types[key] = vt
	return view, true
}

// View returns the active view for key without inflating
func (r *Recycler[K, V]) View(key K) (V, bool) {
	view, ok := r.active[key]
	return view, ok
}

// Remove releases key's view back to the pool. Removing an inactive key
// is a caller bug
func (r *Recycler[K, V]) Remove(key K) {
	view, ok := r.active[key]
	if !ok {
		panic(fmt.Sprintf("recycler: remove of inactive key %v", key))
	}
	r.adapter.OnRelease(key, view)
	vt := r.types[key]
	delete(r.active, key)
	delete(r.types, key)
	r.pool[vt] = append(r.pool[vt], view)
}

// RemoveAll releases every active view
func (r *Recycler[K, V]) RemoveAll() {
	for key := range r.active {
		r.Remove(key)
	}
}

// ActiveCount returns the number of bound views
func (r *Recycler[K, V]) ActiveCount() int { return len(r.active) }

// ClearCache drops pooled views so they can be collected
func (r *Recycler[K, V]) ClearCache() {
	r.pool = make(map[int][]V)
}
