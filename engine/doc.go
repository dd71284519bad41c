// Package engine computes tab positions and states along the dragging axis.
//
// Engine Architecture
//
// The engine is the authority for where every tab sits and which discrete
// state it is in. Given a touch delta or a structural change (tab added,
// removed or selected), it produces a (position, state) pair for every
// affected tab. It never touches the screen itself: reads of current
// geometry go through the Arithmetics boundary and computed targets are
// handed to the orchestrator, which decides between an immediate layout
// write and an animated transition.
//
// Position Model:
//   - A tab's position is its offset along the dragging axis, measured
//     from the leading edge of the container.
//   - Positions grow with tab index: for two floating tabs i < j,
//     position(i) <= position(j).
//   - Low-index tabs compress into a pile at the leading edge
//     (StateStackedStart), high-index tabs into a pile at the trailing
//     edge (StateStackedEnd). Tabs buried deeper than the pile capacity
//     are StateHidden and their views are eligible for recycling.
//
// State Transitions:
//
//	Hidden <-> StackedStart <-> StackedStartAtop <-> Floating <-> StackedEnd <-> Hidden
//
// No transition is selected directly; every one is derived from the
// outcome of clamping a computed position into its legal range.
//
// Concurrency: the engine is single-threaded. All entry points run on the
// switcher's event loop; a structural change is processed to completion
// before the next touch event is handled.
package engine
