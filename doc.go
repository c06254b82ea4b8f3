// Package lvgrid is a small toolkit around one type: a dense, resizable,
// two-dimensional grid of float64 cells with a switchable storage layout.
//
// 🚀 What is in the box?
//
//	• grid/    : the Grid itself: row-major or column-major storage, bulk
//	              row/column deletion, resize with fill, in-place sub-rectangle
//	              extraction, flat and nested conversions, text dumps and
//	              gonum/mat interop
//	• gridplot/: heatmap rendering of a Grid via gonum/plot, for debugging
//	• examples/: a runnable walkthrough of every structural edit
//
// ✨ Ground rules
//
//   - Out-of-range reads return a NaN sentinel, out-of-range writes are ignored.
//   - Invalid edits are silent no-ops; nothing in grid panics on bad indices.
//   - Any dimension reaching zero collapses the grid to the canonical empty state.
//   - Edits along the contiguous axis of the current layout shift memory in place.
//
// Quick ASCII example (3x2, row-major vs column-major storage):
//
//	logical      row-major      column-major
//	a b          a b c d e f    a c e b d f
//	c d
//	e f
//
//	go get github.com/katalvlaran/lvgrid/grid
package lvgrid
