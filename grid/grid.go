// SPDX-License-Identifier: MIT

// Package grid - Grid storage & silent-clamp accessors.
//
// Purpose:
//   - Own one contiguous float64 buffer of exactly rows*cols cells.
//   - Route every read and write through the Layout selected for the grid.
//   - Keep the empty state canonical: 0×0 with a nil buffer.
//
// Access policy:
//   - At on an invalid coordinate returns the sentinel (NaN); Set discards the value.
//     Nothing panics and nothing returns an error.
//
// Complexity quicksheet:
//   - New: O(r*c); At/Set: O(1); Clone/CopyFrom/Equal: O(r*c).

package grid

import "math"

// bytesPerCell is the storage cost of one float64 cell.
const bytesPerCell = 8

// outOfBounds is returned by At for coordinates outside the grid.
var outOfBounds = math.NaN()

// Sentinel returns the value At reports for invalid coordinates (a quiet NaN).
func Sentinel() float64 { return outOfBounds }

// IsSentinel reports whether v is the out-of-bounds sentinel (any NaN).
func IsSentinel(v float64) bool { return math.IsNaN(v) }

// Grid is a dense two-dimensional float64 container.
//   - rows, cols hold the dimensions; both are zero iff the grid is empty.
//   - data has length rows*cols and is nil when the grid is empty.
//   - layout decides the offset of (row, col) inside data.
//   - fill initializes cells created by construction and growth.
//
// A Grid is not safe for concurrent mutation.
type Grid struct {
	rows, cols int
	data       []float64
	layout     Layout
	fill       float64
}

// New allocates a rows×cols grid with every cell set to the fill value.
// When either dimension is < 1 the result is the canonical empty grid, but
// the layout and fill value from opts are still recorded.
// Complexity: O(rows*cols).
func New(rows, cols int, opts ...Option) *Grid {
	o := gatherOptions(opts...)
	g := &Grid{layout: o.layout, fill: o.fill}
	if rows <= 0 || cols <= 0 {
		return g
	}
	g.rows, g.cols = rows, cols
	g.data = newBuffer(rows*cols, g.fill)

	return g
}

// newBuffer allocates n cells set to v.
func newBuffer(n int, v float64) []float64 {
	buf := make([]float64, n)
	if v != 0 || math.Signbit(v) {
		fillSlice(buf, v)
	}

	return buf
}

// fillSlice sets every element of s to v.
func fillSlice(s []float64, v float64) {
	for i := range s {
		s[i] = v
	}
}

// Rows returns the row count. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count. Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// Shape packs Rows() and Cols() into a single call.
func (g *Grid) Shape() (rows, cols int) { return g.rows, g.cols }

// Len returns the number of cells (rows*cols).
func (g *Grid) Len() int { return len(g.data) }

// Size returns the number of bytes held by the cell buffer.
func (g *Grid) Size() int { return len(g.data) * bytesPerCell }

// Layout returns the current storage order.
func (g *Grid) Layout() Layout { return g.layout }

// FillValue returns the value used for newly allocated cells.
func (g *Grid) FillValue() float64 { return g.fill }

// SetFillValue changes the value used by future growth. Existing cells are untouched.
func (g *Grid) SetFillValue(v float64) { g.fill = v }

// IsEmpty reports whether the grid holds no cells.
func (g *Grid) IsEmpty() bool { return len(g.data) == 0 }

// Clear releases the buffer and resets the grid to 0×0.
// Layout and fill value are kept.
func (g *Grid) Clear() {
	g.rows, g.cols = 0, 0
	g.data = nil
}

// inBounds reports whether (row, col) addresses a cell.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// offset maps an in-bounds coordinate through the current layout.
func (g *Grid) offset(row, col int) int {
	return g.layout.Offset(row, col, g.rows, g.cols)
}

// extent returns the size of the grid along a.
func (g *Grid) extent(a axis) int {
	if a == axisRow {
		return g.rows
	}

	return g.cols
}

// At returns the cell at (row, col), or the sentinel when the grid is empty
// or the coordinate is outside [0,Rows)×[0,Cols).
// Complexity: O(1).
func (g *Grid) At(row, col int) float64 {
	if !g.inBounds(row, col) {
		return outOfBounds
	}

	return g.data[g.offset(row, col)]
}

// Set stores v at (row, col). Out-of-bounds writes are discarded silently.
// Complexity: O(1).
func (g *Grid) Set(row, col int, v float64) {
	if !g.inBounds(row, col) {
		return // discarded by contract
	}
	g.data[g.offset(row, col)] = v
}

// Fill overwrites every cell with v.
func (g *Grid) Fill(v float64) { fillSlice(g.data, v) }

// Clone returns a deep copy with identical shape, layout, fill value and cells.
// Complexity: O(r*c).
func (g *Grid) Clone() *Grid {
	cp := &Grid{rows: g.rows, cols: g.cols, layout: g.layout, fill: g.fill}
	if g.data != nil {
		cp.data = make([]float64, len(g.data))
		copy(cp.data, g.data)
	}

	return cp
}

// CopyFrom makes g a deep copy of src (assignment semantics).
// Copying a grid onto itself, or from nil, does nothing.
// Complexity: O(r*c).
func (g *Grid) CopyFrom(src *Grid) {
	if src == nil || src == g {
		return
	}
	g.rows, g.cols = src.rows, src.cols
	g.layout, g.fill = src.layout, src.fill
	if src.data == nil {
		g.data = nil

		return
	}
	if cap(g.data) >= len(src.data) {
		g.data = g.data[:len(src.data):len(src.data)]
	} else {
		g.data = make([]float64, len(src.data))
	}
	copy(g.data, src.data)
}

// Equal reports whether g and other have the same shape, the same layout and
// the same value in every cell. Two NaN cells compare equal, since NaN is the
// grid's own sentinel. The fill value does not take part.
// Complexity: O(r*c).
func (g *Grid) Equal(other *Grid) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}
	if g.rows != other.rows || g.cols != other.cols || g.layout != other.layout {
		return false
	}
	// Same layout and shape: the buffers line up offset by offset.
	for i, v := range g.data {
		w := other.data[i]
		if v != w && !(math.IsNaN(v) && math.IsNaN(w)) {
			return false
		}
	}

	return true
}

// Do visits every cell in logical row-major order (row by row) and calls
// f(row, col, v). Iteration stops early when f returns false.
// Complexity: O(r*c).
func (g *Grid) Do(f func(row, col int, v float64) bool) {
	var i, j int
	for i = 0; i < g.rows; i++ {
		for j = 0; j < g.cols; j++ {
			if !f(i, j, g.data[g.offset(i, j)]) {
				return
			}
		}
	}
}

// Apply replaces each cell with f(row, col, v), visiting cells in storage order
// so the buffer is walked sequentially.
// Complexity: O(r*c).
func (g *Grid) Apply(f func(row, col int, v float64) float64) {
	major, minor := g.rows, g.cols
	if g.layout == ColumnMajor {
		major, minor = g.cols, g.rows
	}
	var i, j, off int
	for i = 0; i < major; i++ {
		for j = 0; j < minor; j++ {
			if g.layout == ColumnMajor {
				g.data[off] = f(j, i, g.data[off])
			} else {
				g.data[off] = f(i, j, g.data[off])
			}
			off++
		}
	}
}
