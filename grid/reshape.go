// SPDX-License-Identifier: MIT

// Package grid - structural edits: layout switch, deletion, resize, sub-range extraction.
//
// Every edit follows the same shape:
//   - Stage 1: validate; rejected input returns before any allocation.
//   - Stage 2: decide the path with one predicate, Layout.contiguous(axis):
//     when the affected dimension is the major one, surviving cells already form
//     contiguous runs and the buffer is edited in place (block move, grow, truncate);
//     otherwise a fresh buffer is populated cell by cell through both mappings.
//   - Stage 3: commit buffer and dimensions together.
//
// Determinism:
//   - Fixed i→j loop order; no hidden state besides the grid itself.

package grid

import "slices"

// singleAxis reports which axis differs between the current shape and (rows, cols)
// when exactly one of them does.
func (g *Grid) singleAxis(rows, cols int) (axis, bool) {
	switch {
	case cols == g.cols && rows != g.rows:
		return axisRow, true
	case rows == g.rows && cols != g.cols:
		return axisCol, true
	default:
		return 0, false
	}
}

// releaseRatio bounds how much larger than the live cells a shrunk buffer's
// backing array may stay before the survivors move to a fresh allocation.
const releaseRatio = 2

// shrink truncates the buffer to its first n cells. The backing array is kept
// (capacity clipped to n) unless it exceeds releaseRatio*n, in which case the
// cells are copied into an exact-size buffer and the old array is released.
func (g *Grid) shrink(n int) {
	if cap(g.data) > releaseRatio*n {
		g.data = slices.Clip(slices.Clone(g.data[:n]))

		return
	}
	g.data = slices.Clip(g.data[:n])
}

// reallocate resizes the buffer to n cells keeping its prefix; new trailing cells
// receive the fill value. Shrinking goes through shrink.
func (g *Grid) reallocate(n int) {
	old := len(g.data)
	if n <= old {
		g.shrink(n)

		return
	}
	g.data = slices.Grow(g.data, n-old)[:n]
	fillSlice(g.data[old:], g.fill)
}

// SetLayout switches the storage order, re-linearizing every cell.
// Same layout or an unknown value: no-op. Empty grid: only the layout changes.
// Complexity: O(r*c) time and memory.
func (g *Grid) SetLayout(l Layout) {
	if !l.Valid() || l == g.layout {
		return
	}
	if g.IsEmpty() {
		g.layout = l

		return
	}

	data := make([]float64, len(g.data))
	var i, j int
	for i = 0; i < g.rows; i++ {
		for j = 0; j < g.cols; j++ {
			data[l.Offset(i, j, g.rows, g.cols)] = g.data[g.offset(i, j)]
		}
	}
	g.data, g.layout = data, l
}

// DeleteRows removes count rows starting at start.
// Rejected (no-op) when start < 0, count < 1 or start+count > Rows().
// Removing every row leaves the canonical empty grid.
// Complexity: O(r*c) worst case; the row-major path is a single block move.
func (g *Grid) DeleteRows(start, count int) { g.deleteLines(axisRow, start, count) }

// DeleteCols removes count columns starting at start.
// Rejected (no-op) when start < 0, count < 1 or start+count > Cols().
// Removing every column leaves the canonical empty grid.
// Complexity: O(r*c) worst case; the column-major path is a single block move.
func (g *Grid) DeleteCols(start, count int) { g.deleteLines(axisCol, start, count) }

// deleteLines removes [start, start+count) along a.
func (g *Grid) deleteLines(a axis, start, count int) {
	n := g.extent(a)
	if start < 0 || count < 1 || start > n-count {
		return
	}
	if count == n {
		g.Clear()

		return
	}

	rows, cols := g.rows, g.cols
	if a == axisRow {
		rows -= count
	} else {
		cols -= count
	}

	if g.layout.contiguous(a) {
		// Deleted lines are one hole in the buffer: shift the tail over it.
		stride := len(g.data) / n // cells per line
		g.data = slices.Delete(g.data, start*stride, (start+count)*stride)
		g.shrink(len(g.data))
	} else {
		data := make([]float64, rows*cols)
		var i, j, si, sj int
		for i = 0; i < rows; i++ {
			si = i
			if a == axisRow && i >= start {
				si += count // skip the hole
			}
			for j = 0; j < cols; j++ {
				sj = j
				if a == axisCol && j >= start {
					sj += count
				}
				data[g.layout.Offset(i, j, rows, cols)] = g.data[g.offset(si, sj)]
			}
		}
		g.data = data
	}
	g.rows, g.cols = rows, cols
}

// Resize changes the grid to rows×cols.
//   - Same shape or a negative dimension: no-op.
//   - Any zero dimension: the grid is cleared to the canonical empty state.
//   - Only the major dimension changes: the buffer grows or shrinks in place,
//     new trailing cells get the fill value.
//   - Otherwise: a new buffer pre-filled with the fill value receives the overlap
//     [0,min(r,r'))×[0,min(c,c')); cells outside the overlap are dropped.
//
// Complexity: O(r'*c').
func (g *Grid) Resize(rows, cols int) {
	if rows < 0 || cols < 0 || (rows == g.rows && cols == g.cols) {
		return
	}
	if rows == 0 || cols == 0 {
		g.Clear()

		return
	}

	if a, ok := g.singleAxis(rows, cols); ok && g.layout.contiguous(a) {
		g.reallocate(rows * cols)
	} else {
		data := newBuffer(rows*cols, g.fill)
		r, c := min(rows, g.rows), min(cols, g.cols)
		var i, j int
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				data[g.layout.Offset(i, j, rows, cols)] = g.data[g.offset(i, j)]
			}
		}
		g.data = data
	}
	g.rows, g.cols = rows, cols
}

// SetRowCount is Resize(rows, Cols()).
func (g *Grid) SetRowCount(rows int) { g.Resize(rows, g.cols) }

// SetColCount is Resize(Rows(), cols).
func (g *Grid) SetColCount(cols int) { g.Resize(g.rows, cols) }

// partShape validates inclusive bounds and returns the extracted shape.
func (g *Grid) partShape(rowStart, rowEnd, colStart, colEnd int) (rows, cols int, ok bool) {
	if rowStart < 0 || colStart < 0 || rowStart > rowEnd || colStart > colEnd ||
		rowEnd >= g.rows || colEnd >= g.cols {
		return 0, 0, false
	}

	return rowEnd - rowStart + 1, colEnd - colStart + 1, true
}

// partRun reports whether a rows×cols region is a single contiguous run of the buffer,
// i.e. whole major lines.
func (g *Grid) partRun(rows, cols int) bool {
	a, ok := g.singleAxis(rows, cols)

	return ok && g.layout.contiguous(a)
}

// gather copies the rows×cols region anchored at (rowStart, colStart) into a new
// buffer laid out with the current layout.
func (g *Grid) gather(rowStart, colStart, rows, cols int) []float64 {
	data := make([]float64, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			data[g.layout.Offset(i, j, rows, cols)] = g.data[g.offset(i+rowStart, j+colStart)]
		}
	}

	return data
}

// Part shrinks the grid in place to the inclusive sub-range
// [rowStart..rowEnd]×[colStart..colEnd].
// Rejected (no-op) when a start exceeds its end, a bound is negative, or an end
// is outside the grid.
// Whole major lines are moved with one block copy (or just clipped when the run
// starts at offset 0); other regions are gathered cell by cell.
// Complexity: O(r'*c').
func (g *Grid) Part(rowStart, rowEnd, colStart, colEnd int) {
	rows, cols, ok := g.partShape(rowStart, rowEnd, colStart, colEnd)
	if !ok || (rows == g.rows && cols == g.cols) {
		return
	}

	if g.partRun(rows, cols) {
		n := rows * cols
		if off := g.offset(rowStart, colStart); off != 0 {
			copy(g.data, g.data[off:off+n]) // overlapping move toward the front
		}
		g.shrink(n)
	} else {
		g.data = g.gather(rowStart, colStart, rows, cols)
	}
	g.rows, g.cols = rows, cols
}

// PartCopy returns a new grid holding the inclusive sub-range
// [rowStart..rowEnd]×[colStart..colEnd]; g is not modified.
// Returns nil when the bounds are rejected (same rules as Part).
// Complexity: O(r'*c').
func (g *Grid) PartCopy(rowStart, rowEnd, colStart, colEnd int) *Grid {
	rows, cols, ok := g.partShape(rowStart, rowEnd, colStart, colEnd)
	if !ok {
		return nil
	}

	out := &Grid{rows: rows, cols: cols, layout: g.layout, fill: g.fill}
	if g.partRun(rows, cols) || (rows == g.rows && cols == g.cols) {
		off := g.offset(rowStart, colStart)
		out.data = make([]float64, rows*cols)
		copy(out.data, g.data[off:off+rows*cols]) // single block copy
	} else {
		out.data = g.gather(rowStart, colStart, rows, cols)
	}

	return out
}
