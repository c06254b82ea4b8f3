// SPDX-License-Identifier: MIT

// Package grid - flat and nested array conversions.
//
// Flat arrays mirror the buffer exactly as laid out in memory. Nested arrays hold
// major lines: rows for RowMajor, columns for ColumnMajor. Exports hand ownership
// of fresh memory to the caller; imports never retain the caller's slices.

package grid

// ToFlat returns a copy of the buffer in storage order, or nil when the grid is empty.
// Complexity: O(r*c).
func (g *Grid) ToFlat() []float64 {
	if g.IsEmpty() {
		return nil
	}
	out := make([]float64, len(g.data))
	copy(out, g.data)

	return out
}

// majorMinor returns (number of major lines, cells per line) for the current layout.
func (g *Grid) majorMinor() (major, minor int) {
	if g.layout == ColumnMajor {
		return g.cols, g.rows
	}

	return g.rows, g.cols
}

// ToNested returns the grid as major lines: ToNested()[i] is row i for RowMajor
// and column i for ColumnMajor. Returns nil when the grid is empty.
// Lines share one allocation but are capacity-clipped, so appending to one line
// never overwrites another.
// Complexity: O(r*c).
func (g *Grid) ToNested() [][]float64 {
	if g.IsEmpty() {
		return nil
	}
	major, minor := g.majorMinor()
	backing := make([]float64, len(g.data))
	copy(backing, g.data)

	out := make([][]float64, major)
	var i, base int
	for i = 0; i < major; i++ {
		base = i * minor
		out[i] = backing[base : base+minor : base+minor]
	}

	return out
}

// FromFlat builds a rows×cols grid from data stored with layout.
// The layout argument overrides any WithLayout option; other options apply.
// Returns nil when a dimension is < 1 or len(data) < rows*cols.
// Extra trailing elements of data are ignored.
// Complexity: O(r*c).
func FromFlat(data []float64, rows, cols int, layout Layout, opts ...Option) *Grid {
	if rows <= 0 || cols <= 0 || !layout.Valid() || len(data) < rows*cols {
		return nil
	}
	o := gatherOptions(opts...)
	g := &Grid{rows: rows, cols: cols, layout: layout, fill: o.fill}
	g.data = make([]float64, rows*cols)
	copy(g.data, data) // same layout on both sides: offsets coincide

	return g
}

// FromNested builds a rows×cols grid from nested lines. With RowMajor data[i][j]
// is cell (i, j); with ColumnMajor data[j][i] is cell (i, j). The result is stored
// with layout, which overrides any WithLayout option.
// Returns nil when a dimension is < 1, or when data has too few lines or any
// needed line is too short.
// Complexity: O(r*c).
func FromNested(data [][]float64, rows, cols int, layout Layout, opts ...Option) *Grid {
	if rows <= 0 || cols <= 0 || !layout.Valid() {
		return nil
	}
	major, minor := rows, cols
	if layout == ColumnMajor {
		major, minor = cols, rows
	}
	if len(data) < major {
		return nil
	}
	for i := 0; i < major; i++ {
		if len(data[i]) < minor {
			return nil
		}
	}

	o := gatherOptions(opts...)
	g := &Grid{rows: rows, cols: cols, layout: layout, fill: o.fill}
	g.data = make([]float64, rows*cols)
	for i := 0; i < major; i++ {
		copy(g.data[i*minor:(i+1)*minor], data[i]) // one major line per copy
	}

	return g
}
