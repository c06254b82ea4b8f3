// SPDX-License-Identifier: MIT

// Package grid - storage order (layout) and the index mapper.
//
// Purpose:
//   - Translate a logical (row, col) coordinate into an offset of the flat buffer.
//   - Keep both layouts behind one selector so every structural algorithm is written once.
//
// Complexity:
//   - Offset: O(1); both helpers are pure and total over in-range inputs.

package grid

// Layout selects how a Grid linearizes its cells.
type Layout uint8

const (
	// RowMajor stores the cells of one row next to each other (offset = row*cols + col).
	RowMajor Layout = iota
	// ColumnMajor stores the cells of one column next to each other (offset = col*rows + row).
	ColumnMajor
)

const (
	_layoutRowMajor    = "row-major"
	_layoutColumnMajor = "column-major"
	_layoutUnknown     = "unknown-layout"
)

// rowMajorOffset maps (row, col) for RowMajor storage; rows is unused.
func rowMajorOffset(row, col, _, cols int) int { return row*cols + col }

// colMajorOffset maps (row, col) for ColumnMajor storage; cols is unused.
func colMajorOffset(row, col, rows, _ int) int { return col*rows + row }

// Offset returns the flat offset of (row, col) in a rows×cols buffer stored with l.
// Bounds are the caller's responsibility.
// Complexity: O(1).
func (l Layout) Offset(row, col, rows, cols int) int {
	if l == ColumnMajor {
		return colMajorOffset(row, col, rows, cols)
	}

	return rowMajorOffset(row, col, rows, cols)
}

// Valid reports whether l is one of the known layouts.
func (l Layout) Valid() bool { return l == RowMajor || l == ColumnMajor }

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return _layoutRowMajor
	case ColumnMajor:
		return _layoutColumnMajor
	default:
		return _layoutUnknown
	}
}

// axis names one of the two grid dimensions.
type axis uint8

const (
	axisRow axis = iota
	axisCol
)

// contiguous reports whether whole lines along a are stored as single runs under l,
// i.e. a is the major dimension (rows for RowMajor, columns for ColumnMajor).
func (l Layout) contiguous(a axis) bool {
	return (l == RowMajor) == (a == axisRow)
}
