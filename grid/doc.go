// Package grid provides Grid, a dense two-dimensional float64 container with a
// selectable storage order.
//
// What is inside:
//
//   - Two interchangeable layouts, RowMajor and ColumnMajor, behind a single
//     index mapper (Layout.Offset).
//   - In-place structural edits: SetLayout, Resize, DeleteRows, DeleteCols, Part.
//     Each edit takes a block-move fast path when the affected dimension is the
//     contiguous one and falls back to a cell-by-cell rebuild otherwise.
//   - Lossless conversion to and from flat ([]float64) and nested ([][]float64)
//     arrays, plus gonum/mat interop (*Grid is a mat.Matrix).
//
// Access policy:
//
//	g := grid.New(2, 3)
//	g.Set(5, 5, 1)        // discarded: out of bounds
//	v := g.At(5, 5)       // NaN, see grid.IsSentinel
//	g.DeleteRows(1, 9)    // ignored: not enough rows
//
// Invalid input never panics and never returns an error; callers detect a
// rejected edit by comparing state before and after.
//
// Empty state is canonical: a grid with a zero dimension is always 0×0 with no
// buffer. A Grid is not safe for concurrent mutation.
package grid
