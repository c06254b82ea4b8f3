// SPDX-License-Identifier: MIT

// Package grid - interoperability with gonum/mat.
//
// *Grid satisfies mat.Matrix and mat.Mutable, so a grid can be handed straight to
// gonum routines (mat.Formatted, mat.Dense.Mul, ...). Note the difference in access
// policy: gonum types panic on bad indices, a Grid returns the NaN sentinel.

package grid

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// Compile-time assertions for gonum interface conformance.
var (
	_ mat.Matrix  = (*Grid)(nil)
	_ mat.Mutable = (*Grid)(nil)
)

// Dims returns the dimensions of the grid (mat.Matrix).
func (g *Grid) Dims() (r, c int) { return g.rows, g.cols }

// T returns a lazy transpose view backed by g (mat.Matrix).
func (g *Grid) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// ToDense copies the grid into a row-major *mat.Dense.
// Returns nil for an empty grid, since gonum has no 0×0 Dense constructor.
// Complexity: O(r*c).
func (g *Grid) ToDense() *mat.Dense {
	if g.IsEmpty() {
		return nil
	}
	var data []float64
	if g.layout == RowMajor {
		data = g.ToFlat() // already in gonum's order
	} else {
		data = make([]float64, len(g.data))
		var i, j int
		for i = 0; i < g.rows; i++ {
			for j = 0; j < g.cols; j++ {
				data[rowMajorOffset(i, j, g.rows, g.cols)] = g.data[g.offset(i, j)]
			}
		}
	}

	return mat.NewDense(g.rows, g.cols, data)
}

// FromMatrix copies any gonum matrix into a new grid configured by opts.
// Row-major raw matrices (mat.RawMatrixer) are copied row by row; others go
// through At.
//
// Errors:
//   - ErrNilMatrix when m is nil, including a typed nil pointer such as (*mat.Dense)(nil).
//   - ErrEmptyShape when m has a zero dimension.
//
// Complexity: O(r*c).
func FromMatrix(m mat.Matrix, opts ...Option) (*Grid, error) {
	if isNilMatrix(m) {
		return nil, fmt.Errorf("FromMatrix: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("FromMatrix(%dx%d): %w", r, c, ErrEmptyShape)
	}

	g := New(r, c, opts...)
	var i, j int
	if rm, ok := m.(mat.RawMatrixer); ok && g.layout == RowMajor {
		raw := rm.RawMatrix()
		for i = 0; i < r; i++ {
			copy(g.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}

		return g, nil
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			g.data[g.offset(i, j)] = m.At(i, j)
		}
	}

	return g, nil
}

// isNilMatrix reports a nil interface or an interface wrapping a nil pointer,
// whose Dims would dereference nil.
func isNilMatrix(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
