// SPDX-License-Identifier: MIT
// Package grid_test contains test helpers.
//
// Purpose:
//   - Build deterministic fixtures (sequential values, seeded random fills).
//   - Read grids back in logical order so assertions never depend on layout.
//   - Provide a naive [][]float64 reference model for the structural edits.

package grid_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/grid"
)

// layouts enumerates both storage orders for table-driven tests.
var layouts = []grid.Layout{grid.RowMajor, grid.ColumnMajor}

// equateNaNs lets cmp treat NaN cells as equal.
var equateNaNs = cmpopts.EquateNaNs()

// SeqGrid builds a rows×cols grid holding 1..rows*cols in logical row order.
func SeqGrid(t testing.TB, rows, cols int, l grid.Layout, opts ...grid.Option) *grid.Grid {
	t.Helper()
	g := grid.New(rows, cols, append(opts, grid.WithLayout(l))...)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			g.Set(i, j, float64(i*cols+j+1))
		}
	}

	return g
}

// RandomGrid builds a rows×cols grid filled from a seeded source.
func RandomGrid(t testing.TB, rows, cols int, l grid.Layout, seed int64) *grid.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := grid.New(rows, cols, grid.WithLayout(l))
	g.Apply(func(_, _ int, _ float64) float64 { return float64(rng.Intn(1000)) })

	return g
}

// Logical reads g back as rows, independent of layout. Empty grids give nil.
func Logical(g *grid.Grid) [][]float64 {
	if g.IsEmpty() {
		return nil
	}
	out := make([][]float64, g.Rows())
	for i := range out {
		out[i] = make([]float64, g.Cols())
		for j := range out[i] {
			out[i][j] = g.At(i, j)
		}
	}

	return out
}

// RequireCells compares g against want row by row and prints a cmp diff on mismatch.
func RequireCells(t *testing.T, want [][]float64, g *grid.Grid) {
	t.Helper()
	if diff := cmp.Diff(want, Logical(g), equateNaNs); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
}

// RequireCanonicalEmpty asserts the 0×0, no-buffer state.
func RequireCanonicalEmpty(t *testing.T, g *grid.Grid) {
	t.Helper()
	require.True(t, g.IsEmpty())
	require.Equal(t, 0, g.Rows())
	require.Equal(t, 0, g.Cols())
	require.Nil(t, g.ToFlat())
	require.True(t, grid.BufferIsNil_TestOnly(g))
}

// RequireConsistent asserts the buffer/dimension invariant.
func RequireConsistent(t *testing.T, g *grid.Grid) {
	t.Helper()
	require.Equal(t, g.Rows()*g.Cols(), g.Len())
	require.Equal(t, g.Rows() == 0, g.Cols() == 0, "degenerate shape %dx%d", g.Rows(), g.Cols())
}

// model is a naive reference implementation of the structural edits.
type model struct {
	rows, cols int
	cells      [][]float64
}

func modelOf(g *grid.Grid) *model {
	return &model{rows: g.Rows(), cols: g.Cols(), cells: Logical(g)}
}

func (m *model) clear() { m.rows, m.cols, m.cells = 0, 0, nil }

func (m *model) deleteRows(start, count int) {
	if start < 0 || count < 1 || start+count > m.rows {
		return
	}
	if count == m.rows {
		m.clear()

		return
	}
	next := make([][]float64, 0, m.rows-count)
	next = append(next, m.cells[:start]...)
	next = append(next, m.cells[start+count:]...)
	m.cells, m.rows = next, m.rows-count
}

func (m *model) deleteCols(start, count int) {
	if start < 0 || count < 1 || start+count > m.cols {
		return
	}
	if count == m.cols {
		m.clear()

		return
	}
	for i, row := range m.cells {
		next := make([]float64, 0, m.cols-count)
		next = append(next, row[:start]...)
		next = append(next, row[start+count:]...)
		m.cells[i] = next
	}
	m.cols -= count
}

func (m *model) resize(rows, cols int, fill float64) {
	if rows < 0 || cols < 0 || (rows == m.rows && cols == m.cols) {
		return
	}
	if rows == 0 || cols == 0 {
		m.clear()

		return
	}
	next := make([][]float64, rows)
	for i := range next {
		next[i] = make([]float64, cols)
		for j := range next[i] {
			if i < m.rows && j < m.cols {
				next[i][j] = m.cells[i][j]
			} else {
				next[i][j] = fill
			}
		}
	}
	m.rows, m.cols, m.cells = rows, cols, next
}

func (m *model) part(r0, r1, c0, c1 int) bool {
	if r0 < 0 || c0 < 0 || r0 > r1 || c0 > c1 || r1 >= m.rows || c1 >= m.cols {
		return false
	}
	next := make([][]float64, r1-r0+1)
	for i := range next {
		next[i] = append([]float64(nil), m.cells[r0+i][c0:c1+1]...)
	}
	m.rows, m.cols, m.cells = r1-r0+1, c1-c0+1, next

	return true
}
