// SPDX-License-Identifier: MIT

// Package grid - diagnostic rendering.
//
// Output is for humans and logs only; it is not a persistence format and may change.

package grid

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

const (
	_fmtHeader = "Grid %dx%d %s (%dB)\n"
	_fmtCell   = "%*.6g"
	_fmtNested = "Nested %dx%d %s\n"
	_fmtEOL    = "\n"
)

// String renders a header line and one line per row with right-aligned fields of
// DefaultPrintWidth characters, e.g.
//
//	Grid 2x3 row-major (48B)
//	     1     2     3
//	     4     5     6
func (g *Grid) String() string {
	var b strings.Builder
	_ = g.Fprint(&b, DefaultPrintWidth) // strings.Builder never fails

	return b.String()
}

// Fprint writes the same rendering as String using width characters per field.
// A width below 1 selects DefaultPrintWidth.
// Errors from w are wrapped with ErrWrite.
// Complexity: O(r*c).
func (g *Grid) Fprint(w io.Writer, width int) error {
	if width < 1 {
		width = DefaultPrintWidth
	}
	if _, err := fmt.Fprintf(w, _fmtHeader, g.rows, g.cols, g.layout, g.Size()); err != nil {
		return fmt.Errorf("Grid.Fprint: %w: %w", ErrWrite, err)
	}

	return writeRows(w, g.rows, g.cols, width, g.At, "Grid.Fprint")
}

// FprintNested renders raw nested data as a rows×cols table. data holds rows when
// layout is RowMajor and columns when it is ColumnMajor, matching ToNested.
// Returns ErrShapeMismatch when data does not cover rows×cols.
func FprintNested(w io.Writer, data [][]float64, rows, cols int, layout Layout, width int) error {
	if rows < 0 || cols < 0 || !layout.Valid() {
		return fmt.Errorf("FprintNested(%d,%d): %w", rows, cols, ErrShapeMismatch)
	}
	major, minor := rows, cols
	if layout == ColumnMajor {
		major, minor = cols, rows
	}
	if len(data) < major {
		return fmt.Errorf("FprintNested: %d lines, need %d: %w", len(data), major, ErrShapeMismatch)
	}
	for i := 0; i < major; i++ {
		if len(data[i]) < minor {
			return fmt.Errorf("FprintNested: line %d has %d cells, need %d: %w", i, len(data[i]), minor, ErrShapeMismatch)
		}
	}
	if width < 1 {
		width = DefaultPrintWidth
	}
	if _, err := fmt.Fprintf(w, _fmtNested, rows, cols, layout); err != nil {
		return fmt.Errorf("FprintNested: %w: %w", ErrWrite, err)
	}
	at := func(i, j int) float64 {
		if layout == ColumnMajor {
			return data[j][i]
		}

		return data[i][j]
	}

	return writeRows(w, rows, cols, width, at, "FprintNested")
}

// writeRows emits rows lines of cols fixed-width fields read through at.
// Values keep 6 significant digits; a field wider than width is still separated
// from its left neighbour by one space.
func writeRows(w io.Writer, rows, cols, width int, at func(i, j int) float64, tag string) error {
	var line []byte
	var i, j, start int
	for i = 0; i < rows; i++ {
		line = line[:0]
		for j = 0; j < cols; j++ {
			start = len(line)
			line = fmt.Appendf(line, _fmtCell, width, at(i, j))
			if j > 0 && line[start] != ' ' {
				line = slices.Insert(line, start, ' ')
			}
		}
		line = append(line, _fmtEOL...)
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("%s: row %d: %w: %w", tag, i, ErrWrite, err)
		}
	}

	return nil
}
