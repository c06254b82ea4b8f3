// SPDX-License-Identifier: MIT

package gridplot

import "errors"

var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed in.
	ErrNilGrid = errors.New("gridplot: nil grid")

	// ErrEmptyGrid indicates that the grid has no cells to draw.
	ErrEmptyGrid = errors.New("gridplot: empty grid")

	// ErrRender wraps failures of the plot backend (unknown format, I/O).
	ErrRender = errors.New("gridplot: render failed")
)
