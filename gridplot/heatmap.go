// SPDX-License-Identifier: MIT

package gridplot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/lvgrid/grid"
)

// nanColor paints cells holding NaN (for example stored sentinels).
var nanColor = color.Gray{Y: 0x80}

// cells adapts a grid to plotter.GridXYZ. The plotter indexes (column, row).
type cells struct{ g *grid.Grid }

var _ plotter.GridXYZ = cells{}

func (c cells) Dims() (cols, rows int) { return c.g.Cols(), c.g.Rows() }
func (c cells) Z(col, row int) float64 { return c.g.At(row, col) }
func (c cells) X(col int) float64      { return float64(col) }
func (c cells) Y(row int) float64      { return float64(row) }

// valueRange returns the finite min/max of g, widened when all values are equal
// so the palette scale stays well defined.
func valueRange(g *grid.Grid) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	g.Do(func(_, _ int, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
		return true
	})
	switch {
	case lo > hi: // no finite cells
		return 0, 1
	case lo == hi:
		return lo - 0.5, hi + 0.5
	default:
		return lo, hi
	}
}

// check validates the input grid.
func check(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if g.IsEmpty() {
		return ErrEmptyGrid
	}

	return nil
}

// HeatMap builds a plot with one colored tile per cell.
//
// Errors:
//   - ErrNilGrid, ErrEmptyGrid.
//
// Complexity: O(r*c).
func HeatMap(g *grid.Grid, opts ...Option) (*plot.Plot, error) {
	if err := check(g); err != nil {
		return nil, fmt.Errorf("HeatMap: %w", err)
	}
	o := gatherOptions(opts...)

	hm := plotter.NewHeatMap(cells{g: g}, o.palette)
	hm.Min, hm.Max = valueRange(g)
	hm.NaN = nanColor

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = _axisLabelColumns
	p.Y.Label.Text = _axisLabelRows
	p.Y.Scale = plot.InvertedScale{Normalizer: p.Y.Scale} // row 0 on top
	p.Add(hm)

	return p, nil
}

// WriteTo renders the heatmap of g to w in the given format ("png", "svg",
// "pdf", ...). An empty format selects DefaultFormat.
func WriteTo(w io.Writer, g *grid.Grid, format string, opts ...Option) (int64, error) {
	if format == "" {
		format = DefaultFormat
	}
	p, err := HeatMap(g, opts...)
	if err != nil {
		return 0, err
	}
	o := gatherOptions(opts...)
	wt, err := p.WriterTo(o.width, o.height, format)
	if err != nil {
		return 0, fmt.Errorf("WriteTo(%s): %w: %w", format, ErrRender, err)
	}
	n, err := wt.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("WriteTo(%s): %w: %w", format, ErrRender, err)
	}

	return n, nil
}

// Save renders the heatmap of g into path; the format follows the file extension.
func Save(path string, g *grid.Grid, opts ...Option) error {
	p, err := HeatMap(g, opts...)
	if err != nil {
		return err
	}
	o := gatherOptions(opts...)
	if err = p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("Save(%s): %w: %w", path, ErrRender, err)
	}

	return nil
}
