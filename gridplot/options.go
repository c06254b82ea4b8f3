// SPDX-License-Identifier: MIT

package gridplot

import (
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTitle is the plot title when WithTitle is not given.
	DefaultTitle = "grid"

	// DefaultColorCount is the number of palette steps of the default heat palette.
	DefaultColorCount = 16

	// DefaultSize is the edge length of rendered images (square).
	DefaultSize = 4 * vg.Inch

	// DefaultFormat is the image format used by WriteTo when format is empty.
	DefaultFormat = "png"
)

const (
	panicPaletteNil   = "gridplot: WithPalette: palette must be non-nil with at least one color"
	panicColorCount   = "gridplot: WithColorCount: n must be >= 2"
	panicSizeInvalid  = "gridplot: WithSize: width and height must be > 0"
	_axisLabelColumns = "column"
	_axisLabelRows    = "row"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective rendering configuration.
type Options struct {
	title         string
	palette       palette.Palette // nil: palette.Heat(colorCount, 1)
	colorCount    int
	width, height vg.Length
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.title = title }
}

// WithPalette replaces the default heat palette. Panics on a nil or empty palette.
func WithPalette(p palette.Palette) Option {
	if p == nil || len(p.Colors()) == 0 {
		panic(panicPaletteNil)
	}

	return func(o *Options) { o.palette = p }
}

// WithColorCount sets the number of steps of the default heat palette.
// Ignored when WithPalette is also given. Panics when n < 2.
func WithColorCount(n int) Option {
	if n < 2 {
		panic(panicColorCount)
	}

	return func(o *Options) { o.colorCount = n }
}

// WithSize sets the rendered image size used by Save and WriteTo.
// Panics on non-positive lengths.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic(panicSizeInvalid)
	}

	return func(o *Options) { o.width, o.height = width, height }
}

// gatherOptions resolves user setters over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		title:      DefaultTitle,
		colorCount: DefaultColorCount,
		width:      DefaultSize,
		height:     DefaultSize,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.palette == nil {
		o.palette = palette.Heat(o.colorCount, 1)
	}

	return o
}
