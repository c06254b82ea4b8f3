// SPDX-License-Identifier: MIT

// Package grid: functional configuration for Grid construction.
//
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper that applies setters last-writer-wins.
//
// Notes:
//   - Options are consumed at construction time (New, FromFlat, FromNested, FromMatrix).
//     A grid keeps its fill value afterwards; SetFillValue changes it later.
//   - The layout can be switched at any time with (*Grid).SetLayout.
package grid

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLayout is the storage order used when no layout option is given.
	DefaultLayout = RowMajor

	// DefaultFillValue initializes cells created by construction or growth.
	// It is unrelated to the out-of-bounds sentinel returned by At.
	DefaultFillValue = 0.0

	// DefaultPrintWidth is the field width used by String and by Fprint when the
	// caller passes a width below 1.
	DefaultPrintWidth = 6
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLayoutInvalid = "grid: WithLayout: unknown layout"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	layout Layout  // DefaultLayout
	fill   float64 // DefaultFillValue
}

// WithLayout selects the storage order of the new grid.
// Panics when l is not RowMajor or ColumnMajor (programmer error).
func WithLayout(l Layout) Option {
	if !l.Valid() {
		panic(panicLayoutInvalid)
	}

	return func(o *Options) { o.layout = l }
}

// WithRowMajor is shorthand for WithLayout(RowMajor).
func WithRowMajor() Option {
	return func(o *Options) { o.layout = RowMajor }
}

// WithColumnMajor is shorthand for WithLayout(ColumnMajor).
func WithColumnMajor() Option {
	return func(o *Options) { o.layout = ColumnMajor }
}

// WithFillValue sets the value written into newly allocated cells.
// Any float64 is accepted, NaN included.
func WithFillValue(v float64) Option {
	return func(o *Options) { o.fill = v }
}

// gatherOptions resolves user setters over the documented defaults.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		layout: DefaultLayout,
		fill:   DefaultFillValue,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins
		}
	}

	return o
}
