// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
//
// Structural operations (Resize, DeleteRows, Part, ...) never return errors: invalid
// input is ignored or clamped. Errors exist only at the boundaries that can really
// fail: writing diagnostics to an io.Writer and converting foreign matrices.
// Callers match them with errors.Is.

package grid

import "errors"

var (
	// ErrNilMatrix indicates that a nil matrix was passed to a converter.
	ErrNilMatrix = errors.New("grid: nil matrix")

	// ErrShapeMismatch indicates that raw data does not cover the requested shape.
	ErrShapeMismatch = errors.New("grid: data does not match shape")

	// ErrWrite wraps failures of the destination writer in Fprint/FprintNested.
	ErrWrite = errors.New("grid: write failed")

	// ErrEmptyShape indicates that a conversion source has a zero dimension.
	ErrEmptyShape = errors.New("grid: empty shape")
)
