// SPDX-License-Identifier: MIT

package grid

// Test-Bridge (white-box) for internal state.
//
// Purpose:
//   - Let grid_test observe which path an edit took (in-place vs rebuilt buffer)
//     and the resolved options, without widening the production API.

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Layout Layout
	Fill   float64
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Layout: o.layout, Fill: o.fill}
}

// BufferAddr_TestOnly returns the address of the first cell, or nil when empty.
func BufferAddr_TestOnly(g *Grid) *float64 {
	if len(g.data) == 0 {
		return nil
	}

	return &g.data[0]
}

// BufferCap_TestOnly returns the capacity of the cell buffer.
func BufferCap_TestOnly(g *Grid) int { return cap(g.data) }

// BufferIsNil_TestOnly reports whether the buffer is released.
func BufferIsNil_TestOnly(g *Grid) bool { return g.data == nil }

// Panic message exports to avoid magic strings in tests.
const PanicLayoutInvalid_TestOnly = panicLayoutInvalid
