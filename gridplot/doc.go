// Package gridplot renders a grid.Grid as a heatmap for debugging.
//
// Cells are drawn with row 0 at the top and column 0 on the left, matching the
// textual rendering of (*grid.Grid).String. Storage order does not influence the
// picture: the adapter reads cells through grid.Grid.At.
//
//	p, err := gridplot.HeatMap(g, gridplot.WithTitle("after resize"))
//	if err != nil { ... }
//	_ = p.Save(4*vg.Inch, 4*vg.Inch, "grid.png")
//
// Save and WriteTo wrap the same steps for the common cases. Images are purely
// diagnostic; nothing in this package reads them back.
package gridplot
