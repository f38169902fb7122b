// Package grid implements the windowing-and-recycling engine behind the
// viewer: given the geometry of a scrollable viewport it derives which rows
// must exist, diffs that against the rows that currently exist, and issues
// the minimal set of materialize/dematerialize operations through a pooled
// store of reusable row containers. The engine is unit-agnostic — it works
// in abstract pixel offsets and leaves it to the Surface implementation to
// map those onto real estate (terminal cells, here).
package grid

// Viewport is the pixel range of the scrollable content currently visible,
// as reported by the rendering surface.
type Viewport struct {
	Top    int
	Bottom int
}

// RowExtent returns the pixel height one row occupies, border included.
func RowExtent(rowHeight, borderWidth int) int {
	return rowHeight + borderWidth
}

// VisibleRowRange maps a viewport onto the rows whose extent intersects it.
// Scroll offsets are non-negative by contract of Surface.Metrics, so no
// clamping is needed here.
func VisibleRowRange(vp Viewport, extent int) RowRange {
	return RowRange{
		First: vp.Top / extent,
		Last:  vp.Bottom / extent,
	}
}
