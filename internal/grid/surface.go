package grid

// RowHandle is an opaque reference to a row container owned by a Surface.
// A handle carries no row identity: once recycled it can represent any
// future row after being repositioned and refilled.
type RowHandle interface {
	// Cells returns the number of cell slots the container was built with.
	// The pool uses it to reject stale handles if the column count ever
	// diverges from the one the manager was constructed for.
	Cells() int
}

// Metrics is the current scroll state of a surface, in pixel units.
type Metrics struct {
	// ScrollTop is the offset of the viewport's top edge within the
	// scrollable content. Never negative.
	ScrollTop int
	// ViewportHeight is the visible height of the scroll container.
	ViewportHeight int
}

// Surface is the narrow capability interface the engine drives. Keeping it
// this small is what makes the windowing algorithm independent of any
// concrete rendering target and testable against a fake.
//
// All methods are called from a single goroutine; implementations need no
// internal locking on the engine's account.
type Surface interface {
	// NewRowContainer constructs a fresh, detached row container with the
	// given number of empty cell slots.
	NewRowContainer(cells int) (RowHandle, error)

	// Attach makes a container part of the visible content.
	Attach(h RowHandle) error

	// Detach removes a container from the visible content. The container
	// stays alive and may be re-attached later for a different row.
	Detach(h RowHandle) error

	// SetOffset positions a container's top edge at the given pixel offset
	// within the scrollable content. Positioning is absolute, never part of
	// document flow, so cost is independent of how many rows exist.
	SetOffset(h RowHandle, px int)

	// SetCell replaces the displayed content of one cell slot.
	SetCell(h RowHandle, col int, text string)

	// Metrics reads the surface's current scroll state. Returns an error
	// when the surface has been torn down externally, which is fatal for
	// the attached manager.
	Metrics() (Metrics, error)

	// PlaceSentinel moves the extent marker so the surface reports a
	// scrollable extent of at least px. The marker occupies no meaningful
	// visual space.
	PlaceSentinel(px int) error
}
