package grid

import "fmt"

// Sentinel keeps the surface's reported scrollable extent ahead of the
// furthest row the user has reached, so scrolling never hits a hard clamp
// at the edge of the materialized content. The extent only ever grows:
// shrinking it would visibly snap the scroll position.
type Sentinel struct {
	surface   Surface
	extent    int
	lookahead int
	position  int
}

// NewSentinel creates a controller for the given surface. extent is the
// pixel height of one row; lookahead is how many rows the scrollable extent
// stays ahead of the last materialized row.
func NewSentinel(surface Surface, extent, lookahead int) *Sentinel {
	return &Sentinel{
		surface:   surface,
		extent:    extent,
		lookahead: lookahead,
		position:  -1,
	}
}

// Notify advances the extent marker past lastRendered if the high-water
// mark would grow; otherwise it is a no-op.
func (s *Sentinel) Notify(lastRendered int) error {
	candidate := lastRendered + s.lookahead
	if candidate <= s.position {
		return nil
	}
	if err := s.surface.PlaceSentinel(candidate * s.extent); err != nil {
		return fmt.Errorf("place extent sentinel at row %d: %w", candidate, err)
	}
	s.position = candidate
	return nil
}

// Position returns the furthest row the extent has been stretched to, or
// -1 before the first Notify.
func (s *Sentinel) Position() int {
	return s.position
}
