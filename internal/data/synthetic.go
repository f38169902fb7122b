// Package data provides the grid.Source implementations the viewer ships
// with: an unbounded synthetic dataset for demos and load testing, and a
// CSV-file source with in-place reload for real data.
package data

import (
	"errors"
	"fmt"
)

// ErrOutOfRange marks an Item request outside the source's data.
var ErrOutOfRange = errors.New("data: cell out of range")

// words feed the synthetic text columns. Picked by index arithmetic so the
// same cell always renders the same value regardless of scroll history.
var words = []string{
	"alder", "basalt", "cirrus", "delta", "ember", "fjord", "garnet",
	"harbor", "iris", "juniper", "krill", "lumen", "meadow", "nimbus",
	"onyx", "prairie", "quartz", "reef", "sable", "tundra",
}

// SyntheticSource generates an effectively infinite dataset. Column 0 is
// the row number; the remaining columns mix deterministic words and
// numbers so scrolling artifacts (stale recycled cells) are easy to spot.
type SyntheticSource struct {
	columns int
}

// NewSyntheticSource creates a source with the given column count
// (minimum 1).
func NewSyntheticSource(columns int) *SyntheticSource {
	if columns < 1 {
		columns = 1
	}
	return &SyntheticSource{columns: columns}
}

// Columns implements grid.Source.
func (s *SyntheticSource) Columns() int { return s.columns }

// Name identifies the source in the status bar.
func (s *SyntheticSource) Name() string { return "synthetic" }

// Header implements the optional header interface used by the app.
func (s *SyntheticSource) Header() []string {
	h := make([]string, s.columns)
	h[0] = "row"
	for c := 1; c < s.columns; c++ {
		h[c] = fmt.Sprintf("col %c", 'a'+(c-1)%26)
	}
	return h
}

// Item implements grid.Source. There is no upper bound on row.
func (s *SyntheticSource) Item(row, col int) (string, error) {
	if row < 0 || col < 0 || col >= s.columns {
		return "", fmt.Errorf("synthetic (%d,%d): %w", row, col, ErrOutOfRange)
	}
	if col == 0 {
		return fmt.Sprintf("%d", row), nil
	}
	if col%2 == 1 {
		return words[(row*7+col*3)%len(words)], nil
	}
	return fmt.Sprintf("%06x", (row+1)*(col+1)*2654435761&0xffffff), nil
}
