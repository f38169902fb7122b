package grid

// RowRange is an inclusive range of row indices.
type RowRange struct {
	First int
	Last  int
}

// Expand widens the range by margin rows on both sides, clamped to the
// non-negative row axis. The clamp on Last guards the degenerate case of a
// zero-height viewport where Last starts out negative.
func (r RowRange) Expand(margin int) RowRange {
	first := r.First - margin
	if first < 0 {
		first = 0
	}
	last := r.Last + margin
	if last < 0 {
		last = 0
	}
	return RowRange{First: first, Last: last}
}

// Contains reports whether row falls inside the range.
func (r RowRange) Contains(row int) bool {
	return row >= r.First && row <= r.Last
}

// Len returns the number of rows in the range.
func (r RowRange) Len() int {
	if r.Last < r.First {
		return 0
	}
	return r.Last - r.First + 1
}
