package grid

import "testing"

func TestRowExtent(t *testing.T) {
	t.Parallel()

	if got := RowExtent(30, 1); got != 31 {
		t.Fatalf("RowExtent(30, 1) = %d, want 31", got)
	}
	if got := RowExtent(24, 0); got != 24 {
		t.Fatalf("RowExtent(24, 0) = %d, want 24", got)
	}
}

func TestVisibleRowRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		vp     Viewport
		extent int
		want   RowRange
	}{
		{"top of content", Viewport{Top: 0, Bottom: 150}, 31, RowRange{0, 4}},
		{"mid scroll", Viewport{Top: 155, Bottom: 305}, 31, RowRange{5, 9}},
		{"row boundary exactly", Viewport{Top: 31, Bottom: 62}, 31, RowRange{1, 2}},
		{"zero-height viewport", Viewport{Top: 93, Bottom: 93}, 31, RowRange{3, 3}},
		{"deep scroll", Viewport{Top: 31_000_000, Bottom: 31_000_150}, 31, RowRange{1_000_000, 1_000_004}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := VisibleRowRange(tc.vp, tc.extent); got != tc.want {
				t.Fatalf("VisibleRowRange(%+v, %d) = %+v, want %+v", tc.vp, tc.extent, got, tc.want)
			}
		})
	}
}
