package grid

import "testing"

func TestRowRangeExpand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     RowRange
		margin int
		want   RowRange
	}{
		{"clamped at zero", RowRange{0, 4}, 5, RowRange{0, 9}},
		{"mid range", RowRange{10, 14}, 5, RowRange{5, 19}},
		{"zero margin", RowRange{3, 7}, 0, RowRange{3, 7}},
		{"negative last clamped", RowRange{-1, -1}, 0, RowRange{0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Expand(tc.margin); got != tc.want {
				t.Fatalf("%+v.Expand(%d) = %+v, want %+v", tc.in, tc.margin, got, tc.want)
			}
		})
	}
}

func TestRowRangeContains(t *testing.T) {
	t.Parallel()

	r := RowRange{5, 9}
	for row, want := range map[int]bool{4: false, 5: true, 7: true, 9: true, 10: false} {
		if got := r.Contains(row); got != want {
			t.Fatalf("Contains(%d) = %v, want %v", row, got, want)
		}
	}
}

func TestRowRangeLen(t *testing.T) {
	t.Parallel()

	if got := (RowRange{5, 9}).Len(); got != 5 {
		t.Fatalf("Len() = %d, want 5", got)
	}
	if got := (RowRange{9, 5}).Len(); got != 0 {
		t.Fatalf("inverted Len() = %d, want 0", got)
	}
}
