package ui

import "testing"

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"truncate me please", 8, "truncat…"},
		{"x", 1, "x"},
		{"xy", 1, "…"},
		{"日本語テキスト", 6, "日本…"},
	}
	for _, tc := range tests {
		if got := Truncate(tc.in, tc.width); got != tc.want {
			t.Fatalf("Truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestFitCell(t *testing.T) {
	t.Parallel()

	if got := FitCell("ab", 5); got != "ab   " {
		t.Fatalf("FitCell pad = %q", got)
	}
	if got := FitCell("abcdef", 4); got != "abc…" {
		t.Fatalf("FitCell trunc = %q", got)
	}
	if got := FitCell("漢字", 4); got != "漢字" {
		t.Fatalf("FitCell wide = %q", got)
	}
}
