package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSyntheticSourceDeterministic(t *testing.T) {
	t.Parallel()

	s := NewSyntheticSource(4)
	if s.Columns() != 4 {
		t.Fatalf("Columns = %d, want 4", s.Columns())
	}

	first, err := s.Item(12345, 3)
	if err != nil {
		t.Fatalf("Item: %v", err)
	}
	second, err := s.Item(12345, 3)
	if err != nil {
		t.Fatalf("Item: %v", err)
	}
	if first != second {
		t.Fatalf("same cell rendered differently: %q vs %q", first, second)
	}

	if v, err := s.Item(42, 0); err != nil || v != "42" {
		t.Fatalf("Item(42,0) = %q, %v; want row number", v, err)
	}

	if _, err := s.Item(0, 4); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Item past last column = %v, want ErrOutOfRange", err)
	}
	if _, err := s.Item(-1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Item negative row = %v, want ErrOutOfRange", err)
	}

	if h := s.Header(); len(h) != 4 || h[0] != "row" {
		t.Fatalf("Header = %v", h)
	}
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestCSVSourceBasics(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "name,city,age\nada,london,36\ngrace,arlington,85\n")
	s, err := LoadCSV(path, true)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	if s.Columns() != 3 || s.Rows() != 2 {
		t.Fatalf("Columns/Rows = %d/%d, want 3/2", s.Columns(), s.Rows())
	}
	if h := s.Header(); len(h) != 3 || h[1] != "city" {
		t.Fatalf("Header = %v", h)
	}
	if v, err := s.Item(1, 0); err != nil || v != "grace" {
		t.Fatalf("Item(1,0) = %q, %v", v, err)
	}
	if _, err := s.Item(2, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Item past last row = %v, want ErrOutOfRange", err)
	}
}

func TestCSVSourceRaggedRows(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "a,b,c\nonly-one\n")
	s, err := LoadCSV(path, false)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if s.Columns() != 3 {
		t.Fatalf("Columns = %d, want widest row", s.Columns())
	}
	if _, err := s.Item(1, 1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("short row cell = %v, want ErrOutOfRange", err)
	}
}

func TestCSVSourceReloadKeepsColumnCount(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "a,b\n1,2\n")
	s, err := LoadCSV(path, false)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if s.Columns() != 2 {
		t.Fatalf("Columns = %d, want 2", s.Columns())
	}

	// File grows a column and a row; the pinned column count must not move
	// under the feet of an already-constructed manager.
	if err := os.WriteFile(path, []byte("a,b,c\n1,2,3\n4,5,6\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if s.Columns() != 2 {
		t.Fatalf("Columns after reload = %d, want pinned 2", s.Columns())
	}
	if s.Rows() != 3 {
		t.Fatalf("Rows after reload = %d, want 3", s.Rows())
	}
	if v, err := s.Item(2, 1); err != nil || v != "5" {
		t.Fatalf("Item(2,1) = %q, %v", v, err)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), false); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
