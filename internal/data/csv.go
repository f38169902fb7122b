package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// CSVSource serves cells from a CSV file held in memory. The column count
// is fixed by the first load — the engine reads it once at manager
// construction — so a reload that adds columns exposes only the original
// ones, and rows that lost columns fall back to the engine's placeholder
// via ErrOutOfRange.
type CSVSource struct {
	path      string
	hasHeader bool

	columns int
	header  []string
	records [][]string
}

// LoadCSV reads path and builds a source. When hasHeader is set the first
// record becomes the column header instead of row 0.
func LoadCSV(path string, hasHeader bool) (*CSVSource, error) {
	s := &CSVSource{path: path, hasHeader: hasHeader}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the backing file in place. Called from the UI goroutine
// when the file watcher reports a change; concurrent Item calls cannot
// happen by the engine's single-goroutine contract.
func (s *CSVSource) Reload() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open csv %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows; short rows error per cell
	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("parse csv %s: %w", s.path, err)
	}

	var header []string
	if s.hasHeader && len(records) > 0 {
		header = records[0]
		records = records[1:]
	}

	columns := len(header)
	for _, rec := range records {
		if len(rec) > columns {
			columns = len(rec)
		}
	}
	if columns == 0 {
		return fmt.Errorf("csv %s: no columns", s.path)
	}

	s.records = records
	s.header = header
	if s.columns == 0 {
		// First load pins the column count for the manager's lifetime.
		s.columns = columns
	}
	return nil
}

// Columns implements grid.Source.
func (s *CSVSource) Columns() int { return s.columns }

// Name identifies the source in the status bar.
func (s *CSVSource) Name() string { return filepath.Base(s.path) }

// Path returns the backing file, for the change watcher.
func (s *CSVSource) Path() string { return s.path }

// Rows returns the number of rows currently loaded.
func (s *CSVSource) Rows() int { return len(s.records) }

// Header implements the optional header interface used by the app. Nil
// when the file was loaded without a header row.
func (s *CSVSource) Header() []string { return s.header }

// Item implements grid.Source. Requests beyond the loaded data return
// ErrOutOfRange; the engine renders those cells as placeholders, which is
// what the area past the end of a finite file looks like.
func (s *CSVSource) Item(row, col int) (string, error) {
	if row < 0 || row >= len(s.records) {
		return "", fmt.Errorf("csv row %d of %d: %w", row, len(s.records), ErrOutOfRange)
	}
	if col < 0 || col >= s.columns {
		return "", fmt.Errorf("csv col %d of %d: %w", col, s.columns, ErrOutOfRange)
	}
	rec := s.records[row]
	if col >= len(rec) {
		return "", fmt.Errorf("csv row %d has %d fields, col %d: %w", row, len(rec), col, ErrOutOfRange)
	}
	return rec[col], nil
}
