// Package surface implements grid.Surface for a terminal. The engine works
// in abstract pixel offsets; here one grid row maps onto one terminal line,
// so pixel offsets are translated through the row extent in both
// directions. Scroll state is owned by the UI (key and wheel handlers move
// it); the engine only ever reads it through Metrics.
package surface

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Akashdeep-Patra/gridview/internal/grid"
	"github.com/Akashdeep-Patra/gridview/internal/ui"
)

// ErrClosed is returned by surface operations after Close. A late frame
// hitting a closed surface is a bug in the caller's teardown ordering.
var ErrClosed = errors.New("surface: closed")

// rowContainer is the terminal's row handle: a slice of cell strings plus
// an absolute pixel offset. It carries no row identity of its own.
type rowContainer struct {
	cells    []string
	offsetPx int
	attached bool
}

// Cells implements grid.RowHandle.
func (c *rowContainer) Cells() int { return len(c.cells) }

// Terminal is a grid.Surface that composites attached row containers into
// terminal lines.
type Terminal struct {
	styles   ui.Styles
	extent   int // px per row, border included
	colWidth int // display cells per column

	width     int // terminal cells available to the grid
	viewRows  int // visible terminal lines
	scrollRow int // viewport top, in rows

	byRow      map[int]*rowContainer
	sentinelPx int
	closed     bool
}

// New creates a terminal surface. extent is the engine's pixel height per
// row; colWidth is the display width of one column in terminal cells.
func New(styles ui.Styles, extent, colWidth int) *Terminal {
	return &Terminal{
		styles:   styles,
		extent:   extent,
		colWidth: colWidth,
		byRow:    make(map[int]*rowContainer),
	}
}

// SetSize updates the grid's available width and visible line count.
func (t *Terminal) SetSize(width, viewRows int) {
	if viewRows < 0 {
		viewRows = 0
	}
	t.width = width
	t.viewRows = viewRows
}

// SetScroll moves the viewport top to the given row, clamped at 0 and at
// the sentinel-backed maximum so the UI cannot outrun the extent.
func (t *Terminal) SetScroll(row int) {
	if row < 0 {
		row = 0
	}
	if max := t.MaxScroll(); row > max {
		row = max
	}
	t.scrollRow = row
}

// Scroll returns the current viewport top row.
func (t *Terminal) Scroll() int { return t.scrollRow }

// MaxRow returns the furthest row the scrollable extent currently reaches.
func (t *Terminal) MaxRow() int {
	if t.extent == 0 {
		return 0
	}
	return t.sentinelPx / t.extent
}

// MaxScroll returns the largest valid viewport top row.
func (t *Terminal) MaxScroll() int {
	max := t.MaxRow() - t.viewRows + 1
	if max < 0 {
		max = 0
	}
	return max
}

// Close invalidates the surface. All engine-facing operations fail
// afterwards, which the manager treats as fatal.
func (t *Terminal) Close() {
	t.closed = true
	t.byRow = make(map[int]*rowContainer)
}

// ── grid.Surface ────────────────────────────────────────────────────────────

// NewRowContainer implements grid.Surface.
func (t *Terminal) NewRowContainer(cells int) (grid.RowHandle, error) {
	if t.closed {
		return nil, ErrClosed
	}
	return &rowContainer{cells: make([]string, cells)}, nil
}

// Attach implements grid.Surface.
func (t *Terminal) Attach(h grid.RowHandle) error {
	if t.closed {
		return ErrClosed
	}
	c, ok := h.(*rowContainer)
	if !ok {
		return fmt.Errorf("foreign row handle %T", h)
	}
	if c.attached {
		return errors.New("row container already attached")
	}
	c.attached = true
	t.byRow[c.offsetPx/t.extent] = c
	return nil
}

// Detach implements grid.Surface.
func (t *Terminal) Detach(h grid.RowHandle) error {
	if t.closed {
		return ErrClosed
	}
	c, ok := h.(*rowContainer)
	if !ok {
		return fmt.Errorf("foreign row handle %T", h)
	}
	if !c.attached {
		return errors.New("row container not attached")
	}
	c.attached = false
	delete(t.byRow, c.offsetPx/t.extent)
	return nil
}

// SetOffset implements grid.Surface. The manager positions containers only
// while detached, so the byRow index never needs rekeying here.
func (t *Terminal) SetOffset(h grid.RowHandle, px int) {
	if c, ok := h.(*rowContainer); ok {
		c.offsetPx = px
	}
}

// SetCell implements grid.Surface.
func (t *Terminal) SetCell(h grid.RowHandle, col int, text string) {
	if c, ok := h.(*rowContainer); ok && col >= 0 && col < len(c.cells) {
		c.cells[col] = text
	}
}

// Metrics implements grid.Surface.
func (t *Terminal) Metrics() (grid.Metrics, error) {
	if t.closed {
		return grid.Metrics{}, ErrClosed
	}
	return grid.Metrics{
		ScrollTop:      t.scrollRow * t.extent,
		ViewportHeight: t.viewRows * t.extent,
	}, nil
}

// PlaceSentinel implements grid.Surface. The marker is pure bookkeeping
// here — a terminal has no scrollable document, so "extent" is simply the
// largest offset we admit scrolling to.
func (t *Terminal) PlaceSentinel(px int) error {
	if t.closed {
		return ErrClosed
	}
	if px > t.sentinelPx {
		t.sentinelPx = px
	}
	return nil
}

// ── Rendering ───────────────────────────────────────────────────────────────

// HeaderLine renders a column header row aligned with the grid cells.
func (t *Terminal) HeaderLine(header []string) string {
	if len(header) == 0 {
		return ""
	}
	sep := t.styles.Separator.Render("│")
	parts := make([]string, len(header))
	for i, h := range header {
		parts[i] = t.styles.Header.Render(ui.FitCell(h, t.colWidth))
	}
	return " " + strings.Join(parts, sep)
}

// Frame composites the attached containers into the visible lines.
// cursorRow is highlighted; rows with no container (not yet materialized,
// or past the preload margin during a fast fling) render as an empty line
// the next frame will fill in.
func (t *Terminal) Frame(cursorRow int) string {
	sep := t.styles.Separator.Render("│")

	var b strings.Builder
	for i := 0; i < t.viewRows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		r := t.scrollRow + i
		c, ok := t.byRow[r]
		if !ok {
			b.WriteString(" " + t.styles.BlankRow.Render("·"))
			continue
		}
		cellStyle := t.styles.Cell
		if r == cursorRow {
			cellStyle = t.styles.CellCursor
		}
		parts := make([]string, len(c.cells))
		for col, text := range c.cells {
			parts[col] = cellStyle.Render(ui.FitCell(text, t.colWidth))
		}
		b.WriteString(" " + strings.Join(parts, sep))
	}
	return b.String()
}
