package grid

import (
	"errors"
	"fmt"
)

// ErrDestroyed is returned by operations on a manager after Destroy.
var ErrDestroyed = errors.New("grid: manager destroyed")

// Default configuration, matching the values the viewer ships with.
const (
	DefaultRowHeight         = 30
	DefaultBorderWidth       = 1
	DefaultPreloadRows       = 5
	DefaultSentinelLookahead = 5
	DefaultPlaceholder       = "—"
)

// Options configure a Manager. Zero values fall back to the defaults
// above, except BorderWidth, where zero is a valid borderless layout.
type Options struct {
	// RowHeight is the pixel height of a row excluding its border.
	RowHeight int
	// BorderWidth is the pixel height of the separator under each row.
	BorderWidth int
	// PreloadRows is how many rows beyond each viewport edge stay
	// materialized to hide materialization latency while scrolling.
	PreloadRows int
	// SentinelLookahead is how many rows the scrollable extent stays ahead
	// of the last materialized row. Independent of PreloadRows even though
	// the defaults coincide.
	SentinelLookahead int
	// Placeholder is shown in a cell whose value could not be produced.
	Placeholder string

	// OnCellError observes per-cell data failures. Called at most once per
	// failing cell per update pass; never called concurrently.
	OnCellError func(row, col int, err error)
}

func (o *Options) applyDefaults() {
	if o.RowHeight <= 0 {
		o.RowHeight = DefaultRowHeight
	}
	if o.BorderWidth < 0 {
		o.BorderWidth = DefaultBorderWidth
	}
	if o.PreloadRows <= 0 {
		o.PreloadRows = DefaultPreloadRows
	}
	if o.SentinelLookahead <= 0 {
		o.SentinelLookahead = DefaultSentinelLookahead
	}
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholder
	}
}

// Stats is a snapshot of the manager's lifetime counters, consumed by the
// status bar.
type Stats struct {
	Materialized  int    // rows currently holding a container
	Constructions uint64 // containers built from scratch
	Recycled      uint64 // acquisitions served from the pool
	Released      uint64 // containers returned to the pool
	Pooled        int    // containers currently idle in the pool
	CellErrors    uint64 // cells that fell back to the placeholder
}

// Manager is the row window orchestrator. It owns the current window
// bounds, the sparse row→container mapping, the recycling pool, and the
// extent sentinel, and transitions the materialized set toward whatever
// window the viewport geometry demands.
//
// All state is mutated only inside Update, which the host invokes from a
// single goroutine (the Bubbletea update loop), so the manager carries no
// locks.
type Manager struct {
	surface Surface
	source  Source
	opts    Options

	extent  int
	columns int

	pool     *Pool
	sentinel *Sentinel

	current RowRange
	empty   bool
	slots   map[int]RowHandle

	stopped       bool
	constructions uint64
	cellErrors    uint64
}

// NewManager creates a manager bound to a surface and a data source. The
// column count is read from the source once, here, and assumed stable for
// the manager's lifetime.
func NewManager(surface Surface, source Source, opts Options) *Manager {
	opts.applyDefaults()
	extent := RowExtent(opts.RowHeight, opts.BorderWidth)
	cols := source.Columns()
	return &Manager{
		surface:  surface,
		source:   source,
		opts:     opts,
		extent:   extent,
		columns:  cols,
		pool:     NewPool(cols),
		sentinel: NewSentinel(surface, extent, opts.SentinelLookahead),
		empty:    true,
		slots:    make(map[int]RowHandle),
	}
}

// Attach inserts the extent sentinel and performs one synchronous render so
// the first frame is never blank.
func (m *Manager) Attach() error {
	if m.stopped {
		return ErrDestroyed
	}
	if err := m.sentinel.Notify(0); err != nil {
		return err
	}
	return m.Render()
}

// Render performs one frame of work: project the surface's scroll state
// onto a row range, expand it by the preload margin, and update the window.
func (m *Manager) Render() error {
	if m.stopped {
		return ErrDestroyed
	}
	met, err := m.surface.Metrics()
	if err != nil {
		return fmt.Errorf("read surface metrics: %w", err)
	}
	vp := Viewport{Top: met.ScrollTop, Bottom: met.ScrollTop + met.ViewportHeight}
	target := VisibleRowRange(vp, m.extent).Expand(m.opts.PreloadRows)
	return m.Update(target)
}

// Update transitions the materialized set from the current window to
// target. Rows in both windows are reused in place; rows leaving release
// their container to the pool; rows entering acquire one (pool first,
// construction as a last resort). The loop visits only the union of the two
// windows, so cost tracks window size plus scroll delta, never dataset
// size.
func (m *Manager) Update(target RowRange) error {
	if m.stopped {
		return ErrDestroyed
	}

	// The initial empty window is encoded explicitly rather than by
	// sentinel bounds, so the union degenerates to the target alone.
	unionStart, unionEnd := target.First, target.Last
	if !m.empty {
		if m.current.First < unionStart {
			unionStart = m.current.First
		}
		if m.current.Last > unionEnd {
			unionEnd = m.current.Last
		}
	}

	for r := unionStart; r <= unionEnd; r++ {
		if target.Contains(r) {
			if _, ok := m.slots[r]; ok {
				continue // reuse in place
			}
			if err := m.materialize(r); err != nil {
				return err
			}
			continue
		}
		h, ok := m.slots[r]
		if !ok {
			continue
		}
		if err := m.surface.Detach(h); err != nil {
			return fmt.Errorf("detach row %d: %w", r, err)
		}
		m.pool.Release(h)
		delete(m.slots, r)
	}

	m.current = target
	m.empty = false
	return m.sentinel.Notify(target.Last)
}

// materialize acquires a container for row r, positions and fills it, and
// attaches it to the surface.
func (m *Manager) materialize(r int) error {
	h, ok := m.pool.Acquire()
	if !ok {
		var err error
		h, err = m.surface.NewRowContainer(m.columns)
		if err != nil {
			return fmt.Errorf("construct container for row %d: %w", r, err)
		}
		m.constructions++
	}
	m.surface.SetOffset(h, r*m.extent)
	m.fillRow(h, r)
	if err := m.surface.Attach(h); err != nil {
		return fmt.Errorf("attach row %d: %w", r, err)
	}
	m.slots[r] = h
	return nil
}

// fillRow overwrites every cell of h with row r's values. A failing cell
// gets the placeholder and is reported once; the rest of the row proceeds.
func (m *Manager) fillRow(h RowHandle, r int) {
	for c := 0; c < m.columns; c++ {
		v, err := m.source.Item(r, c)
		if err != nil {
			m.surface.SetCell(h, c, m.opts.Placeholder)
			m.cellErrors++
			if m.opts.OnCellError != nil {
				m.opts.OnCellError(r, c, err)
			}
			continue
		}
		m.surface.SetCell(h, c, v)
	}
}

// Invalidate refills every materialized row from the source without
// changing the window. Used after the underlying data file is reloaded.
func (m *Manager) Invalidate() error {
	if m.stopped {
		return ErrDestroyed
	}
	for r, h := range m.slots {
		m.fillRow(h, r)
	}
	return nil
}

// Destroy detaches every materialized container, drops the pool, and stops
// the manager for good. Any later Render/Update returns ErrDestroyed; the
// scheduler checks Stopped before rescheduling a frame. A destroyed manager
// cannot be reattached — construct a new one.
func (m *Manager) Destroy() error {
	if m.stopped {
		return nil
	}
	m.stopped = true

	var firstErr error
	for r, h := range m.slots {
		if err := m.surface.Detach(h); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("detach row %d during teardown: %w", r, err)
		}
	}
	m.slots = make(map[int]RowHandle)
	m.pool.Reset()
	m.empty = true
	return firstErr
}

// Stopped reports whether Destroy has run.
func (m *Manager) Stopped() bool {
	return m.stopped
}

// Window returns the currently materialized range; ok is false before the
// first update.
func (m *Manager) Window() (r RowRange, ok bool) {
	return m.current, !m.empty
}

// Extent returns the pixel height of one row, border included.
func (m *Manager) Extent() int {
	return m.extent
}

// Columns returns the column count read from the source at construction.
func (m *Manager) Columns() int {
	return m.columns
}

// SentinelRow returns the furthest row the scrollable extent has been
// stretched to.
func (m *Manager) SentinelRow() int {
	return m.sentinel.Position()
}

// Stats returns a snapshot of the manager's counters.
func (m *Manager) Stats() Stats {
	return Stats{
		Materialized:  len(m.slots),
		Constructions: m.constructions,
		Recycled:      m.pool.Recycled(),
		Released:      m.pool.Released(),
		Pooled:        m.pool.Len(),
		CellErrors:    m.cellErrors,
	}
}
