package grid

// Source supplies cell values for the grid. Implementations are synchronous
// and side-effect free; the engine imposes no upper bound on row.
//
// Item may fail for a single cell (out-of-range row, transient read error).
// Such failures never abort a window update: the affected cell is rendered
// as a placeholder and the error is reported through the manager's
// observer. The per-frame loop naturally retries on the next frame, so the
// engine performs no explicit retry of its own.
type Source interface {
	Columns() int
	Item(row, col int) (string, error)
}
