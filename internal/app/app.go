package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/gridview/internal/common"
	"github.com/Akashdeep-Patra/gridview/internal/config"
	"github.com/Akashdeep-Patra/gridview/internal/grid"
	"github.com/Akashdeep-Patra/gridview/internal/logger"
	"github.com/Akashdeep-Patra/gridview/internal/surface"
	"github.com/Akashdeep-Patra/gridview/internal/ui"
	"github.com/Akashdeep-Patra/gridview/internal/ui/components"
)

// Reloader is implemented by sources backed by a file that can be re-read.
type Reloader interface {
	Reload() error
}

// Namer is implemented by sources that can identify themselves in the
// status bar.
type Namer interface {
	Name() string
}

// Headerer is implemented by sources that carry column titles.
type Headerer interface {
	Header() []string
}

// wheelRows is how many rows one wheel notch scrolls.
const wheelRows = 3

// Model is the top-level Bubbletea model. It owns the terminal surface and
// the row window manager, and acts as the engine's per-frame scheduler: a
// recurring FrameMsg drives Manager.Render, and the tick is rescheduled
// only while the manager is live, so teardown reliably stops the loop.
type Model struct {
	cfg    *config.Config
	styles ui.Styles
	keys   KeyMap

	surf   *surface.Terminal
	mgr    *grid.Manager
	source grid.Source

	width    int
	height   int
	viewRows int
	cursor   int

	attached bool
	showHelp bool

	statusMsg string
	statusErr bool
	statusExp time.Time

	frameEvery time.Duration
	log        *logger.Entry
}

// New creates the application model and wires the engine to a fresh
// terminal surface.
func New(cfg *config.Config, source grid.Source) *Model {
	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))
	extent := grid.RowExtent(cfg.RowHeight, cfg.BorderWidth)
	surf := surface.New(styles, extent, cfg.ColumnWidth)
	log := logger.Named("app")

	mgr := grid.NewManager(surf, source, grid.Options{
		RowHeight:         cfg.RowHeight,
		BorderWidth:       cfg.BorderWidth,
		PreloadRows:       cfg.PreloadRows,
		SentinelLookahead: cfg.SentinelLookahead,
		Placeholder:       cfg.Placeholder,
		OnCellError: func(row, col int, err error) {
			// Out-of-range cells past a finite file's end land here for
			// every materialization; debug level keeps the log usable.
			logger.Named("grid").WithFields(logger.Fields{
				"row": row,
				"col": col,
			}).Debug(err)
		},
	})

	return &Model{
		cfg:        cfg,
		styles:     styles,
		keys:       DefaultKeyMap(),
		surf:       surf,
		mgr:        mgr,
		source:     source,
		frameEvery: time.Second / time.Duration(cfg.FPS),
		log:        log,
	}
}

// Init schedules the first frame.
func (m *Model) Init() tea.Cmd {
	return m.frameTick()
}

// frameTick schedules the next FrameMsg.
func (m *Model) frameTick() tea.Cmd {
	return tea.Tick(m.frameEvery, func(time.Time) tea.Msg {
		return common.FrameMsg{}
	})
}

// Update processes messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewRows = m.contentHeight()
		m.surf.SetSize(m.gridWidth(), m.viewRows)
		if !m.attached {
			m.attached = true
			if err := m.mgr.Attach(); err != nil {
				return m, common.CmdErr(err)
			}
		}
		return m, nil

	case common.FrameMsg:
		// Stop flag first: a tick issued just before teardown must not
		// re-enter the engine.
		if m.mgr.Stopped() {
			return m, nil
		}
		if err := m.mgr.Render(); err != nil {
			// Metrics/attach failures mean the surface is gone — fatal
			// for this manager instance.
			m.log.WithField("err", err).Error("render failed, shutting down")
			m.teardown()
			return m, tea.Sequence(common.CmdErr(err), tea.Quit)
		}
		return m, m.frameTick()

	case common.RefreshMsg:
		return m, m.reload()

	case common.ErrMsg:
		m.statusMsg = msg.Err.Error()
		m.statusErr = true
		m.statusExp = time.Now().Add(5 * time.Second)
		return m, nil

	case common.InfoMsg:
		m.statusMsg = msg.Text
		m.statusErr = false
		m.statusExp = time.Now().Add(3 * time.Second)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.showHelp {
			m.showHelp = false
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.viewRows)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.viewRows)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.surf.SetScroll(0)
	case key.Matches(msg, m.keys.Bottom):
		// The deepest reachable row is wherever the sentinel has been
		// stretched to; landing there stretches it further next frame.
		m.cursor = m.surf.MaxRow()
		m.surf.SetScroll(m.cursor - m.viewRows + 1)

	case key.Matches(msg, m.keys.Refresh):
		return m, m.reload()

	case key.Matches(msg, m.keys.YankRow):
		return m, m.yankRow()
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.surf.SetScroll(m.surf.Scroll() - wheelRows)
		m.clampCursorToView()
	case tea.MouseButtonWheelDown:
		m.surf.SetScroll(m.surf.Scroll() + wheelRows)
		m.clampCursorToView()
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			break
		}
		// Click-to-select: Y is relative to the grid after the header row.
		row := m.surf.Scroll() + msg.Y - m.headerRows()
		if row >= 0 && msg.Y >= m.headerRows() && msg.Y < m.headerRows()+m.viewRows {
			m.cursor = row
		}
	}
	return m, nil
}

// moveCursor shifts the cursor and keeps it visible.
func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.surf.Scroll() {
		m.surf.SetScroll(m.cursor)
	}
	if bottom := m.surf.Scroll() + m.viewRows - 1; m.cursor > bottom {
		m.surf.SetScroll(m.cursor - m.viewRows + 1)
	}
	// SetScroll clamps against the sentinel extent; pull the cursor back
	// in case it outran what is reachable this frame.
	if max := m.surf.MaxRow(); m.cursor > max {
		m.cursor = max
	}
}

// clampCursorToView drags the cursor along when wheel scrolling moves the
// viewport away from it.
func (m *Model) clampCursorToView() {
	if m.cursor < m.surf.Scroll() {
		m.cursor = m.surf.Scroll()
	}
	if bottom := m.surf.Scroll() + m.viewRows - 1; m.cursor > bottom {
		m.cursor = bottom
	}
}

// reload re-reads a file-backed source and refills materialized rows.
// Runs inline in the update goroutine: the engine reads the source only
// from this same goroutine, so reloading here cannot race a render.
func (m *Model) reload() tea.Cmd {
	rl, ok := m.source.(Reloader)
	if !ok {
		return common.CmdInfo("source is not reloadable")
	}
	if err := rl.Reload(); err != nil {
		m.log.WithField("err", err).Warn("reload failed")
		return common.CmdErr(err)
	}
	if err := m.mgr.Invalidate(); err != nil {
		return common.CmdErr(err)
	}
	return common.CmdInfo("data reloaded")
}

// yankRow copies the cursor row's cells to the system clipboard.
func (m *Model) yankRow() tea.Cmd {
	row := m.cursor
	cells := make([]string, 0, m.mgr.Columns())
	for c := 0; c < m.mgr.Columns(); c++ {
		v, err := m.source.Item(row, c)
		if err != nil {
			v = m.cfg.Placeholder
		}
		cells = append(cells, v)
	}
	if err := clipboard.WriteAll(strings.Join(cells, "\t")); err != nil {
		return common.CmdErr(fmt.Errorf("copy row %d: %w", row, err))
	}
	return common.CmdInfo(fmt.Sprintf("row %d copied", row))
}

// teardown stops the render loop and releases everything, in dependency
// order: the manager detaches its containers first, then the surface
// closes. Safe to call twice.
func (m *Model) teardown() {
	if err := m.mgr.Destroy(); err != nil {
		m.log.WithField("err", err).Warn("teardown")
	}
	m.surf.Close()
}

// View renders the entire UI. This is a pure function — no I/O.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showHelp {
		return components.RenderHelp(m.styles, "Keyboard Shortcuts",
			components.GlobalHelpEntries(), m.width, m.height)
	}

	var header string
	if h, ok := m.source.(Headerer); ok {
		header = m.surf.HeaderLine(h.Header())
	}

	gridFrame := lipgloss.NewStyle().Width(m.gridWidth()).Render(m.surf.Frame(m.cursor))
	bar := components.RenderScrollbar(m.styles, m.viewRows,
		m.surf.MaxRow()+1, m.viewRows, m.surf.Scroll())
	content := gridFrame
	if bar != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, gridFrame, bar)
	}

	statusBar := components.RenderStatusBar(m.styles, m.statusData(), m.width)

	if header != "" {
		return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m *Model) statusData() components.StatusBarData {
	stats := m.mgr.Stats()
	data := components.StatusBarData{
		CursorRow:    m.cursor,
		Materialized: stats.Materialized,
		Pooled:       stats.Pooled,
		CellErrors:   stats.CellErrors,
	}
	if n, ok := m.source.(Namer); ok {
		data.Source = n.Name()
	}
	if win, ok := m.mgr.Window(); ok {
		data.WindowFirst = win.First
		data.WindowLast = win.Last
		data.WindowValid = true
	}
	if m.statusMsg != "" && time.Now().Before(m.statusExp) {
		data.Message = m.statusMsg
		data.IsError = m.statusErr
	}
	return data
}

// headerRows returns how many lines the column header occupies.
func (m *Model) headerRows() int {
	if h, ok := m.source.(Headerer); ok && len(h.Header()) > 0 {
		return 1
	}
	return 0
}

// gridWidth leaves one column for the scrollbar.
func (m *Model) gridWidth() int {
	w := m.width - 1
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) contentHeight() int {
	h := m.height - m.headerRows() - 1 // status bar
	if h < 1 {
		h = 1
	}
	return h
}
