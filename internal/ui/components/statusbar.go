package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/gridview/internal/ui"
)

// StatusBarData carries the info displayed in the bottom status bar.
type StatusBarData struct {
	Source       string // name of the data source (file or "synthetic")
	CursorRow    int
	WindowFirst  int
	WindowLast   int
	WindowValid  bool
	Materialized int
	Pooled       int
	CellErrors   uint64
	Message      string // transient info/error message
	IsError      bool
}

// RenderStatusBar renders the bottom status bar with clear visual sections
// separated by dim vertical bars.
//
// Wide (>= 60):   row 1204  │  win 1199–1214  │  live 16 pool 4      data.csv
// Medium (40-59): row 1204  │  win 1199–1214
// Narrow (< 40):  row 1204
func RenderStatusBar(styles ui.Styles, data StatusBarData, width int) string {
	t := styles.Theme

	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Faint(true)
	sep := sepStyle.Render(" │ ")

	// ── Left sections ────────────────────────────────────────────

	rowStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	rowSection := " " + rowStyle.Render(fmt.Sprintf("row %d", data.CursorRow))

	var windowSection string
	if width >= 40 && data.WindowValid {
		winStyle := lipgloss.NewStyle().Foreground(t.Secondary)
		windowSection = sep + winStyle.Render(fmt.Sprintf("win %d–%d", data.WindowFirst, data.WindowLast))
	}

	var poolSection string
	if width >= 60 {
		poolStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		poolSection = sep + poolStyle.Render(fmt.Sprintf("live %d pool %d", data.Materialized, data.Pooled))
	}

	var errSection string
	if data.CellErrors > 0 && width >= 60 {
		errStyle := lipgloss.NewStyle().Foreground(t.Warning)
		errSection = sep + errStyle.Render(fmt.Sprintf("∅ %d", data.CellErrors))
	}

	left := rowSection + windowSection + poolSection + errSection

	// ── Right section ────────────────────────────────────────────

	var right string
	if data.Message != "" {
		fg := t.Info
		if data.IsError {
			fg = t.Error
		}
		right = lipgloss.NewStyle().Foreground(fg).Render(data.Message) + " "
	} else if width >= 60 && data.Source != "" {
		right = lipgloss.NewStyle().Foreground(t.TextSubtle).Render(data.Source) + " "
	}

	// ── Assemble ─────────────────────────────────────────────────

	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := width - leftW - rightW
	if gap < 0 {
		gap = 1
		right = "" // drop right side if no room
	}

	content := left + strings.Repeat(" ", gap) + right

	return styles.StatusBar.Width(width).Render(content)
}
