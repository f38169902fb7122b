package common

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ── Custom messages ─────────────────────────────────────────────────────────

// FrameMsg drives one iteration of the render loop. The app reschedules it
// only while the grid manager is still live.
type FrameMsg struct{}

// RefreshMsg signals that the backing data changed and materialized rows
// must be refilled.
type RefreshMsg struct{}

// ErrMsg carries an error to be displayed.
type ErrMsg struct{ Err error }

// InfoMsg carries an informational message.
type InfoMsg struct{ Text string }

// CmdErr creates a tea.Cmd that sends an ErrMsg.
func CmdErr(err error) tea.Cmd {
	return func() tea.Msg { return ErrMsg{Err: err} }
}

// CmdInfo creates a tea.Cmd that sends an InfoMsg.
func CmdInfo(text string) tea.Cmd {
	return func() tea.Msg { return InfoMsg{Text: text} }
}
