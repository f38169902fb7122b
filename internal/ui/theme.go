package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds all colours for the application.
// Default palette follows Catppuccin Mocha.
type Theme struct {
	Bg           lipgloss.Color
	Surface      lipgloss.Color
	SurfaceHover lipgloss.Color
	Border       lipgloss.Color

	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	TextSubtle  lipgloss.Color
	TextInverse lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Bg:           lipgloss.Color("#1e1e2e"),
		Surface:      lipgloss.Color("#282840"),
		SurfaceHover: lipgloss.Color("#313152"),
		Border:       lipgloss.Color("#3b3b5c"),

		Text:        lipgloss.Color("#cdd6f4"),
		TextMuted:   lipgloss.Color("#9399b2"),
		TextSubtle:  lipgloss.Color("#6c7086"),
		TextInverse: lipgloss.Color("#1e1e2e"),

		Primary:   lipgloss.Color("#89b4fa"),
		Secondary: lipgloss.Color("#b4befe"),
		Accent:    lipgloss.Color("#f5c2e7"),

		Success: lipgloss.Color("#a6e3a1"),
		Warning: lipgloss.Color("#f9e2af"),
		Error:   lipgloss.Color("#f38ba8"),
		Info:    lipgloss.Color("#89b4fa"),
	}
}

// LightTheme returns a light palette (Catppuccin Latte).
func LightTheme() Theme {
	return Theme{
		Bg:           lipgloss.Color("#eff1f5"),
		Surface:      lipgloss.Color("#e6e9ef"),
		SurfaceHover: lipgloss.Color("#dce0e8"),
		Border:       lipgloss.Color("#bcc0cc"),

		Text:        lipgloss.Color("#4c4f69"),
		TextMuted:   lipgloss.Color("#6c6f85"),
		TextSubtle:  lipgloss.Color("#8c8fa1"),
		TextInverse: lipgloss.Color("#eff1f5"),

		Primary:   lipgloss.Color("#1e66f5"),
		Secondary: lipgloss.Color("#7287fd"),
		Accent:    lipgloss.Color("#ea76cb"),

		Success: lipgloss.Color("#40a02b"),
		Warning: lipgloss.Color("#df8e1d"),
		Error:   lipgloss.Color("#d20f39"),
		Info:    lipgloss.Color("#1e66f5"),
	}
}

// ThemeByName resolves a configured theme name, falling back to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds pre-computed lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	// Layout
	StatusBar lipgloss.Style
	HelpBar   lipgloss.Style

	// Grid
	Header      lipgloss.Style
	Cell        lipgloss.Style
	CellCursor  lipgloss.Style
	Separator   lipgloss.Style
	Placeholder lipgloss.Style
	BlankRow    lipgloss.Style

	// Text
	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	KeyBind lipgloss.Style
	KeyDesc lipgloss.Style
}

// NewStyles builds all styles from the given theme.
func NewStyles(t Theme) Styles {
	s := Styles{Theme: t}

	s.StatusBar = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)
	s.HelpBar = lipgloss.NewStyle().Foreground(t.TextSubtle).Padding(0, 1)

	s.Header = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.Cell = lipgloss.NewStyle().Foreground(t.Text)
	s.CellCursor = lipgloss.NewStyle().Foreground(t.Text).Background(t.SurfaceHover).Bold(true)
	s.Separator = lipgloss.NewStyle().Foreground(t.Border)
	s.Placeholder = lipgloss.NewStyle().Foreground(t.TextSubtle)
	s.BlankRow = lipgloss.NewStyle().Foreground(t.TextSubtle)

	s.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.Body = lipgloss.NewStyle().Foreground(t.Text)
	s.Muted = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.KeyBind = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.KeyDesc = lipgloss.NewStyle().Foreground(t.TextMuted)

	return s
}

// DefaultStyles returns styles using the dark theme.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
