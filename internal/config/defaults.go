package config

// KeyBindings defines the mapping of actions to keys.
// Kept separate so it can later be made configurable via config file.
type KeyBindings struct {
	Quit     string
	Help     string
	Up       string
	Down     string
	PageUp   string
	PageDown string
	Top      string
	Bottom   string
	Refresh  string
	YankRow  string
}

// DefaultKeyBindings returns the default key bindings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Quit:     "q",
		Help:     "?",
		Up:       "k",
		Down:     "j",
		PageUp:   "pgup",
		PageDown: "pgdown",
		Top:      "g",
		Bottom:   "G",
		Refresh:  "r",
		YankRow:  "y",
	}
}
