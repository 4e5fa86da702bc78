package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colours of the terminal chrome around the canvas.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Recording  lipgloss.Color
}

var (
	ThemeDark = Theme{
		Name:       "dark",
		Primary:    lipgloss.Color("#00ffff"),
		Secondary:  lipgloss.Color("#ff00ff"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#16171f"),
		Surface:    lipgloss.Color("#22243a"),
		Text:       lipgloss.Color("#f0f0f5"),
		Muted:      lipgloss.Color("#7a7c99"),
		Border:     lipgloss.Color("#444466"),
		Recording:  lipgloss.Color("#ff4444"),
	}

	ThemeLight = Theme{
		Name:       "light",
		Primary:    lipgloss.Color("#0077be"),
		Secondary:  lipgloss.Color("#c2185b"),
		Accent:     lipgloss.Color("#e65100"),
		Background: lipgloss.Color("#f5f8ff"),
		Surface:    lipgloss.Color("#e3e8f4"),
		Text:       lipgloss.Color("#1a1c29"),
		Muted:      lipgloss.Color("#6b7085"),
		Border:     lipgloss.Color("#b8bfd6"),
		Recording:  lipgloss.Color("#d32f2f"),
	}
)

// ThemeFor returns the chrome theme matching the session's dark flag.
func ThemeFor(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}
