package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the explorer. Positive and Negative mark pole signs.
type Theme struct {
	Name     string
	Primary  lipgloss.Color
	Field    lipgloss.Color
	Positive lipgloss.Color
	Negative lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:     "classic",
		Primary:  lipgloss.Color("#00ffff"),
		Field:    lipgloss.Color("#5f87af"),
		Positive: lipgloss.Color("#ff4444"),
		Negative: lipgloss.Color("#4488ff"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666688"),
	}

	ThemeRetroGreen = Theme{
		Name:     "retro",
		Primary:  lipgloss.Color("#00ff00"), // Green phosphor
		Field:    lipgloss.Color("#00aa00"),
		Positive: lipgloss.Color("#88ff88"),
		Negative: lipgloss.Color("#ffff00"),
		Text:     lipgloss.Color("#00ff00"),
		Muted:    lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Primary:  lipgloss.Color("#ffffff"),
		Field:    lipgloss.Color("#888888"),
		Positive: lipgloss.Color("#ffffff"),
		Negative: lipgloss.Color("#0088ff"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#888888"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, ThemeClassic when unknown.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func nextTheme(cur Theme) Theme {
	for i, t := range Themes {
		if t.Name == cur.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}
