package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors both the side panel and the overlays drawn on the canvas.
// Balls always keep their own colors.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Graph     lipgloss.Color

	Contact color.RGBA
	Arrow   color.RGBA
	Held    color.RGBA
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Graph:     lipgloss.Color("#00ff00"),
		Contact:   color.RGBA{R: 230, G: 41, B: 55, A: 255},
		Arrow:     color.RGBA{R: 0, G: 228, B: 48, A: 255},
		Held:      color.RGBA{R: 255, G: 255, B: 0, A: 255},
	}

	// green phosphor
	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Graph:     lipgloss.Color("#88ff88"),
		Contact:   color.RGBA{R: 136, G: 255, B: 136, A: 255},
		Arrow:     color.RGBA{R: 0, G: 204, B: 0, A: 255},
		Held:      color.RGBA{R: 200, G: 255, B: 200, A: 255},
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Graph:     lipgloss.Color("#0088ff"),
		Contact:   color.RGBA{R: 255, G: 0, B: 0, A: 255},
		Arrow:     color.RGBA{R: 0, G: 136, B: 255, A: 255},
		Held:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}

	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns the named theme, or cyberpunk for unknown names.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one and returns it.
func NextTheme() Theme {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return CurrentTheme
		}
	}
	CurrentTheme = Themes[0]
	return CurrentTheme
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
