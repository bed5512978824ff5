package viz

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour scheme of the live view.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

func palette(name string, hex ...string) Theme {
	c := make([]lipgloss.Color, len(hex))
	for i, h := range hex {
		c[i] = lipgloss.Color(h)
	}
	return Theme{
		Name: name, Primary: c[0], Secondary: c[1], Accent: c[2], Background: c[3],
		Text: c[4], Muted: c[5], Success: c[6], Warning: c[7], Error: c[8],
	}
}

// Themes in cycling order. The default uses the scene colours: block, bob
// and ball.
var Themes = []Theme{
	palette("default", "#4299e1", "#9f7aea", "#e53e3e", "#1a202c", "#e2e8f0", "#a0aec0", "#48bb78", "#ed8936", "#e53e3e"),
	palette("chalkboard", "#f7fafc", "#fbd38d", "#9ae6b4", "#22372b", "#edf2f7", "#718096", "#9ae6b4", "#fbd38d", "#feb2b2"),
	palette("blueprint", "#bee3f8", "#90cdf4", "#ffffff", "#1a365d", "#ebf8ff", "#4a6fa5", "#9ae6b4", "#faf089", "#fc8181"),
	palette("paper", "#2d3748", "#805ad5", "#c53030", "#fffff0", "#1a202c", "#718096", "#2f855a", "#c05621", "#c53030"),
	palette("mono", "#ffffff", "#cccccc", "#ffffff", "#000000", "#dddddd", "#777777", "#ffffff", "#aaaaaa", "#ffffff"),
}

// CurrentTheme is the theme the live view renders with.
var CurrentTheme = Themes[0]

// GetTheme returns the named theme, or the default for an unknown name.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme returns the name of the theme after name, wrapping around.
func NextTheme(name string) string {
	names := ThemeNames()
	i := slices.Index(names, name)
	return names[(i+1)%len(names)]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
