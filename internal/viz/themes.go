package viz

import "github.com/charmbracelet/lipgloss"

// Theme binds the live view's colored elements to one palette: the
// title, the wire cursor, the history graph and the probability bar
// gradient. Styles derive from [CurrentTheme] at render time, so a
// switch takes effect on the next frame.
type Theme struct {
	Name    string
	Title   lipgloss.Color
	Cursor  lipgloss.Color
	Graph   lipgloss.Color
	BarHigh lipgloss.Color
	BarMid  lipgloss.Color
	BarLow  lipgloss.Color
}

var (
	// ThemeNeon is the default: magenta title over a cyan-violet bar
	// gradient.
	ThemeNeon = Theme{
		Name:    "neon",
		Title:   lipgloss.Color("#ff2ad4"),
		Cursor:  lipgloss.Color("#2af5ff"),
		Graph:   lipgloss.Color("#39ff7a"),
		BarHigh: lipgloss.Color("#2af5ff"),
		BarMid:  lipgloss.Color("#b36bff"),
		BarLow:  lipgloss.Color("#514663"),
	}

	// ThemePhosphor imitates a green monochrome terminal.
	ThemePhosphor = Theme{
		Name:    "phosphor",
		Title:   lipgloss.Color("#33ff33"),
		Cursor:  lipgloss.Color("#99ff99"),
		Graph:   lipgloss.Color("#33ff33"),
		BarHigh: lipgloss.Color("#66ff66"),
		BarMid:  lipgloss.Color("#22bb22"),
		BarLow:  lipgloss.Color("#115511"),
	}

	// ThemeMono stays grayscale apart from the cursor.
	ThemeMono = Theme{
		Name:    "mono",
		Title:   lipgloss.Color("#eeeeee"),
		Cursor:  lipgloss.Color("#44aaff"),
		Graph:   lipgloss.Color("#bbbbbb"),
		BarHigh: lipgloss.Color("#ffffff"),
		BarMid:  lipgloss.Color("#999999"),
		BarLow:  lipgloss.Color("#444444"),
	}

	ThemeIce = Theme{
		Name:    "ice",
		Title:   lipgloss.Color("#7fd4ff"),
		Cursor:  lipgloss.Color("#ffe08a"),
		Graph:   lipgloss.Color("#4fb8e7"),
		BarHigh: lipgloss.Color("#c9ecff"),
		BarMid:  lipgloss.Color("#5a9fc4"),
		BarLow:  lipgloss.Color("#274457"),
	}

	CurrentTheme = ThemeNeon

	Themes = []Theme{ThemeNeon, ThemePhosphor, ThemeMono, ThemeIce}
)

// GetTheme looks a theme up by name, falling back to neon.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNeon
}

// SetTheme switches the current theme by name.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme advances to the next palette, wrapping around.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = ThemeNeon
}

// ThemeNames lists the selectable palettes.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
