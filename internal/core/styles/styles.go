// Package styles provides shared lipgloss styles for the TUI.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	BorderStyle     lipgloss.Style
	PanelTitleStyle lipgloss.Style

	// Header
	BrandStyle lipgloss.Style

	// List panel
	ItemSelectedStyle lipgloss.Style
	ItemNormalStyle   lipgloss.Style

	// Info panel
	InfoTextStyle lipgloss.Style

	// Footer key hints
	QuitKeyStyle lipgloss.Style
	TickKeyStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	BorderStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	PanelTitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	BrandStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	ItemSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Warning)
	ItemNormalStyle = lipgloss.NewStyle()

	InfoTextStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)

	QuitKeyStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)
	TickKeyStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
