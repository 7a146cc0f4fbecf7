package ui

import (
	"fmt"
	"strconv"
	"strings"

	"phonicsboard/internal/layout"

	"github.com/charmbracelet/lipgloss"
)

// Shared colors
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - focus, borders
	ColorDanger    = "196" // Red - warnings
	ColorMuted     = "241" // Gray - hints
	ColorText      = "252" // Light gray - normal text
	ColorWarning   = "208" // Orange - warning details
)

// retroPalette is the button color cycle of the retro board.
var retroPalette = []string{
	"#E53935", // Red
	"#1E88E5", // Blue
	"#43A047", // Green
	"#FDD835", // Yellow
	"#8E24AA", // Purple
	"#FB8C00", // Orange
	"#00ACC1", // Cyan
	"#D81B60", // Pink
}

// Theme bundles the sizing constants and styles of one board look.
type Theme struct {
	Name        string
	Params      layout.Params
	Placeholder string
	// ShowLabels prints "Standard"/"Cursive" captions above the letters.
	ShowLabels bool
	// Shout renders titles and section headers in capitals.
	Shout bool
	// Palette cycles button colors by visible index; empty means plain
	// buttons.
	Palette []string

	Display         lipgloss.Style // letter display frame
	DisplayLabel    lipgloss.Style
	Letter          lipgloss.Style
	PlaceholderText lipgloss.Style

	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonSelected lipgloss.Style

	Title        lipgloss.Style
	TitleWarning lipgloss.Style
	Section      lipgloss.Style
	Box          lipgloss.Style
	BoxWarning   lipgloss.Style
	Selected     lipgloss.Style
	Normal       lipgloss.Style
	Muted        lipgloss.Style
	Hint         lipgloss.Style
	Status       lipgloss.Style
	Details      lipgloss.Style
}

// StandardTheme is the plain black-on-white board.
func StandardTheme() Theme {
	t := baseTheme()
	t.Name = "standard"
	t.Params = layout.StandardParams
	t.Placeholder = "Select a letter"
	t.ShowLabels = true
	t.Display = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(ColorText))
	t.Button = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorText)).
		Foreground(lipgloss.Color(ColorText)).
		Bold(true)
	return t
}

// RetroTheme is the console-inspired board with chunky, color-cycled
// buttons.
func RetroTheme() Theme {
	t := baseTheme()
	t.Name = "retro"
	t.Params = layout.RetroParams
	t.Placeholder = "TAP A LETTER!"
	t.Shout = true
	t.Palette = retroPalette
	t.Display = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("#8B4513")).
		Background(lipgloss.Color("#F5E6C8")).
		Foreground(lipgloss.Color("#2D1B0E"))
	t.PlaceholderText = t.PlaceholderText.Foreground(lipgloss.Color("#8B4513"))
	t.Letter = t.Letter.Foreground(lipgloss.Color("#2D1B0E"))
	t.Button = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("#2D1B0E")).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true)
	t.Title = t.Title.Foreground(lipgloss.Color("#FDD835"))
	t.Box = t.Box.Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("#8B4513"))
	return t
}

func baseTheme() Theme {
	return Theme{
		DisplayLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		Letter:          lipgloss.NewStyle().Bold(true),
		PlaceholderText: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)).Italic(true),
		ButtonFocused: lipgloss.NewStyle().
			BorderForeground(lipgloss.Color(ColorHighlight)),
		ButtonSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)).
			BorderForeground(lipgloss.Color(ColorAccent)),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccent)),
		TitleWarning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDanger)),
		Section: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHighlight)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorHighlight)).
			Padding(1, 2),
		BoxWarning: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorDanger)).
			Padding(1, 2),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHighlight)).
			Bold(true),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)),
		Details: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)),
	}
}

// Heading formats a title or section header for the theme.
func (t Theme) Heading(s string) string {
	if t.Shout {
		return strings.ToUpper(s)
	}
	return s
}

// ButtonStyle returns the style of the button at visible index idx. Minimal
// mode drops the palette and falls back to plain buttons.
func (t Theme) ButtonStyle(idx int, minimal, focused, selected bool) lipgloss.Style {
	s := t.Button
	if len(t.Palette) > 0 && !minimal {
		c := t.Palette[idx%len(t.Palette)]
		s = s.Background(lipgloss.Color(c)).
			BorderBackground(lipgloss.Color(c)).
			BorderForeground(lipgloss.Color(darken(c, 30)))
	} else if minimal {
		s = StandardTheme().Button
	}
	if selected {
		s = s.Foreground(t.ButtonSelected.GetForeground()).
			BorderForeground(t.ButtonSelected.GetBorderTopForeground())
	}
	if focused {
		s = s.BorderForeground(t.ButtonFocused.GetBorderTopForeground())
	}
	return s
}

// darken lowers each channel of a #RRGGBB color by percent of full scale.
// Malformed input is returned unchanged.
func darken(hex string, percent int) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	n, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return hex
	}
	amt := int(float64(percent)*2.55 + 0.5)
	ch := func(v int) int {
		v -= amt
		if v < 0 {
			return 0
		}
		return v
	}
	r := ch(int(n >> 16 & 0xFF))
	g := ch(int(n >> 8 & 0xFF))
	b := ch(int(n & 0xFF))
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
