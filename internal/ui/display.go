package ui

import (
	"strings"

	"phonicsboard/internal/alphabet"
	"phonicsboard/internal/settings"
	"phonicsboard/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DisplayView shows the selected letter in its standard and cursive forms.
type DisplayView struct {
	theme    *Theme
	Letter   *alphabet.Entry
	Settings settings.Settings
	width    int
	height   int
}

// Ensure DisplayView implements View.
var _ View = (*DisplayView)(nil)

// NewDisplayView creates an empty display.
func NewDisplayView(theme *Theme, s settings.Settings) *DisplayView {
	return &DisplayView{theme: theme, Settings: s}
}

// SetSize sets the panel size in cells, frame included.
func (d *DisplayView) SetSize(w, h int) {
	d.width, d.height = w, h
}

// Init implements View.
func (d *DisplayView) Init() tea.Cmd { return nil }

// Update implements View.
func (d *DisplayView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case LetterSelectedMsg:
		e := msg.Entry
		d.Letter = &e
	case SettingsChangedMsg:
		d.Settings = msg.Settings
	}
	return d, nil
}

// forms returns the letter text shown for one typeface row, honouring the
// case toggles.
func (d *DisplayView) forms() string {
	if d.Letter == nil {
		return ""
	}
	var parts []string
	if d.Settings.ShowUppercase {
		parts = append(parts, d.Letter.Letter())
	}
	if d.Settings.ShowLowercase {
		parts = append(parts, strings.ToLower(d.Letter.Letter()))
	}
	return strings.Join(parts, " ")
}

type displayRow struct {
	text  string
	label bool
}

func (d *DisplayView) rows() []displayRow {
	if d.Letter == nil {
		return []displayRow{{text: d.theme.Placeholder}}
	}
	text := d.forms()
	if text == "" {
		return nil
	}
	var rows []displayRow
	if d.Settings.ShowStandard {
		if d.theme.ShowLabels {
			rows = append(rows, displayRow{text: "Standard", label: true})
		}
		rows = append(rows, displayRow{text: spread(text)})
	}
	if d.Settings.ShowCursive {
		if d.theme.ShowLabels {
			rows = append(rows, displayRow{text: "Cursive", label: true})
		}
		rows = append(rows, displayRow{text: spread(Cursive(text))})
	}
	return rows
}

// Lines returns the unstyled content rows: the placeholder, or a caption and
// a letter row per enabled typeface.
func (d *DisplayView) Lines() []string {
	rows := d.rows()
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.text
	}
	return lines
}

// spread widens "A a" to "A   a" so the pair reads as two glyphs.
func spread(s string) string {
	return strings.ReplaceAll(s, " ", "   ")
}

// View implements View.
func (d *DisplayView) View() string {
	frame := d.theme.Display
	innerW := d.width - frame.GetHorizontalFrameSize()
	innerH := d.height - frame.GetVerticalFrameSize()
	if innerW < 1 || innerH < 1 {
		return ""
	}

	rows := d.rows()
	styled := make([]string, len(rows))
	for i, r := range rows {
		st := d.theme.Letter
		switch {
		case d.Letter == nil:
			st = d.theme.PlaceholderText
		case r.label:
			st = d.theme.DisplayLabel
		}
		styled[i] = st.Render(textutil.Center(r.text, innerW))
	}

	body := lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, styled...))
	return frame.Width(innerW + frame.GetHorizontalPadding()).Render(body)
}
