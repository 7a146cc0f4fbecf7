package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a bubbles help model styled for theme.
func newHelpModel(theme *Theme) help.Model {
	h := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)).Bold(true)
	h.Styles.ShortKey = keyStyle
	h.Styles.FullKey = keyStyle
	h.Styles.ShortDesc = theme.Muted
	h.Styles.FullDesc = theme.Muted
	h.Styles.ShortSeparator = theme.Muted
	h.Styles.FullSeparator = theme.Muted
	return h
}

// RenderKeybindHelp produces the one-line hint bar for mode.
func RenderKeybindHelp(reg *KeybindRegistry, mode AppMode, theme *Theme, width int) string {
	h := newHelpModel(theme)
	h.Width = width
	return h.ShortHelpView(NewKeyMap(reg, mode).ShortHelp())
}

// HelpView is the full keybind overlay toggled with "?".
type HelpView struct {
	registry *KeybindRegistry
	theme    *Theme
	mode     AppMode // mode whose keys are listed
	help     help.Model
}

// Ensure HelpView implements View.
var _ View = (*HelpView)(nil)

// NewHelpView lists the keys of mode.
func NewHelpView(reg *KeybindRegistry, mode AppMode, theme *Theme) *HelpView {
	h := newHelpModel(theme)
	h.ShowAll = true
	return &HelpView{registry: reg, theme: theme, mode: mode, help: h}
}

// Init implements View.
func (v *HelpView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *HelpView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?":
			return v, func() tea.Msg { return DismissModalMsg{} }
		}
	case tea.WindowSizeMsg:
		v.help.Width = msg.Width - 8
	}
	return v, nil
}

// View implements View.
func (v *HelpView) View() string {
	content := v.theme.Title.Render(v.theme.Heading("Keys")) + "\n\n" +
		v.help.View(NewKeyMap(v.registry, v.mode)) + "\n\n" +
		v.theme.Hint.Render("esc or ?: close")
	return v.theme.Box.Render(content)
}
