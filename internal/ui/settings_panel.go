package ui

import (
	"context"
	"strings"

	"phonicsboard/internal/alphabet"
	"phonicsboard/internal/settings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Focus sections of the settings panel.
const (
	sectionOptions = "options"
	sectionLetters = "letters"
)

// lettersPerRow is the width of the visible-letters grid.
const lettersPerRow = 7

// SettingsPanel is the overlay that edits the board settings. Every change
// goes through the settings manager; the panel redraws from the
// SettingsChangedMsg that follows.
type SettingsPanel struct {
	ctx     context.Context
	manager *settings.Manager
	theme   *Theme
	fields  []settings.Field
	letters []string

	Current settings.Settings
	Focus   *FocusManager
	Cursor  int // index into fields
	Letter  int // index into letters
}

// Ensure SettingsPanel implements View.
var _ View = (*SettingsPanel)(nil)

// NewSettingsPanel creates a panel editing manager's settings.
func NewSettingsPanel(ctx context.Context, manager *settings.Manager, theme *Theme) *SettingsPanel {
	return &SettingsPanel{
		ctx:     ctx,
		manager: manager,
		theme:   theme,
		fields:  settings.Fields(manager.Variant()),
		letters: alphabet.Letters(),
		Current: manager.Current(),
		Focus:   NewFocusManager(sectionOptions, sectionLetters),
	}
}

// Init implements View.
func (p *SettingsPanel) Init() tea.Cmd { return nil }

// Update implements View.
func (p *SettingsPanel) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case SettingsChangedMsg:
		p.Current = p.manager.Current()
		return p, nil
	case tea.KeyMsg:
		return p, p.handleKey(msg)
	}
	return p, nil
}

func (p *SettingsPanel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return func() tea.Msg { return DismissModalMsg{} }
	case "ctrl+r":
		return func() tea.Msg { return ShowResetConfirmMsg{} }
	case "tab":
		p.Focus.Next()
		return nil
	case "shift+tab":
		p.Focus.Prev()
		return nil
	case "enter", " ":
		if p.Focus.Is(sectionLetters) {
			return toggleLetterCmd(p.ctx, p.manager, p.letters[p.Letter])
		}
		return toggleFieldCmd(p.ctx, p.manager, p.fields[p.Cursor])
	}

	if p.Focus.Is(sectionLetters) {
		switch msg.String() {
		case "left":
			p.moveLetter(-1)
		case "right":
			p.moveLetter(1)
		case "up":
			p.moveLetter(-lettersPerRow)
		case "down":
			p.moveLetter(lettersPerRow)
		}
	} else {
		switch msg.String() {
		case "up":
			if p.Cursor > 0 {
				p.Cursor--
			}
		case "down":
			if p.Cursor < len(p.fields)-1 {
				p.Cursor++
			}
		}
	}

	// A letter key toggles that letter from either section.
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if e, ok := alphabet.Lookup(string(msg.Runes[0])); ok {
			p.Letter = int(e.Char - 'A')
			return toggleLetterCmd(p.ctx, p.manager, e.Letter())
		}
	}
	return nil
}

func (p *SettingsPanel) moveLetter(delta int) {
	next := p.Letter + delta
	if next >= 0 && next < len(p.letters) {
		p.Letter = next
	}
}

// View implements View.
func (p *SettingsPanel) View() string {
	t := p.theme
	var b strings.Builder
	b.WriteString(t.Title.Render(t.Heading("Settings")))
	b.WriteString("\n")

	var group settings.Group
	for i, f := range p.fields {
		if f.Group() != group {
			group = f.Group()
			b.WriteString("\n" + t.Section.Render(t.Heading(string(group)+" Settings")) + "\n")
		}
		check := "[ ]"
		if f.Get(p.Current) {
			check = "[x]"
		}
		line := check + " " + f.Label()
		if p.Focus.Is(sectionOptions) && i == p.Cursor {
			b.WriteString(t.Selected.Render("> "+line) + "\n")
		} else {
			b.WriteString(t.Normal.Render("  "+line) + "\n")
		}
	}

	b.WriteString("\n" + t.Section.Render(t.Heading("Visible Letters")) + "\n")
	b.WriteString(p.renderLetters())

	b.WriteString("\n\n" + t.Hint.Render("tab: options/letters  space: toggle  ctrl+r: reset  esc: close"))
	return t.Box.Render(b.String())
}

func (p *SettingsPanel) renderLetters() string {
	t := p.theme
	var rows []string
	for start := 0; start < len(p.letters); start += lettersPerRow {
		end := start + lettersPerRow
		if end > len(p.letters) {
			end = len(p.letters)
		}
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			l := p.letters[i]
			st := t.Normal
			if !p.Current.Enabled(l) {
				st = t.Muted.Strikethrough(true)
			}
			if p.Focus.Is(sectionLetters) && i == p.Letter {
				st = st.Inherit(t.Selected).Foreground(t.Selected.GetForeground()).Underline(true)
			}
			cells = append(cells, st.Render(" "+l+" "))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func toggleFieldCmd(ctx context.Context, m *settings.Manager, f settings.Field) tea.Cmd {
	return func() tea.Msg {
		s, err := m.Toggle(ctx, f)
		return SettingsChangedMsg{Settings: s, Err: err}
	}
}

func toggleLetterCmd(ctx context.Context, m *settings.Manager, letter string) tea.Cmd {
	return func() tea.Msg {
		s, err := m.ToggleLetter(ctx, letter)
		return SettingsChangedMsg{Settings: s, Err: err}
	}
}

func resetSettingsCmd(ctx context.Context, m *settings.Manager) tea.Cmd {
	return func() tea.Msg {
		s, err := m.Reset(ctx)
		return SettingsChangedMsg{Settings: s, Err: err}
	}
}
