package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModal asks a yes/no question. Enter or y confirms; Esc or n
// cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string // Optional warning details
	OnConfirm func() tea.Msg
	theme     *Theme
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a generic confirmation modal.
func NewConfirmModal(theme *Theme, title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:     title,
		Label:     label,
		OnConfirm: onConfirm,
		theme:     theme,
	}
}

// WithDetails adds warning details to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewResetConfirmModal asks before restoring the default settings.
func NewResetConfirmModal(theme *Theme) *ConfirmModal {
	return NewConfirmModal(theme,
		"Reset settings?",
		"All options and letters go back to their defaults.",
		func() tea.Msg { return ResetSettingsMsg{} },
	).WithDetails("Hidden letters will be shown again")
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	t := m.theme
	content := t.TitleWarning.Render(t.Heading(m.Title)) + "\n\n"
	content += t.Normal.Render(m.Label)
	if m.Details != "" {
		content += "\n" + t.Details.Render(m.Details)
	}
	content += "\n\n" + t.Hint.Render("y/Enter: confirm  Esc: cancel")
	return t.BoxWarning.Render(content)
}
