package ui

import (
	"context"
	"strings"
	"testing"

	"phonicsboard/internal/kvstore"
	"phonicsboard/internal/settings"
)

func newTestPanel(t *testing.T, variant settings.Variant) (*SettingsPanel, *settings.Manager) {
	t.Helper()
	m := settings.NewManager(kvstore.NewMemory(), variant, nil)
	theme := StandardTheme()
	if variant == settings.Retro {
		theme = RetroTheme()
	}
	return NewSettingsPanel(context.Background(), m, &theme), m
}

// press feeds a key and applies any resulting settings change back to the
// panel, the way the app loop does.
func press(t *testing.T, p *SettingsPanel, k string) interface{} {
	t.Helper()
	_, cmd := p.Update(keyMsg(k))
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if changed, ok := msg.(SettingsChangedMsg); ok {
		p.Update(changed)
	}
	return msg
}

func TestSettingsPanel_ToggleOption(t *testing.T) {
	p, m := newTestPanel(t, settings.Standard)

	// Cursor starts on Show Standard; move to Play Letter Name.
	for i := 0; i < 5; i++ {
		press(t, p, "down")
	}
	if p.Cursor != 5 {
		t.Fatalf("expected Cursor=5, got %d", p.Cursor)
	}
	press(t, p, "space")

	if !m.Current().PlayLetterName {
		t.Error("expected Play Letter Name on in the manager")
	}
	if !p.Current.PlayLetterName {
		t.Error("expected the panel to redraw from the change")
	}
}

func TestSettingsPanel_CursorBounds(t *testing.T) {
	p, _ := newTestPanel(t, settings.Standard)
	press(t, p, "up")
	if p.Cursor != 0 {
		t.Errorf("up at top: expected Cursor=0, got %d", p.Cursor)
	}
	for i := 0; i < 20; i++ {
		press(t, p, "down")
	}
	if p.Cursor != len(settings.Fields(settings.Standard))-1 {
		t.Errorf("down at bottom: expected last field, got %d", p.Cursor)
	}
}

func TestSettingsPanel_LetterKeyToggles(t *testing.T) {
	p, m := newTestPanel(t, settings.Standard)

	press(t, p, "q")
	if m.Current().Enabled("Q") {
		t.Error("expected Q hidden after pressing q")
	}
	press(t, p, "Q")
	if !m.Current().Enabled("Q") {
		t.Error("expected Q shown again after pressing Q")
	}
}

func TestSettingsPanel_LettersSection(t *testing.T) {
	p, m := newTestPanel(t, settings.Standard)

	press(t, p, "tab")
	if !p.Focus.Is(sectionLetters) {
		t.Fatalf("expected letters focused after tab, got %q", p.Focus.Current)
	}
	press(t, p, "down")  // H
	press(t, p, "right") // I
	if p.Letter != lettersPerRow+1 {
		t.Fatalf("expected Letter=%d, got %d", lettersPerRow+1, p.Letter)
	}
	press(t, p, "enter")
	if m.Current().Enabled("I") {
		t.Error("expected I hidden")
	}

	press(t, p, "shift+tab")
	if !p.Focus.Is(sectionOptions) {
		t.Errorf("expected options focused after shift+tab, got %q", p.Focus.Current)
	}
}

func TestSettingsPanel_EscAndReset(t *testing.T) {
	p, _ := newTestPanel(t, settings.Standard)

	if _, ok := press(t, p, "esc").(DismissModalMsg); !ok {
		t.Error("expected esc to dismiss")
	}
	if _, ok := press(t, p, "ctrl+r").(ShowResetConfirmMsg); !ok {
		t.Error("expected ctrl+r to ask for reset confirmation")
	}
}

func TestSettingsPanel_RetroHasAppearance(t *testing.T) {
	std, _ := newTestPanel(t, settings.Standard)
	if strings.Contains(std.View(), "Minimal Style") {
		t.Error("standard panel should not offer Minimal Style")
	}

	retro, m := newTestPanel(t, settings.Retro)
	view := retro.View()
	for _, want := range []string{"SETTINGS", "AUDIO SETTINGS", "APPEARANCE SETTINGS", "Minimal Style", "VISIBLE LETTERS"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected retro panel to contain %q", want)
		}
	}

	for i := 0; i < len(settings.Fields(settings.Retro))-1; i++ {
		press(t, retro, "down")
	}
	press(t, retro, "enter")
	if !m.Current().UseMinimalStyle {
		t.Error("expected Minimal Style toggled on")
	}
}
