package ui

import "testing"

func TestFocusManager_Cycle(t *testing.T) {
	var changes []string
	f := NewFocusManager("options", "letters")
	f.OnChange = func(from, to string) { changes = append(changes, from+">"+to) }

	if !f.Is("options") {
		t.Fatalf("expected first section focused, got %q", f.Current)
	}
	if got := f.Next(); got != "letters" {
		t.Errorf("Next: expected letters, got %q", got)
	}
	if got := f.Next(); got != "options" {
		t.Errorf("Next should wrap to options, got %q", got)
	}
	if got := f.Prev(); got != "letters" {
		t.Errorf("Prev should wrap to letters, got %q", got)
	}
	if len(changes) != 3 {
		t.Errorf("expected 3 changes, got %v", changes)
	}

	if f.SetFocus("missing") {
		t.Error("expected SetFocus to reject an unknown section")
	}
	if !f.SetFocus("options") || !f.Is("options") {
		t.Error("expected SetFocus(options) to focus options")
	}
}

func TestFocusManager_Empty(t *testing.T) {
	f := NewFocusManager()
	if f.Next() != "" || f.Prev() != "" {
		t.Error("expected empty focus manager to stay unfocused")
	}
}
