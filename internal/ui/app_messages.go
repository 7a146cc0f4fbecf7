package ui

import (
	"phonicsboard/internal/alphabet"
	"phonicsboard/internal/playback"
	"phonicsboard/internal/progress"
	"phonicsboard/internal/settings"
)

// LetterSelectedMsg is sent when a letter button is chosen by key, Enter or
// mouse.
type LetterSelectedMsg struct {
	Entry alphabet.Entry
}

// PlaybackDoneMsg carries the result of one playback invocation.
type PlaybackDoneMsg struct {
	Result playback.Result
}

// progressMsg wraps a playback step event read from the emitter channel.
type progressMsg struct {
	Event progress.Event
}

// SettingsChangedMsg is sent after the settings manager applied (and tried
// to persist) a change.
type SettingsChangedMsg struct {
	Settings settings.Settings
	Err      error
}

// OpenSettingsMsg opens the settings overlay (ctrl+s or the hold gesture).
type OpenSettingsMsg struct{}

// ToggleHelpMsg shows or hides the keybind help overlay.
type ToggleHelpMsg struct{}

// ShowResetConfirmMsg asks before restoring default settings.
type ShowResetConfirmMsg struct{}

// ResetSettingsMsg is sent when the user confirms the reset.
type ResetSettingsMsg struct{}

// DismissModalMsg is sent when the user closes the top overlay (Esc).
type DismissModalMsg struct{}

// QuitMsg shuts the board down.
type QuitMsg struct{}
