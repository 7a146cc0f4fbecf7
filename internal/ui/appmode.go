package ui

// AppMode is the input mode, derived from the topmost overlay.
type AppMode int

const (
	ModeBoard AppMode = iota
	ModeSettings
	ModeHelp
	ModeConfirm
)

func (m AppMode) String() string {
	switch m {
	case ModeBoard:
		return "Board"
	case ModeSettings:
		return "Settings"
	case ModeHelp:
		return "Help"
	case ModeConfirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}
