package ui

import (
	"fmt"
	"strings"

	"phonicsboard/internal/progress"
	"phonicsboard/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusHistory      = 8  // step events remembered
	statusMessageWidth = 40 // columns of an error message shown
)

// StatusLine shows the latest playback step events and the key hint bar.
type StatusLine struct {
	theme   *Theme
	events  []progress.Event
	Hint    string
	width   int
	lastErr string
}

// Ensure StatusLine implements View.
var _ View = (*StatusLine)(nil)

// NewStatusLine creates an empty status line.
func NewStatusLine(theme *Theme) *StatusLine {
	return &StatusLine{theme: theme}
}

// SetWidth sets the line width in cells.
func (s *StatusLine) SetWidth(w int) { s.width = w }

// Init implements View.
func (s *StatusLine) Init() tea.Cmd { return nil }

// Update implements View.
func (s *StatusLine) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		s.events = append(s.events, msg.Event)
		if len(s.events) > statusHistory {
			s.events = s.events[len(s.events)-statusHistory:]
		}
	case SettingsChangedMsg:
		s.lastErr = ""
		if msg.Err != nil {
			s.lastErr = "settings not saved"
		}
	}
	return s, nil
}

// Events returns the remembered events, oldest first.
func (s *StatusLine) Events() []progress.Event {
	return s.events
}

// Latest renders the newest step event, e.g. "✓ A phonics".
func (s *StatusLine) Latest() string {
	if len(s.events) == 0 {
		return ""
	}
	ev := s.events[len(s.events)-1]
	line := fmt.Sprintf("%s %s %s", statusIcon(ev.Status), ev.Letter, ev.Step)
	if ev.Status == progress.StatusError && ev.Message != "" {
		line += ": " + textutil.Truncate(ev.Message, statusMessageWidth)
	}
	return line
}

// View implements View.
func (s *StatusLine) View() string {
	var parts []string
	if latest := s.Latest(); latest != "" {
		parts = append(parts, s.theme.Status.Render(latest))
	}
	if s.lastErr != "" {
		parts = append(parts, s.theme.Details.Render(s.lastErr))
	}
	if s.Hint != "" {
		parts = append(parts, s.Hint)
	}
	line := strings.Join(parts, "  ")
	if s.width > 0 {
		line = s.theme.Normal.MaxWidth(s.width).Render(line)
	}
	return line
}

func statusIcon(st progress.Status) string {
	switch st {
	case progress.StatusRunning:
		return "●"
	case progress.StatusDone:
		return "✓"
	case progress.StatusError:
		return "✗"
	case progress.StatusSkipped:
		return "–"
	default:
		return "•"
	}
}
