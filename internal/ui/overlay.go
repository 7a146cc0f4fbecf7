package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal view drawn over the board, with the mode it puts the
// keyboard in.
type Overlay struct {
	View View
	Mode AppMode
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Mode returns the mode of the top overlay, or ModeBoard when none is open.
func (s *OverlayStack) Mode() AppMode {
	if top, ok := s.Peek(); ok {
		return top.Mode
	}
	return ModeBoard
}

// Contains reports whether an overlay in the given mode is open.
func (s *OverlayStack) Contains(mode AppMode) bool {
	for _, o := range s.Stack {
		if o.Mode == mode {
			return true
		}
	}
	return false
}

// UpdateTop passes msg to the top overlay's Update and replaces its View with the result.
// Returns the cmd from the overlay's Update. Caller must run the cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}

// UpdateAll passes msg to every overlay, bottom first. Used for messages
// that every open overlay must observe, such as window resizes and settings
// changes.
func (s *OverlayStack) UpdateAll(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range s.Stack {
		v, cmd := s.Stack[i].View.Update(msg)
		s.Stack[i].View = v
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
