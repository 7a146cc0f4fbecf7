package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps keys (tea.KeyMsg.String() form: "ctrl+c", "?") to
// commands, optionally restricted to some modes. Letter keys are left
// unbound so they always reach the board.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // nil/empty = applies to all modes
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a key for all modes, overwriting any existing binding.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help view.
// The binding applies to all AppModes.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(k, cmd, desc, nil)
}

// BindWithDescForMode registers a key with a description and mode filter.
// If modes is nil or empty, the binding applies to all modes.
func (r *KeybindRegistry) BindWithDescForMode(k string, cmd tea.Cmd, desc string, modes []AppMode) {
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[k] = modes
	} else {
		delete(r.modeFilter, k)
	}
}

// Lookup returns the command bound to k in mode, or nil.
func (r *KeybindRegistry) Lookup(k string, mode AppMode) tea.Cmd {
	cmd := r.bindings[k]
	if cmd == nil || !r.appliesToMode(k, mode) {
		return nil
	}
	return cmd
}

// Hints returns the bound keys of mode with their descriptions (or the key
// itself if none was set).
func (r *KeybindRegistry) Hints(mode AppMode) map[string]string {
	out := make(map[string]string)
	for k, cmd := range r.bindings {
		if cmd == nil || !r.appliesToMode(k, mode) {
			continue
		}
		if d, ok := r.descriptions[k]; ok && d != "" {
			out[k] = d
		} else {
			out[k] = k
		}
	}
	return out
}

// appliesToMode returns true if the binding applies to the given mode.
func (r *KeybindRegistry) appliesToMode(k string, mode AppMode) bool {
	modes, ok := r.modeFilter[k]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// KeyHandler dispatches key presses to the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler for reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true the key was bound in mode and must not reach views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	if h == nil || h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg.String(), mode); c != nil {
		return true, c
	}
	return false, nil
}

// KeyMap implements help.KeyMap for rendering keybind help with bubbles/help.Model.
// Registry bindings of the current mode come first, followed by the fixed
// navigation keys of that mode.
type KeyMap struct {
	registry *KeybindRegistry
	mode     AppMode
}

// NewKeyMap creates a KeyMap for the given registry and mode.
func NewKeyMap(registry *KeybindRegistry, mode AppMode) help.KeyMap {
	return &KeyMap{registry: registry, mode: mode}
}

// ShortHelp returns the registry bindings of the mode, sorted by key.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.Hints(km.mode)
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	return bindings
}

// FullHelp returns the registry column plus the navigation column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	cols := [][]key.Binding{}
	if short := km.ShortHelp(); len(short) > 0 {
		cols = append(cols, short)
	}
	if nav := navigationBindings(km.mode); len(nav) > 0 {
		cols = append(cols, nav)
	}
	return cols
}

// navigationBindings documents keys that views handle themselves.
func navigationBindings(mode AppMode) []key.Binding {
	switch mode {
	case ModeBoard, ModeHelp:
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", "move")),
			key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next")),
			key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a-z", "play letter")),
		}
	case ModeSettings:
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", "move")),
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "options/letters")),
			key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("space", "toggle")),
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a-z", "toggle letter")),
			key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		}
	}
	return nil
}
