package ui

import (
	"context"
	"io"
	"log/slog"
	"time"

	"phonicsboard/internal/alphabet"
	"phonicsboard/internal/gesture"
	"phonicsboard/internal/layout"
	"phonicsboard/internal/playback"
	"phonicsboard/internal/progress"
	"phonicsboard/internal/settings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Player runs the playback sequence for a letter. *playback.Sequencer
// implements it.
type Player interface {
	Play(ctx context.Context, entry alphabet.Entry, flags playback.Flags) playback.Result
}

// HoldOptions configures the hold gesture that opens settings.
type HoldOptions struct {
	Counts    []int
	Threshold time.Duration
	// MouseTouches is the touch count reported while the mouse button is
	// held over the letter display.
	MouseTouches int
}

// Options configures NewAppModel.
type Options struct {
	// Context bounds the app's background work (playback, speech). The app
	// also cancels it on quit. Defaults to context.Background().
	Context  context.Context
	Theme    Theme
	Settings *settings.Manager
	Player   Player
	Catalog  []alphabet.Entry // defaults to the full alphabet
	Cells    layout.CellMetrics
	Hold     HoldOptions
	Progress <-chan progress.Event
	Logger   *slog.Logger
}

// AppModel is the root model: the board screen plus a stack of overlays
// (settings, help, confirmation).
type AppModel struct {
	Theme        *Theme
	Settings     *settings.Manager
	Player       Player
	Catalog      []alphabet.Entry
	Display      *DisplayView
	Grid         *GridView
	Status       *StatusLine
	Overlays     OverlayStack
	KeyHandler   *KeyHandler
	Hold         *gesture.HoldTimer
	MouseTouches int
	// Selected is the last chosen letter, nil until the first selection.
	Selected *alphabet.Entry
	Width    int
	Height   int

	ctx      context.Context
	cancel   context.CancelFunc
	progress <-chan progress.Event
	notify   chan tea.Msg
	logger   *slog.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model from the manager's
// current settings.
func NewAppModel(opts Options) *AppModel {
	theme := opts.Theme
	catalog := opts.Catalog
	if catalog == nil {
		catalog = alphabet.All()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	current := opts.Settings.Current()
	grid := NewGridView(&theme, opts.Cells, current.VisibleEntries(catalog))
	grid.Minimal = current.UseMinimalStyle

	a := &AppModel{
		Theme:        &theme,
		Settings:     opts.Settings,
		Player:       opts.Player,
		Catalog:      catalog,
		Display:      NewDisplayView(&theme, current),
		Grid:         grid,
		Status:       NewStatusLine(&theme),
		KeyHandler:   NewKeyHandler(newBoardKeybinds()),
		MouseTouches: opts.Hold.MouseTouches,
		ctx:          ctx,
		cancel:       cancel,
		progress:     opts.Progress,
		notify:       make(chan tea.Msg, 8),
		logger:       logger,
	}
	counts := opts.Hold.Counts
	if len(counts) == 0 {
		counts = []int{3, 4}
	}
	threshold := opts.Hold.Threshold
	if threshold <= 0 {
		threshold = 2 * time.Second
	}
	a.Hold = gesture.NewHoldTimer(counts, threshold, func() {
		post(a.notify, OpenSettingsMsg{})
	})
	return a
}

func newBoardKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", func() tea.Msg { return QuitMsg{} }, "Quit")
	reg.BindWithDescForMode("ctrl+s", func() tea.Msg { return OpenSettingsMsg{} }, "Settings", []AppMode{ModeBoard})
	reg.BindWithDescForMode("?", func() tea.Msg { return ToggleHelpMsg{} }, "Help", []AppMode{ModeBoard, ModeHelp})
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Layout returns the board screen layout.
func (m *AppModel) Layout() Layout {
	return boardLayout{display: m.Display, grid: m.Grid, status: m.Status}
}

// Mode is the current input mode.
func (m *AppModel) Mode() AppMode {
	return m.Overlays.Mode()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(
		waitForProgress(a.progress),
		waitForNotify(a.ctx, a.notify),
	)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, a.Overlays.UpdateAll(msg)
	case notifyMsg:
		_, cmd := a.Update(msg.Msg)
		return a, tea.Batch(cmd, waitForNotify(a.ctx, a.notify))
	case progressMsg:
		a.Status.Update(msg)
		return a, waitForProgress(a.progress)
	case LetterSelectedMsg:
		e := msg.Entry
		a.Selected = &e
		a.Display.Update(msg)
		a.Grid.Update(msg)
		return a, playCmd(a.ctx, a.Player, e, a.Settings.Current().Flags())
	case PlaybackDoneMsg:
		a.logResult(msg.Result)
		return a, nil
	case SettingsChangedMsg:
		// Changes are applied off the update loop and may report back out
		// of order; the manager always holds the latest value.
		msg.Settings = a.Settings.Current()
		a.applySettings(msg)
		return a, a.Overlays.UpdateAll(msg)
	case OpenSettingsMsg:
		a.Hold.Stop()
		if !a.Overlays.Contains(ModeSettings) {
			a.Overlays.Push(Overlay{View: NewSettingsPanel(a.ctx, a.Settings, a.Theme), Mode: ModeSettings})
		}
		return a, nil
	case ToggleHelpMsg:
		if a.Overlays.Mode() == ModeHelp {
			a.Overlays.Pop()
			return a, nil
		}
		a.Overlays.Push(Overlay{View: NewHelpView(a.KeyHandler.Registry, a.Overlays.Mode(), a.Theme), Mode: ModeHelp})
		return a, nil
	case ShowResetConfirmMsg:
		a.Overlays.Push(Overlay{View: NewResetConfirmModal(a.Theme), Mode: ModeConfirm})
		return a, nil
	case ResetSettingsMsg:
		if a.Overlays.Mode() == ModeConfirm {
			a.Overlays.Pop()
		}
		return a, resetSettingsCmd(a.ctx, a.Settings)
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case QuitMsg:
		a.Close()
		return a, tea.Quit
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode()); consumed {
			return a, cmd
		}
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, cmd
		}
		_, cmd := a.Grid.Update(msg)
		return a, cmd
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	}
	return a, nil
}

func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionRelease {
		a.Hold.Touches(0)
		return nil
	}
	if a.Overlays.Len() > 0 {
		return nil
	}
	p, x, y, ok := PanelAt(a.Layout(), a.Width, a.Height, msg.X, msg.Y)
	if !ok {
		return nil
	}
	switch p.ID {
	case PanelDisplay:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			a.Hold.Touches(a.MouseTouches)
		}
	case PanelGrid:
		if tea.MouseEvent(msg).IsWheel() {
			_, cmd := a.Grid.Update(msg)
			return cmd
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return a.Grid.Click(x, y)
		}
	}
	return nil
}

// Close stops the hold timer and cancels running playback and speech. It
// is safe to call more than once.
func (m *AppModel) Close() {
	m.Hold.Stop()
	m.cancel()
}

// resize hands every panel its bounds.
func (a *AppModel) resize(w, h int) {
	a.Width, a.Height = w, h
	for _, p := range a.Layout().Panels() {
		_, _, pw, ph := p.Bounds(w, h)
		switch p.ID {
		case PanelDisplay:
			a.Display.SetSize(pw, ph)
		case PanelGrid:
			a.Grid.SetSize(pw, ph)
		case PanelStatus:
			a.Status.SetWidth(pw)
		}
	}
}

// applySettings pushes a settings change into the board panels. The grid is
// re-sized because the visible count may have changed.
func (a *AppModel) applySettings(msg SettingsChangedMsg) {
	if msg.Err != nil {
		a.logger.Warn("settings change not persisted", "error", msg.Err)
	}
	a.Display.Update(msg)
	a.Status.Update(msg)
	a.Grid.Minimal = msg.Settings.UseMinimalStyle
	a.Grid.SetEntries(msg.Settings.VisibleEntries(a.Catalog))
}

func (a *AppModel) logResult(res playback.Result) {
	steps := make([]string, len(res.Steps))
	for i, s := range res.Steps {
		steps[i] = s.String()
	}
	a.logger.Debug("playback finished",
		"invocation", res.Invocation,
		"letter", res.Letter,
		"steps", steps,
		"failures", len(res.Failures))
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Width == 0 || a.Height == 0 {
		return ""
	}
	if top, ok := a.Overlays.Peek(); ok {
		return lipgloss.Place(a.Width, a.Height, lipgloss.Center, lipgloss.Center, top.View.View())
	}
	a.Status.Hint = RenderKeybindHelp(a.KeyHandler.Registry, ModeBoard, a.Theme, a.Width)
	return lipgloss.JoinVertical(lipgloss.Left,
		a.Display.View(),
		a.Grid.View(),
		a.Status.View(),
	)
}
