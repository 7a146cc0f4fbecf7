package ui

import (
	"strings"

	"phonicsboard/internal/alphabet"
	"phonicsboard/internal/layout"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GridView is the scrollable grid of letter buttons.
type GridView struct {
	theme   *Theme
	cells   layout.CellMetrics
	Entries []alphabet.Entry
	Geom    layout.Grid
	// Focused is the index of the keyboard-focused button.
	Focused int
	// Selected is the letter last chosen, highlighted until another is.
	Selected string
	Minimal  bool

	viewport viewport.Model
	width    int
	height   int
}

// Ensure GridView implements View.
var _ View = (*GridView)(nil)

// NewGridView creates a grid for entries.
func NewGridView(theme *Theme, cells layout.CellMetrics, entries []alphabet.Entry) *GridView {
	g := &GridView{
		theme:    theme,
		cells:    cells,
		viewport: viewport.New(0, 0),
	}
	g.viewport.KeyMap = viewport.KeyMap{}
	g.viewport.MouseWheelEnabled = true
	g.SetEntries(entries)
	return g
}

// SetSize resizes the grid container and re-runs the sizer.
func (g *GridView) SetSize(w, h int) {
	g.width, g.height = w, h
	g.viewport.Width = w
	g.viewport.Height = h
	g.relayout()
}

// SetEntries replaces the visible buttons and re-runs the sizer. Focus
// follows the previously focused letter when it is still visible.
func (g *GridView) SetEntries(entries []alphabet.Entry) {
	var focused string
	if g.Focused >= 0 && g.Focused < len(g.Entries) {
		focused = g.Entries[g.Focused].Letter()
	}
	g.Entries = entries
	g.Focused = 0
	if focused != "" {
		if idx := g.indexOf(focused); idx >= 0 {
			g.Focused = idx
		}
	}
	g.relayout()
}

func (g *GridView) relayout() {
	g.Geom = layout.Resolve(g.width, g.height, len(g.Entries), g.theme.Params, g.cells)
	g.refresh()
	g.scrollToFocus()
}

func (g *GridView) indexOf(letter string) int {
	for i, e := range g.Entries {
		if e.Letter() == letter {
			return i
		}
	}
	return -1
}

// Init implements View.
func (g *GridView) Init() tea.Cmd { return nil }

// Update implements View. Arrow keys and tab move the focus; Enter and
// Space select the focused button; a letter key selects that letter when
// it is visible.
func (g *GridView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left":
			g.move(-1)
		case "right", "tab":
			g.move(1)
		case "shift+tab":
			g.move(-1)
		case "up":
			g.move(-g.Geom.Columns)
		case "down":
			g.move(g.Geom.Columns)
		case "home":
			g.focus(0)
		case "end":
			g.focus(len(g.Entries) - 1)
		case "enter", " ":
			return g, g.selectIndex(g.Focused)
		default:
			if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
				if idx := g.indexOf(strings.ToUpper(string(msg.Runes[0]))); idx >= 0 {
					g.focus(idx)
					return g, g.selectIndex(idx)
				}
			}
		}
		return g, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		g.viewport, cmd = g.viewport.Update(msg)
		return g, cmd
	case LetterSelectedMsg:
		g.Selected = msg.Entry.Letter()
		g.refresh()
	}
	return g, nil
}

// Click selects the button at (x, y) relative to the grid panel.
func (g *GridView) Click(x, y int) tea.Cmd {
	idx, ok := g.Geom.CellAt(x, y+g.viewport.YOffset)
	if !ok {
		return nil
	}
	g.focus(idx)
	return g.selectIndex(idx)
}

func (g *GridView) selectIndex(idx int) tea.Cmd {
	if idx < 0 || idx >= len(g.Entries) {
		return nil
	}
	e := g.Entries[idx]
	return func() tea.Msg { return LetterSelectedMsg{Entry: e} }
}

func (g *GridView) move(delta int) {
	if len(g.Entries) == 0 || delta == 0 {
		return
	}
	next := g.Focused + delta
	if next < 0 || next >= len(g.Entries) {
		return
	}
	g.focus(next)
}

func (g *GridView) focus(idx int) {
	if idx < 0 || idx >= len(g.Entries) {
		return
	}
	g.Focused = idx
	g.refresh()
	g.scrollToFocus()
}

// scrollToFocus keeps the focused row inside the viewport.
func (g *GridView) scrollToFocus() {
	if g.viewport.Height <= 0 || len(g.Entries) == 0 {
		return
	}
	row := g.Geom.RowOf(g.Focused)
	top := g.Geom.RowTop(row)
	bottom := top + g.Geom.ButtonRows
	switch {
	case top < g.viewport.YOffset:
		g.viewport.SetYOffset(top)
	case bottom > g.viewport.YOffset+g.viewport.Height:
		g.viewport.SetYOffset(bottom - g.viewport.Height)
	}
}

// refresh re-renders the buttons into the viewport.
func (g *GridView) refresh() {
	g.viewport.SetContent(g.render())
}

func (g *GridView) render() string {
	geo := g.Geom
	if geo.Count == 0 || geo.Columns == 0 {
		return ""
	}
	indent := strings.Repeat(" ", geo.OffsetX)
	gap := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", geo.GapCols)+"\n", geo.ButtonRows), "\n")

	var rows []string
	for i := 0; i < geo.OffsetY; i++ {
		rows = append(rows, "")
	}
	for r := 0; r < geo.Rows; r++ {
		if r > 0 {
			for i := 0; i < geo.GapRows; i++ {
				rows = append(rows, "")
			}
		}
		var buttons []string
		for c := 0; c < geo.Columns; c++ {
			idx := r*geo.Columns + c
			if idx >= len(g.Entries) {
				break
			}
			if c > 0 && geo.GapCols > 0 {
				buttons = append(buttons, gap)
			}
			buttons = append(buttons, g.renderButton(idx))
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
		for _, l := range strings.Split(line, "\n") {
			rows = append(rows, indent+l)
		}
	}
	return strings.Join(rows, "\n")
}

func (g *GridView) renderButton(idx int) string {
	e := g.Entries[idx]
	st := g.theme.ButtonStyle(idx, g.Minimal, idx == g.Focused, e.Letter() == g.Selected)
	w, h := g.Geom.ButtonCols, g.Geom.ButtonRows
	if w < 3 || h < 3 {
		st = st.UnsetBorderStyle()
	}
	innerW := w - st.GetHorizontalBorderSize()
	innerH := h - st.GetVerticalBorderSize()
	return st.Width(innerW).Height(innerH).
		MaxWidth(w).MaxHeight(h).
		Align(lipgloss.Center, lipgloss.Center).
		Render(e.Letter())
}

// View implements View.
func (g *GridView) View() string {
	return g.viewport.View()
}

// YOffset is the vertical scroll position in rows.
func (g *GridView) YOffset() int {
	return g.viewport.YOffset
}
