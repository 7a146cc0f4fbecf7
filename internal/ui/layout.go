package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View and knows its bounds within a layout.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// Layout arranges panels top to bottom.
type Layout interface {
	Panels() []Panel
}

// Panel IDs of the board screen.
const (
	PanelDisplay = "display"
	PanelGrid    = "grid"
	PanelStatus  = "status"
)

// minDisplayRows keeps the letter display readable on short terminals.
const minDisplayRows = 7

// boardLayout is the board screen: the letter display over the button grid,
// with a status line at the bottom.
type boardLayout struct {
	display View
	grid    View
	status  View
}

// Ensure boardLayout implements Layout.
var _ Layout = boardLayout{}

// displayRows is a quarter of the height, at least minDisplayRows, leaving
// the grid at least one row.
func displayRows(height int) int {
	h := height / 4
	if h < minDisplayRows {
		h = minDisplayRows
	}
	if h > height-2 {
		h = height - 2
	}
	if h < 0 {
		h = 0
	}
	return h
}

// Panels implements Layout.
func (l boardLayout) Panels() []Panel {
	return []Panel{
		{
			ID:   PanelDisplay,
			View: l.display,
			Bounds: func(w, h int) (int, int, int, int) {
				return 0, 0, w, displayRows(h)
			},
		},
		{
			ID:   PanelGrid,
			View: l.grid,
			Bounds: func(w, h int) (int, int, int, int) {
				top := displayRows(h)
				gh := h - top - 1
				if gh < 0 {
					gh = 0
				}
				return 0, top, w, gh
			},
		},
		{
			ID:   PanelStatus,
			View: l.status,
			Bounds: func(w, h int) (int, int, int, int) {
				if h < 1 {
					return 0, 0, w, 0
				}
				return 0, h - 1, w, 1
			},
		},
	}
}

// PanelAt returns the panel containing (x, y) and the position relative to
// its top-left corner.
func PanelAt(l Layout, width, height, x, y int) (Panel, int, int, bool) {
	for _, p := range l.Panels() {
		px, py, pw, ph := p.Bounds(width, height)
		if x >= px && x < px+pw && y >= py && y < py+ph {
			return p, x - px, y - py, true
		}
	}
	return Panel{}, 0, 0, false
}
