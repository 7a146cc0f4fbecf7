// Package layout computes the button grid geometry for the board.
//
// All lengths are in abstract pixels. The terminal UI converts cells to
// pixels with CellMetrics before asking for a size, so the same parameters
// serve any renderer.
package layout

// Measurement is the measured size of the grid container.
type Measurement struct {
	Width  int
	Height int
}

// Params are the fixed sizing constants of a theme.
type Params struct {
	Margin          int // outer margin added to every button edge
	Padding         int // horizontal container padding (total)
	VerticalPadding int // vertical container padding (total)
	MinSize         int
	MaxSize         int
}

// Theme defaults.
var (
	StandardParams = Params{Margin: 20, Padding: 20, VerticalPadding: 40, MinSize: 64, MaxSize: 96}
	RetroParams    = Params{Margin: 12, Padding: 16, VerticalPadding: 32, MinSize: 75, MaxSize: 110}
)

// normalized returns p with a usable [MinSize, MaxSize] range.
func (p Params) normalized() Params {
	if p.MinSize < 0 {
		p.MinSize = 0
	}
	if p.MaxSize < 0 {
		p.MaxSize = 0
	}
	if p.MinSize > p.MaxSize {
		p.MinSize, p.MaxSize = p.MaxSize, p.MinSize
	}
	return p
}

// ButtonSize returns the largest square button edge in [MinSize, MaxSize]
// that lets count buttons fit inside m without vertical overflow.
//
// An unmeasured container (zero width or height) or an empty grid yields
// MinSize. When even MinSize overflows, MinSize is returned and the
// container is expected to scroll.
func ButtonSize(m Measurement, count int, p Params) int {
	p = p.normalized()
	if m.Width <= 0 || m.Height <= 0 || count <= 0 {
		return p.MinSize
	}

	// fits is monotone: a larger size never needs fewer rows, and each row
	// is taller, so the feasible sizes form a prefix of the range.
	if !fits(m, count, p.MinSize, p) {
		return p.MinSize
	}
	lo, hi := p.MinSize, p.MaxSize
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if fits(m, count, mid, p) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func fits(m Measurement, count, size int, p Params) bool {
	cols := Columns(m.Width, size, p)
	rows := Rows(count, cols)
	return rows*(size+p.Margin)+p.VerticalPadding <= m.Height
}

// Columns is the number of buttons of the given size that fit in one row.
// There is always at least one column.
func Columns(width, size int, p Params) int {
	step := size + p.Margin
	if step <= 0 {
		return 1
	}
	cols := (width - p.Padding) / step
	if cols < 1 {
		return 1
	}
	return cols
}

// Rows is the number of rows needed for count buttons in cols columns.
func Rows(count, cols int) int {
	if count <= 0 {
		return 0
	}
	if cols < 1 {
		cols = 1
	}
	return (count + cols - 1) / cols
}
