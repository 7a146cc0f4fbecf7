package layout

// CellMetrics is the pixel size of one terminal cell.
type CellMetrics struct {
	Width  int
	Height int
}

// DefaultCellMetrics approximates a common monospace terminal font.
var DefaultCellMetrics = CellMetrics{Width: 8, Height: 16}

func (c CellMetrics) normalized() CellMetrics {
	if c.Width <= 0 {
		c.Width = DefaultCellMetrics.Width
	}
	if c.Height <= 0 {
		c.Height = DefaultCellMetrics.Height
	}
	return c
}

// Measure converts a container size in cells into pixels.
func (c CellMetrics) Measure(cols, rows int) Measurement {
	c = c.normalized()
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return Measurement{Width: cols * c.Width, Height: rows * c.Height}
}

// ToCells converts a pixel length into whole cells along each axis,
// never less than one.
func (c CellMetrics) ToCells(px int) (cols, rows int) {
	c = c.normalized()
	cols = px / c.Width
	rows = px / c.Height
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// Grid is the resolved geometry of a button grid in terminal cells.
type Grid struct {
	Count      int
	Columns    int
	Rows       int
	ButtonCols int // button width in cells, without the gap
	ButtonRows int // button height in cells, without the gap
	GapCols    int // horizontal gap between buttons
	GapRows    int // vertical gap between buttons
	OffsetX    int // left indent that centres the grid
	OffsetY    int // top padding
}

// Resolve sizes a grid of count buttons inside a container of cols×rows
// cells.
func Resolve(cols, rows, count int, p Params, cm CellMetrics) Grid {
	cm = cm.normalized()
	m := cm.Measure(cols, rows)
	size := ButtonSize(m, count, p)

	g := Grid{Count: count}
	g.ButtonCols, g.ButtonRows = cm.ToCells(size)
	g.GapCols = p.Margin / cm.Width
	g.GapRows = p.Margin / cm.Height
	// Column count follows the pixel model so that the sizer's notion of
	// "fits" and the rendered grid agree.
	g.Columns = Columns(m.Width, size, p)
	if g.Columns > count && count > 0 {
		g.Columns = count
	}
	g.Rows = Rows(count, g.Columns)

	used := g.Columns*g.ButtonCols + (g.Columns-1)*g.GapCols
	if used < cols {
		g.OffsetX = (cols - used) / 2
	}
	g.OffsetY = p.VerticalPadding / 2 / cm.Height
	return g
}

// Height is the total height of the grid in cells including padding.
func (g Grid) Height() int {
	if g.Rows == 0 {
		return 0
	}
	return g.OffsetY*2 + g.Rows*g.ButtonRows + (g.Rows-1)*g.GapRows
}

// CellAt maps a cell position (relative to the grid container, with the
// vertical scroll offset already applied) to a button index. It reports
// false for gaps, padding and positions past the last button.
func (g Grid) CellAt(x, y int) (int, bool) {
	if g.Count == 0 || g.Columns == 0 {
		return 0, false
	}
	x -= g.OffsetX
	y -= g.OffsetY
	if x < 0 || y < 0 {
		return 0, false
	}
	stepX := g.ButtonCols + g.GapCols
	stepY := g.ButtonRows + g.GapRows
	col, cx := x/stepX, x%stepX
	row, cy := y/stepY, y%stepY
	if cx >= g.ButtonCols || cy >= g.ButtonRows || col >= g.Columns {
		return 0, false
	}
	idx := row*g.Columns + col
	if idx >= g.Count {
		return 0, false
	}
	return idx, true
}

// RowOf returns the row that holds button idx.
func (g Grid) RowOf(idx int) int {
	if g.Columns == 0 {
		return 0
	}
	return idx / g.Columns
}

// RowTop is the first cell row of the given grid row.
func (g Grid) RowTop(row int) int {
	return g.OffsetY + row*(g.ButtonRows+g.GapRows)
}
