package core

// Grid lays out Count equally sized cells in rows of Columns,
// separated by Gap blank columns and rows.
type Grid struct {
	X, Y    int // Top-left corner of the first cell
	Columns int
	Count   int
	CellW   int
	CellH   int
	Gap     int
}

// FitGrid sizes a grid of count cells to fit inside area and centers it.
// Cells shrink down to minW x minH; below that they overflow the area.
func FitGrid(area Rect, count, columns, gap, maxW, maxH, minW, minH int) Grid {
	if columns <= 0 {
		columns = 1
	}
	rows := (count + columns - 1) / columns
	if rows == 0 {
		rows = 1
	}

	cellW := Clamp((area.W-gap*(columns-1))/columns, minW, maxW)
	cellH := Clamp((area.H-gap*(rows-1))/rows, minH, maxH)

	g := Grid{Columns: columns, Count: count, CellW: cellW, CellH: cellH, Gap: gap}
	w, h := g.Size()
	g.X = area.X + Max((area.W-w)/2, 0)
	g.Y = area.Y + Max((area.H-h)/2, 0)
	return g
}

// Rows returns the number of rows the grid occupies.
func (g Grid) Rows() int {
	if g.Columns <= 0 {
		return 0
	}
	return (g.Count + g.Columns - 1) / g.Columns
}

// Size returns the total width and height of the grid.
func (g Grid) Size() (int, int) {
	rows := g.Rows()
	if rows == 0 {
		return 0, 0
	}
	cols := Min(g.Columns, g.Count)
	return cols*g.CellW + (cols-1)*g.Gap, rows*g.CellH + (rows-1)*g.Gap
}

// CellRect returns the rectangle of cell i.
func (g Grid) CellRect(i int) Rect {
	col := i % g.Columns
	row := i / g.Columns
	return Rect{
		X: g.X + col*(g.CellW+g.Gap),
		Y: g.Y + row*(g.CellH+g.Gap),
		W: g.CellW,
		H: g.CellH,
	}
}

// IndexAt returns the cell under the point (x, y).
// Points in gaps or outside the grid report false.
func (g Grid) IndexAt(x, y int) (int, bool) {
	if g.Columns <= 0 || g.CellW <= 0 || g.CellH <= 0 {
		return 0, false
	}
	dx, dy := x-g.X, y-g.Y
	if dx < 0 || dy < 0 {
		return 0, false
	}
	col, row := dx/(g.CellW+g.Gap), dy/(g.CellH+g.Gap)
	if col >= g.Columns {
		return 0, false
	}
	i := row*g.Columns + col
	if i >= g.Count || !g.CellRect(i).Contains(x, y) {
		return 0, false
	}
	return i, true
}
