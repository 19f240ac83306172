package core

import "fmt"

// neighborOffsets lists (dRow, dCol) in the fixed order NE, E, SE, N, S, NW, W, SW.
// Seeded runs depend on this order.
var neighborOffsets = [8][2]int{
	{1, -1}, {1, 0}, {1, 1},
	{0, -1}, {0, 1},
	{-1, -1}, {-1, 0}, {-1, 1},
}

// Grid stores cell categories in row-major order. Its dimensions are fixed.
type Grid struct {
	rows, cols int
	data       []Category
}

// NewGrid allocates an all-Empty grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", rows, cols, ErrInvalidConfig)
	}
	return &Grid{rows: rows, cols: cols, data: make([]Category, rows*cols)}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Cells exposes the backing slice for bulk reads.
func (g *Grid) Cells() []Category { return g.data }

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int {
	g.check(row, col)
	return row*g.cols + col
}

// Pos converts a linear index back to coordinates.
func (g *Grid) Pos(i int) Pos { return Pos{Row: i / g.cols, Col: i % g.cols} }

// At returns the category of the cell at (row, col).
func (g *Grid) At(row, col int) Category { return g.data[g.Index(row, col)] }

// Set overwrites the category of the cell at (row, col).
func (g *Grid) Set(row, col int, c Category) {
	if !c.Valid() {
		panic(fmt.Sprintf("set (%d,%d): invalid category %d", row, col, uint8(c)))
	}
	g.data[g.Index(row, col)] = c
}

// Neighbors8 returns the in-bounds neighbors of (row, col).
func (g *Grid) Neighbors8(row, col int) []Pos {
	return g.AppendNeighbors8(make([]Pos, 0, 8), row, col)
}

// AppendNeighbors8 appends the in-bounds neighbors of (row, col) to buf.
func (g *Grid) AppendNeighbors8(buf []Pos, row, col int) []Pos {
	g.check(row, col)
	for _, off := range neighborOffsets {
		r, c := row+off[0], col+off[1]
		if !g.InBounds(r, c) {
			continue
		}
		buf = append(buf, Pos{Row: r, Col: c})
	}
	return buf
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, data: make([]Category, len(g.data))}
	copy(out.data, g.data)
	return out
}

// SameSize reports whether both grids have identical dimensions.
func (g *Grid) SameSize(o *Grid) bool { return g.rows == o.rows && g.cols == o.cols }

func (g *Grid) check(row, col int) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("IndexOutOfBounds: (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
}
