package paint

import (
	"fmt"
	"math"

	"colorca/internal/core"
)

// Reference geometry, in screen units.
const (
	DefaultCellSize = 15.0
	DefaultOutline  = 2.0
	DefaultMargin   = 10.0
)

// Point is a pointer position in screen units.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive so adjacent cells never share a point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Layout places grid cells on screen: cell (row, col) starts at
// (Margin + col*CellSize, Margin + row*CellSize).
type Layout struct {
	Margin   float64
	CellSize float64
	Outline  float64
}

// DefaultLayout returns the reference geometry.
func DefaultLayout() Layout {
	return Layout{Margin: DefaultMargin, CellSize: DefaultCellSize, Outline: DefaultOutline}
}

// Validate rejects geometry that cannot map pointers to cells.
func (l Layout) Validate() error {
	if !(l.CellSize > 0) || math.IsInf(l.CellSize, 0) {
		return fmt.Errorf("cell size %v: %w", l.CellSize, core.ErrInvalidConfig)
	}
	if !finiteNonNegative(l.Outline) || !finiteNonNegative(l.Margin) {
		return fmt.Errorf("outline %v margin %v: %w", l.Outline, l.Margin, core.ErrInvalidConfig)
	}
	return nil
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

// CellRect returns the fill rectangle of (row, col).
func (l Layout) CellRect(row, col int) Rect {
	return Rect{
		X: l.Margin + float64(col)*l.CellSize,
		Y: l.Margin + float64(row)*l.CellSize,
		W: l.CellSize,
		H: l.CellSize,
	}
}

// Bounds returns the rectangle covered by a grid of the given size.
func (l Layout) Bounds(size core.Size) Rect {
	return Rect{
		X: l.Margin,
		Y: l.Margin,
		W: float64(size.Cols) * l.CellSize,
		H: float64(size.Rows) * l.CellSize,
	}
}

// CellAt returns the cell whose fill rectangle contains p.
func (l Layout) CellAt(p Point, size core.Size) (core.Pos, bool) {
	if !l.Bounds(size).Contains(p) {
		return core.Pos{}, false
	}
	col := int(math.Floor((p.X - l.Margin) / l.CellSize))
	row := int(math.Floor((p.Y - l.Margin) / l.CellSize))
	if row < 0 || row >= size.Rows || col < 0 || col >= size.Cols {
		return core.Pos{}, false
	}
	return core.Pos{Row: row, Col: col}, true
}
