// Package rule implements the neighbor color adoption rule: every non-wall
// cell takes the category of a uniformly chosen eligible neighbor, or keeps
// its own when it has none.
package rule

import (
	"colorca/internal/core"
)

// Source supplies the uniform draws used to pick among candidates.
type Source interface {
	IntN(n int) int
}

// Apply computes one generation. It reads only src and writes every cell of
// dst, so no cell observes another cell's update within the same step.
func Apply(dst, src *core.Grid, rnd Source) {
	if !dst.SameSize(src) {
		panic("rule: destination and snapshot sizes differ")
	}
	size := src.Size()
	cells := src.Cells()
	out := dst.Cells()

	var neighbors [8]core.Pos
	var candidates [8]core.Category
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			idx := row*size.Cols + col
			found := appendCandidates(candidates[:0], neighbors[:0], src, row, col)
			if len(found) == 0 {
				out[idx] = cells[idx]
				continue
			}
			out[idx] = found[rnd.IntN(len(found))]
		}
	}
}

// Next returns the generation after src in a newly allocated grid.
func Next(src *core.Grid, rnd Source) *core.Grid {
	dst := src.Clone()
	Apply(dst, src, rnd)
	return dst
}

// appendCandidates appends the eligible neighbor categories of (row, col) to
// buf in neighbor order, using nbuf as scratch. Walls have none.
func appendCandidates(buf []core.Category, nbuf []core.Pos, g *core.Grid, row, col int) []core.Category {
	if g.At(row, col) == core.Wall {
		return buf
	}
	for _, p := range g.AppendNeighbors8(nbuf, row, col) {
		if c := g.At(p.Row, p.Col); c.Eligible() {
			buf = append(buf, c)
		}
	}
	return buf
}
