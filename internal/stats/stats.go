// Package stats derives per-category cell counts from a grid.
package stats

import "colorca/internal/core"

// Counts holds one count per category, indexed by core.Category.
type Counts [core.NumCategories]int

// Count scans g and returns how many cells have category c.
func Count(g *core.Grid, c core.Category) int {
	n := 0
	for _, cell := range g.Cells() {
		if cell == c {
			n++
		}
	}
	return n
}

// CountAll tallies every category in a single pass.
func CountAll(g *core.Grid) Counts {
	var out Counts
	for _, cell := range g.Cells() {
		out[cell]++
	}
	return out
}

// Surviving returns how many paintable colors still occupy at least one cell.
func (c Counts) Surviving() int {
	n := 0
	for i := 0; i < core.NumColors; i++ {
		if c[core.ColorCategory(i)] > 0 {
			n++
		}
	}
	return n
}

// History keeps the most recent counts of every category, oldest first.
type History struct {
	limit  int
	series [core.NumCategories][]float64
}

// NewHistory returns a History retaining at most limit samples.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 1
	}
	return &History{limit: limit}
}

// Record appends one sample, dropping the oldest when full.
func (h *History) Record(c Counts) {
	for i, n := range c {
		s := append(h.series[i], float64(n))
		if len(s) > h.limit {
			s = s[len(s)-h.limit:]
		}
		h.series[i] = s
	}
}

// Len returns the number of retained samples.
func (h *History) Len() int { return len(h.series[0]) }

// Series returns the retained samples for c. The slice must not be modified.
func (h *History) Series(c core.Category) []float64 { return h.series[c] }

// Reset drops every sample.
func (h *History) Reset() {
	for i := range h.series {
		h.series[i] = nil
	}
}
