package rule

import (
	"slices"
	"testing"

	"colorca/internal/core"
)

// fixedSource always picks the same candidate index (clamped to n-1) and
// counts how many draws were requested.
type fixedSource struct {
	pick  int
	draws int
}

func (s *fixedSource) IntN(n int) int {
	s.draws++
	if s.pick >= n {
		return n - 1
	}
	return s.pick
}

func mustGrid(t *testing.T, rows, cols int) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func randomGrid(t *testing.T, rows, cols int, seed int64) *core.Grid {
	t.Helper()
	g := mustGrid(t, rows, cols)
	rng := core.NewRNG(seed)
	cells := g.Cells()
	for i := range cells {
		cells[i] = core.Category(rng.IntN(core.NumCategories))
	}
	return g
}

func TestCenterSpreadsToAllNeighbors(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Set(1, 1, core.Color1)

	next := Next(g, core.NewRNG(7))

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if got := next.At(row, col); got != core.Color1 {
				t.Fatalf("cell (%d,%d) = %v, want Color 1", row, col, got)
			}
		}
	}
}

func TestWallsNeverChange(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := randomGrid(t, 12, 17, seed)
		rng := core.NewRNG(seed * 31)
		cur := g
		for step := 0; step < 5; step++ {
			next := Next(cur, rng)
			for i, c := range cur.Cells() {
				if c == core.Wall && next.Cells()[i] != core.Wall {
					t.Fatalf("seed %d step %d: wall at %v became %v", seed, step, cur.Pos(i), next.Cells()[i])
				}
				if c != core.Wall && next.Cells()[i] == core.Wall {
					t.Fatalf("seed %d step %d: %v at %v became a wall", seed, step, c, cur.Pos(i))
				}
			}
			cur = next
		}
	}
}

func TestCellWithoutCandidatesKeepsCategory(t *testing.T) {
	g := mustGrid(t, 5, 5)
	g.Set(2, 2, core.Color4)
	g.Set(0, 0, core.Wall)
	g.Set(4, 4, core.Color2)

	src := &fixedSource{}
	next := Next(g, src)

	if got := next.At(2, 2); got != core.Color4 {
		t.Fatalf("isolated color cell changed to %v", got)
	}
	if got := next.At(0, 2); got != core.Empty {
		t.Fatalf("cell without eligible neighbors changed to %v", got)
	}
	if got := next.At(0, 0); got != core.Wall {
		t.Fatalf("wall changed to %v", got)
	}
}

func TestSingleCandidateIsDeterministic(t *testing.T) {
	g := mustGrid(t, 1, 3)
	g.Set(0, 0, core.Color5)
	g.Set(0, 2, core.Wall)

	for pick := 0; pick < 8; pick++ {
		next := Next(g, &fixedSource{pick: pick})
		if got := next.At(0, 1); got != core.Color5 {
			t.Fatalf("pick %d: middle cell = %v, want Color 5", pick, got)
		}
	}
}

func TestSimultaneousUpdate(t *testing.T) {
	// In a single row, Color1 must advance exactly one cell per step. An
	// in-place scan would let it race across the whole row.
	g := mustGrid(t, 1, 6)
	g.Set(0, 0, core.Color1)

	next := Next(g, &fixedSource{})
	want := []core.Category{core.Color1, core.Color1, core.Empty, core.Empty, core.Empty, core.Empty}
	if !slices.Equal(next.Cells(), want) {
		t.Fatalf("after one step got %v, want %v", next.Cells(), want)
	}
	if g.At(0, 1) != core.Empty {
		t.Fatal("Next must not mutate the snapshot")
	}
}

func TestCandidateChoiceFollowsNeighborOrder(t *testing.T) {
	// Neighbors of (1,1) that are eligible, in NE, E, SE, N, S, NW, W, SW order:
	// (2,1)=Color2 then (0,1)=Color3.
	g := mustGrid(t, 3, 3)
	g.Set(2, 1, core.Color2)
	g.Set(0, 1, core.Color3)

	if got := appendCandidates(nil, nil, g, 1, 1); !slices.Equal(got, []core.Category{core.Color2, core.Color3}) {
		t.Fatalf("candidates = %v", got)
	}
	if got := Next(g, &fixedSource{pick: 0}).At(1, 1); got != core.Color2 {
		t.Fatalf("pick 0 -> %v, want Color 2", got)
	}
	if got := Next(g, &fixedSource{pick: 1}).At(1, 1); got != core.Color3 {
		t.Fatalf("pick 1 -> %v, want Color 3", got)
	}
}

func TestOneDrawPerUndecidedCell(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Set(1, 1, core.Color1)
	g.Set(0, 0, core.Wall)

	src := &fixedSource{}
	Apply(g.Clone(), g, src)
	// The wall and the isolated center draw nothing; the seven other cells
	// each see the center.
	if src.draws != 7 {
		t.Fatalf("expected 7 draws, got %d", src.draws)
	}
}

func TestWallNeighborAloneNeverChangesCell(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Set(0, 0, core.Wall)

	rng := core.NewRNG(3)
	cur := g
	for step := 0; step < 50; step++ {
		cur = Next(cur, rng)
		if got := cur.At(1, 1); got != core.Empty {
			t.Fatalf("step %d: center became %v", step, got)
		}
	}
}

func TestSeededRunsAreReproducible(t *testing.T) {
	start := randomGrid(t, 30, 65, 11)

	run := func() *core.Grid {
		rng := core.NewRNG(42)
		cur := start.Clone()
		next := start.Clone()
		for step := 0; step < 25; step++ {
			Apply(next, cur, rng)
			cur, next = next, cur
		}
		return cur
	}

	a, b := run(), run()
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("identically seeded runs diverged")
	}
}

func TestApplyPanicsOnSizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Apply(mustGrid(t, 2, 2), mustGrid(t, 3, 3), &fixedSource{})
}
