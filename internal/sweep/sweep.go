// Package sweep runs many seeded simulations headlessly and summarizes how
// the colors fared.
package sweep

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"
	"time"

	"colorca/internal/core"
	"colorca/internal/sim"
	"colorca/internal/stats"

	"golang.org/x/sync/errgroup"
)

// Options controls a sweep. Run i uses seed Seed+i.
type Options struct {
	Runs    int
	Steps   int
	Seed    int64
	Workers int
	Rows    int
	Cols    int
	// Border surrounds the grid with a ring of walls before filling.
	Border bool
}

// DefaultOptions returns a sweep over the reference grid.
func DefaultOptions() Options {
	return Options{
		Runs:    8,
		Steps:   500,
		Seed:    1,
		Workers: runtime.NumCPU(),
		Rows:    sim.DefaultRows,
		Cols:    sim.DefaultCols,
	}
}

// Result summarizes one run.
type Result struct {
	Seed   int64
	Steps  int
	Counts stats.Counts
	// Settled is the first step after which a single color remained, or 0.
	Settled int
}

// Winner returns the color with the most cells; ties go to the lower color.
func (r Result) Winner() core.Category {
	best := core.Color1
	for i := 1; i < core.NumColors; i++ {
		c := core.ColorCategory(i)
		if r.Counts[c] > r.Counts[best] {
			best = c
		}
	}
	return best
}

// Run executes every run on a bounded worker pool. Results are ordered by run
// index regardless of completion order.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Runs <= 0 || opts.Steps < 0 {
		return nil, fmt.Errorf("runs %d steps %d: %w", opts.Runs, opts.Steps, core.ErrInvalidConfig)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	results := make([]Result, opts.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := 0; i < opts.Runs; i++ {
		g.Go(func() error {
			res, err := runOne(ctx, opts, opts.Seed+int64(i))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, opts Options, seed int64) (Result, error) {
	cfg := sim.DefaultConfig()
	cfg.Rows, cfg.Cols = opts.Rows, opts.Cols
	cfg.Seed = seed
	loop, err := sim.New(cfg)
	if err != nil {
		return Result{}, err
	}
	if opts.Border {
		drawBorder(loop.Grid())
	}
	loop.RandomFill()

	res := Result{Seed: seed}
	for step := 0; step < opts.Steps; step++ {
		if step%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		loop.Step()
		if res.Settled == 0 && stats.CountAll(loop.Grid()).Surviving() == 1 {
			res.Settled = loop.Steps()
		}
	}
	res.Steps = loop.Steps()
	res.Counts = loop.Counts()
	return res, nil
}

func drawBorder(g *core.Grid) {
	size := g.Size()
	for col := 0; col < size.Cols; col++ {
		g.Set(0, col, core.Wall)
		g.Set(size.Rows-1, col, core.Wall)
	}
	for row := 0; row < size.Rows; row++ {
		g.Set(row, 0, core.Wall)
		g.Set(row, size.Cols-1, core.Wall)
	}
}

// WriteTable prints one row per run followed by a win tally.
func WriteTable(w io.Writer, results []Result, elapsed time.Duration) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "SEED\tSTEPS\tSETTLED\tWINNER")
	for i := 0; i < core.NumColors; i++ {
		fmt.Fprintf(tw, "\tC%d", i+1)
	}
	fmt.Fprintln(tw)

	var wins [core.NumCategories]int
	for _, r := range results {
		settled := "-"
		if r.Settled > 0 {
			settled = fmt.Sprint(r.Settled)
		}
		winner := r.Winner()
		wins[winner]++
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s", r.Seed, r.Steps, settled, winner)
		for i := 0; i < core.NumColors; i++ {
			fmt.Fprintf(tw, "\t%d", r.Counts[core.ColorCategory(i)])
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d runs in %s\n", len(results), elapsed.Round(time.Millisecond))
	for i := 0; i < core.NumColors; i++ {
		c := core.ColorCategory(i)
		fmt.Fprintf(w, "%s wins: %d\n", c, wins[c])
	}
	return nil
}
