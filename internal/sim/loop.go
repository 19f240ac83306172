// Package sim owns the automaton state and drives it: playback, pacing,
// painting and the render feed all go through Loop.
package sim

import (
	"fmt"
	"image/color"
	"iter"
	"time"

	"colorca/internal/core"
	"colorca/internal/paint"
	"colorca/internal/rule"
	"colorca/internal/stats"
)

// Reference grid dimensions.
const (
	DefaultRows = 30
	DefaultCols = 65
)

// State is the playback state of a Loop.
type State uint8

const (
	Paused State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "paused"
}

// Config holds the startup settings of a Loop.
type Config struct {
	Rows     int
	Cols     int
	Interval time.Duration
	Layout   paint.Layout
	Seed     int64
	Palette  core.Palette
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Rows:     DefaultRows,
		Cols:     DefaultCols,
		Interval: core.DefaultInterval,
		Layout:   paint.DefaultLayout(),
		Seed:     1,
		Palette:  core.DefaultPalette(),
	}
}

// Validate reports settings the loop cannot run with.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid %dx%d: %w", c.Rows, c.Cols, core.ErrInvalidConfig)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval %v: %w", c.Interval, core.ErrInvalidConfig)
	}
	return c.Layout.Validate()
}

// Square is one cell of the render feed.
type Square struct {
	Rect      paint.Rect
	Fill      color.RGBA
	Outline   color.RGBA
	Thickness float64
}

// OutlineColor is drawn around every cell.
var OutlineColor = color.RGBA{A: 255}

// Loop owns the grid, the playback state and everything the control panel
// binds to. It is not safe for concurrent use.
type Loop struct {
	cfg Config

	grid *core.Grid
	next *core.Grid

	rng     *core.RNG
	pacer   *core.Pacer
	painter *paint.Controller
	palette core.Palette

	steps    int
	state    State
	selected core.Category
}

// New validates cfg and returns a paused loop over an all-Empty grid.
func New(cfg Config) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	return &Loop{
		cfg:      cfg,
		grid:     grid,
		next:     grid.Clone(),
		rng:      core.NewRNG(cfg.Seed),
		pacer:    core.NewPacer(cfg.Interval),
		painter:  paint.NewController(cfg.Layout),
		palette:  cfg.Palette,
		selected: core.Wall,
	}, nil
}

// Grid exposes the live grid. Callers may read it or paint into it between
// steps.
func (l *Loop) Grid() *core.Grid { return l.grid }

// Size returns the grid dimensions.
func (l *Loop) Size() core.Size { return l.grid.Size() }

// Layout returns the on-screen cell geometry.
func (l *Loop) Layout() paint.Layout { return l.cfg.Layout }

// Steps returns the number of generations since the last restart.
func (l *Loop) Steps() int { return l.steps }

// State returns the playback state.
func (l *Loop) State() State { return l.state }

// Running reports whether automatic iteration is enabled.
func (l *Loop) Running() bool { return l.state == Running }

// Selected returns the category used for drawing.
func (l *Loop) Selected() core.Category { return l.selected }

// Palette returns the current display colors.
func (l *Loop) Palette() core.Palette { return l.palette }

// Drawing reports whether a paint stroke is in progress.
func (l *Loop) Drawing() bool { return l.painter.Drawing() }

// Start enables automatic iteration. The first tick lands one interval after
// the next Update.
func (l *Loop) Start() {
	if l.state == Running {
		return
	}
	l.state = Running
	l.pacer.Reset(time.Time{})
}

// Pause disables automatic iteration.
func (l *Loop) Pause() { l.state = Paused }

// Toggle switches between Running and Paused.
func (l *Loop) Toggle() {
	if l.state == Running {
		l.Pause()
		return
	}
	l.Start()
}

// Step advances one generation. It is only honored while paused.
func (l *Loop) Step() bool {
	if l.state != Paused {
		return false
	}
	l.iterate()
	return true
}

// Restart replaces the grid with a fresh all-Empty one, zeroes the step
// counter and pauses.
func (l *Loop) Restart() {
	grid, err := core.NewGrid(l.cfg.Rows, l.cfg.Cols)
	if err != nil {
		// Dimensions were validated in New.
		panic(err)
	}
	l.grid = grid
	l.next = grid.Clone()
	l.steps = 0
	l.state = Paused
	l.painter.Cancel()
	l.pacer.Reset(time.Time{})
}

// RandomFill gives every Empty cell a uniformly chosen color. It is only
// honored while paused.
func (l *Loop) RandomFill() bool {
	if l.state != Paused {
		return false
	}
	cells := l.grid.Cells()
	for i, c := range cells {
		if c != core.Empty {
			continue
		}
		cells[i] = l.rng.Category()
	}
	return true
}

// Select sets the category used for drawing.
func (l *Loop) Select(c core.Category) {
	if !c.Valid() {
		return
	}
	l.selected = c
}

// SetColor changes the display color of c.
func (l *Loop) SetColor(c core.Category, rgb core.RGB) {
	if !c.Valid() {
		return
	}
	l.palette.Set(c, rgb)
}

// Update runs at most one automatic iteration when the loop is running and
// the pacing interval has elapsed. It reports whether a step happened.
func (l *Loop) Update(now time.Time) bool {
	if l.state != Running {
		return false
	}
	if !l.pacer.Ready(now) {
		return false
	}
	l.iterate()
	return true
}

// HandleEvent feeds one input event to the painter. It reports false when
// the event asks the front-end to shut down.
func (l *Loop) HandleEvent(ev paint.Event) bool {
	if ev.Kind == paint.EventClosed {
		l.painter.Cancel()
		return false
	}
	l.painter.Handle(ev, l.grid, l.selected)
	return true
}

// Count returns how many cells currently have category c.
func (l *Loop) Count(c core.Category) int { return stats.Count(l.grid, c) }

// Counts tallies every category.
func (l *Loop) Counts() stats.Counts { return stats.CountAll(l.grid) }

// Squares yields the render feed in row-major order.
func (l *Loop) Squares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for i, c := range l.grid.Cells() {
			p := l.grid.Pos(i)
			sq := Square{
				Rect:      l.cfg.Layout.CellRect(p.Row, p.Col),
				Fill:      l.palette.Color(c).RGBA(),
				Outline:   OutlineColor,
				Thickness: l.cfg.Layout.Outline,
			}
			if !yield(sq) {
				return
			}
		}
	}
}

func (l *Loop) iterate() {
	rule.Apply(l.next, l.grid, l.rng)
	l.grid, l.next = l.next, l.grid
	l.steps++
}
