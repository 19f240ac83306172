package sim

import (
	"errors"
	"slices"
	"testing"
	"time"

	"colorca/internal/core"
	"colorca/internal/paint"

	. "github.com/onsi/gomega"
)

func newLoop(t *testing.T, mutate func(*Config)) *Loop {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 99
	if mutate != nil {
		mutate(&cfg)
	}
	l, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	g := NewWithT(t)

	for _, mutate := range []func(*Config){
		func(c *Config) { c.Rows = 0 },
		func(c *Config) { c.Cols = -3 },
		func(c *Config) { c.Layout.CellSize = 0 },
		func(c *Config) { c.Interval = 0 },
	} {
		cfg := DefaultConfig()
		mutate(&cfg)
		l, err := New(cfg)
		g.Expect(l).To(BeNil())
		g.Expect(errors.Is(err, core.ErrInvalidConfig)).To(BeTrue(), "err=%v", err)
	}
}

func TestInitialState(t *testing.T) {
	g := NewWithT(t)
	l := newLoop(t, nil)

	g.Expect(l.State()).To(Equal(Paused))
	g.Expect(l.Steps()).To(BeZero())
	g.Expect(l.Selected()).To(Equal(core.Wall))
	g.Expect(l.Count(core.Empty)).To(Equal(DefaultRows * DefaultCols))
}

func TestStartPauseDoNotStep(t *testing.T) {
	g := NewWithT(t)
	l := newLoop(t, nil)

	l.Start()
	g.Expect(l.Running()).To(BeTrue())
	l.Pause()
	g.Expect(l.Running()).To(BeFalse())
	l.Toggle()
	g.Expect(l.Running()).To(BeTrue())
	l.Toggle()
	g.Expect(l.Steps()).To(BeZero())
}

func TestStepOnlyWhilePaused(t *testing.T) {
	g := NewWithT(t)
	l := newLoop(t, nil)

	g.Expect(l.Step()).To(BeTrue())
	g.Expect(l.Steps()).To(Equal(1))

	l.Start()
	g.Expect(l.Step()).To(BeFalse())
	g.Expect(l.Steps()).To(Equal(1))
	g.Expect(l.Running()).To(BeTrue())
}

func TestStepCountsEvenWhenNothingChanges(t *testing.T) {
	g := NewWithT(t)
	l := newLoop(t, nil)

	for i := 0; i < 5; i++ {
		l.Step()
	}
	g.Expect(l.Steps()).To(Equal(5))
	g.Expect(l.Count(core.Empty)).To(Equal(DefaultRows * DefaultCols))
}

func TestRestartClearsEverything(t *testing.T) {
	g := NewWithT(t)
	l := newLoop(t, nil)

	g.Expect(l.RandomFill()).To(BeTrue())
	l.Step()
	l.Step()
	l.Start()
	before := l.Grid()

	l.Restart()

	g.Expect(l.Steps()).To(BeZero())
	g.Expect(l.State()).To(Equal(Paused))
	g.Expect(l.Grid()).NotTo(BeIdenticalTo(before))
	g.Expect(l.Count(core.Empty)).To(Equal(DefaultRows * DefaultCols))
}

func TestRandomFillOnlyTouchesEmptyCells(t *testing.T) {
	g := NewWithT(t)
	l := newLoop(t, func(c *Config) { c.Rows, c.Cols = 4, 4 })
	l.Grid().Set(0, 0, core.Wall)

	g.Expect(l.RandomFill()).To(BeTrue())

	g.Expect(l.Grid().At(0, 0)).To(Equal(core.Wall))
	g.Expect(l.Count(core.Empty)).To(BeZero())
	for i, c := range l.Grid().Cells() {
		if i == 0 {
			continue
		}
		g.Expect(c.IsColor()).To(BeTrue(), "cell %d = %v", i, c)
	}

	l.Start()
	g.Expect(l.RandomFill()).To(BeFalse())
}

func TestAutomaticTickPacing(t *testing.T) {
	g := NewWithT(t)
	l := newLoop(t, nil)
	now := time.Unix(5000, 0)

	g.Expect(l.Update(now)).To(BeFalse(), "paused loops never tick")

	l.Start()
	g.Expect(l.Update(now)).To(BeFalse())
	g.Expect(l.Update(now.Add(50 * time.Millisecond))).To(BeFalse())
	g.Expect(l.Update(now.Add(100 * time.Millisecond))).To(BeTrue())
	g.Expect(l.Steps()).To(Equal(1))

	// A very slow frame still produces a single iteration.
	g.Expect(l.Update(now.Add(2 * time.Second))).To(BeTrue())
	g.Expect(l.Update(now.Add(2 * time.Second))).To(BeFalse())
	g.Expect(l.Steps()).To(Equal(2))

	l.Pause()
	g.Expect(l.Update(now.Add(10 * time.Second))).To(BeFalse())
	g.Expect(l.Steps()).To(Equal(2))
}

func TestPaintingUsesSelectedCategory(t *testing.T) {
	g := NewWithT(t)
	l := newLoop(t, nil)
	l.Select(core.Color3)

	r := l.Layout().CellRect(4, 7)
	pos := paint.Point{X: r.X + 1, Y: r.Y + 1}
	g.Expect(l.HandleEvent(paint.Event{Kind: paint.EventPointerPressed, Button: paint.ButtonPrimary, Pos: pos})).To(BeTrue())
	g.Expect(l.HandleEvent(paint.Event{Kind: paint.EventPointerMoved, Pos: pos})).To(BeTrue())

	g.Expect(l.Grid().At(4, 7)).To(Equal(core.Color3))
	g.Expect(l.Count(core.Color3)).To(Equal(1))
	g.Expect(l.Steps()).To(BeZero())

	// Painting is allowed while running.
	l.Start()
	r = l.Layout().CellRect(4, 8)
	l.HandleEvent(paint.Event{Kind: paint.EventPointerMoved, Pos: paint.Point{X: r.X + 1, Y: r.Y + 1}})
	g.Expect(l.Grid().At(4, 8)).To(Equal(core.Color3))
}

func TestClosedEventStopsFrontEnd(t *testing.T) {
	g := NewWithT(t)
	l := newLoop(t, nil)
	l.HandleEvent(paint.Event{Kind: paint.EventPointerPressed, Button: paint.ButtonPrimary})

	g.Expect(l.HandleEvent(paint.Event{Kind: paint.EventClosed})).To(BeFalse())
	g.Expect(l.Drawing()).To(BeFalse())
}

func TestSquaresFollowPalette(t *testing.T) {
	g := NewWithT(t)
	l := newLoop(t, func(c *Config) { c.Rows, c.Cols = 2, 3 })
	l.Grid().Set(1, 2, core.Color4)
	l.SetColor(core.Color4, core.RGB{R: 0, G: 0, B: 1})

	var squares []Square
	for sq := range l.Squares() {
		squares = append(squares, sq)
	}

	g.Expect(squares).To(HaveLen(6))
	last := squares[5]
	g.Expect(last.Rect).To(Equal(l.Layout().CellRect(1, 2)))
	g.Expect(last.Fill.B).To(Equal(uint8(255)))
	g.Expect(last.Fill.R).To(BeZero())
	g.Expect(last.Outline).To(Equal(OutlineColor))
	g.Expect(last.Thickness).To(Equal(paint.DefaultOutline))
	g.Expect(squares[0].Fill).To(Equal(core.DefaultPalette().Color(core.Empty).RGBA()))
}

func TestDuplicatePaletteColorsStayDistinct(t *testing.T) {
	g := NewWithT(t)
	l := newLoop(t, func(c *Config) { c.Rows, c.Cols = 1, 3 })
	white := l.Palette().Color(core.Empty)
	l.SetColor(core.Color1, white)
	l.Grid().Set(0, 0, core.Color1)

	l.Step()

	g.Expect(l.Grid().At(0, 1)).To(Equal(core.Color1))
	g.Expect(l.Count(core.Color1)).To(Equal(2))
}

func TestSeededLoopsAreReproducible(t *testing.T) {
	g := NewWithT(t)
	run := func() []core.Category {
		l := newLoop(t, nil)
		l.RandomFill()
		for i := 0; i < 30; i++ {
			l.Step()
		}
		return slices.Clone(l.Grid().Cells())
	}
	g.Expect(run()).To(Equal(run()))
}

func TestDispatch(t *testing.T) {
	g := NewWithT(t)
	l := newLoop(t, nil)
	var q Queue

	q.Push(Action{Kind: ActionSelect, Category: core.Color5})
	q.Push(Action{Kind: ActionSetColor, Category: core.Wall, Color: core.RGB{R: 0.5}})
	q.Push(Action{Kind: ActionStep})
	q.Push(Action{Kind: ActionToggle})
	g.Expect(q.Len()).To(Equal(4))
	q.Drain(l)

	g.Expect(q.Len()).To(BeZero())
	g.Expect(l.Selected()).To(Equal(core.Color5))
	g.Expect(l.Palette().Color(core.Wall)).To(Equal(core.RGB{R: 0.5}))
	g.Expect(l.Steps()).To(Equal(1))
	g.Expect(l.Running()).To(BeTrue())

	g.Expect(l.Dispatch(Action{Kind: ActionStep})).To(BeFalse())
	g.Expect(l.Dispatch(Action{Kind: ActionSelect, Category: core.Category(42)})).To(BeFalse())
	g.Expect(l.Dispatch(Action{Kind: ActionRestart})).To(BeTrue())
	g.Expect(l.Running()).To(BeFalse())
	g.Expect(l.Dispatch(Action{Kind: ActionRandomFill})).To(BeTrue())
	g.Expect(l.Count(core.Empty)).To(BeZero())
}
