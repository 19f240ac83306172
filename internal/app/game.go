//go:build ebiten

package app

import (
	"errors"
	"image"
	_ "image/png"
	"time"

	"colorca/internal/paint"
	"colorca/internal/render"
	"colorca/internal/sim"
	"colorca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Title is the window title.
const Title = "Cellular Automaton"

var mouseButtons = []struct {
	source ebiten.MouseButton
	button paint.Button
}{
	{ebiten.MouseButtonLeft, paint.ButtonPrimary},
	{ebiten.MouseButtonRight, paint.ButtonSecondary},
	{ebiten.MouseButtonMiddle, paint.ButtonMiddle},
}

// Game adapts a simulation loop to the ebiten.Game interface.
type Game struct {
	loop  *sim.Loop
	panel *ui.Panel
	queue sim.Queue

	width, height int
	lastX, lastY  int
}

// New constructs a Game for the provided loop and window size.
func New(loop *sim.Loop, width, height int) *Game {
	bounds := loop.Layout().Bounds(loop.Size())
	top := int(bounds.Y + bounds.H + loop.Layout().Margin)
	return &Game{
		loop:   loop,
		panel:  ui.NewPanel(top, width, height),
		width:  width,
		height: height,
		lastX:  -1,
		lastY:  -1,
	}
}

// Update translates this frame's input into events and actions, then lets
// the loop advance if its interval has elapsed.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.loop.HandleEvent(paint.Event{Kind: paint.EventClosed})
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.queue.Push(sim.Action{Kind: sim.ActionToggle})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.queue.Push(sim.Action{Kind: sim.ActionStep})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.queue.Push(sim.Action{Kind: sim.ActionRestart})
	}

	mx, my := ebiten.CursorPosition()
	pos := paint.Point{X: float64(mx), Y: float64(my)}
	captured := g.panel.Contains(mx, my)

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.source) {
			g.loop.HandleEvent(paint.Event{Kind: paint.EventPointerPressed, Button: b.button, Pos: pos, Captured: captured})
		}
	}
	if mx != g.lastX || my != g.lastY {
		g.loop.HandleEvent(paint.Event{Kind: paint.EventPointerMoved, Pos: pos, Captured: captured})
		g.lastX, g.lastY = mx, my
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(b.source) {
			g.loop.HandleEvent(paint.Event{Kind: paint.EventPointerReleased, Button: b.button, Pos: pos, Captured: captured})
		}
	}

	g.panel.Update(g.loop, &g.queue)
	g.queue.Drain(g.loop)
	g.loop.Update(time.Now())
	return nil
}

// Draw renders the grid and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	render.DrawSquares(screen, g.loop.Squares())
	g.panel.Draw(screen, g.loop)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(cfg *Config) error {
	loop, err := NewLoop(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	if icon, ok := loadIcon(cfg.Icon); ok {
		ebiten.SetWindowIcon([]image.Image{icon})
	}

	if err := ebiten.RunGame(New(loop, cfg.Width, cfg.Height)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// loadIcon is best effort: a missing or unreadable file just means no icon.
func loadIcon(path string) (image.Image, bool) {
	if path == "" {
		return nil, false
	}
	_, img, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, false
	}
	return img, true
}
