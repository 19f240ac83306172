//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"colorca/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Panel renders the control panel below the grid and turns clicks on it into
// loop actions.
type Panel struct {
	top    int
	width  int
	height int
	panel  *ebiten.Image
}

// NewPanel constructs a panel occupying the screen from top down to height.
func NewPanel(top, width, height int) *Panel {
	if top < 0 {
		top = 0
	}
	p := &Panel{top: top, width: width, height: height - top}
	if p.width > 0 && p.height > 0 {
		p.panel = ebiten.NewImage(p.width, p.height)
	}
	return p
}

// Contains reports whether the screen point (x, y) is over the panel, in
// which case pointer input belongs to the panel and not to the grid.
func (p *Panel) Contains(x, y int) bool {
	return pointInRect(x, y, image.Rect(0, p.top, p.width, p.top+p.height))
}

// Update queues the action of a control clicked this frame.
func (p *Panel) Update(loop *sim.Loop, q *sim.Queue) {
	if p == nil || p.panel == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if !p.Contains(mx, my) {
		return
	}
	if a, ok := Hit(Controls(loop), mx, my-p.top); ok {
		q.Push(a)
	}
}

// Draw paints the panel onto screen.
func (p *Panel) Draw(screen *ebiten.Image, loop *sim.Loop) {
	if p == nil || p.panel == nil {
		return
	}
	p.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	for _, c := range Controls(loop) {
		switch c.Kind {
		case KindSwatch:
			p.drawSwatch(c.Rect, c.Fill, c.Action.Category == loop.Selected())
		default:
			p.drawButton(c.Rect, c.Label, c.Enabled)
		}
	}
	pal := loop.Palette()
	p.drawSwatch(SelectorSwatch(), pal.Color(loop.Selected()).RGBA(), false)

	face := basicfont.Face7x13
	for _, l := range Labels(loop, ebiten.ActualFPS()) {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if l.Muted {
			clr = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		text.Draw(p.panel, l.Text, face, l.X, l.Y, clr)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(p.top))
	screen.DrawImage(p.panel, op)
}

func (p *Panel) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(p.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(p.panel, label, face, x, y, fg)
}

func (p *Panel) drawSwatch(rect image.Rectangle, fill color.RGBA, selected bool) {
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())
	vector.DrawFilledRect(p.panel, x, y, w, h, fill, false)
	border := color.RGBA{R: 90, G: 90, B: 100, A: 255}
	if selected {
		border = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	vector.StrokeRect(p.panel, x, y, w, h, 2, border, false)
}
