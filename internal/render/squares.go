//go:build ebiten

// Package render draws the loop's render feed with ebiten.
package render

import (
	"iter"

	"colorca/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawSquares fills every cell and strokes its outline. The outline is
// centered on the cell edge, so neighboring outlines overlap.
func DrawSquares(dst *ebiten.Image, squares iter.Seq[sim.Square]) {
	for sq := range squares {
		x, y := float32(sq.Rect.X), float32(sq.Rect.Y)
		w, h := float32(sq.Rect.W), float32(sq.Rect.H)
		vector.DrawFilledRect(dst, x, y, w, h, sq.Fill, false)
		if sq.Thickness > 0 {
			vector.StrokeRect(dst, x, y, w, h, float32(sq.Thickness), sq.Outline, false)
		}
	}
}
