package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"colorca/internal/core"
	"colorca/internal/sim"
)

// ControlKind distinguishes how a control is drawn.
type ControlKind uint8

const (
	KindButton ControlKind = iota
	KindSwatch
)

// Control is one clickable element of the panel in panel-local coordinates.
type Control struct {
	Kind    ControlKind
	Rect    image.Rectangle
	Label   string
	Fill    color.RGBA
	Enabled bool
	Action  sim.Action
}

// ColorStep is the change applied by a palette -/+ button.
const ColorStep = 0.05

const (
	panelPadding  = 12
	headerHeight  = 18
	buttonWidth   = 72
	buttonHeight  = 20
	buttonGap     = 6
	smallButton   = 20
	statusLine    = 14
	paletteX      = 340
	paletteTop    = panelPadding + headerHeight + 4
	paletteLine   = 30
	swatchOffset  = 72
	channelOffset = 104
	channelWidth  = 200
)

// Row positions of the left column.
const (
	playTop     = panelPadding + headerHeight
	drawHeader  = playTop + buttonHeight + 14
	drawTop     = drawHeader + headerHeight
	statusTop   = drawTop + smallButton + 14
	statusFirst = statusTop + headerHeight
)

var channelNames = [3]string{"R", "G", "B"}

// Controls lays out every clickable element for the current loop state.
func Controls(loop *sim.Loop) []Control {
	paused := !loop.Running()
	playLabel := "START"
	if loop.Running() {
		playLabel = "PAUSE"
	}

	out := make([]Control, 0, 64)
	x := panelPadding
	for _, b := range []struct {
		label   string
		enabled bool
		kind    sim.ActionKind
	}{
		{playLabel, true, sim.ActionToggle},
		{"NEXT", paused, sim.ActionStep},
		{"RESTART", true, sim.ActionRestart},
		{"RANDOM", paused, sim.ActionRandomFill},
	} {
		out = append(out, Control{
			Kind:    KindButton,
			Rect:    image.Rect(x, playTop, x+buttonWidth, playTop+buttonHeight),
			Label:   b.label,
			Enabled: b.enabled,
			Action:  sim.Action{Kind: b.kind},
		})
		x += buttonWidth + buttonGap
	}

	pal := loop.Palette()
	prev, next := neighbors(loop.Selected())
	out = append(out,
		Control{
			Kind:    KindButton,
			Rect:    image.Rect(panelPadding, drawTop, panelPadding+smallButton, drawTop+smallButton),
			Label:   "<",
			Enabled: true,
			Action:  sim.Action{Kind: sim.ActionSelect, Category: prev},
		},
		Control{
			Kind:    KindButton,
			Rect:    image.Rect(panelPadding+138, drawTop, panelPadding+138+smallButton, drawTop+smallButton),
			Label:   ">",
			Enabled: true,
			Action:  sim.Action{Kind: sim.ActionSelect, Category: next},
		},
	)

	for i, c := range core.Categories() {
		top := paletteTop + i*paletteLine
		swatchX := paletteX + swatchOffset
		rgb := pal.Color(c)
		out = append(out, Control{
			Kind:    KindSwatch,
			Rect:    image.Rect(swatchX, top, swatchX+smallButton, top+smallButton),
			Fill:    rgb.RGBA(),
			Enabled: true,
			Action:  sim.Action{Kind: sim.ActionSelect, Category: c},
		})
		for ch := range channelNames {
			base := paletteX + channelOffset + ch*channelWidth
			v := rgb.Channel(ch)
			down := rgb.WithChannel(ch, roundStep(v-ColorStep))
			up := rgb.WithChannel(ch, roundStep(v+ColorStep))
			out = append(out,
				Control{
					Kind:    KindButton,
					Rect:    image.Rect(base+14, top, base+14+smallButton, top+smallButton),
					Label:   "-",
					Enabled: down != rgb,
					Action:  sim.Action{Kind: sim.ActionSetColor, Category: c, Color: down},
				},
				Control{
					Kind:    KindButton,
					Rect:    image.Rect(base+80, top, base+80+smallButton, top+smallButton),
					Label:   "+",
					Enabled: up != rgb,
					Action:  sim.Action{Kind: sim.ActionSetColor, Category: c, Color: up},
				},
			)
		}
	}
	return out
}

// Hit returns the action of the enabled control under (x, y).
func Hit(controls []Control, x, y int) (sim.Action, bool) {
	for _, c := range controls {
		if !c.Enabled {
			continue
		}
		if pointInRect(x, y, c.Rect) {
			return c.Action, true
		}
	}
	return sim.Action{}, false
}

// Label is a line of text in panel-local coordinates; Y is the baseline.
type Label struct {
	X, Y  int
	Text  string
	Muted bool
}

// Labels returns the static and read-only text of the panel.
func Labels(loop *sim.Loop, fps float64) []Label {
	out := []Label{
		{X: panelPadding, Y: panelPadding + 13, Text: "PLAY"},
		{X: panelPadding, Y: drawHeader + 13, Text: "DRAWING (click and drag on the grid)"},
		{X: panelPadding + 28, Y: drawTop + 14, Text: loop.Selected().String()},
		{X: panelPadding, Y: statusTop + 13, Text: "STATUS"},
		{X: paletteX, Y: panelPadding + 13, Text: "CELL COLORS (click a swatch to draw with it)"},
	}

	counts := loop.Counts()
	lines := []string{
		fmt.Sprintf("FPS: %.1f", fps),
		fmt.Sprintf("Steps: %d", loop.Steps()),
	}
	for i := 0; i < core.NumColors; i++ {
		c := core.ColorCategory(i)
		lines = append(lines, fmt.Sprintf("%s: %d", c, counts[c]))
	}
	lines = append(lines,
		fmt.Sprintf("Empty: %d", counts[core.Empty]),
		fmt.Sprintf("Walls: %d", counts[core.Wall]),
	)
	for i, line := range lines {
		out = append(out, Label{X: panelPadding, Y: statusFirst + 11 + i*statusLine, Text: line, Muted: i == 0})
	}

	pal := loop.Palette()
	for i, c := range core.Categories() {
		baseline := paletteTop + i*paletteLine + 14
		out = append(out, Label{X: paletteX, Y: baseline, Text: c.String()})
		rgb := pal.Color(c)
		for ch, name := range channelNames {
			base := paletteX + channelOffset + ch*channelWidth
			out = append(out,
				Label{X: base, Y: baseline, Text: name, Muted: true},
				Label{X: base + 42, Y: baseline, Text: fmt.Sprintf("%.2f", rgb.Channel(ch))},
			)
		}
	}
	return out
}

// SelectorSwatch is where the selected drawing color is previewed.
func SelectorSwatch() image.Rectangle {
	x := panelPadding + 138 + smallButton + buttonGap
	return image.Rect(x, drawTop, x+smallButton, drawTop+smallButton)
}

// neighbors returns the categories before and after c in panel order.
func neighbors(c core.Category) (core.Category, core.Category) {
	all := core.Categories()
	for i, cat := range all {
		if cat == c {
			return all[(i+len(all)-1)%len(all)], all[(i+1)%len(all)]
		}
	}
	return all[0], all[0]
}

// roundStep snaps v to the ColorStep grid so repeated clicks don't drift.
func roundStep(v float64) float64 {
	return math.Round(v/ColorStep) * ColorStep
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
