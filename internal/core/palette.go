package core

import (
	"fmt"
	"image/color"
)

// RGB is a display color with float components in [0, 1].
type RGB struct {
	R, G, B float64
}

// Clamp limits every component to [0, 1].
func (c RGB) Clamp() RGB {
	return RGB{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// RGBA converts to an opaque 8-bit color.
func (c RGB) RGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{R: uint8(c.R * 255), G: uint8(c.G * 255), B: uint8(c.B * 255), A: 255}
}

// Channel returns component i (0 red, 1 green, 2 blue).
func (c RGB) Channel(i int) float64 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	}
	panic(fmt.Sprintf("rgb channel %d out of range", i))
}

// WithChannel returns a copy of c with component i set to v, clamped.
func (c RGB) WithChannel(i int, v float64) RGB {
	switch i {
	case 0:
		c.R = v
	case 1:
		c.G = v
	case 2:
		c.B = v
	default:
		panic(fmt.Sprintf("rgb channel %d out of range", i))
	}
	return c.Clamp()
}

// Palette maps each category to its display color. Cells never store colors;
// they are looked up here at render time.
type Palette [NumCategories]RGB

// DefaultPalette returns the reference colors.
func DefaultPalette() Palette {
	var p Palette
	p[Wall] = RGB{0.24, 0.22, 0.22}
	p[Empty] = RGB{1, 1, 1}
	p[Color1] = RGB{1, 1, 0} // yellow
	p[Color2] = RGB{0, 1, 0} // green
	p[Color3] = RGB{0, 0, 1} // blue
	p[Color4] = RGB{1, 0, 0} // red
	p[Color5] = RGB{0, 1, 1} // cyan
	p[Color6] = RGB{1, 0, 1} // magenta
	return p
}

// Color returns the display color of c.
func (p Palette) Color(c Category) RGB { return p[c] }

// Set assigns a display color to c, clamping each component.
func (p *Palette) Set(c Category, rgb RGB) {
	if !c.Valid() {
		panic(fmt.Sprintf("palette: invalid category %d", uint8(c)))
	}
	p[c] = rgb.Clamp()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
