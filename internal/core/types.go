package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig reports grid or geometry settings the automaton cannot run with.
var ErrInvalidConfig = errors.New("invalid configuration")

// Category is the semantic state of a single cell.
type Category uint8

// Empty is the zero value so freshly allocated grids start empty.
const (
	Empty Category = iota
	Wall
	Color1
	Color2
	Color3
	Color4
	Color5
	Color6
)

// NumCategories is the number of valid cell categories.
const NumCategories = 8

// NumColors is the number of paintable colors, Color1 through Color6.
const NumColors = 6

var categoryNames = [NumCategories]string{
	Empty:  "Empty",
	Wall:   "Wall",
	Color1: "Color 1",
	Color2: "Color 2",
	Color3: "Color 3",
	Color4: "Color 4",
	Color5: "Color 5",
	Color6: "Color 6",
}

// Categories returns every category in control panel order.
func Categories() []Category {
	return []Category{Wall, Empty, Color1, Color2, Color3, Color4, Color5, Color6}
}

// ColorCategory returns the i-th paintable color (0 => Color1).
func ColorCategory(i int) Category {
	if i < 0 || i >= NumColors {
		panic(fmt.Sprintf("color index %d out of range", i))
	}
	return Color1 + Category(i)
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool { return c < NumCategories }

// IsColor reports whether c is one of Color1..Color6.
func (c Category) IsColor() bool { return c >= Color1 && c <= Color6 }

// Eligible reports whether a neighbor of this category can be adopted.
func (c Category) Eligible() bool { return c.IsColor() }

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// ParseCategory resolves names such as "wall", "empty", "color1" or "Color 1".
func ParseCategory(name string) (Category, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
	for i, n := range categoryNames {
		if strings.ToLower(strings.ReplaceAll(n, " ", "")) == key {
			return Category(i), nil
		}
	}
	return Empty, fmt.Errorf("unknown category %q", name)
}

// Size describes grid dimensions in cells.
type Size struct {
	Rows int
	Cols int
}

// Pos addresses a single cell.
type Pos struct {
	Row int
	Col int
}
