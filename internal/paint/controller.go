// Package paint turns pointer drags into grid edits.
package paint

import "colorca/internal/core"

// EventKind enumerates the input events a front-end feeds to the core.
type EventKind uint8

const (
	EventClosed EventKind = iota
	EventPointerPressed
	EventPointerReleased
	EventPointerMoved
)

// Button identifies a pointer button.
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Event is one discrete input event. Captured marks pointer events that
// landed on the control panel rather than the grid.
type Event struct {
	Kind     EventKind
	Button   Button
	Pos      Point
	Captured bool
}

// Controller tracks an ongoing drag and paints the cells it crosses.
type Controller struct {
	layout  Layout
	drawing bool
}

// NewController returns a controller for the given screen geometry.
func NewController(layout Layout) *Controller {
	return &Controller{layout: layout}
}

// Drawing reports whether a drag is in progress.
func (c *Controller) Drawing() bool { return c.drawing }

// Cancel ends any drag in progress.
func (c *Controller) Cancel() { c.drawing = false }

// Handle applies ev to g, painting with selected. It returns the number of
// cells painted.
func (c *Controller) Handle(ev Event, g *core.Grid, selected core.Category) int {
	switch ev.Kind {
	case EventPointerPressed:
		if ev.Button == ButtonPrimary && !ev.Captured {
			c.drawing = true
		}
	case EventPointerReleased:
		if ev.Button == ButtonPrimary {
			c.drawing = false
		}
	case EventPointerMoved:
		if !c.drawing || ev.Captured {
			return 0
		}
		pos, ok := c.layout.CellAt(ev.Pos, g.Size())
		if !ok {
			return 0
		}
		g.Set(pos.Row, pos.Col, selected)
		return 1
	}
	return 0
}
