package bezedit

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// Pointer is the state of the pointer device for one frame.
type Pointer struct {
	// Pos is the pointer position in window coordinates.
	Pos gg.Point

	// Down reports whether the primary button is held.
	Down bool
}

// noGrab marks the idle state of a Controller.
const noGrab = -1

// Controller turns pointer input into control point movement.
//
// It is either idle or dragging exactly one handle. The zero value is not
// idle; use NewController.
type Controller struct {
	grabbed int
}

// NewController returns an idle controller.
func NewController() *Controller {
	return &Controller{grabbed: noGrab}
}

// Dragging returns the index of the grabbed handle and true, or -1 and
// false when idle.
func (c *Controller) Dragging() (int, bool) {
	return c.grabbed, c.grabbed != noGrab
}

// Update applies one frame of pointer input to curve.
//
// A press while idle grabs the last handle, in index order, whose hit box
// contains the pointer. A released button always returns to idle. While
// dragging, the grabbed point follows the pointer so that the pointer sits
// on the handle's center.
func (c *Controller) Update(curve *Curve, p Pointer) {
	if p.Down && c.grabbed == noGrab {
		c.grab(curve, p.Pos)
	}
	if !p.Down {
		c.release()
	}
	if c.grabbed != noGrab {
		half := curve.HandleSize / 2
		curve.Points[c.grabbed] = gg.Pt(p.Pos.X-half, p.Pos.Y-half)
	}
}

// grab scans every handle and keeps overwriting the candidate on each
// match, so overlapping handles resolve to the highest index.
func (c *Controller) grab(curve *Curve, pos gg.Point) {
	candidate := noGrab
	for i := range curve.Points {
		if curve.Handle(i).Contains(pos) {
			candidate = i
		}
	}
	if candidate == noGrab {
		return
	}
	c.grabbed = candidate
	Logger().Debug("bezedit: handle grabbed",
		slog.Int("index", candidate),
		slog.Float64("x", pos.X),
		slog.Float64("y", pos.Y))
}

func (c *Controller) release() {
	if c.grabbed == noGrab {
		return
	}
	Logger().Debug("bezedit: handle released", slog.Int("index", c.grabbed))
	c.grabbed = noGrab
}
