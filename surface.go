package bezedit

import "github.com/gogpu/gg"

// Surface is the per-frame draw target supplied by the rendering backend.
//
// Coordinates are window pixels with the origin at the top-left corner.
type Surface interface {
	// Clear fills the whole surface with col.
	Clear(col gg.RGBA)

	// FillRect fills the axis-aligned rectangle r with col.
	FillRect(r gg.Rect, col gg.RGBA)

	// Line strokes l with the given width.
	Line(l gg.Line, width float64, col gg.RGBA)

	// Text draws s with its top-left corner at (x, y) using a font of the
	// given pixel size.
	Text(s string, x, y, size float64, col gg.RGBA)
}

// Host drives the frame loop of an Editor. It owns the window, the input
// devices and frame pacing.
type Host interface {
	// ShouldClose processes pending window events and reports whether the
	// window has been asked to close. It is called once per frame, before
	// Pointer.
	ShouldClose() bool

	// Pointer returns the pointer state for the current frame.
	Pointer() Pointer

	// Surface returns the draw target for the current frame.
	Surface() Surface

	// Present shows the frame drawn on Surface and blocks until the next
	// frame is due.
	Present() error
}
