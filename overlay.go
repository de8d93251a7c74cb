package bezedit

import (
	"github.com/gogpu/gg"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Overlay layout in window pixels.
const (
	overlayX          = 10
	overlayTitleY     = 10
	overlayTitleSize  = 20
	overlayLineY      = 32
	overlayLineStride = 15
	overlayLineSize   = 15
)

// OverlayTitle is the first line of the debug overlay.
const OverlayTitle = "Try moving any red square"

// overlay formats the per-point lines of the debug overlay.
type overlay struct {
	printer *message.Printer
	lines   [NumPoints]string
}

func newOverlay(locale string) *overlay {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &overlay{printer: message.NewPrinter(tag)}
}

// format refreshes the coordinate lines from points.
func (o *overlay) format(points [NumPoints]gg.Point) [NumPoints]string {
	for i, p := range points {
		o.lines[i] = o.printer.Sprintf("%d: x=%.1f y=%.1f", i, p.X, p.Y)
	}
	return o.lines
}

// draw renders the title and one line per control point.
func (o *overlay) draw(s Surface, points [NumPoints]gg.Point, pal *Palette) {
	s.Text(OverlayTitle, overlayX, overlayTitleY, overlayTitleSize, pal.Text)
	for i, line := range o.format(points) {
		y := float64(overlayLineY + overlayLineStride*i)
		s.Text(line, overlayX, y, overlayLineSize, pal.Debug)
	}
}
