package raster

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/bezedit"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrInvalidSize is returned when a canvas is created with a non-positive
// dimension.
var ErrInvalidSize = errors.New("raster: invalid canvas size")

// Canvas is a bezedit.Surface rasterized in software by gg.
//
// Pixels live in a gg.Pixmap owned by the canvas; Pixels exposes them
// without copying so a window host can upload the frame directly.
type Canvas struct {
	width  int
	height int
	pixmap *gg.Pixmap
	dc     *gg.Context

	source *text.FontSource
	faces  map[float64]text.Face
}

var _ bezedit.Surface = (*Canvas)(nil)

// New creates a canvas of the given size with the Go Regular font loaded
// for text.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: load font: %w", err)
	}

	pm := gg.NewPixmap(width, height)
	return &Canvas{
		width:  width,
		height: height,
		pixmap: pm,
		dc:     gg.NewContext(width, height, gg.WithPixmap(pm)),
		source: source,
		faces:  make(map[float64]text.Face),
	}, nil
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Clear fills the canvas with col.
func (c *Canvas) Clear(col gg.RGBA) {
	c.dc.ClearWithColor(col)
}

// FillRect fills r with col.
func (c *Canvas) FillRect(r gg.Rect, col gg.RGBA) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	c.dropped("fill", c.dc.Fill())
}

// Line strokes l with the given width and col.
func (c *Canvas) Line(l gg.Line, width float64, col gg.RGBA) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
	c.dropped("stroke", c.dc.Stroke())
}

// Text draws s with its top-left corner at (x, y). size is the font size
// in pixels.
func (c *Canvas) Text(s string, x, y, size float64, col gg.RGBA) {
	face := c.face(size)
	c.dc.SetFont(face)
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawString(s, x, y+face.Metrics().Ascent)
}

// face returns the cached face for size, creating it on first use.
func (c *Canvas) face(size float64) text.Face {
	f, ok := c.faces[size]
	if !ok {
		f = c.source.Face(size)
		c.faces[size] = f
	}
	return f
}

// dropped logs a draw error. A failed primitive never aborts the frame.
func (c *Canvas) dropped(op string, err error) {
	if err != nil {
		bezedit.Logger().Debug("raster: draw dropped", slog.String("op", op), slog.Any("error", err))
	}
}

// Pixels returns the RGBA bytes of the canvas, 4 per pixel, row-major.
// The slice aliases the canvas and is overwritten by the next frame.
func (c *Canvas) Pixels() []uint8 {
	return c.pixmap.Data()
}

// Pixel returns the color at (x, y), or transparent outside the canvas.
func (c *Canvas) Pixel(x, y int) gg.RGBA {
	return c.pixmap.GetPixel(x, y)
}

// Image returns a copy of the canvas as an image.
func (c *Canvas) Image() *image.RGBA {
	return c.pixmap.ToImage()
}

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.pixmap.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}
