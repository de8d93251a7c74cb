package raster

import (
	"errors"
	"testing"

	"github.com/gogpu/bezedit"
	"github.com/gogpu/gg"
)

var (
	black = gg.RGB(0, 0, 0)
	red   = gg.RGB(1, 0, 0)
	blue  = gg.RGB(0, 0, 1)
	white = gg.RGB(1, 1, 1)
)

// dominant reports which channel of c is clearly strongest: 'r', 'g', 'b',
// or 0 when none stands out.
func dominant(c gg.RGBA) byte {
	switch {
	case c.R > 0.5 && c.R > c.G+0.3 && c.R > c.B+0.3:
		return 'r'
	case c.G > 0.5 && c.G > c.R+0.3 && c.G > c.B+0.3:
		return 'g'
	case c.B > 0.5 && c.B > c.R+0.3 && c.B > c.G+0.3:
		return 'b'
	default:
		return 0
	}
}

func isBlack(c gg.RGBA) bool {
	return c.R < 0.05 && c.G < 0.05 && c.B < 0.05
}

func newCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return c
}

func TestNew_InvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := New(sz[0], sz[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d, %d) err = %v, want ErrInvalidSize", sz[0], sz[1], err)
		}
	}
}

func TestCanvas_Size(t *testing.T) {
	c := newCanvas(t, 64, 32)
	if w, h := c.Size(); w != 64 || h != 32 {
		t.Errorf("Size() = %dx%d, want 64x32", w, h)
	}
	if got := len(c.Pixels()); got != 64*32*4 {
		t.Errorf("len(Pixels()) = %d, want %d", got, 64*32*4)
	}
	if b := c.Image().Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("Image() bounds = %v", b)
	}
}

func TestCanvas_ClearAndFillRect(t *testing.T) {
	c := newCanvas(t, 100, 100)
	c.Clear(black)
	c.FillRect(gg.Rect{Min: gg.Pt(20, 20), Max: gg.Pt(40, 40)}, red)

	if got := dominant(c.Pixel(30, 30)); got != 'r' {
		t.Errorf("inside rect = %+v, want red", c.Pixel(30, 30))
	}
	if !isBlack(c.Pixel(60, 60)) {
		t.Errorf("outside rect = %+v, want black", c.Pixel(60, 60))
	}
}

func TestCanvas_Line(t *testing.T) {
	c := newCanvas(t, 100, 100)
	c.Clear(black)
	c.Line(gg.NewLine(gg.Pt(10, 50), gg.Pt(90, 50)), 4, blue)

	if got := dominant(c.Pixel(50, 50)); got != 'b' {
		t.Errorf("on line = %+v, want blue", c.Pixel(50, 50))
	}
	if !isBlack(c.Pixel(50, 20)) {
		t.Errorf("off line = %+v, want black", c.Pixel(50, 20))
	}
}

func TestCanvas_ZeroLengthLine(t *testing.T) {
	c := newCanvas(t, 50, 50)
	c.Clear(black)
	// Coincident handles give degenerate guides; they must not panic.
	c.Line(gg.NewLine(gg.Pt(25, 25), gg.Pt(25, 25)), 2, blue)
}

func TestCanvas_Text(t *testing.T) {
	c := newCanvas(t, 300, 60)
	c.Clear(black)
	c.Text(bezedit.OverlayTitle, 10, 10, 20, white)

	lit := 0
	for y := 10; y < 40; y++ {
		for x := 10; x < 290; x++ {
			if !isBlack(c.Pixel(x, y)) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("no text pixels drawn")
	}
	for x := 0; x < 300; x++ {
		if !isBlack(c.Pixel(x, 55)) {
			t.Fatalf("text spilled below its line at x=%d", x)
		}
	}
	if len(c.faces) != 1 {
		t.Errorf("cached faces = %d, want 1", len(c.faces))
	}
	c.Text("again", 10, 10, 20, white)
	if len(c.faces) != 1 {
		t.Errorf("face not reused: %d cached", len(c.faces))
	}
}

func TestCanvas_EditorFrame(t *testing.T) {
	cfg := bezedit.DefaultConfig()
	ed, err := bezedit.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	c := newCanvas(t, cfg.Width, cfg.Height)
	ed.Draw(c)

	tests := []struct {
		name string
		x, y int
		want byte
	}{
		{"left handle", 105, 365, 'r'},
		{"right handle", 1185, 365, 'r'},
		{"curve middle", 640, 365, 'g'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dominant(c.Pixel(tt.x, tt.y)); got != tt.want {
				t.Errorf("pixel (%d,%d) = %+v, want %c", tt.x, tt.y, c.Pixel(tt.x, tt.y), tt.want)
			}
		})
	}
	if !isBlack(c.Pixel(640, 600)) {
		t.Errorf("background = %+v, want black", c.Pixel(640, 600))
	}
}
