package raster

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/bezedit"
	"github.com/gogpu/bezedit/backend"
	"github.com/gogpu/gg"
)

func TestHeadless_Registered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendHeadless) {
		t.Fatal("headless backend not registered on import")
	}
	h, err := backend.Open(backend.BackendHeadless, backend.Options{Config: bezedit.DefaultConfig()})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer h.Close()
	if h.Name() != backend.BackendHeadless {
		t.Errorf("Name() = %q", h.Name())
	}
}

func TestHeadless_InvalidSize(t *testing.T) {
	cfg := bezedit.DefaultConfig().WithSize(0, 0)
	if _, err := NewHeadless(backend.Options{Config: cfg}); err == nil {
		t.Error("NewHeadless with zero size succeeded")
	}
}

func TestHeadless_RunsFrameBudget(t *testing.T) {
	cfg := bezedit.DefaultConfig()
	h, err := NewHeadless(backend.Options{Config: cfg, Frames: 4})
	if err != nil {
		t.Fatal(err)
	}
	h.Script(
		bezedit.Pointer{Pos: gg.Pt(1185, 365), Down: true},
		bezedit.Pointer{Pos: gg.Pt(640, 100), Down: true},
	)

	ed, err := bezedit.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := ed.Run(context.Background(), h); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if h.frame != 4 {
		t.Errorf("frames run = %d, want 4", h.frame)
	}
	// The last script entry holds for the remaining frames.
	if got := ed.Points()[3]; got != gg.Pt(635, 95) {
		t.Errorf("point 3 = %v, want (635,95)", got)
	}
	if got := dominant(h.Canvas().Pixel(640, 100)); got != 'r' {
		t.Errorf("dragged handle pixel = %+v, want red", h.Canvas().Pixel(640, 100))
	}
}

func TestHeadless_PointerWithoutScript(t *testing.T) {
	h, err := NewHeadless(backend.Options{Config: bezedit.DefaultConfig()})
	if err != nil {
		t.Fatal(err)
	}
	if p := h.Pointer(); p.Down || p.Pos != (gg.Point{}) {
		t.Errorf("Pointer() = %+v, want zero", p)
	}
}

func TestHeadless_CloseWritesPNG(t *testing.T) {
	cfg := bezedit.DefaultConfig().WithSize(320, 200)
	out := filepath.Join(t.TempDir(), "frame.png")
	h, err := NewHeadless(backend.Options{Config: cfg, Output: out})
	if err != nil {
		t.Fatal(err)
	}
	ed, err := bezedit.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := ed.Run(context.Background(), h); err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("snapshot bounds = %v, want 320x200", b)
	}
}

func TestHeadless_CloseWithoutOutput(t *testing.T) {
	h, err := NewHeadless(backend.Options{Config: bezedit.DefaultConfig()})
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}
