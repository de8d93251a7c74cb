package raster

import (
	"log/slog"

	"github.com/gogpu/bezedit"
	"github.com/gogpu/bezedit/backend"
)

// init registers the headless host on package import.
func init() {
	backend.Register(backend.BackendHeadless, func(opts backend.Options) (backend.Host, error) {
		return NewHeadless(opts)
	})
}

// Headless is an off-screen host. It runs a fixed number of frames on a
// Canvas, replays a scripted pointer and can write the last frame to a PNG
// file on Close.
type Headless struct {
	canvas *Canvas
	script []bezedit.Pointer
	frames int
	frame  int
	output string
}

var _ backend.Host = (*Headless)(nil)

// NewHeadless creates a headless host sized from opts.Config. Frames
// defaults to 1.
func NewHeadless(opts backend.Options) (*Headless, error) {
	canvas, err := New(opts.Config.Width, opts.Config.Height)
	if err != nil {
		return nil, err
	}
	frames := opts.Frames
	if frames <= 0 {
		frames = 1
	}
	return &Headless{
		canvas: canvas,
		frames: frames,
		output: opts.Output,
	}, nil
}

// Name returns backend.BackendHeadless.
func (h *Headless) Name() string {
	return backend.BackendHeadless
}

// Script sets the pointer state returned for each frame. Frames past the
// end of the script keep the last entry.
func (h *Headless) Script(ps ...bezedit.Pointer) {
	h.script = ps
}

// ShouldClose reports whether the frame budget is spent.
func (h *Headless) ShouldClose() bool {
	return h.frame >= h.frames
}

// Pointer returns the scripted pointer for the current frame.
func (h *Headless) Pointer() bezedit.Pointer {
	switch {
	case len(h.script) == 0:
		return bezedit.Pointer{}
	case h.frame < len(h.script):
		return h.script[h.frame]
	default:
		return h.script[len(h.script)-1]
	}
}

// Surface returns the canvas.
func (h *Headless) Surface() bezedit.Surface {
	return h.canvas
}

// Canvas returns the canvas frames are drawn on.
func (h *Headless) Canvas() *Canvas {
	return h.canvas
}

// Present advances to the next frame. There is no pacing.
func (h *Headless) Present() error {
	h.frame++
	return nil
}

// Close writes the last frame to the output file, if one was set.
func (h *Headless) Close() error {
	if h.output == "" {
		return nil
	}
	if err := h.canvas.SavePNG(h.output); err != nil {
		return err
	}
	bezedit.Logger().Info("raster: snapshot written",
		slog.String("path", h.output), slog.Int("frames", h.frame))
	return nil
}
