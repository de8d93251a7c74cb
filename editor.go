package bezedit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"
)

// Editor owns the curve and the drag state and runs one frame at a time:
// Update applies input, Draw renders the result.
//
// An Editor is not safe for concurrent use. All phases of a frame run on
// the caller's goroutine.
type Editor struct {
	cfg     Config
	palette Palette
	curve   *Curve
	ctrl    *Controller
	overlay *overlay

	// schedule is computed once; samples is reused every frame.
	schedule []float64
	samples  []gg.Point
}

// New creates an Editor from cfg.
//
// It fails if cfg is invalid or a palette color cannot be parsed; callers
// treat both as fatal startup errors.
func New(cfg Config, opts ...Option) (*Editor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Colors.Palette()
	if err != nil {
		return nil, err
	}

	var o editorOptions
	for _, opt := range opts {
		opt(&o)
	}

	curve := NewCurve(float64(cfg.Width), float64(cfg.Height), cfg.HandleSize)
	if o.points != nil {
		curve.Points = *o.points
	}

	schedule := Schedule(cfg.Sampling, cfg.SampleStep, cfg.SampleSpan)
	return &Editor{
		cfg:      cfg,
		palette:  palette,
		curve:    curve,
		ctrl:     NewController(),
		overlay:  newOverlay(cfg.Locale),
		schedule: schedule,
		samples:  make([]gg.Point, 0, len(schedule)),
	}, nil
}

// Config returns the configuration the editor was created with.
func (e *Editor) Config() Config {
	return e.cfg
}

// Points returns a copy of the current control points.
func (e *Editor) Points() [NumPoints]gg.Point {
	return e.curve.Points
}

// Curve returns the edited curve. Writes through the pointer are visible
// to the next Draw.
func (e *Editor) Curve() *Curve {
	return e.curve
}

// Dragging returns the grabbed handle, if any. See Controller.Dragging.
func (e *Editor) Dragging() (int, bool) {
	return e.ctrl.Dragging()
}

// Schedule returns the curve parameters sampled each frame.
func (e *Editor) Schedule() []float64 {
	return e.schedule
}

// Update is the input phase of a frame.
func (e *Editor) Update(p Pointer) {
	e.ctrl.Update(e.curve, p)
}

// Draw is the render phase of a frame. It draws, in order: the background,
// both tangent guides, a square at every curve sample, the handles and the
// debug overlay.
func (e *Editor) Draw(s Surface) {
	pal := &e.palette
	s.Clear(pal.Background)

	first, second := e.curve.Tangents()
	s.Line(first, e.cfg.MarkerWidth, pal.Marker)
	s.Line(second, e.cfg.MarkerWidth, pal.Marker)

	e.samples = Sample(e.samples, e.curve, e.schedule)
	for _, p := range e.samples {
		s.FillRect(square(p, e.cfg.SampleSize), pal.Curve)
	}

	for i := range e.curve.Points {
		s.FillRect(e.curve.Handle(i), pal.Handle)
	}

	e.overlay.draw(s, e.curve.Points, pal)
}

// Step runs one full frame: Update with p, then Draw onto s.
func (e *Editor) Step(p Pointer, s Surface) {
	e.Update(p)
	e.Draw(s)
}

// Run drives frames from host until the host reports a close request or
// ctx is cancelled. Both are checked once per frame boundary.
//
// Run returns nil when the host closes, ctx.Err() on cancellation, and the
// wrapped error if presenting a frame fails.
func (e *Editor) Run(ctx context.Context, host Host) error {
	log := Logger()
	log.Info("bezedit: loop started",
		slog.Int("samples", len(e.schedule)),
		slog.String("sampling", e.cfg.Sampling.String()))

	var frames uint64
	for !host.ShouldClose() {
		if err := ctx.Err(); err != nil {
			log.Info("bezedit: loop cancelled", slog.Uint64("frames", frames))
			return err
		}
		e.Step(host.Pointer(), host.Surface())
		if err := host.Present(); err != nil {
			return fmt.Errorf("bezedit: present frame %d: %w", frames, err)
		}
		frames++
	}

	log.Info("bezedit: loop stopped", slog.Uint64("frames", frames))
	return nil
}

// square returns the square of side size anchored at its top-left corner p.
func square(p gg.Point, size float64) gg.Rect {
	return gg.Rect{Min: p, Max: gg.Pt(p.X+size, p.Y+size)}
}
