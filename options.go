package bezedit

import "github.com/gogpu/gg"

// Option configures an Editor during creation.
//
// Example:
//
//	// Default layout derived from the window size
//	ed, err := bezedit.New(cfg)
//
//	// Start from explicit control points
//	ed, err := bezedit.New(cfg, bezedit.WithPoints(points))
type Option func(*editorOptions)

// editorOptions holds optional configuration for Editor creation.
type editorOptions struct {
	points *[NumPoints]gg.Point
}

// WithPoints sets the initial control points, replacing the layout
// computed from the window size.
func WithPoints(points [NumPoints]gg.Point) Option {
	return func(o *editorOptions) {
		o.points = &points
	}
}
