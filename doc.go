// Package bezedit implements an interactive editor for a single cubic
// Bezier curve.
//
// # Overview
//
// Four control points are drawn as square handles. Dragging a handle with
// the primary pointer button moves its control point, and the curve plus
// two tangent guides are recomputed from the current points every frame.
//
// The package holds the geometric and interaction model only. Windowing,
// rasterization and input polling are supplied by a [Host], and drawing
// goes through a [Surface]:
//
//	ed, err := bezedit.New(bezedit.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	win, err := x11.Open(cfg)
//	...
//	err = ed.Run(ctx, win)
//
// backend/raster provides a software Surface built on gg, and backend/x11
// provides an X11 Host.
//
// # Frame
//
// Each frame is strictly sequential:
//
//   - [Editor.Update] reads the pointer and moves at most one control point
//   - [Editor.Draw] renders guides, curve samples, handles and a debug overlay
//   - the host presents the frame and paces the loop
//
// # Curve evaluation
//
// [Eval] interpolates the control points in the order P0, P1, P3, P2. This
// is not the textbook cubic through P0..P3 in declared order; the editor
// keeps it because the rendered shapes depend on it. At t=0 the curve is at
// P0 and at t=1 it is at P2.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Handle
// positions are top-left corners; their visual centers are offset by half
// the handle size.
package bezedit
