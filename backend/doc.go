// Package backend provides the registry of hosts that drive a
// bezedit.Editor.
//
// A host owns the window or off-screen target, the pointer and frame
// pacing. Host packages register themselves in init():
//
//	import (
//		_ "github.com/gogpu/bezedit/backend/raster" // "headless"
//		_ "github.com/gogpu/bezedit/backend/x11"    // "x11"
//	)
//
// # Backend Selection
//
// Use OpenDefault to get the best available host, or Open to request one
// by name:
//
//	h, err := backend.OpenDefault(backend.Options{Config: cfg})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer h.Close()
//
//	err = ed.Run(ctx, h)
//
// OpenDefault prefers x11 and falls back to headless when no display is
// reachable.
package backend
