// Package x11 hosts the bezedit editor in an X11 window.
//
// The window is created with raw xproto requests over an xgbutil
// connection. Frames are drawn on a raster.Canvas, converted to BGRX and
// uploaded with PutImage in chunks that fit the server's request limit.
// Left button presses, releases and motion become the polled
// bezedit.Pointer; the window manager close button ends the loop.
//
// Importing the package registers the "x11" backend. Opening it fails when
// no X server is reachable, and backend.OpenDefault then falls back to the
// headless host.
package x11
