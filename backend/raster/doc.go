// Package raster renders bezedit frames in software with gg.
//
// Canvas implements bezedit.Surface on a gg.Context and is shared by every
// host: the X11 host uploads its pixels to a window, and Headless keeps
// them off-screen and can write them to a PNG file.
//
// Importing the package registers the "headless" backend.
package raster
