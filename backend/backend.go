package backend

import (
	"errors"

	"github.com/gogpu/bezedit"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Host is a bezedit.Host that holds resources released by Close.
//
// Hosts are registered via Register() and opened via Open() or
// OpenDefault().
type Host interface {
	bezedit.Host

	// Name returns the backend identifier (e.g., "x11", "headless").
	Name() string

	// Close releases the window, connection or output of the host.
	// The host should not be used after Close is called.
	Close() error
}

// Options configures a host when it is opened.
type Options struct {
	// Config supplies the window title, size and frame rate.
	Config bezedit.Config

	// Frames limits the number of frames a headless host runs before it
	// reports a close request. Windowed hosts ignore it.
	Frames int

	// Output is the PNG file a headless host writes on Close. Empty means
	// no file is written.
	Output string
}
