package backend

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/gogpu/bezedit"
)

// Backend name constants.
const (
	// BackendX11 is the name of the X11 window host.
	BackendX11 = "x11"
	// BackendHeadless is the name of the off-screen raster host.
	BackendHeadless = "headless"
)

// Factory opens a host.
type Factory func(opts Options) (Host, error)

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for OpenDefault (first that opens wins).
	backendPriority = []string{BackendX11, BackendHeadless}
)

// Register registers a host factory under name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Open opens the host registered under name.
func Open(name string, opts Options) (Host, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	return factory(opts)
}

// OpenDefault opens the first registered backend in priority order
// (x11, then headless) that opens without error.
func OpenDefault(opts Options) (Host, error) {
	var lastErr error = ErrBackendNotAvailable
	for _, name := range backendPriority {
		if !IsRegistered(name) {
			continue
		}
		h, err := Open(name, opts)
		if err == nil {
			return h, nil
		}
		bezedit.Logger().Warn("backend: open failed, trying next",
			slog.String("backend", name), slog.Any("error", err))
		lastErr = err
	}
	return nil, lastErr
}
