package bezedit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silent discards every record. Enabled reports false so the controller
// and backends skip building attributes on the per-frame path.
type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (s silent) WithAttrs([]slog.Attr) slog.Handler     { return s }
func (s silent) WithGroup(string) slog.Handler          { return s }

var current atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger sets the logger shared by the editor, the backends and the
// command. Pass nil to go back to logging nothing, the default.
//
// Records by level:
//   - Debug: "bezedit: handle grabbed" (index, x, y), "bezedit: handle
//     released" (index), "raster: draw dropped", env files read
//   - Info: "bezedit: loop started" / "loop stopped" / "loop cancelled"
//     (frames), "x11: window mapped" / "window closed", "raster: snapshot
//     written"
//   - Warn: a backend failed to open during OpenDefault, X protocol errors
//
// To follow drags on stderr:
//
//	bezedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(silent{})
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
