package x11

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/gogpu/bezedit"
	"github.com/gogpu/bezedit/backend"
	"github.com/gogpu/bezedit/backend/raster"
)

// ErrWindowClosed is returned by Present after Close.
var ErrWindowClosed = errors.New("x11: window is closed")

// init registers the X11 host on package import.
func init() {
	backend.Register(backend.BackendX11, func(opts backend.Options) (backend.Host, error) {
		return Open(opts.Config)
	})
}

// putImageHeader is the fixed size of a PutImage request in bytes.
const putImageHeader = 24

// Window is a bezedit host backed by an X11 window.
//
// Frames are rasterized on a raster.Canvas and uploaded with PutImage.
// Present blocks on a ticker so the loop runs at the configured frame rate.
type Window struct {
	xu     *xgbutil.XUtil
	win    xproto.Window
	gc     xproto.Gcontext
	depth  byte
	width  int
	height int

	canvas *raster.Canvas
	frame  []byte
	rows   int

	input  input
	ticker *time.Ticker
	closed bool
}

var _ backend.Host = (*Window)(nil)

// Open connects to the X server named by $DISPLAY and maps a window sized
// and titled from cfg.
func Open(cfg bezedit.Config) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// PutImage addresses rows with a signed 16-bit offset.
	if cfg.Height > math.MaxInt16 {
		return nil, fmt.Errorf("%w: window height %d exceeds %d", bezedit.ErrInvalidConfig, cfg.Height, math.MaxInt16)
	}
	canvas, err := raster.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: connect: %w", err)
	}
	conn := xu.Conn()
	screen := xu.Screen()

	win, err := xproto.NewWindowId(conn)
	if err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("x11: window id: %w", err)
	}
	xproto.CreateWindow(
		conn,
		xproto.WindowClassCopyFromParent,
		win,
		screen.Root,
		0, 0,
		uint16(cfg.Width),
		uint16(cfg.Height),
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			screen.BlackPixel,
			xproto.EventMaskExposure |
				xproto.EventMaskButtonPress |
				xproto.EventMaskButtonRelease |
				xproto.EventMaskPointerMotion |
				xproto.EventMaskStructureNotify,
		},
	)

	w := &Window{
		xu:     xu,
		win:    win,
		depth:  screen.RootDepth,
		width:  cfg.Width,
		height: cfg.Height,
		canvas: canvas,
		frame:  make([]byte, cfg.Width*cfg.Height*4),
		rows:   chunkRows(xproto.Setup(conn).MaximumRequestLength, cfg.Width),
		input:  input{win: win},
	}

	if err := w.setProperties(cfg.Title); err != nil {
		w.destroy()
		return nil, err
	}

	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		w.destroy()
		return nil, fmt.Errorf("x11: gc id: %w", err)
	}
	xproto.CreateGC(conn, gc, xproto.Drawable(win), 0, nil)
	w.gc = gc

	xproto.MapWindow(conn, win)

	fps := cfg.FPS
	if fps <= 0 {
		fps = bezedit.DefaultConfig().FPS
	}
	w.ticker = time.NewTicker(time.Second / time.Duration(fps))

	bezedit.Logger().Info("x11: window mapped",
		slog.Int("width", cfg.Width), slog.Int("height", cfg.Height), slog.Int("fps", fps))
	return w, nil
}

// setProperties sets the window title and opts into WM_DELETE_WINDOW so a
// close button click arrives as a client message instead of a kill.
func (w *Window) setProperties(title string) error {
	if err := ewmh.WmNameSet(w.xu, w.win, title); err != nil {
		return fmt.Errorf("x11: set _NET_WM_NAME: %w", err)
	}
	if err := icccm.WmNameSet(w.xu, w.win, title); err != nil {
		return fmt.Errorf("x11: set WM_NAME: %w", err)
	}
	if err := icccm.WmProtocolsSet(w.xu, w.win, []string{"WM_DELETE_WINDOW"}); err != nil {
		return fmt.Errorf("x11: set WM_PROTOCOLS: %w", err)
	}
	atom, err := xprop.Atm(w.xu, "WM_DELETE_WINDOW")
	if err != nil {
		return fmt.Errorf("x11: intern WM_DELETE_WINDOW: %w", err)
	}
	w.input.wmDelete = atom
	return nil
}

// Name returns backend.BackendX11.
func (w *Window) Name() string {
	return backend.BackendX11
}

// ShouldClose drains pending X events and reports whether the window was
// closed.
func (w *Window) ShouldClose() bool {
	if w.closed {
		return true
	}
	conn := w.xu.Conn()
	for {
		ev, xerr := conn.PollForEvent()
		if ev == nil && xerr == nil {
			break
		}
		if xerr != nil {
			bezedit.Logger().Warn("x11: protocol error", slog.String("error", xerr.Error()))
			continue
		}
		w.input.apply(ev)
	}
	return w.input.closing
}

// Pointer returns the pointer state as of the last ShouldClose call.
func (w *Window) Pointer() bezedit.Pointer {
	return w.input.pointer
}

// Surface returns the canvas the next frame is drawn on.
func (w *Window) Surface() bezedit.Surface {
	return w.canvas
}

// Present uploads the canvas to the window and waits for the next tick.
func (w *Window) Present() error {
	if w.closed {
		return ErrWindowClosed
	}
	toBGRX(w.frame, w.canvas.Pixels())

	conn := w.xu.Conn()
	stride := w.width * 4
	for y := 0; y < w.height; y += w.rows {
		h := min(w.rows, w.height-y)
		xproto.PutImage(
			conn,
			xproto.ImageFormatZPixmap,
			xproto.Drawable(w.win),
			w.gc,
			uint16(w.width),
			uint16(h),
			0, int16(y),
			0,
			w.depth,
			w.frame[y*stride:(y+h)*stride],
		)
	}
	conn.Sync()

	<-w.ticker.C
	return nil
}

// Close destroys the window and closes the connection. Calling Close more
// than once is a no-op.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.ticker != nil {
		w.ticker.Stop()
	}
	w.destroy()
	bezedit.Logger().Info("x11: window closed")
	return nil
}

func (w *Window) destroy() {
	if w.xu == nil {
		return
	}
	conn := w.xu.Conn()
	if w.gc != 0 {
		xproto.FreeGC(conn, w.gc)
	}
	xproto.DestroyWindow(conn, w.win)
	conn.Close()
}

// input folds X events into the pointer state the editor polls.
type input struct {
	win      xproto.Window
	wmDelete xproto.Atom
	pointer  bezedit.Pointer
	closing  bool
}

func (in *input) apply(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.ButtonPressEvent:
		if e.Detail == xproto.ButtonIndex1 {
			in.pointer.Down = true
		}
		in.move(e.EventX, e.EventY)
	case xproto.ButtonReleaseEvent:
		if e.Detail == xproto.ButtonIndex1 {
			in.pointer.Down = false
		}
		in.move(e.EventX, e.EventY)
	case xproto.MotionNotifyEvent:
		in.move(e.EventX, e.EventY)
	case xproto.ClientMessageEvent:
		if in.wmDelete != 0 && e.Format == 32 && xproto.Atom(e.Data.Data32[0]) == in.wmDelete {
			in.closing = true
		}
	case xproto.DestroyNotifyEvent:
		if e.Window == in.win {
			in.closing = true
		}
	}
}

func (in *input) move(x, y int16) {
	in.pointer.Pos.X = float64(x)
	in.pointer.Pos.Y = float64(y)
}

// chunkRows returns how many rows of a width-pixel frame fit in one
// PutImage request. maxLen is the server limit in 4-byte units.
func chunkRows(maxLen uint16, width int) int {
	if width <= 0 {
		return 1
	}
	rows := (int(maxLen)*4 - putImageHeader) / (width * 4)
	return max(rows, 1)
}

// toBGRX converts RGBA bytes to the BGRX layout of a 24/32-bit TrueColor
// visual.
func toBGRX(dst, src []byte) {
	for i := 0; i+3 < len(src) && i+3 < len(dst); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = 0
	}
}
