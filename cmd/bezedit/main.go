// Command bezedit opens an interactive cubic Bezier curve editor.
//
// Drag any of the four red handles with the left mouse button; the curve
// and its tangent guides follow. With -snapshot the editor runs headless
// for -frames frames and writes the last one to a PNG file.
//
// Settings are read from BEZEDIT_* variables in the environment, .env and
// .env.local, then overridden by flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/bezedit"
	"github.com/gogpu/bezedit/backend"
	_ "github.com/gogpu/bezedit/backend/raster"
	_ "github.com/gogpu/bezedit/backend/x11"
)

// cli holds the flags that are not part of bezedit.Config.
type cli struct {
	backend  string
	snapshot string
	frames   int
	verbose  bool
}

func main() {
	files, err := bezedit.ReadEnvFiles(".")
	if err != nil {
		log.Fatalf("Failed to read env files: %v", err)
	}
	base, err := bezedit.ConfigFromEnv(bezedit.DefaultConfig(), bezedit.EnvLookup(files))
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	cfg, opts, err := parseFlags(flag.CommandLine, os.Args[1:], base)
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	bezedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ed, err := bezedit.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create editor: %v", err)
	}

	host, err := openHost(cfg, opts)
	if err != nil {
		log.Fatalf("Failed to open %s backend: %v", displayName(opts.backend), err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, ed, host)
	stop()
	if err != nil {
		log.Fatalf("Editor stopped: %v", err)
	}
	if opts.snapshot != "" {
		log.Printf("Snapshot saved to %s (%dx%d)\n", opts.snapshot, cfg.Width, cfg.Height)
	}
}

// run drives ed on host until the host closes or ctx is cancelled, then
// closes the host. Cancellation is a normal exit; a failed frame or a failed
// Close is returned.
func run(ctx context.Context, ed *bezedit.Editor, host backend.Host) error {
	runErr := ed.Run(ctx, host)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}
	if err := host.Close(); err != nil {
		return errors.Join(runErr, fmt.Errorf("close %s backend: %w", host.Name(), err))
	}
	return runErr
}

// parseFlags parses args into fs and applies the flags that were set on
// top of base.
func parseFlags(fs *flag.FlagSet, args []string, base bezedit.Config) (bezedit.Config, cli, error) {
	var (
		title    = fs.String("title", base.Title, "window title")
		width    = fs.Int("width", base.Width, "window width")
		height   = fs.Int("height", base.Height, "window height")
		fps      = fs.Int("fps", base.FPS, "target frames per second")
		sampling = fs.String("sampling", base.Sampling.String(), "curve sampling: oscillate or sweep")
		locale   = fs.String("locale", base.Locale, "overlay locale (BCP 47)")
		opts     cli
	)
	fs.StringVar(&opts.backend, "backend", "", "host backend: x11 or headless (default: first that opens)")
	fs.StringVar(&opts.snapshot, "snapshot", "", "run headless and write the last frame to this PNG file")
	fs.IntVar(&opts.frames, "frames", 1, "frames to run before writing -snapshot")
	fs.BoolVar(&opts.verbose, "v", false, "log handle grabs and releases")

	if err := fs.Parse(args); err != nil {
		return base, opts, err
	}

	cfg := base
	var errs []error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			cfg = cfg.WithTitle(*title)
		case "width", "height":
			cfg = cfg.WithSize(*width, *height)
		case "fps":
			cfg = cfg.WithFPS(*fps)
		case "locale":
			cfg.Locale = *locale
		case "sampling":
			mode, err := bezedit.ParseSampleMode(*sampling)
			if err != nil {
				errs = append(errs, err)
				return
			}
			cfg = cfg.WithSampling(mode)
		}
	})
	if len(errs) > 0 {
		return base, opts, errs[0]
	}
	if err := cfg.Validate(); err != nil {
		return base, opts, err
	}
	if opts.snapshot != "" {
		opts.backend = backend.BackendHeadless
	}
	return cfg, opts, nil
}

// openHost opens the backend named by opts, or the first one that opens.
func openHost(cfg bezedit.Config, opts cli) (backend.Host, error) {
	bo := backend.Options{
		Config: cfg,
		Frames: opts.frames,
		Output: opts.snapshot,
	}
	if opts.backend == "" {
		return backend.OpenDefault(bo)
	}
	return backend.Open(opts.backend, bo)
}

func displayName(name string) string {
	if name == "" {
		return "default"
	}
	return fmt.Sprintf("%q", name)
}
