package bezedit

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// ErrInvalidConfig is returned when a configuration value is out of range
// or cannot be parsed.
var ErrInvalidConfig = errors.New("bezedit: invalid config")

// EnvPrefix prefixes every environment variable read by ConfigFromEnv.
const EnvPrefix = "BEZEDIT_"

// Config holds editor and window settings.
//
// Use DefaultConfig and the With methods:
//
//	cfg := bezedit.DefaultConfig().
//	    WithTitle("curves").
//	    WithSize(800, 600)
type Config struct {
	Title  string
	Width  int
	Height int
	FPS    int

	// HandleSize is the side of a handle square, also its hit box.
	HandleSize float64
	// MarkerWidth is the stroke width of the tangent guides.
	MarkerWidth float64
	// SampleSize is the side of the square drawn at each curve sample.
	SampleSize float64
	// SampleStep and SampleSpan define the step values of a frame:
	// 0, SampleStep, 2*SampleStep, ... up to SampleSpan.
	SampleStep float64
	SampleSpan float64
	Sampling   SampleMode

	Colors Colors

	// Locale is a BCP 47 tag used to format overlay numbers.
	Locale string
}

// DefaultConfig returns the stock settings: a 1280x720 window at 120 frames
// per second, 10 pixel handles and samples, 2 pixel guides and 2001
// oscillating samples per frame.
func DefaultConfig() Config {
	return Config{
		Title:       "Bezier editor",
		Width:       1280,
		Height:      720,
		FPS:         120,
		HandleSize:  10,
		MarkerWidth: 2,
		SampleSize:  10,
		SampleStep:  0.005,
		SampleSpan:  10,
		Sampling:    SampleOscillate,
		Colors:      DefaultColors(),
		Locale:      "en",
	}
}

// WithTitle returns a copy of c with the window title set.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy of c with the window size set.
func (c Config) WithSize(width, height int) Config {
	c.Width, c.Height = width, height
	return c
}

// WithFPS returns a copy of c with the target frame rate set.
func (c Config) WithFPS(fps int) Config {
	c.FPS = fps
	return c
}

// WithSampling returns a copy of c with the sampling mode set.
func (c Config) WithSampling(mode SampleMode) Config {
	c.Sampling = mode
	return c
}

// WithColors returns a copy of c with the palette set.
func (c Config) WithColors(colors Colors) Config {
	c.Colors = colors
	return c
}

// MaxSamples bounds the number of curve samples drawn per frame.
const MaxSamples = 1 << 20

// Validate reports the first invalid setting. Colors are checked by
// Colors.Palette, not here.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0 || c.Width > math.MaxUint16 || c.Height > math.MaxUint16:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	case !positive(c.HandleSize):
		return fmt.Errorf("%w: handle size %g", ErrInvalidConfig, c.HandleSize)
	case !positive(c.MarkerWidth):
		return fmt.Errorf("%w: marker width %g", ErrInvalidConfig, c.MarkerWidth)
	case !positive(c.SampleSize):
		return fmt.Errorf("%w: sample size %g", ErrInvalidConfig, c.SampleSize)
	case !positive(c.SampleStep) || !positive(c.SampleSpan) || c.SampleSpan < c.SampleStep:
		return fmt.Errorf("%w: sample step %g over span %g", ErrInvalidConfig, c.SampleStep, c.SampleSpan)
	case c.SampleSpan/c.SampleStep >= MaxSamples:
		return fmt.Errorf("%w: %g samples per frame, limit %d", ErrInvalidConfig, c.SampleSpan/c.SampleStep+1, MaxSamples)
	case c.Sampling != SampleOscillate && c.Sampling != SampleSweep:
		return fmt.Errorf("%w: sampling mode %v", ErrInvalidConfig, c.Sampling)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalidConfig, c.Locale, err)
	}
	return nil
}

// positive reports whether f is finite and greater than zero.
func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// ConfigFromEnv overlays BEZEDIT_* variables found through lookup onto
// base. Unset variables keep the base value.
//
// lookup has the signature of os.LookupEnv; use EnvLookup to combine the
// process environment with values read from env files.
func ConfigFromEnv(base Config, lookup func(string) (string, bool)) (Config, error) {
	c := base
	var errs []error

	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, EnvPrefix, key, v))
				return
			}
			*dst = n
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := lookup(EnvPrefix + key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, EnvPrefix, key, v))
				return
			}
			*dst = f
		}
	}

	str("TITLE", &c.Title)
	integer("WIDTH", &c.Width)
	integer("HEIGHT", &c.Height)
	integer("FPS", &c.FPS)
	float("HANDLE_SIZE", &c.HandleSize)
	float("MARKER_WIDTH", &c.MarkerWidth)
	float("SAMPLE_SIZE", &c.SampleSize)
	float("SAMPLE_STEP", &c.SampleStep)
	float("SAMPLE_SPAN", &c.SampleSpan)
	str("COLOR_HANDLE", &c.Colors.Handle)
	str("COLOR_MARKER", &c.Colors.Marker)
	str("COLOR_CURVE", &c.Colors.Curve)
	str("COLOR_TEXT", &c.Colors.Text)
	str("COLOR_DEBUG", &c.Colors.Debug)
	str("COLOR_BACKGROUND", &c.Colors.Background)
	str("LOCALE", &c.Locale)

	if v, ok := lookup(EnvPrefix + "SAMPLING"); ok {
		mode, err := ParseSampleMode(v)
		if err != nil {
			errs = append(errs, err)
		} else {
			c.Sampling = mode
		}
	}

	if err := errors.Join(errs...); err != nil {
		return base, err
	}
	return c, nil
}

// envFiles lists the env files read by ReadEnvFiles, lowest precedence first.
var envFiles = []string{".env", ".env.local"}

// ReadEnvFiles reads .env and .env.local from dir. Values in .env.local
// override those in .env. Missing files are skipped.
func ReadEnvFiles(dir string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		m, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("bezedit: read %s: %w", path, err)
		}
		Logger().Debug("bezedit: env file loaded", "path", path, "vars", len(m))
		maps.Copy(vars, m)
	}
	return vars, nil
}

// EnvLookup returns a lookup function that prefers the process
// environment and falls back to files.
func EnvLookup(files map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := files[key]
		return v, ok
	}
}
