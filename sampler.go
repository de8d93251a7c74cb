package bezedit

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/floats"
)

// SampleMode selects how the step values of a frame map to curve parameters.
type SampleMode int

const (
	// SampleOscillate maps each step s to (sin(s)+1)/2. Over a span longer
	// than one period the curve is traced back and forth several times.
	SampleOscillate SampleMode = iota

	// SampleSweep maps each step s to s/span, a single monotonic pass
	// from t=0 to t=1.
	SampleSweep
)

// String returns the mode name accepted by ParseSampleMode.
func (m SampleMode) String() string {
	switch m {
	case SampleOscillate:
		return "oscillate"
	case SampleSweep:
		return "sweep"
	default:
		return fmt.Sprintf("SampleMode(%d)", int(m))
	}
}

// ParseSampleMode parses "oscillate" or "sweep", case-insensitively.
func ParseSampleMode(s string) (SampleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oscillate":
		return SampleOscillate, nil
	case "sweep":
		return SampleSweep, nil
	default:
		return 0, fmt.Errorf("%w: unknown sampling mode %q", ErrInvalidConfig, s)
	}
}

// Schedule returns the curve parameters sampled every frame.
//
// Step values run over [0, span] in increments of step, both ends
// included; the defaults (0.005 over 10) give 2001 samples. Each step
// value is then mapped to t according to mode.
func Schedule(mode SampleMode, step, span float64) []float64 {
	n := int(math.Round(span/step)) + 1
	if n < 2 {
		return []float64{param(mode, 0, span)}
	}

	ts := floats.Span(make([]float64, n), 0, span)
	for i, s := range ts {
		ts[i] = param(mode, s, span)
	}
	return ts
}

func param(mode SampleMode, s, span float64) float64 {
	if mode == SampleSweep {
		if span == 0 {
			return 0
		}
		return s / span
	}
	return (math.Sin(s) + 1) / 2
}

// Sample evaluates curve at every parameter in ts, appending the points
// to dst[:0] and returning the result.
func Sample(dst []gg.Point, curve *Curve, ts []float64) []gg.Point {
	dst = dst[:0]
	for _, t := range ts {
		dst = append(dst, curve.Eval(t))
	}
	return dst
}
