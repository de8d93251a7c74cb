package bezedit

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestSchedule_DefaultLength(t *testing.T) {
	for _, mode := range []SampleMode{SampleOscillate, SampleSweep} {
		t.Run(mode.String(), func(t *testing.T) {
			if got := len(Schedule(mode, 0.005, 10)); got != 2001 {
				t.Errorf("len = %d, want 2001", got)
			}
		})
	}
}

func TestSchedule_Oscillate(t *testing.T) {
	ts := Schedule(SampleOscillate, 0.005, 10)

	if math.Abs(ts[0]-0.5) > eps {
		t.Errorf("ts[0] = %g, want 0.5", ts[0])
	}
	if want := (math.Sin(10) + 1) / 2; math.Abs(ts[len(ts)-1]-want) > eps {
		t.Errorf("last = %g, want %g", ts[len(ts)-1], want)
	}

	decreasing := false
	for i, v := range ts {
		if v < 0 || v > 1 {
			t.Fatalf("ts[%d] = %g, outside [0,1]", i, v)
		}
		if i > 0 && v < ts[i-1] {
			decreasing = true
		}
	}
	if !decreasing {
		t.Error("oscillating schedule is monotonic")
	}
}

func TestSchedule_Sweep(t *testing.T) {
	ts := Schedule(SampleSweep, 0.005, 10)
	if ts[0] != 0 {
		t.Errorf("ts[0] = %g, want 0", ts[0])
	}
	if math.Abs(ts[len(ts)-1]-1) > eps {
		t.Errorf("last = %g, want 1", ts[len(ts)-1])
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			t.Fatalf("ts[%d] = %g not above ts[%d] = %g", i, ts[i], i-1, ts[i-1])
		}
	}
}

func TestSchedule_SpanShorterThanStep(t *testing.T) {
	ts := Schedule(SampleOscillate, 1, 0.1)
	if len(ts) != 1 || ts[0] != 0.5 {
		t.Errorf("Schedule = %v, want [0.5]", ts)
	}
}

func TestParseSampleMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SampleMode
		wantErr bool
	}{
		{"oscillate", SampleOscillate, false},
		{"SWEEP", SampleSweep, false},
		{" sweep ", SampleSweep, false},
		{"random", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSampleMode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("err = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseSampleMode(%q) = (%v, %v), want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestSampleMode_String(t *testing.T) {
	if got := SampleMode(7).String(); got != "SampleMode(7)" {
		t.Errorf("String() = %q", got)
	}
}

func TestSample_ReusesBuffer(t *testing.T) {
	c := NewCurve(1280, 720, 10)
	ts := []float64{0, 0.5, 1}
	buf := make([]gg.Point, 0, 8)

	got := Sample(buf, c, ts)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if &got[0] != &buf[:1][0] {
		t.Error("Sample allocated instead of reusing dst")
	}
	if got[0] != c.Points[0] || got[2] != c.Points[2] {
		t.Errorf("Sample = %v", got)
	}

	got = Sample(got, c, ts[:1])
	if len(got) != 1 {
		t.Errorf("len after reuse = %d, want 1", len(got))
	}
}
