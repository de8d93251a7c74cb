package bezedit

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestWithPoints_Copies(t *testing.T) {
	pts := [NumPoints]gg.Point{gg.Pt(1, 2), gg.Pt(3, 4), gg.Pt(5, 6), gg.Pt(7, 8)}
	opt := WithPoints(pts)
	pts[0] = gg.Pt(99, 99)

	var o editorOptions
	opt(&o)
	if o.points == nil {
		t.Fatal("points not set")
	}
	if o.points[0] != gg.Pt(1, 2) {
		t.Errorf("points[0] = %v, caller mutation leaked into the option", o.points[0])
	}
}

func TestWithPoints_LastWins(t *testing.T) {
	first := [NumPoints]gg.Point{gg.Pt(1, 1)}
	second := [NumPoints]gg.Point{gg.Pt(2, 2)}

	var o editorOptions
	for _, opt := range []Option{WithPoints(first), WithPoints(second)} {
		opt(&o)
	}
	if o.points[0] != gg.Pt(2, 2) {
		t.Errorf("points[0] = %v, want (2,2)", o.points[0])
	}
}

func TestNew_NoOptionsKeepsLayout(t *testing.T) {
	ed, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	want := NewCurve(1280, 720, 10).Points
	if ed.Points() != want {
		t.Errorf("Points() = %v, want %v", ed.Points(), want)
	}
}
