package bezedit

import "github.com/gogpu/gg"

// NumPoints is the number of control points of the edited curve.
const NumPoints = 4

// Curve holds the control points of the edited curve together with the
// size of the square handles drawn at them.
//
// Points are handle top-left corners. Points 0 and 1 form the first tangent
// pair, points 2 and 3 the second.
type Curve struct {
	Points     [NumPoints]gg.Point
	HandleSize float64
}

// NewCurve returns the initial layout for a window of the given size:
// points 0 and 1 at the left-center, points 2 and 3 at the right-center,
// each inset by 100 pixels.
func NewCurve(width, height, handleSize float64) *Curve {
	left := gg.Pt(100, height/2)
	right := gg.Pt(width-100, height/2)
	return &Curve{
		Points:     [NumPoints]gg.Point{left, left, right, right},
		HandleSize: handleSize,
	}
}

// Eval returns the point of the curve at parameter t.
//
// The interpolation cascade runs over the points in the order
// (P0, P1, P3, P2):
//
//	m1 = lerp(P0, P1, t)
//	m2 = lerp(P1, P3, t)
//	m3 = lerp(P3, P2, t)
//	B  = lerp(lerp(m1, m2, t), m3, t)
//
// t is not clamped.
func Eval(p [NumPoints]gg.Point, t float64) gg.Point {
	i, j, k, l := p[0], p[1], p[3], p[2]

	m1 := i.Lerp(j, t)
	m2 := j.Lerp(k, t)
	m3 := k.Lerp(l, t)

	return m1.Lerp(m2, t).Lerp(m3, t)
}

// Eval returns the point of c at parameter t. See [Eval].
func (c *Curve) Eval(t float64) gg.Point {
	return Eval(c.Points, t)
}

// Handle returns the hit box of handle i: the square of side HandleSize
// anchored at the point's top-left position.
func (c *Curve) Handle(i int) gg.Rect {
	p := c.Points[i]
	return gg.Rect{Min: p, Max: gg.Pt(p.X+c.HandleSize, p.Y+c.HandleSize)}
}

// Center returns the visual center of handle i.
func (c *Curve) Center(i int) gg.Point {
	return center(c.Points[i], c.HandleSize)
}

// Tangents returns the two tangent guides: the segment between the centers
// of handles 0 and 1, and the segment between the centers of handles 2 and 3.
func (c *Curve) Tangents() (gg.Line, gg.Line) {
	return gg.NewLine(c.Center(0), c.Center(1)), gg.NewLine(c.Center(2), c.Center(3))
}

func center(p gg.Point, size float64) gg.Point {
	return gg.Pt(p.X+size/2, p.Y+size/2)
}
