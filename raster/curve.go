package raster

import "github.com/gogpu/pixeltracer/scene"

// CurveSegments is the fixed number of line segments a cubic Bézier curve
// is flattened into. It does not adapt to the curve's size.
const CurveSegments = 30

// Segment is a line segment between two cells.
type Segment struct {
	From, To scene.Point
}

// BezierPoint evaluates one axis of a cubic Bézier curve with control
// values a, b, c, d at t in [0, 1]:
//
//	B(t) = a(1-t)³ + 3b·t(1-t)² + 3c·t²(1-t) + d·t³
//
// Arithmetic is single precision and the result is truncated toward zero.
// The explicit conversions keep each term rounded to float32 so the result
// does not depend on fused multiply-add.
func BezierPoint(a, b, c, d int, t float32) int {
	u := 1 - t
	t0 := float32(float32(a) * u * u * u)
	t1 := float32(float32(3*b) * t * u * u)
	t2 := float32(float32(3*c) * t * t * u)
	t3 := float32(float32(d) * t * t * t)
	return int(float32(float32(t0+t1)+t2) + t3)
}

// FlattenCurve splits the curve P1..P4 into exactly CurveSegments segments
// at uniform parameter steps i/CurveSegments. The first segment starts at
// P1 and the last one ends at P4.
func FlattenCurve(p1, p2, p3, p4 scene.Point) []Segment {
	segments := make([]Segment, 0, CurveSegments)
	at := func(t float32) scene.Point {
		return scene.Pt(
			BezierPoint(p1.X, p2.X, p3.X, p4.X, t),
			BezierPoint(p1.Y, p2.Y, p3.Y, p4.Y, t),
		)
	}
	for i := 0; i < CurveSegments; i++ {
		t1 := float32(i) / CurveSegments
		t2 := float32(i+1) / CurveSegments
		segments = append(segments, Segment{From: at(t1), To: at(t2)})
	}
	return segments
}

// DrawCurve plots the flattened curve P1..P4 with the line algorithm.
func DrawCurve(p Plotter, p1, p2, p3, p4 scene.Point) {
	for _, s := range FlattenCurve(p1, p2, p3, p4) {
		DrawLine(p, s.From, s.To)
	}
}
