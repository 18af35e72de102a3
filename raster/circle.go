package raster

import (
	"math"

	"github.com/gogpu/pixeltracer/scene"
)

// DrawCircle plots a circle outline with the midpoint algorithm.
//
// Starting at (0, r) with decision variable d = 3-2r, each step plots the
// eight symmetric cells around center, then advances x and, when d > 0,
// steps y inward. The loop runs while y >= x and plots once more after
// the last advance.
//
// When p is Bounded, a circle whose outline cannot touch the grid, either
// because it lies beside the grid or because it encloses it, is skipped.
func DrawCircle(p Plotter, center scene.Point, r int) {
	if w, h, ok := boundsOf(p); ok && circleMisses(w, h, center, r) {
		return
	}
	x, y := 0, r
	d := 3 - 2*r
	plotOctants(p, center.X, center.Y, x, y)
	for y >= x {
		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
		plotOctants(p, center.X, center.Y, x, y)
	}
}

// circleMisses reports whether no outline cell of the circle can land on a
// w×h grid. Plotted cells stay within one cell of radius r, so a margin of
// two cells on each side is enough.
func circleMisses(w, h int, center scene.Point, r int) bool {
	if w <= 0 || h <= 0 {
		return true
	}
	cx, cy := float64(center.X), float64(center.Y)
	rad := math.Abs(float64(r))

	// Nearest and farthest grid cells from the center.
	nx := math.Max(0, math.Min(cx, float64(w-1)))
	ny := math.Max(0, math.Min(cy, float64(h-1)))
	fx := math.Max(math.Abs(cx), math.Abs(cx-float64(w-1)))
	fy := math.Max(math.Abs(cy), math.Abs(cy-float64(h-1)))

	// Float rounding grows with magnitude; widen the margin to match.
	margin := 2 + 1e-9*math.Max(rad, math.Max(math.Abs(cx), math.Abs(cy)))
	if math.Hypot(cx-nx, cy-ny) > rad+margin {
		return true
	}
	return rad > margin && math.Hypot(fx, fy) < rad-margin
}

func plotOctants(p Plotter, xc, yc, x, y int) {
	p.Plot(xc+x, yc+y)
	p.Plot(xc-x, yc+y)
	p.Plot(xc+x, yc-y)
	p.Plot(xc-x, yc-y)
	p.Plot(xc+y, yc+x)
	p.Plot(xc-y, yc+x)
	p.Plot(xc+y, yc-x)
	p.Plot(xc-y, yc-x)
}

// CirclePoints returns the cells plotted for a circle, duplicates included.
func CirclePoints(center scene.Point, r int) []scene.Point {
	var c collector
	DrawCircle(&c, center, r)
	return c.points
}
