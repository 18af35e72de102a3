package raster

import "github.com/gogpu/pixeltracer/scene"

// DrawRectangle plots the outline of a w×h rectangle whose top-left cell is
// origin. Squares are rectangles with w == h.
//
// Horizontal edges run along rows origin.Y and origin.Y+h-1 for w cells;
// vertical edges run along columns origin.X and origin.X+w-1 for h cells.
// A 1×1 rectangle is a single cell. A non-positive w leaves out the
// horizontal edges and a non-positive h the vertical ones.
//
// When p is Bounded, each edge is cut to its on-grid cells before
// iterating.
func DrawRectangle(p Plotter, origin scene.Point, w, h int) {
	x, y := origin.X, origin.Y
	top, bottom := y, y+h-1
	left, right := x, x+w-1

	colFrom, colTo := 0, w
	rowFrom, rowTo := 0, h
	gw, gh, bounded := boundsOf(p)
	if bounded {
		colFrom, colTo = clampSpan(x, w, gw)
		rowFrom, rowTo = clampSpan(y, h, gh)
	}

	for i := colFrom; i < colTo; i++ {
		p.Plot(x+i, top)
		p.Plot(x+i, bottom)
	}
	for i := rowFrom; i < rowTo; i++ {
		p.Plot(left, y+i)
		p.Plot(right, y+i)
	}
}

// clampSpan returns the index range [from, to) of i in [0, n) for which
// start+i falls in [0, limit).
func clampSpan(start, n, limit int) (from, to int) {
	from, to = 0, n
	if start < 0 {
		from = -start
	}
	if start >= limit {
		return 0, 0
	}
	if limit-start < to {
		to = limit - start
	}
	if from > to {
		return 0, 0
	}
	return from, to
}
