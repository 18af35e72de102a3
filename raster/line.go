package raster

import "github.com/gogpu/pixeltracer/scene"

// DrawLine plots the Bresenham line from a to b, both endpoints included.
//
// The endpoints are put in a canonical order (smaller X first, then smaller
// Y) before stepping, so a line and its reverse cover the same cells.
// A zero-length line plots its single cell.
//
// When p is Bounded, a line that cannot reach the grid is skipped, an
// axis-aligned line starts at its first on-grid cell and stepping stops
// once every remaining cell is off the grid.
func DrawLine(p Plotter, a, b scene.Point) {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}

	w, h, bounded := boundsOf(p)
	if bounded && misses(w, h, a.X, min(a.Y, b.Y), b.X, max(a.Y, b.Y)) {
		return
	}

	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx - dy

	// Axis-aligned lines keep err constant, so the off-grid head can be
	// jumped over.
	if bounded {
		if dy == 0 && x0 < 0 {
			x0 = 0
		}
		if dx == 0 && y0 < 0 {
			y0 = 0
		}
	}

	for {
		p.Plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		// X never decreases; Y moves only in the sy direction.
		if bounded && (x0 >= w || (sy > 0 && y0 >= h) || (sy < 0 && y0 < 0)) {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// LinePoints returns the cells of the line from a to b in drawing order.
func LinePoints(a, b scene.Point) []scene.Point {
	var c collector
	DrawLine(&c, a, b)
	return c.points
}

// DrawPolygon plots a closed polygon: a line between every consecutive pair
// of vertices plus the closing line from the last vertex back to the first.
// Fewer than two vertices draw nothing.
func DrawPolygon(p Plotter, points []scene.Point) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		DrawLine(p, points[i], points[(i+1)%n])
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
