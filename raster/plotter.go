package raster

import "github.com/gogpu/pixeltracer/scene"

// Plotter receives the cells produced by the rasterization algorithms.
// Coordinates may lie outside any grid; clipping is the plotter's job.
type Plotter interface {
	Plot(x, y int)
}

// PlotterFunc adapts a function to the Plotter interface.
type PlotterFunc func(x, y int)

// Plot calls f(x, y).
func (f PlotterFunc) Plot(x, y int) { f(x, y) }

// Bounded is implemented by plotters that only keep cells inside a
// width×height grid anchored at (0, 0). The drawing routines use it to skip
// geometry that cannot reach the grid; the cells kept are unchanged.
type Bounded interface {
	Bounds() (width, height int)
}

// AreaPlotter writes an area's fill glyph into its grid, dropping cells
// outside the grid.
type AreaPlotter struct {
	area *scene.Area
}

// NewAreaPlotter creates a plotter drawing into a.
func NewAreaPlotter(a *scene.Area) *AreaPlotter {
	return &AreaPlotter{area: a}
}

// Plot sets (x, y) to the fill glyph if the cell is on the grid.
func (p *AreaPlotter) Plot(x, y int) {
	if !p.area.Contains(x, y) {
		return
	}
	// Contains guarantees SetCell succeeds.
	_ = p.area.SetCell(x, y, p.area.FillChar())
}

// Bounds returns the size of the area's grid.
func (p *AreaPlotter) Bounds() (width, height int) {
	return p.area.Width(), p.area.Height()
}

// boundsOf reports the grid size of p, if it has one.
func boundsOf(p Plotter) (w, h int, ok bool) {
	b, ok := p.(Bounded)
	if !ok {
		return 0, 0, false
	}
	w, h = b.Bounds()
	return w, h, true
}

// misses reports whether the box [minX, maxX]×[minY, maxY] lies entirely
// outside a w×h grid.
func misses(w, h, minX, minY, maxX, maxY int) bool {
	return maxX < 0 || maxY < 0 || minX >= w || minY >= h
}

// collector records every plotted cell in order, duplicates included.
type collector struct {
	points []scene.Point
}

func (c *collector) Plot(x, y int) {
	c.points = append(c.points, scene.Pt(x, y))
}

var (
	_ Plotter = (*AreaPlotter)(nil)
	_ Bounded = (*AreaPlotter)(nil)
	_ Plotter = PlotterFunc(nil)
	_ Plotter = (*collector)(nil)
)
