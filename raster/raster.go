// Package raster converts a vector scene into glyphs on an area's grid.
//
// Render is a full repaint: it clears the grid and draws every shape of
// every visible layer, bottom layer first and, within a layer, in insertion
// order. Later writes overwrite earlier ones; there is no blending.
//
// All shapes are drawn as single-cell outlines with the area's fill glyph.
// Every cell write is bounds-checked and silently dropped when it falls
// outside the grid, so rasterization never fails: off-grid geometry is
// simply invisible. Plotters that report their Bounds let the drawing
// routines skip geometry that cannot reach the grid without changing which
// cells are written.
//
// The point generators (LinePoints, CirclePoints, FlattenCurve) expose the
// same algorithms without a grid, for callers that need the raw cells.
package raster

import "github.com/gogpu/pixeltracer/scene"

// Render clears a and draws the shapes of its visible layers into it.
// Hidden layers are skipped entirely.
func Render(a *scene.Area) {
	if a == nil {
		return
	}
	a.Clear()
	p := NewAreaPlotter(a)
	for _, l := range a.Layers() {
		if !l.Visible() {
			continue
		}
		for _, s := range l.Shapes() {
			Draw(p, s)
		}
	}
}

// Draw rasterizes a single shape through p.
func Draw(p Plotter, s scene.Shape) {
	switch s := s.(type) {
	case *scene.PointShape:
		p.Plot(s.P.X, s.P.Y)
	case *scene.LineShape:
		DrawLine(p, s.P1, s.P2)
	case *scene.SquareShape:
		DrawRectangle(p, s.Origin, s.Length, s.Length)
	case *scene.RectangleShape:
		DrawRectangle(p, s.Origin, s.Width, s.Height)
	case *scene.CircleShape:
		DrawCircle(p, s.Center, s.Radius)
	case *scene.PolygonShape:
		DrawPolygon(p, s.Points)
	case *scene.CurveShape:
		DrawCurve(p, s.P1, s.P2, s.P3, s.P4)
	}
}
