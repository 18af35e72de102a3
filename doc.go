// Package pixeltracer is a vector drawing tool whose canvas is a grid of
// text characters.
//
// # Overview
//
// A drawing is made of areas. Each area is a fixed-size character grid
// holding an ordered stack of layers, and each layer holds an ordered list
// of shapes: points, lines, squares, rectangles, circles, closed polygons
// and cubic Bézier curves. Rendering clears the grid to the background
// glyph and plots every visible shape with the border glyph.
//
// # Quick Start
//
//	import "github.com/gogpu/pixeltracer"
//
//	app, err := pixeltracer.New(ctx)
//	if err != nil {
//	    return err
//	}
//	defer app.Close(ctx)
//
//	app.AddShapeParams(scene.KindCircle, []int{10, 10, 5})
//	rows, _ := app.Render()
//	fmt.Println(strings.Join(rows, "\n"))
//
// # Architecture
//
// The library is organized into:
//   - pixeltracer: App, the session state and its selection rules
//   - scene: areas, layers, shapes and the id sequence
//   - raster: the cell plotting algorithms
//   - store: persistence of the id counter (file or SQLite)
//   - export: text and PNG output of a rendered grid
//
// # Coordinate System
//
// Origin (0,0) is the top-left cell, X increases right and Y increases
// down. All coordinates are integers; cells outside the grid are clipped
// silently while drawing.
package pixeltracer

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
