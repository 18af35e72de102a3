package scene

import "strconv"

// Point is an integer cell coordinate. Origin is the top-left cell,
// X grows right and Y grows down.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// In reports whether p lies inside a width×height grid.
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// String formats the point as "x y".
func (p Point) String() string {
	return strconv.Itoa(p.X) + " " + strconv.Itoa(p.Y)
}
