package scene

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a Shape.
type Kind uint8

// Shape kind constants.
const (
	KindPoint Kind = iota
	KindLine
	KindSquare
	KindRectangle
	KindCircle
	KindPolygon
	KindCurve
)

const unknownStr = "unknown"

var kindNames = [...]string{
	KindPoint:     "point",
	KindLine:      "line",
	KindSquare:    "square",
	KindRectangle: "rectangle",
	KindCircle:    "circle",
	KindPolygon:   "polygon",
	KindCurve:     "curve",
}

// String returns the lower-case command name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return unknownStr
}

// ParseKind maps a command name such as "circle" to its Kind.
// Matching is case-insensitive.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Color is the stored color of a shape.
// Colors are kept for interface compatibility; rendering ignores them.
type Color uint8

// Available colors.
const (
	Black Color = iota
	White
	Red
	Green
)

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return unknownStr
	}
}

// Attributes are the stored, render-insignificant properties every shape
// carries.
type Attributes struct {
	Color     Color
	Thickness float32
	Rotation  float64 // degrees
	Fill      bool
}

// DefaultAttributes returns the attributes a new shape starts with.
func DefaultAttributes() Attributes {
	return Attributes{Color: Black, Thickness: 1}
}

// Shape is one of the seven drawable primitives:
// *PointShape, *LineShape, *SquareShape, *RectangleShape, *CircleShape,
// *PolygonShape or *CurveShape. The set is closed; consumers switch on the
// concrete type.
type Shape interface {
	// ID returns the identifier assigned at construction.
	ID() ID

	// Kind returns the variant tag.
	Kind() Kind

	// Attributes returns the stored attributes.
	Attributes() Attributes

	// SetAttributes replaces the stored attributes.
	SetAttributes(Attributes)

	// String describes the geometry, e.g. "Circle: center=10 10, radius=5".
	String() string

	shape()
}

// shapeBase holds the fields common to every variant.
type shapeBase struct {
	id    ID
	attrs Attributes
}

func newShapeBase() shapeBase {
	return shapeBase{id: NextID(), attrs: DefaultAttributes()}
}

func (b *shapeBase) ID() ID                     { return b.id }
func (b *shapeBase) Attributes() Attributes     { return b.attrs }
func (b *shapeBase) SetAttributes(a Attributes) { b.attrs = a }
func (b *shapeBase) shape()                     {}

// PointShape is a single cell.
type PointShape struct {
	shapeBase
	P Point
}

// NewPointShape creates a point shape at (x, y).
func NewPointShape(x, y int) *PointShape {
	return &PointShape{shapeBase: newShapeBase(), P: Pt(x, y)}
}

// Kind returns KindPoint.
func (s *PointShape) Kind() Kind { return KindPoint }

func (s *PointShape) String() string {
	return "Point: " + s.P.String()
}

// LineShape is a segment between two endpoints.
type LineShape struct {
	shapeBase
	P1, P2 Point
}

// NewLineShape creates a line from (x1, y1) to (x2, y2).
func NewLineShape(x1, y1, x2, y2 int) *LineShape {
	return &LineShape{shapeBase: newShapeBase(), P1: Pt(x1, y1), P2: Pt(x2, y2)}
}

// Kind returns KindLine.
func (s *LineShape) Kind() Kind { return KindLine }

func (s *LineShape) String() string {
	return "Line: " + s.P1.String() + " to " + s.P2.String()
}

// SquareShape is an axis-aligned square outline anchored at its top-left
// corner.
type SquareShape struct {
	shapeBase
	Origin Point
	Length int
}

// NewSquareShape creates a square with top-left corner (x, y).
func NewSquareShape(x, y, length int) *SquareShape {
	return &SquareShape{shapeBase: newShapeBase(), Origin: Pt(x, y), Length: length}
}

// Kind returns KindSquare.
func (s *SquareShape) Kind() Kind { return KindSquare }

func (s *SquareShape) String() string {
	return fmt.Sprintf("Square: origin=%s, length=%d", s.Origin, s.Length)
}

// RectangleShape is an axis-aligned rectangle outline anchored at its
// top-left corner.
type RectangleShape struct {
	shapeBase
	Origin        Point
	Width, Height int
}

// NewRectangleShape creates a rectangle with top-left corner (x, y).
func NewRectangleShape(x, y, width, height int) *RectangleShape {
	return &RectangleShape{
		shapeBase: newShapeBase(),
		Origin:    Pt(x, y),
		Width:     width,
		Height:    height,
	}
}

// Kind returns KindRectangle.
func (s *RectangleShape) Kind() Kind { return KindRectangle }

func (s *RectangleShape) String() string {
	return fmt.Sprintf("Rectangle: origin=%s, width=%d, height=%d", s.Origin, s.Width, s.Height)
}

// CircleShape is a circle outline.
type CircleShape struct {
	shapeBase
	Center Point
	Radius int
}

// NewCircleShape creates a circle centered on (x, y).
func NewCircleShape(x, y, radius int) *CircleShape {
	return &CircleShape{shapeBase: newShapeBase(), Center: Pt(x, y), Radius: radius}
}

// Kind returns KindCircle.
func (s *CircleShape) Kind() Kind { return KindCircle }

func (s *CircleShape) String() string {
	return fmt.Sprintf("Circle: center=%s, radius=%d", s.Center, s.Radius)
}

// PolygonShape is a closed chain of vertices. The last vertex always
// connects back to the first.
type PolygonShape struct {
	shapeBase
	Points []Point
}

// NewPolygonShape creates a polygon from its vertices. Zero vertices is
// allowed; such a polygon draws nothing.
func NewPolygonShape(points ...Point) *PolygonShape {
	return &PolygonShape{shapeBase: newShapeBase(), Points: append([]Point(nil), points...)}
}

// NewPolygonFromCoords creates a polygon from a flat list
// x1, y1, x2, y2, ... The list must have an even length.
func NewPolygonFromCoords(coords []int) (*PolygonShape, error) {
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("%w: polygon needs (x, y) pairs, got %d coordinates", ErrInvalidArgument, len(coords))
	}
	points := make([]Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		points = append(points, Pt(coords[i], coords[i+1]))
	}
	return &PolygonShape{shapeBase: newShapeBase(), Points: points}, nil
}

// AddPoint appends a vertex.
func (s *PolygonShape) AddPoint(x, y int) {
	s.Points = append(s.Points, Pt(x, y))
}

// Kind returns KindPolygon.
func (s *PolygonShape) Kind() Kind { return KindPolygon }

func (s *PolygonShape) String() string {
	var sb strings.Builder
	sb.WriteString("Polygon: points=[")
	for i, p := range s.Points {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// CurveShape is a cubic Bézier curve with control points P1..P4.
// The curve starts at P1 and ends at P4.
type CurveShape struct {
	shapeBase
	P1, P2, P3, P4 Point
}

// NewCurveShape creates a cubic Bézier curve from four control points.
func NewCurveShape(x1, y1, x2, y2, x3, y3, x4, y4 int) *CurveShape {
	return &CurveShape{
		shapeBase: newShapeBase(),
		P1:        Pt(x1, y1),
		P2:        Pt(x2, y2),
		P3:        Pt(x3, y3),
		P4:        Pt(x4, y4),
	}
}

// Kind returns KindCurve.
func (s *CurveShape) Kind() Kind { return KindCurve }

func (s *CurveShape) String() string {
	return fmt.Sprintf("Curve: p1=%s, p2=%s, p3=%s, p4=%s", s.P1, s.P2, s.P3, s.P4)
}

// Ensure every variant implements Shape.
var (
	_ Shape = (*PointShape)(nil)
	_ Shape = (*LineShape)(nil)
	_ Shape = (*SquareShape)(nil)
	_ Shape = (*RectangleShape)(nil)
	_ Shape = (*CircleShape)(nil)
	_ Shape = (*PolygonShape)(nil)
	_ Shape = (*CurveShape)(nil)
)
