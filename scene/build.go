package scene

import "fmt"

// arity is the number of integer parameters each kind's constructor takes.
// Polygons are variable-length and checked separately.
var arity = map[Kind]int{
	KindPoint:     2,
	KindLine:      4,
	KindSquare:    3,
	KindRectangle: 4,
	KindCircle:    3,
	KindCurve:     8,
}

// minPolygonParams is the smallest coordinate list accepted for a polygon
// built from command parameters (two vertices).
const minPolygonParams = 4

// Limits on parameters accepted by Build. Drawing cost grows with the
// geometry, so these bound the work a single shape can cause.
const (
	// MaxCoord bounds the magnitude of every parameter: coordinates,
	// lengths and radii.
	MaxCoord = 1 << 14

	// MaxPolygonPoints bounds the vertex count of a polygon.
	MaxPolygonPoints = 1024
)

func checkParams(kind Kind, params []int) error {
	for i, v := range params {
		if v > MaxCoord || v < -MaxCoord {
			return fmt.Errorf("%w: %s parameter %d is %d, limit is ±%d", ErrInvalidArgument, kind, i, v, MaxCoord)
		}
	}
	return nil
}

// Build constructs a shape of the given kind from an already-parsed integer
// parameter list, in the order the constructors take them:
//
//	point      x y
//	line       x1 y1 x2 y2
//	square     x y length
//	rectangle  x y width height
//	circle     x y radius
//	polygon    x1 y1 x2 y2 ... (even count, at least 4)
//	curve      x1 y1 x2 y2 x3 y3 x4 y4
//
// A parameter count that does not match, a parameter beyond ±MaxCoord or a
// polygon with more than MaxPolygonPoints vertices returns
// ErrInvalidArgument. No id is consumed on error.
func Build(kind Kind, params []int) (Shape, error) {
	if kind == KindPolygon {
		if len(params) < minPolygonParams {
			return nil, fmt.Errorf("%w: polygon takes at least %d parameters, got %d",
				ErrInvalidArgument, minPolygonParams, len(params))
		}
		if len(params) > 2*MaxPolygonPoints {
			return nil, fmt.Errorf("%w: polygon takes at most %d points, got %d coordinates",
				ErrInvalidArgument, MaxPolygonPoints, len(params))
		}
		if err := checkParams(kind, params); err != nil {
			return nil, err
		}
		return NewPolygonFromCoords(params)
	}

	want, ok := arity[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown shape kind %d", ErrInvalidArgument, kind)
	}
	if len(params) != want {
		return nil, fmt.Errorf("%w: %s takes %d parameters, got %d", ErrInvalidArgument, kind, want, len(params))
	}
	if err := checkParams(kind, params); err != nil {
		return nil, err
	}

	p := params
	switch kind {
	case KindPoint:
		return NewPointShape(p[0], p[1]), nil
	case KindLine:
		return NewLineShape(p[0], p[1], p[2], p[3]), nil
	case KindSquare:
		return NewSquareShape(p[0], p[1], p[2]), nil
	case KindRectangle:
		return NewRectangleShape(p[0], p[1], p[2], p[3]), nil
	case KindCircle:
		return NewCircleShape(p[0], p[1], p[2]), nil
	default: // KindCurve
		return NewCurveShape(p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7]), nil
	}
}
