package scene

// DefaultLayerName names the layer created for shapes added before any
// explicit layer.
const DefaultLayerName = "Layer 1"

// AreaBuilder provides a fluent API for constructing areas ergonomically.
// It wraps an Area and provides chainable methods for adding shapes,
// offsetting their coordinates, and grouping them into layers.
//
// The builder keeps an offset that is added to every coordinate it is
// given. Offsets accumulate with each Translate; use ResetOffset to clear.
//
// The first error (an invalid size) is kept and returned by Build; every
// call after it is a no-op.
//
// Example:
//
//	area, err := NewAreaBuilder(40, 20, "card").
//	    Rect(0, 0, 40, 20).
//	    Layer("face", func(b *AreaBuilder) {
//	        b.Translate(20, 10).
//	          Circle(0, 0, 6).
//	          Point(-2, -2).
//	          Point(2, -2)
//	    }).
//	    Build()
type AreaBuilder struct {
	area   *Area
	layer  *Layer
	offset Point
	err    error
}

// NewAreaBuilder creates a builder for a new area.
func NewAreaBuilder(width, height int, name string) *AreaBuilder {
	a, err := NewArea(width, height, name)
	return &AreaBuilder{area: a, err: err}
}

// NewAreaBuilderFrom creates a builder adding to an existing area.
// Shapes go to the area's top layer until Layer is called.
func NewAreaBuilderFrom(a *Area) *AreaBuilder {
	if a == nil {
		return &AreaBuilder{err: ErrInvalidArgument}
	}
	b := &AreaBuilder{area: a}
	if n := len(a.layers); n > 0 {
		b.layer = a.layers[n-1]
	}
	return b
}

// ---------------------------------------------------------------------------
// Layers
// ---------------------------------------------------------------------------

// Layer appends a new layer and runs fn with it as the target of every
// shape call. The previous target layer is restored afterwards, as is the
// offset, so translations made inside fn do not leak out.
func (b *AreaBuilder) Layer(name string, fn func(*AreaBuilder)) *AreaBuilder {
	if b.err != nil {
		return b
	}
	l := NewLayer(name)
	b.area.AddLayer(l)

	prevLayer, prevOffset := b.layer, b.offset
	b.layer = l
	if fn != nil {
		fn(b)
	}
	b.layer, b.offset = prevLayer, prevOffset
	return b
}

// Hidden marks the current target layer invisible.
func (b *AreaBuilder) Hidden() *AreaBuilder {
	if l := b.target(); l != nil {
		l.SetVisible(false)
	}
	return b
}

// target returns the layer shapes go to, creating the default layer on
// first use.
func (b *AreaBuilder) target() *Layer {
	if b.err != nil {
		return nil
	}
	if b.layer == nil {
		b.layer = NewLayer(DefaultLayerName)
		b.area.AddLayer(b.layer)
	}
	return b.layer
}

// ---------------------------------------------------------------------------
// Offset
// ---------------------------------------------------------------------------

// Translate moves the origin of subsequent shapes by (dx, dy).
func (b *AreaBuilder) Translate(dx, dy int) *AreaBuilder {
	b.offset = b.offset.Add(Pt(dx, dy))
	return b
}

// ResetOffset clears the accumulated offset.
func (b *AreaBuilder) ResetOffset() *AreaBuilder {
	b.offset = Point{}
	return b
}

// Offset returns the accumulated offset.
func (b *AreaBuilder) Offset() Point { return b.offset }

// ---------------------------------------------------------------------------
// Shapes
// ---------------------------------------------------------------------------

// Add appends s as given; the offset is not applied.
func (b *AreaBuilder) Add(s Shape) *AreaBuilder {
	if l := b.target(); l != nil && s != nil {
		l.AddShape(s)
	}
	return b
}

// Point adds a point shape.
func (b *AreaBuilder) Point(x, y int) *AreaBuilder {
	if b.err != nil {
		return b
	}
	p := b.offset.Add(Pt(x, y))
	return b.Add(NewPointShape(p.X, p.Y))
}

// Line adds a line shape.
func (b *AreaBuilder) Line(x1, y1, x2, y2 int) *AreaBuilder {
	if b.err != nil {
		return b
	}
	p1, p2 := b.offset.Add(Pt(x1, y1)), b.offset.Add(Pt(x2, y2))
	return b.Add(NewLineShape(p1.X, p1.Y, p2.X, p2.Y))
}

// Square adds a square outline with top-left corner (x, y).
func (b *AreaBuilder) Square(x, y, length int) *AreaBuilder {
	if b.err != nil {
		return b
	}
	o := b.offset.Add(Pt(x, y))
	return b.Add(NewSquareShape(o.X, o.Y, length))
}

// Rect adds a rectangle outline with top-left corner (x, y).
func (b *AreaBuilder) Rect(x, y, width, height int) *AreaBuilder {
	if b.err != nil {
		return b
	}
	o := b.offset.Add(Pt(x, y))
	return b.Add(NewRectangleShape(o.X, o.Y, width, height))
}

// Circle adds a circle outline.
func (b *AreaBuilder) Circle(x, y, radius int) *AreaBuilder {
	if b.err != nil {
		return b
	}
	c := b.offset.Add(Pt(x, y))
	return b.Add(NewCircleShape(c.X, c.Y, radius))
}

// Polygon adds a closed polygon.
func (b *AreaBuilder) Polygon(points ...Point) *AreaBuilder {
	if b.err != nil {
		return b
	}
	moved := make([]Point, len(points))
	for i, p := range points {
		moved[i] = b.offset.Add(p)
	}
	return b.Add(NewPolygonShape(moved...))
}

// Curve adds a cubic Bézier curve.
func (b *AreaBuilder) Curve(p1, p2, p3, p4 Point) *AreaBuilder {
	if b.err != nil {
		return b
	}
	p1, p2, p3, p4 = b.offset.Add(p1), b.offset.Add(p2), b.offset.Add(p3), b.offset.Add(p4)
	return b.Add(NewCurveShape(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y, p4.X, p4.Y))
}

// ---------------------------------------------------------------------------
// Result
// ---------------------------------------------------------------------------

// Area returns the area under construction (nil after a failed NewAreaBuilder).
func (b *AreaBuilder) Area() *Area { return b.area }

// Build returns the finished area or the first error.
func (b *AreaBuilder) Build() (*Area, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.area, nil
}
