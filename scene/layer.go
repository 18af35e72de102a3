package scene

import "fmt"

// Layer is an ordered, independently visible collection of shapes.
// Insertion order is draw order: later shapes are drawn on top.
type Layer struct {
	id      ID
	name    string
	visible bool
	shapes  []Shape
}

// NewLayer creates a visible, empty layer with a fresh id.
func NewLayer(name string) *Layer {
	return &Layer{id: NextID(), name: name, visible: true}
}

// ID returns the layer id.
func (l *Layer) ID() ID { return l.id }

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// SetName renames the layer.
func (l *Layer) SetName(name string) { l.name = name }

// Visible reports whether the layer takes part in rendering.
func (l *Layer) Visible() bool { return l.visible }

// SetVisible shows or hides the layer. Hidden layers are skipped entirely by
// the rasterizer.
func (l *Layer) SetVisible(visible bool) { l.visible = visible }

// Shapes returns the shapes in draw order.
// The returned slice is a copy; the shapes themselves are shared.
func (l *Layer) Shapes() []Shape {
	out := make([]Shape, len(l.shapes))
	copy(out, l.shapes)
	return out
}

// Len returns the number of shapes in the layer.
func (l *Layer) Len() int { return len(l.shapes) }

// AddShape appends a shape on top of the existing ones.
func (l *Layer) AddShape(s Shape) {
	l.shapes = append(l.shapes, s)
}

// RemoveShape removes s, compared by identity.
// It returns false if s is not in the layer.
func (l *Layer) RemoveShape(s Shape) bool {
	for i, cur := range l.shapes {
		if cur == s {
			l.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveShapeByID removes the first shape with the given id.
// It returns false if there is none.
func (l *Layer) RemoveShapeByID(id ID) bool {
	for i, cur := range l.shapes {
		if cur.ID() == id {
			l.removeAt(i)
			return true
		}
	}
	return false
}

// FindShape returns the first shape with the given id.
func (l *Layer) FindShape(id ID) (Shape, bool) {
	for _, s := range l.shapes {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

// HasShape reports whether s belongs to the layer.
func (l *Layer) HasShape(s Shape) bool {
	for _, cur := range l.shapes {
		if cur == s {
			return true
		}
	}
	return false
}

func (l *Layer) removeAt(i int) {
	copy(l.shapes[i:], l.shapes[i+1:])
	l.shapes[len(l.shapes)-1] = nil
	l.shapes = l.shapes[:len(l.shapes)-1]
}

// String summarizes the layer, e.g. "Layer[id=2, name=Layer 1, visible=V, shapes=3]".
func (l *Layer) String() string {
	return fmt.Sprintf("Layer[id=%d, name=%s, visible=%c, shapes=%d]", l.id, l.name, l.VisibilityMark(), len(l.shapes))
}

// VisibilityMark returns 'V' for visible layers and 'H' for hidden ones.
func (l *Layer) VisibilityMark() rune {
	if l.visible {
		return 'V'
	}
	return 'H'
}
