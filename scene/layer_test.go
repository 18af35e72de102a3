package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayer_Defaults(t *testing.T) {
	l := NewLayer("Layer 1")
	assert.Equal(t, "Layer 1", l.Name())
	assert.True(t, l.Visible())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 'V', l.VisibilityMark())

	l.SetVisible(false)
	assert.Equal(t, 'H', l.VisibilityMark())
}

func TestLayer_ShapeManagement(t *testing.T) {
	l := NewLayer("shapes")
	a := NewPointShape(0, 0)
	b := NewLineShape(0, 0, 1, 1)
	c := NewCircleShape(5, 5, 2)
	l.AddShape(a)
	l.AddShape(b)
	l.AddShape(c)

	assert.Equal(t, []Shape{a, b, c}, l.Shapes(), "insertion order is draw order")

	got, ok := l.FindShape(b.ID())
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = l.FindShape(ID(0))
	assert.False(t, ok)

	assert.True(t, l.RemoveShapeByID(b.ID()))
	assert.False(t, l.RemoveShapeByID(b.ID()), "second removal finds nothing")
	assert.Equal(t, []Shape{a, c}, l.Shapes())

	assert.True(t, l.RemoveShape(a))
	assert.False(t, l.RemoveShape(a))
	assert.False(t, l.HasShape(a))
	assert.True(t, l.HasShape(c))
	assert.Equal(t, 1, l.Len())
}

func TestLayer_ShapesIsCopy(t *testing.T) {
	l := NewLayer("copy")
	l.AddShape(NewPointShape(1, 1))

	shapes := l.Shapes()
	shapes[0] = nil
	assert.NotNil(t, l.Shapes()[0])
}

func TestLayer_String(t *testing.T) {
	l := NewLayer("bg")
	l.AddShape(NewPointShape(0, 0))
	l.SetVisible(false)
	assert.Equal(t, "Layer[id="+l.ID().String()+", name=bg, visible=H, shapes=1]", l.String())
}
