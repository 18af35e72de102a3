package pixeltracer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pixeltracer/scene"
)

func TestListAreas(t *testing.T) {
	app := newTestApp(t)
	first := app.CurrentArea()
	second, err := app.CreateArea(4, 4, "second")
	require.NoError(t, err)

	assert.Equal(t, []string{
		fmt.Sprintf(" * %3d Area1", first.ID()),
		fmt.Sprintf(" - %3d second", second.ID()),
	}, app.ListAreas())
}

func TestListLayers(t *testing.T) {
	app := newTestApp(t)
	bottom := app.CurrentLayer()
	top, err := app.NewLayer("top")
	require.NoError(t, err)
	require.NoError(t, app.SetLayerVisibility(bottom.ID(), false))

	lines, err := app.ListLayers()
	require.NoError(t, err)
	assert.Equal(t, []string{
		fmt.Sprintf(" - %3d (H) Layer 1", bottom.ID()),
		fmt.Sprintf(" * %3d (V) top", top.ID()),
	}, lines)
}

func TestListShapes(t *testing.T) {
	app := newTestApp(t)
	p, err := app.AddShapeParams(scene.KindPoint, []int{3, 4})
	require.NoError(t, err)
	c, err := app.AddShapeParams(scene.KindCircle, []int{10, 10, 5})
	require.NoError(t, err)
	app.SetCurrentShape(c)

	lines, err := app.ListShapes()
	require.NoError(t, err)
	assert.Equal(t, []string{
		fmt.Sprintf(" - %3d : Point: 3 4", p.ID()),
		fmt.Sprintf(" * %3d : Circle: center=10 10, radius=5", c.ID()),
	}, lines)
}

func TestList_NoSelection(t *testing.T) {
	app := newTestApp(t)
	app.RemoveArea(app.CurrentArea())
	assert.Empty(t, app.ListAreas())
	_, err := app.ListLayers()
	assert.ErrorIs(t, err, ErrNoActiveArea)
	_, err = app.ListShapes()
	assert.ErrorIs(t, err, ErrNoActiveLayer)
}
