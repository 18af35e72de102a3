package pixeltracer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pixeltracer/scene"
)

// memStore is an in-memory IDStore.
type memStore struct {
	last    uint64
	saved   bool
	loadErr error
	saveErr error
}

func (m *memStore) Load(context.Context) (uint64, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.last, nil
}

func (m *memStore) Save(_ context.Context, last uint64) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.last = last
	m.saved = true
	return nil
}

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	app, err := New(context.Background(), opts...)
	require.NoError(t, err)
	return app
}

func TestNew_DefaultScene(t *testing.T) {
	app := newTestApp(t)

	areas := app.Areas()
	require.Len(t, areas, 1)
	a := areas[0]
	assert.Equal(t, DefaultAreaName, a.Name())
	assert.Equal(t, DefaultAreaWidth, a.Width())
	assert.Equal(t, DefaultAreaHeight, a.Height())

	assert.Same(t, a, app.CurrentArea())
	require.NotNil(t, app.CurrentLayer())
	assert.Equal(t, DefaultLayerName, app.CurrentLayer().Name())
	assert.Same(t, a.FirstLayer(), app.CurrentLayer())
	assert.Nil(t, app.CurrentShape())
}

func TestNew_WithDefaultArea(t *testing.T) {
	app := newTestApp(t, WithDefaultArea(12, 6, "sketch"))
	a := app.CurrentArea()
	require.NotNil(t, a)
	assert.Equal(t, "sketch", a.Name())
	assert.Equal(t, 12, a.Width())
	assert.Equal(t, 6, a.Height())

	_, err := New(context.Background(), WithDefaultArea(0, 6, "bad"))
	assert.ErrorIs(t, err, scene.ErrInvalidArgument)
}

func TestNew_ResumesIDsFromStore(t *testing.T) {
	st := &memStore{last: scene.LastID() + 1000}
	seed := st.last

	app := newTestApp(t, WithIDStore(st))
	assert.Greater(t, uint64(app.CurrentArea().ID()), seed)
	assert.Greater(t, uint64(app.CurrentLayer().ID()), uint64(app.CurrentArea().ID()))

	require.NoError(t, app.Close(context.Background()))
	assert.True(t, st.saved)
	assert.Equal(t, scene.LastID(), st.last)
	assert.Empty(t, app.Areas())
	assert.Nil(t, app.CurrentArea())
}

func TestNew_StoreNeverMovesCounterBackwards(t *testing.T) {
	scene.NextID()
	before := scene.LastID()
	app := newTestApp(t, WithIDStore(&memStore{last: 0}))
	assert.Greater(t, uint64(app.CurrentArea().ID()), before)
}

func TestNew_ConcurrentStoresOnlyAdvance(t *testing.T) {
	base := scene.LastID() + 10_000
	const apps = 8

	var wg sync.WaitGroup
	got := make([]*App, apps)
	for i := 0; i < apps; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			app, err := New(context.Background(), WithIDStore(&memStore{last: base + uint64(i)*100}))
			if err == nil {
				got[i] = app
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[scene.ID]bool)
	for i, app := range got {
		require.NotNil(t, app, "app %d", i)
		for _, id := range []scene.ID{app.CurrentArea().ID(), app.CurrentLayer().ID()} {
			assert.False(t, seen[id], "id %d issued twice", id)
			seen[id] = true
		}
	}
	assert.GreaterOrEqual(t, scene.LastID(), base+uint64(apps-1)*100)
}

func TestNew_UnreadableStoreIsNotFatal(t *testing.T) {
	app := newTestApp(t, WithIDStore(&memStore{loadErr: errors.New("corrupt")}))
	assert.NotNil(t, app.CurrentArea())
}

func TestClose_SaveError(t *testing.T) {
	boom := errors.New("disk full")
	app := newTestApp(t, WithIDStore(&memStore{saveErr: boom}))
	err := app.Close(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestNewArea_SelectsAreaAndDefaultLayer(t *testing.T) {
	app := newTestApp(t)
	a, err := app.NewArea("")
	require.NoError(t, err)

	assert.Equal(t, NewAreaName, a.Name())
	assert.Equal(t, DefaultAreaWidth, a.Width())
	assert.Equal(t, DefaultAreaHeight, a.Height())
	assert.Same(t, a, app.CurrentArea())
	require.Len(t, a.Layers(), 1)
	assert.Equal(t, DefaultLayerName, a.FirstLayer().Name())
	assert.Same(t, a.FirstLayer(), app.CurrentLayer())
	assert.Len(t, app.Areas(), 2)
}

func TestCreateArea_KeepsSelection(t *testing.T) {
	app := newTestApp(t)
	cur := app.CurrentArea()
	a, err := app.CreateArea(5, 5, "other")
	require.NoError(t, err)
	assert.Empty(t, a.Layers())
	assert.Same(t, cur, app.CurrentArea())

	_, err = app.CreateArea(5, -1, "bad")
	assert.ErrorIs(t, err, scene.ErrInvalidArgument)
}

func TestNewLayer(t *testing.T) {
	app := newTestApp(t)
	l, err := app.NewLayer("")
	require.NoError(t, err)
	assert.Equal(t, NewLayerName, l.Name())
	assert.Same(t, l, app.CurrentLayer())
	assert.Len(t, app.CurrentArea().Layers(), 2)

	app.RemoveArea(app.CurrentArea())
	_, err = app.NewLayer("x")
	assert.ErrorIs(t, err, ErrNoActiveArea)
}

func TestSetCurrentArea_RederivesSelection(t *testing.T) {
	app := newTestApp(t)
	first := app.CurrentArea()
	s, err := app.AddShapeParams(scene.KindPoint, []int{1, 1})
	require.NoError(t, err)
	app.SetCurrentShape(s)
	require.Equal(t, s, app.CurrentShape())

	empty, err := app.CreateArea(4, 4, "empty")
	require.NoError(t, err)
	app.SetCurrentArea(empty)
	assert.Same(t, empty, app.CurrentArea())
	assert.Nil(t, app.CurrentLayer())
	assert.Nil(t, app.CurrentShape())

	app.SetCurrentArea(first)
	assert.Same(t, first.FirstLayer(), app.CurrentLayer())
	assert.Nil(t, app.CurrentShape(), "selecting an area clears the shape")
}

func TestSetters_IgnoreForeignTargets(t *testing.T) {
	app := newTestApp(t)
	area := app.CurrentArea()
	layer := app.CurrentLayer()

	stranger, err := scene.NewArea(3, 3, "stranger")
	require.NoError(t, err)
	app.SetCurrentArea(stranger)
	app.SetCurrentArea(nil)
	assert.Same(t, area, app.CurrentArea())

	other, err := app.NewArea("other")
	require.NoError(t, err)
	app.SetCurrentArea(area)
	app.SetCurrentLayer(other.FirstLayer())
	app.SetCurrentLayer(nil)
	assert.Same(t, layer, app.CurrentLayer())

	app.SetCurrentShape(scene.NewPointShape(0, 0))
	app.SetCurrentShape(nil)
	assert.Nil(t, app.CurrentShape())
}

func TestSetCurrentLayer_ClearsShape(t *testing.T) {
	app := newTestApp(t)
	s, err := app.AddShapeParams(scene.KindLine, []int{0, 0, 3, 3})
	require.NoError(t, err)
	app.SetCurrentShape(s)

	l, err := app.NewLayer("top")
	require.NoError(t, err)
	assert.Same(t, l, app.CurrentLayer())
	assert.Nil(t, app.CurrentShape())
}

func TestSelectByID(t *testing.T) {
	app := newTestApp(t)
	a := app.CurrentArea()
	l := app.CurrentLayer()
	s, err := app.AddShapeParams(scene.KindCircle, []int{5, 5, 2})
	require.NoError(t, err)

	require.NoError(t, app.SelectShape(s.ID()))
	assert.Equal(t, s, app.CurrentShape())

	require.NoError(t, app.SelectLayer(l.ID()))
	assert.Nil(t, app.CurrentShape())

	require.NoError(t, app.SelectArea(a.ID()))
	assert.Same(t, a, app.CurrentArea())

	assert.ErrorIs(t, app.SelectArea(s.ID()), scene.ErrNotFound)
	assert.ErrorIs(t, app.SelectLayer(a.ID()), scene.ErrNotFound)
	assert.ErrorIs(t, app.SelectShape(l.ID()), scene.ErrNotFound)
}

func TestRemoveArea_Reselection(t *testing.T) {
	tests := []struct {
		name    string
		current int // index of the selected area before removal
		remove  int // index of the removed area
		want    int // index of the selected area afterwards, -1 for none
	}{
		{"middle current picks first", 1, 1, 0},
		{"last current picks first", 2, 2, 0},
		{"first current picks second", 0, 0, 1},
		{"non-current keeps selection", 2, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			areas := []*scene.Area{app.CurrentArea()}
			for _, name := range []string{"b", "c"} {
				a, err := app.NewArea(name)
				require.NoError(t, err)
				areas = append(areas, a)
			}

			app.SetCurrentArea(areas[tt.current])
			assert.True(t, app.RemoveArea(areas[tt.remove]))
			assert.NotContains(t, app.Areas(), areas[tt.remove])

			want := areas[tt.want]
			assert.Same(t, want, app.CurrentArea())
			assert.Same(t, want.FirstLayer(), app.CurrentLayer())
			assert.Nil(t, app.CurrentShape())
		})
	}
}

func TestRemoveArea_LastAreaLeavesNothingSelected(t *testing.T) {
	app := newTestApp(t)
	assert.True(t, app.RemoveArea(app.Areas()[0]))
	assert.Empty(t, app.Areas())
	assert.Nil(t, app.CurrentArea())
	assert.Nil(t, app.CurrentLayer())
	assert.Nil(t, app.CurrentShape())

	_, err := app.Render()
	assert.ErrorIs(t, err, ErrNoActiveArea)
	_, err = app.AddShapeParams(scene.KindPoint, []int{0, 0})
	assert.ErrorIs(t, err, ErrNoActiveLayer)
}

func TestRemoveArea_Unknown(t *testing.T) {
	app := newTestApp(t)
	stranger, err := scene.NewArea(2, 2, "x")
	require.NoError(t, err)
	assert.False(t, app.RemoveArea(stranger))
	assert.False(t, app.RemoveArea(nil))
	assert.Len(t, app.Areas(), 1)

	assert.ErrorIs(t, app.DeleteArea(stranger.ID()), scene.ErrNotFound)
	require.NoError(t, app.DeleteArea(app.CurrentArea().ID()))
	assert.Empty(t, app.Areas())
}

func TestDeleteLayer_OnlyLayer(t *testing.T) {
	app := newTestApp(t)
	s, err := app.AddShapeParams(scene.KindPoint, []int{0, 0})
	require.NoError(t, err)
	app.SetCurrentShape(s)

	require.NoError(t, app.DeleteLayer(app.CurrentLayer().ID()))
	assert.Nil(t, app.CurrentLayer())
	assert.Nil(t, app.CurrentShape())
	assert.NotNil(t, app.CurrentArea())
}

func TestDeleteLayer_NonCurrentKeepsSelection(t *testing.T) {
	app := newTestApp(t)
	bottom := app.CurrentLayer()
	top, err := app.NewLayer("top")
	require.NoError(t, err)
	s, err := app.AddShapeParams(scene.KindPoint, []int{1, 2})
	require.NoError(t, err)
	app.SetCurrentShape(s)

	require.NoError(t, app.DeleteLayer(bottom.ID()))
	assert.Same(t, top, app.CurrentLayer())
	assert.Equal(t, s, app.CurrentShape())
}

func TestDeleteLayer_CurrentSelectsFirstRemaining(t *testing.T) {
	app := newTestApp(t)
	bottom := app.CurrentLayer()
	top, err := app.NewLayer("top")
	require.NoError(t, err)

	require.NoError(t, app.DeleteLayer(top.ID()))
	assert.Same(t, bottom, app.CurrentLayer())

	assert.ErrorIs(t, app.DeleteLayer(top.ID()), scene.ErrNotFound)
}

func TestDeleteShape(t *testing.T) {
	app := newTestApp(t)
	a, err := app.AddShapeParams(scene.KindPoint, []int{0, 0})
	require.NoError(t, err)
	b, err := app.AddShapeParams(scene.KindPoint, []int{1, 1})
	require.NoError(t, err)

	app.SetCurrentShape(b)
	require.NoError(t, app.DeleteShape(a.ID()))
	assert.Equal(t, b, app.CurrentShape())

	require.NoError(t, app.DeleteShape(b.ID()))
	assert.Nil(t, app.CurrentShape())
	assert.Equal(t, 0, app.CurrentLayer().Len())

	assert.ErrorIs(t, app.DeleteShape(b.ID()), scene.ErrNotFound)
}

func TestAddShape_NoActiveLayer(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.DeleteLayer(app.CurrentLayer().ID()))

	before := scene.LastID()
	_, err := app.AddShapeParams(scene.KindCircle, []int{1, 1, 1})
	assert.ErrorIs(t, err, ErrNoActiveLayer)
	assert.Equal(t, before, scene.LastID(), "rejected shapes consume no id")

	assert.ErrorIs(t, app.AddShape(scene.NewPointShape(0, 0)), ErrNoActiveLayer)
}

func TestAddShape(t *testing.T) {
	app := newTestApp(t)
	s := scene.NewRectangleShape(1, 1, 3, 2)
	require.NoError(t, app.AddShape(s))
	assert.True(t, app.CurrentLayer().HasShape(s))
	assert.Nil(t, app.CurrentShape(), "adding does not select")

	assert.ErrorIs(t, app.AddShape(nil), scene.ErrInvalidArgument)
}

func TestAddShapeParams_RejectsBadArity(t *testing.T) {
	app := newTestApp(t)
	before := scene.LastID()
	for _, tt := range []struct {
		kind   scene.Kind
		params []int
	}{
		{scene.KindPoint, []int{1}},
		{scene.KindSquare, []int{1, 2}},
		{scene.KindPolygon, []int{0, 0, 1}},
		{scene.KindPolygon, []int{0, 0}},
		{scene.KindCurve, []int{1, 2, 3, 4, 5, 6, 7}},
	} {
		_, err := app.AddShapeParams(tt.kind, tt.params)
		assert.ErrorIs(t, err, scene.ErrInvalidArgument, "%v %v", tt.kind, tt.params)
	}
	assert.Equal(t, before, scene.LastID())
	assert.Equal(t, 0, app.CurrentLayer().Len())
}

func TestRender(t *testing.T) {
	app := newTestApp(t, WithDefaultArea(6, 3, "small"))
	_, err := app.AddShapeParams(scene.KindLine, []int{0, 1, 5, 1})
	require.NoError(t, err)
	_, err = app.AddShapeParams(scene.KindPoint, []int{9, 9})
	require.NoError(t, err)

	rows, err := app.Render()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"......",
		"@@@@@@",
		"......",
	}, rows)
}

func TestSetLayerVisibility(t *testing.T) {
	app := newTestApp(t, WithDefaultArea(3, 1, "v"))
	_, err := app.AddShapeParams(scene.KindPoint, []int{1, 0})
	require.NoError(t, err)
	id := app.CurrentLayer().ID()

	require.NoError(t, app.SetLayerVisibility(id, false))
	rows, err := app.Render()
	require.NoError(t, err)
	assert.Equal(t, []string{"..."}, rows)

	require.NoError(t, app.SetLayerVisibility(id, true))
	rows, err = app.Render()
	require.NoError(t, err)
	assert.Equal(t, []string{".@."}, rows)

	assert.ErrorIs(t, app.SetLayerVisibility(app.CurrentArea().ID(), true), scene.ErrNotFound)
}

func TestSetGlyph(t *testing.T) {
	app := newTestApp(t, WithDefaultArea(3, 1, "g"))
	_, err := app.AddShapeParams(scene.KindPoint, []int{0, 0})
	require.NoError(t, err)

	require.NoError(t, app.SetGlyph(GlyphBorder, '#'))
	require.NoError(t, app.SetGlyph(GlyphBackground, ' '))
	rows, err := app.Render()
	require.NoError(t, err)
	assert.Equal(t, []string{"#  "}, rows)

	assert.ErrorIs(t, app.SetGlyph(GlyphBorder, '\n'), scene.ErrInvalidArgument)
	assert.ErrorIs(t, app.SetGlyph(Glyph(9), 'x'), scene.ErrInvalidArgument)
}

func TestResize(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.Resize(20, 10))
	assert.Equal(t, 20, app.CurrentArea().Width())
	assert.Equal(t, 10, app.CurrentArea().Height())

	assert.ErrorIs(t, app.Resize(0, 10), scene.ErrInvalidArgument)
	assert.ErrorIs(t, app.Resize(10, -3), scene.ErrInvalidArgument)
	assert.Equal(t, 20, app.CurrentArea().Width())

	app.RemoveArea(app.CurrentArea())
	assert.ErrorIs(t, app.Resize(5, 5), ErrNoActiveArea)
	assert.ErrorIs(t, app.SetGlyph(GlyphBorder, '#'), ErrNoActiveArea)
	assert.ErrorIs(t, app.DeleteLayer(1), ErrNoActiveArea)
}

func TestParseGlyph(t *testing.T) {
	g, ok := ParseGlyph(" Border ")
	assert.True(t, ok)
	assert.Equal(t, GlyphBorder, g)
	g, ok = ParseGlyph("background")
	assert.True(t, ok)
	assert.Equal(t, GlyphBackground, g)
	_, ok = ParseGlyph("fill")
	assert.False(t, ok)
	assert.Equal(t, "background", GlyphBackground.String())
}
