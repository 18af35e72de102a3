package pixeltracer

import (
	"context"
	"fmt"

	"github.com/gogpu/pixeltracer/raster"
	"github.com/gogpu/pixeltracer/scene"
)

// Names given to entities created without an explicit name.
const (
	NewAreaName  = "New Area"
	NewLayerName = "New Layer"
)

// App is the application state of a text-grid drawing session: the ordered
// list of areas plus the current area, layer and shape selection.
//
// The selection is kept as ids and resolved on access, always within its
// parent: the current layer is looked up in the current area and the current
// shape in the current layer. A selection therefore never points into a
// different area or at a deleted entity.
//
// Selection follows these rules:
//   - selecting an area selects its first layer (or none) and clears the
//     shape selection;
//   - selecting a layer clears the shape selection;
//   - the Set* setters ignore targets that are not members of the expected
//     parent.
//
// App is not safe for concurrent use.
type App struct {
	areas []*scene.Area
	store IDStore

	areaID  scene.ID
	layerID scene.ID
	shapeID scene.ID
}

// New creates an App holding one default area with one default layer, both
// selected. If an IDStore is configured, the id counter is resumed from it
// first; an unreadable counter is logged and numbering continues from the
// current process value.
func New(ctx context.Context, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	app := &App{store: o.idStore}
	if app.store != nil {
		app.loadIDs(ctx)
	}

	area, err := scene.NewArea(o.areaWidth, o.areaHeight, o.areaName)
	if err != nil {
		return nil, fmt.Errorf("default area: %w", err)
	}
	area.AddLayer(scene.NewLayer(DefaultLayerName))
	app.areas = append(app.areas, area)
	app.SetCurrentArea(area)

	return app, nil
}

func (app *App) loadIDs(ctx context.Context) {
	last, err := app.store.Load(ctx)
	if err != nil {
		Logger().Warn("pixeltracer: id counter unreadable, continuing from current value",
			"err", err, "last", scene.LastID())
		return
	}
	// Other apps may share the process-wide counter; only move it forward.
	scene.AdvanceIDs(last)
	Logger().Info("pixeltracer: id counter loaded", "last", scene.LastID())
}

// Close persists the id counter through the configured IDStore, if any,
// and releases the scene.
func (app *App) Close(ctx context.Context) error {
	if app.store != nil {
		last := scene.LastID()
		if err := app.store.Save(ctx, last); err != nil {
			return fmt.Errorf("save id counter: %w", err)
		}
		Logger().Info("pixeltracer: id counter saved", "last", last)
	}
	app.areas = nil
	app.clearSelection()
	return nil
}

// Areas returns the areas in creation order.
func (app *App) Areas() []*scene.Area {
	out := make([]*scene.Area, len(app.areas))
	copy(out, app.areas)
	return out
}

// FindArea returns the area with the given id.
func (app *App) FindArea(id scene.ID) (*scene.Area, bool) {
	for _, a := range app.areas {
		if a.ID() == id {
			return a, true
		}
	}
	return nil, false
}

// CurrentArea returns the selected area, or nil.
func (app *App) CurrentArea() *scene.Area {
	if app.areaID == 0 {
		return nil
	}
	a, _ := app.FindArea(app.areaID)
	return a
}

// CurrentLayer returns the selected layer, or nil. The layer always belongs
// to CurrentArea.
func (app *App) CurrentLayer() *scene.Layer {
	a := app.CurrentArea()
	if a == nil || app.layerID == 0 {
		return nil
	}
	l, _ := a.FindLayer(app.layerID)
	return l
}

// CurrentShape returns the selected shape, or nil. The shape always belongs
// to CurrentLayer.
func (app *App) CurrentShape() scene.Shape {
	l := app.CurrentLayer()
	if l == nil || app.shapeID == 0 {
		return nil
	}
	s, _ := l.FindShape(app.shapeID)
	return s
}

// AddArea appends an existing area without changing the selection.
func (app *App) AddArea(a *scene.Area) {
	if a == nil {
		return
	}
	app.areas = append(app.areas, a)
}

// CreateArea allocates a new area with a fresh id and appends it.
// The selection is left unchanged.
func (app *App) CreateArea(width, height int, name string) (*scene.Area, error) {
	a, err := scene.NewArea(width, height, name)
	if err != nil {
		return nil, err
	}
	app.areas = append(app.areas, a)
	return a, nil
}

// NewArea creates a default-sized area with one default layer and selects
// both. An empty name becomes NewAreaName.
func (app *App) NewArea(name string) (*scene.Area, error) {
	if name == "" {
		name = NewAreaName
	}
	a, err := app.CreateArea(DefaultAreaWidth, DefaultAreaHeight, name)
	if err != nil {
		return nil, err
	}
	app.SetCurrentArea(a)
	l := scene.NewLayer(DefaultLayerName)
	a.AddLayer(l)
	app.SetCurrentLayer(l)
	return a, nil
}

// NewLayer appends a layer to the current area and selects it.
// An empty name becomes NewLayerName.
func (app *App) NewLayer(name string) (*scene.Layer, error) {
	a := app.CurrentArea()
	if a == nil {
		return nil, ErrNoActiveArea
	}
	if name == "" {
		name = NewLayerName
	}
	l := scene.NewLayer(name)
	a.AddLayer(l)
	app.SetCurrentLayer(l)
	return l, nil
}

// SetCurrentArea selects a, which must be one of the App's areas; anything
// else is ignored. The area's first layer becomes the current layer (none
// if it has no layers) and the shape selection is cleared.
func (app *App) SetCurrentArea(a *scene.Area) {
	if a == nil || !app.hasArea(a) {
		return
	}
	app.selectArea(a)
}

func (app *App) selectArea(a *scene.Area) {
	app.areaID = 0
	app.layerID = 0
	app.shapeID = 0
	if a == nil {
		Logger().Debug("pixeltracer: no area selected")
		return
	}
	app.areaID = a.ID()
	if first := a.FirstLayer(); first != nil {
		app.layerID = first.ID()
	}
	Logger().Debug("pixeltracer: area selected", "area", app.areaID, "layer", app.layerID)
}

// SetCurrentLayer selects l, which must belong to the current area;
// anything else is ignored. The shape selection is cleared.
func (app *App) SetCurrentLayer(l *scene.Layer) {
	a := app.CurrentArea()
	if a == nil || !a.HasLayer(l) {
		return
	}
	app.layerID = l.ID()
	app.shapeID = 0
	Logger().Debug("pixeltracer: layer selected", "layer", app.layerID)
}

// SetCurrentShape selects s, which must belong to the current layer;
// anything else is ignored.
func (app *App) SetCurrentShape(s scene.Shape) {
	l := app.CurrentLayer()
	if l == nil || s == nil || !l.HasShape(s) {
		return
	}
	app.shapeID = s.ID()
	Logger().Debug("pixeltracer: shape selected", "shape", app.shapeID)
}

// SelectArea selects the area with the given id.
func (app *App) SelectArea(id scene.ID) error {
	a, ok := app.FindArea(id)
	if !ok {
		return fmt.Errorf("%w: area %d", scene.ErrNotFound, id)
	}
	app.SetCurrentArea(a)
	return nil
}

// SelectLayer selects the layer with the given id in the current area.
func (app *App) SelectLayer(id scene.ID) error {
	a := app.CurrentArea()
	if a == nil {
		return ErrNoActiveArea
	}
	l, ok := a.FindLayer(id)
	if !ok {
		return fmt.Errorf("%w: layer %d", scene.ErrNotFound, id)
	}
	app.SetCurrentLayer(l)
	return nil
}

// SelectShape selects the shape with the given id in the current layer.
func (app *App) SelectShape(id scene.ID) error {
	l := app.CurrentLayer()
	if l == nil {
		return ErrNoActiveLayer
	}
	s, ok := l.FindShape(id)
	if !ok {
		return fmt.Errorf("%w: shape %d", scene.ErrNotFound, id)
	}
	app.SetCurrentShape(s)
	return nil
}

// RemoveArea removes a from the App and reports whether it was there.
//
// If a was the current area, the new current area is the first area in the
// list when that is not a, otherwise the second one when there is one,
// otherwise none. Layer and shape selection are re-derived as in
// SetCurrentArea.
func (app *App) RemoveArea(a *scene.Area) bool {
	if a == nil {
		return false
	}
	if app.areaID != 0 && app.areaID == a.ID() {
		var next *scene.Area
		switch {
		case len(app.areas) > 0 && app.areas[0] != a:
			next = app.areas[0]
		case len(app.areas) > 1:
			next = app.areas[1]
		}
		app.selectArea(next)
	}
	for i, cur := range app.areas {
		if cur == a {
			app.areas = append(app.areas[:i], app.areas[i+1:]...)
			return true
		}
	}
	return false
}

// DeleteArea removes the area with the given id.
func (app *App) DeleteArea(id scene.ID) error {
	a, ok := app.FindArea(id)
	if !ok {
		return fmt.Errorf("%w: area %d", scene.ErrNotFound, id)
	}
	app.RemoveArea(a)
	return nil
}

// DeleteLayer removes the layer with the given id from the current area.
// Deleting the current layer selects the area's first remaining layer, or
// none; deleting any other layer leaves the selection unchanged.
func (app *App) DeleteLayer(id scene.ID) error {
	a := app.CurrentArea()
	if a == nil {
		return ErrNoActiveArea
	}
	if !a.RemoveLayerByID(id) {
		return fmt.Errorf("%w: layer %d", scene.ErrNotFound, id)
	}
	if id == app.layerID {
		app.layerID = 0
		app.shapeID = 0
		if first := a.FirstLayer(); first != nil {
			app.layerID = first.ID()
		}
		Logger().Debug("pixeltracer: current layer deleted", "layer", id, "next", app.layerID)
	}
	return nil
}

// DeleteShape removes the shape with the given id from the current layer.
// Deleting the current shape clears the shape selection.
func (app *App) DeleteShape(id scene.ID) error {
	l := app.CurrentLayer()
	if l == nil {
		return ErrNoActiveLayer
	}
	if !l.RemoveShapeByID(id) {
		return fmt.Errorf("%w: shape %d", scene.ErrNotFound, id)
	}
	if id == app.shapeID {
		app.shapeID = 0
	}
	return nil
}

// AddShape appends s to the current layer. The shape selection is left
// unchanged.
func (app *App) AddShape(s scene.Shape) error {
	l := app.CurrentLayer()
	if l == nil {
		return ErrNoActiveLayer
	}
	if s == nil {
		return fmt.Errorf("%w: nil shape", scene.ErrInvalidArgument)
	}
	l.AddShape(s)
	return nil
}

// AddShapeParams builds a shape of the given kind from integer parameters
// (see scene.Build) and appends it to the current layer. No id is consumed
// when the current layer is missing or the parameters are refused.
func (app *App) AddShapeParams(kind scene.Kind, params []int) (scene.Shape, error) {
	l := app.CurrentLayer()
	if l == nil {
		return nil, ErrNoActiveLayer
	}
	s, err := scene.Build(kind, params)
	if err != nil {
		return nil, err
	}
	l.AddShape(s)
	return s, nil
}

// Render repaints the current area from scratch and returns its grid rows.
func (app *App) Render() ([]string, error) {
	a := app.CurrentArea()
	if a == nil {
		return nil, ErrNoActiveArea
	}
	raster.Render(a)
	Logger().Debug("pixeltracer: area rendered",
		"area", a.ID(), "size", fmt.Sprintf("%dx%d", a.Width(), a.Height()), "layers", len(a.Layers()))
	return a.Lines(), nil
}

// Resize changes the current area's grid size. Both dimensions must be
// positive.
func (app *App) Resize(width, height int) error {
	a := app.CurrentArea()
	if a == nil {
		return ErrNoActiveArea
	}
	return a.Resize(width, height)
}

// SetGlyph changes one of the current area's glyphs.
func (app *App) SetGlyph(kind Glyph, r rune) error {
	a := app.CurrentArea()
	if a == nil {
		return ErrNoActiveArea
	}
	switch kind {
	case GlyphBorder:
		return a.SetFillChar(r)
	case GlyphBackground:
		return a.SetEmptyChar(r)
	default:
		return fmt.Errorf("%w: glyph kind %d", scene.ErrInvalidArgument, kind)
	}
}

// SetLayerVisibility shows or hides the layer with the given id in the
// current area.
func (app *App) SetLayerVisibility(id scene.ID, visible bool) error {
	a := app.CurrentArea()
	if a == nil {
		return ErrNoActiveArea
	}
	l, ok := a.FindLayer(id)
	if !ok {
		return fmt.Errorf("%w: layer %d", scene.ErrNotFound, id)
	}
	l.SetVisible(visible)
	return nil
}

func (app *App) hasArea(a *scene.Area) bool {
	for _, cur := range app.areas {
		if cur == a {
			return true
		}
	}
	return false
}

func (app *App) clearSelection() {
	app.areaID = 0
	app.layerID = 0
	app.shapeID = 0
}
