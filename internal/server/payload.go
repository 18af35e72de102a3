package server

import (
	"github.com/gogpu/pixeltracer"
	"github.com/gogpu/pixeltracer/scene"
)

type areaPayload struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	EmptyChar string `json:"empty_char"`
	FillChar  string `json:"fill_char"`
	Layers    int    `json:"layers"`
	Current   bool   `json:"current"`
}

type layerPayload struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
	Shapes  int    `json:"shapes"`
	Current bool   `json:"current"`
}

type shapePayload struct {
	ID          uint64 `json:"id"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Current     bool   `json:"current"`
}

type selectionPayload struct {
	Area  uint64 `json:"area,omitempty"`
	Layer uint64 `json:"layer,omitempty"`
	Shape uint64 `json:"shape,omitempty"`
}

func newAreaPayload(a *scene.Area, current bool) areaPayload {
	return areaPayload{
		ID:        uint64(a.ID()),
		Name:      a.Name(),
		Width:     a.Width(),
		Height:    a.Height(),
		EmptyChar: string(a.EmptyChar()),
		FillChar:  string(a.FillChar()),
		Layers:    len(a.Layers()),
		Current:   current,
	}
}

func newLayerPayload(l *scene.Layer, current bool) layerPayload {
	return layerPayload{
		ID:      uint64(l.ID()),
		Name:    l.Name(),
		Visible: l.Visible(),
		Shapes:  l.Len(),
		Current: current,
	}
}

func newShapePayload(s scene.Shape, current bool) shapePayload {
	return shapePayload{
		ID:          uint64(s.ID()),
		Kind:        s.Kind().String(),
		Description: s.String(),
		Current:     current,
	}
}

func newSelectionPayload(app *pixeltracer.App) selectionPayload {
	var sel selectionPayload
	if a := app.CurrentArea(); a != nil {
		sel.Area = uint64(a.ID())
	}
	if l := app.CurrentLayer(); l != nil {
		sel.Layer = uint64(l.ID())
	}
	if s := app.CurrentShape(); s != nil {
		sel.Shape = uint64(s.ID())
	}
	return sel
}

// Request bodies.

type nameRequest struct {
	Name string `json:"name"`
}

type idRequest struct {
	ID uint64 `json:"id"`
}

type shapeRequest struct {
	Kind   string `json:"kind"`
	Params []int  `json:"params"`
}

type sizeRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type glyphRequest struct {
	Kind  string `json:"kind"`
	Glyph string `json:"glyph"`
}

type visibilityRequest struct {
	Visible bool `json:"visible"`
}
