package pixeltracer

import (
	"fmt"

	"github.com/gogpu/pixeltracer/scene"
)

func selectionMark(selected bool) string {
	if selected {
		return " * "
	}
	return " - "
}

// ListAreas describes every area on its own line, marking the current one
// with " * " and the others with " - ", as in " *   1 Area1".
func (app *App) ListAreas() []string {
	cur := app.CurrentArea()
	lines := make([]string, 0, len(app.areas))
	for _, a := range app.areas {
		lines = append(lines, fmt.Sprintf("%s%3d %s", selectionMark(a == cur), a.ID(), a.Name()))
	}
	return lines
}

// ListLayers describes the layers of the current area with their
// visibility, V or H.
func (app *App) ListLayers() ([]string, error) {
	a := app.CurrentArea()
	if a == nil {
		return nil, ErrNoActiveArea
	}
	cur := app.CurrentLayer()
	layers := a.Layers()
	lines := make([]string, 0, len(layers))
	for _, l := range layers {
		lines = append(lines, fmt.Sprintf("%s%3d (%c) %s", selectionMark(l == cur), l.ID(), l.VisibilityMark(), l.Name()))
	}
	return lines, nil
}

// ListShapes describes the shapes of the current layer.
func (app *App) ListShapes() ([]string, error) {
	l := app.CurrentLayer()
	if l == nil {
		return nil, ErrNoActiveLayer
	}
	var cur scene.ID
	if s := app.CurrentShape(); s != nil {
		cur = s.ID()
	}
	shapes := l.Shapes()
	lines := make([]string, 0, len(shapes))
	for _, s := range shapes {
		lines = append(lines, fmt.Sprintf("%s%3d : %s", selectionMark(s.ID() == cur && cur != 0), s.ID(), s))
	}
	return lines, nil
}
