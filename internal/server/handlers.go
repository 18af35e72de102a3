package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v3"

	"github.com/gogpu/pixeltracer"
	"github.com/gogpu/pixeltracer/export"
	"github.com/gogpu/pixeltracer/scene"
)

// ============================================================
// Drawing Handler
// ============================================================

type handler struct {
	sessions *SessionManager
	image    *export.Image
}

type appHandler func(c fiber.Ctx, app *pixeltracer.App) error

// withApp resolves the :token parameter and runs fn with the session locked.
func (h *handler) withApp(fn appHandler) fiber.Handler {
	return func(c fiber.Ctx) error {
		s, ok := h.sessions.get(c.Context(), c.Params("token"))
		if !ok {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
		}
		return fn(c, s.app)
	}
}

func decode(c fiber.Ctx, v any) bool {
	if len(c.Body()) == 0 {
		return false
	}
	return json.Unmarshal(c.Body(), v) == nil
}

func paramID(c fiber.Ctx) (scene.ID, bool) {
	v, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return scene.ID(v), true
}

// ============================================================
// Sessions
// ============================================================

func (h *handler) createSession(c fiber.Ctx) error {
	token, err := h.sessions.Create(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"token": token})
}

func (h *handler) closeSession(c fiber.Ctx) error {
	ok, err := h.sessions.Close(c.Context(), c.Params("token"))
	if err != nil {
		return writeError(c, err)
	}
	if !ok {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.SendStatus(http.StatusNoContent)
}

func getSelection(c fiber.Ctx, app *pixeltracer.App) error {
	return c.JSON(newSelectionPayload(app))
}

// ============================================================
// Areas
// ============================================================

func listAreas(c fiber.Ctx, app *pixeltracer.App) error {
	cur := app.CurrentArea()
	areas := app.Areas()
	out := make([]areaPayload, 0, len(areas))
	for _, a := range areas {
		out = append(out, newAreaPayload(a, a == cur))
	}
	return c.JSON(fiber.Map{"areas": out, "lines": app.ListAreas()})
}

func createArea(c fiber.Ctx, app *pixeltracer.App) error {
	var req nameRequest
	if len(c.Body()) > 0 && !decode(c, &req) {
		return badRequest(c, "invalid json")
	}
	a, err := app.NewArea(req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(newAreaPayload(a, true))
}

func selectArea(c fiber.Ctx, app *pixeltracer.App) error {
	var req idRequest
	if !decode(c, &req) {
		return badRequest(c, "invalid json")
	}
	if err := app.SelectArea(scene.ID(req.ID)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(newSelectionPayload(app))
}

func deleteArea(c fiber.Ctx, app *pixeltracer.App) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := app.DeleteArea(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(newSelectionPayload(app))
}

func resizeArea(c fiber.Ctx, app *pixeltracer.App) error {
	var req sizeRequest
	if !decode(c, &req) {
		return badRequest(c, "invalid json")
	}
	if err := app.Resize(req.Width, req.Height); err != nil {
		return writeError(c, err)
	}
	return c.JSON(newAreaPayload(app.CurrentArea(), true))
}

func setGlyph(c fiber.Ctx, app *pixeltracer.App) error {
	var req glyphRequest
	if !decode(c, &req) {
		return badRequest(c, "invalid json")
	}
	kind, ok := pixeltracer.ParseGlyph(req.Kind)
	if !ok {
		return badRequest(c, "kind must be border or background")
	}
	if utf8.RuneCountInString(req.Glyph) != 1 {
		return badRequest(c, "glyph must be a single character")
	}
	r, _ := utf8.DecodeRuneInString(req.Glyph)
	if err := app.SetGlyph(kind, r); err != nil {
		return writeError(c, err)
	}
	return c.JSON(newAreaPayload(app.CurrentArea(), true))
}

// ============================================================
// Layers
// ============================================================

func listLayers(c fiber.Ctx, app *pixeltracer.App) error {
	lines, err := app.ListLayers()
	if err != nil {
		return writeError(c, err)
	}
	cur := app.CurrentLayer()
	layers := app.CurrentArea().Layers()
	out := make([]layerPayload, 0, len(layers))
	for _, l := range layers {
		out = append(out, newLayerPayload(l, l == cur))
	}
	return c.JSON(fiber.Map{"layers": out, "lines": lines})
}

func createLayer(c fiber.Ctx, app *pixeltracer.App) error {
	var req nameRequest
	if len(c.Body()) > 0 && !decode(c, &req) {
		return badRequest(c, "invalid json")
	}
	l, err := app.NewLayer(req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(newLayerPayload(l, true))
}

func selectLayer(c fiber.Ctx, app *pixeltracer.App) error {
	var req idRequest
	if !decode(c, &req) {
		return badRequest(c, "invalid json")
	}
	if err := app.SelectLayer(scene.ID(req.ID)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(newSelectionPayload(app))
}

func deleteLayer(c fiber.Ctx, app *pixeltracer.App) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := app.DeleteLayer(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(newSelectionPayload(app))
}

func setLayerVisibility(c fiber.Ctx, app *pixeltracer.App) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	var req visibilityRequest
	if !decode(c, &req) {
		return badRequest(c, "invalid json")
	}
	if err := app.SetLayerVisibility(id, req.Visible); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ============================================================
// Shapes
// ============================================================

func listShapes(c fiber.Ctx, app *pixeltracer.App) error {
	lines, err := app.ListShapes()
	if err != nil {
		return writeError(c, err)
	}
	var cur scene.ID
	if s := app.CurrentShape(); s != nil {
		cur = s.ID()
	}
	shapes := app.CurrentLayer().Shapes()
	out := make([]shapePayload, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, newShapePayload(s, cur != 0 && s.ID() == cur))
	}
	return c.JSON(fiber.Map{"shapes": out, "lines": lines})
}

func createShape(c fiber.Ctx, app *pixeltracer.App) error {
	var req shapeRequest
	if !decode(c, &req) {
		return badRequest(c, "invalid json")
	}
	kind, ok := scene.ParseKind(req.Kind)
	if !ok {
		return badRequest(c, "unknown shape kind "+strconv.Quote(req.Kind))
	}
	s, err := app.AddShapeParams(kind, req.Params)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(newShapePayload(s, false))
}

func selectShape(c fiber.Ctx, app *pixeltracer.App) error {
	var req idRequest
	if !decode(c, &req) {
		return badRequest(c, "invalid json")
	}
	if err := app.SelectShape(scene.ID(req.ID)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(newSelectionPayload(app))
}

func deleteShape(c fiber.Ctx, app *pixeltracer.App) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := app.DeleteShape(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(newSelectionPayload(app))
}

// ============================================================
// Rendering
// ============================================================

func renderText(c fiber.Ctx, app *pixeltracer.App) error {
	lines, err := app.Render()
	if err != nil {
		return writeError(c, err)
	}
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(sb.String())
}

func (h *handler) renderPNG(c fiber.Ctx, app *pixeltracer.App) error {
	lines, err := app.Render()
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := h.image.WritePNG(&buf, lines); err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}
