package server

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/gogpu/pixeltracer"
	"github.com/gogpu/pixeltracer/scene"
)

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, scene.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, scene.ErrInvalidArgument), errors.Is(err, scene.ErrOutOfBounds):
		return http.StatusBadRequest
	case errors.Is(err, pixeltracer.ErrNoActiveArea), errors.Is(err, pixeltracer.ErrNoActiveLayer):
		return http.StatusConflict
	case errors.Is(err, ErrTooManySessions):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c fiber.Ctx, err error) error {
	status := statusOf(err)
	switch status {
	case http.StatusInternalServerError:
		pixeltracer.Logger().Error("server: request failed", "method", c.Method(), "path", c.Path(), "err", err)
	case http.StatusServiceUnavailable:
		pixeltracer.Logger().Warn("server: request refused", "method", c.Method(), "path", c.Path(), "err", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
