// Package server exposes pixeltracer drawing sessions over a JSON HTTP API.
//
// Each client opens a session (POST /sessions) and receives a token; every
// other route lives under /sessions/:token and acts on that session's
// current area, layer and shape exactly as the library calls of the same
// name do.
//
// Sessions idle for longer than Limits.IdleTTL are ended, and POST /sessions
// answers 503 while Limits.MaxSessions sessions are open.
package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/gogpu/pixeltracer"
	"github.com/gogpu/pixeltracer/export"
)

// Options configures a Server.
type Options struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// AccessLog enables per-request logging to stdout.
	AccessLog bool

	// Image draws /render.png; nil means export.NewImage().
	Image *export.Image

	// Limits bounds open sessions; the zero value means no bounds.
	Limits Limits

	// AppOptions are applied to the App of every new session.
	AppOptions []pixeltracer.Option
}

// Server is the HTTP front end.
type Server struct {
	app      *fiber.App
	sessions *SessionManager
}

// New builds the server and registers its routes.
func New(opts Options) *Server {
	img := opts.Image
	if img == nil {
		img = export.NewImage()
	}

	s := &Server{
		app: fiber.New(fiber.Config{
			ReadTimeout:  opts.ReadTimeout,
			WriteTimeout: opts.WriteTimeout,
			AppName:      "pixeltracer",
		}),
		sessions: NewSessionManager(opts.Limits, opts.AppOptions...),
	}

	// ============================================================
	// Global Middleware
	// ============================================================

	s.app.Use(recover.New())
	if opts.AccessLog {
		s.app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "15:04:05",
			TimeZone:   "Local",
		}))
	}

	s.routes(&handler{sessions: s.sessions, image: img})
	return s
}

func (s *Server) routes(h *handler) {
	s.app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	s.app.Post("/sessions", h.createSession)
	s.app.Delete("/sessions/:token", h.closeSession)

	g := s.app.Group("/sessions/:token")
	g.Get("/selection", h.withApp(getSelection))

	g.Get("/areas", h.withApp(listAreas))
	g.Post("/areas", h.withApp(createArea))
	g.Put("/areas/current", h.withApp(selectArea))
	g.Delete("/areas/:id", h.withApp(deleteArea))
	g.Put("/area/size", h.withApp(resizeArea))
	g.Put("/area/glyph", h.withApp(setGlyph))

	g.Get("/layers", h.withApp(listLayers))
	g.Post("/layers", h.withApp(createLayer))
	g.Put("/layers/current", h.withApp(selectLayer))
	g.Delete("/layers/:id", h.withApp(deleteLayer))
	g.Put("/layers/:id/visibility", h.withApp(setLayerVisibility))

	g.Get("/shapes", h.withApp(listShapes))
	g.Post("/shapes", h.withApp(createShape))
	g.Put("/shapes/current", h.withApp(selectShape))
	g.Delete("/shapes/:id", h.withApp(deleteShape))

	g.Get("/render", h.withApp(renderText))
	g.Get("/render.png", h.withApp(h.renderPNG))
}

// Fiber returns the underlying fiber app.
func (s *Server) Fiber() *fiber.App { return s.app }

// Sessions returns the session manager.
func (s *Server) Sessions() *SessionManager { return s.sessions }

// Listen serves HTTP on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	pixeltracer.Logger().Info("server: listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown stops accepting requests and closes every session.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return err
	}
	return s.sessions.CloseAll(ctx)
}
