package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/ducminhle1904/strategy-sim/internal/config"
	"github.com/ducminhle1904/strategy-sim/internal/logger"
	"github.com/ducminhle1904/strategy-sim/internal/monitoring"
	"github.com/ducminhle1904/strategy-sim/internal/presets"
)

// Server is the HTTP boundary between the form/dashboard UI and the
// simulation engine.
type Server struct {
	app       *fiber.App
	handler   *Handler
	cfg       *config.ServerConfig
	routesSet bool
}

// NewServer creates the API server with its middleware stack.
func NewServer(cfg *config.ServerConfig, store *presets.Store, runLog *logger.Logger, health *monitoring.HealthChecker) *Server {
	app := fiber.New(fiber.Config{
		AppName: "Strategy Simulator API",
	})

	if cfg.API.EnableCORS {
		app.Use(cors.New(cors.Config{
			AllowOrigins: "*",
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders: "Origin, Content-Type, Accept",
		}))
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	return &Server{
		app:     app,
		handler: NewHandler(store, runLog, health),
		cfg:     cfg,
	}
}

// SetupRoutes configures all API routes.
func (s *Server) SetupRoutes() {
	if s.routesSet {
		return
	}
	s.routesSet = true

	api := s.app.Group("/api")

	api.Get("/health", s.handler.Health)

	// Simulation
	api.Post("/simulate", s.handler.Simulate)
	api.Post("/montecarlo", s.handler.MonteCarlo)

	// Named configurations
	api.Get("/presets", s.handler.ListPresets)
	api.Post("/presets", s.handler.SavePreset)
	api.Get("/presets/:name", s.handler.GetPreset)
	api.Delete("/presets/:name", s.handler.DeletePreset)

	s.app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
			"path":  c.Path(),
		})
	})
}

// Start starts the API server, blocking until shutdown.
func (s *Server) Start() error {
	s.SetupRoutes()
	return s.app.Listen(fmt.Sprintf(":%d", s.cfg.API.Port))
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	s.SetupRoutes()
	return s.app
}
