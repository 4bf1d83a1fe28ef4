package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/waritk/gradtrack-api/internal/config"
	"github.com/waritk/gradtrack-api/internal/handler"
	"github.com/waritk/gradtrack-api/internal/middleware"
	"github.com/waritk/gradtrack-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	StudentHandler    *handler.StudentHandler
	CourseHandler     *handler.CourseHandler
	ThesisHandler     *handler.ThesisHandler
	StatisticsHandler *handler.StatisticsHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if cfg.RateLimitMax > 0 {
		api.Use(middleware.RateLimit("api", cfg.RateLimitMax, cfg.RateLimitWindow))
	}

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api)
	}
	if deps.CourseHandler != nil {
		deps.CourseHandler.Register(api)
	}
	if deps.ThesisHandler != nil {
		deps.ThesisHandler.Register(api)
	}
	if deps.StatisticsHandler != nil {
		deps.StatisticsHandler.Register(api)
	}
}
