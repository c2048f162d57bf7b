package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resto-backend/internal/metrics"
)

// SetupSystemRoutes mounts /healthz and, when enabled, /metrics.
func SetupSystemRoutes(app *fiber.App, d *Deps) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		sqlDB, err := d.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.UserContext())
		}
		if err != nil {
			d.Log.Error("health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "database": "down"})
		}
		return c.JSON(fiber.Map{"status": "ok", "database": "up"})
	})

	if d.MetricsEnabled {
		metrics.Register()
		app.Get("/metrics", metrics.Handler())
	}
}
