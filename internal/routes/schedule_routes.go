package routes

import (
	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/handler"
	"resto-backend/internal/middleware"
)

func SetupScheduleRoutes(app *fiber.App, d *Deps) {
	uc := d.scheduleUsecase()
	hdl := handler.NewScheduleHandler(uc, d.responder())

	api := app.Group("/api/schedule", d.auth())
	api.Get("/", middleware.Permission(uc, middleware.CanView), hdl.GetWeek)
	api.Get("/validation", middleware.Permission(uc, middleware.CanView), hdl.Validate)
	api.Get("/export", middleware.Permission(uc, middleware.CanView), hdl.Export)
	api.Post("/assign", middleware.Permission(uc, middleware.CanEdit), hdl.Assign)
	api.Delete("/remove", middleware.Permission(uc, middleware.CanDelete), hdl.Remove)

	// reference data
	api.Get("/employees", hdl.Employees)
	api.Get("/roles", hdl.Roles)
	api.Get("/locations", hdl.Locations)
	api.Get("/permissions", hdl.Permissions)
}
