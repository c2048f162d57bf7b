package routes

import (
	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/handler"
	"resto-backend/internal/repository"
	"resto-backend/internal/usecase"
)

func SetupEmployeeRoutes(app *fiber.App, d *Deps) {
	repo := repository.NewEmployeeRepository(d.DB)
	hdl := handler.NewEmployeeHandler(usecase.NewEmployeeUsecase(repo).WithWeekCache(d.Cache), d.responder())

	api := app.Group("/api/employees")
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Patch("/:id", hdl.Update)
	api.Delete("/:id", hdl.Fire) // deactivates

	// Profile Routes (Protected)
	profile := app.Group("/api/profile", d.auth())
	profile.Get("/", hdl.GetProfile)
	profile.Patch("/", hdl.SaveProfile)
}
