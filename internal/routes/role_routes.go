package routes

import (
	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/handler"
	"resto-backend/internal/repository"
	"resto-backend/internal/usecase"
)

func SetupRoleRoutes(app *fiber.App, d *Deps) {
	repo := repository.NewRoleRepository(d.DB)
	hdl := handler.NewRoleHandler(usecase.NewRoleUsecase(repo).WithWeekCache(d.Cache), d.responder())

	api := app.Group("/api/roles")
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Patch("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
