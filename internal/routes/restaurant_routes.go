package routes

import (
	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/handler"
	"resto-backend/internal/repository"
	"resto-backend/internal/usecase"
)

func SetupRestaurantRoutes(app *fiber.App, d *Deps) {
	repo := repository.NewRestaurantRepository(d.DB)
	hdl := handler.NewRestaurantHandler(usecase.NewRestaurantUsecase(repo), d.responder())

	api := app.Group("/api/restaurants")
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Patch("/:id", hdl.Update)
}
