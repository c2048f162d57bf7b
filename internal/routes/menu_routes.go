package routes

import (
	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/handler"
	"resto-backend/internal/repository"
	"resto-backend/internal/usecase"
)

func SetupMenuRoutes(app *fiber.App, d *Deps) {
	ingredients := usecase.NewIngredientUsecase(repository.NewIngredientRepository(d.DB))
	dishes := usecase.NewDishUsecase(repository.NewDishRepository(d.DB))
	hdl := handler.NewMenuHandler(ingredients, dishes, d.responder())

	api := app.Group("/api")
	api.Get("/ingredients", hdl.GetIngredients)
	api.Get("/ingredients/:id", hdl.GetIngredient)
	api.Post("/ingredients", hdl.CreateIngredient)
	api.Put("/ingredients/:id", hdl.UpdateIngredient)
	api.Delete("/ingredients/:id", hdl.DeleteIngredient)

	api.Get("/dishes", hdl.GetDishes)
	api.Get("/dishes/:id", hdl.GetDish)
	api.Post("/dishes", hdl.CreateDish)
	api.Put("/dishes/:id", hdl.UpdateDish)
	api.Delete("/dishes/:id", hdl.DeleteDish)
	api.Get("/categories", hdl.GetCategories)
}
