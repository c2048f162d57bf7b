package routes

import (
	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/handler"
	"resto-backend/internal/middleware"
	"resto-backend/internal/repository"
	"resto-backend/internal/usecase"
)

func SetupShiftRoutes(app *fiber.App, d *Deps) {
	repo := repository.NewShiftRepository(d.DB)
	hdl := handler.NewShiftHandler(usecase.NewShiftUsecase(repo), d.responder())
	admin := middleware.Admin(d.scheduleUsecase())

	api := app.Group("/api/shifts", d.auth())
	api.Get("/", hdl.GetAll)
	api.Get("/:shiftDate", hdl.GetByDate)
	api.Post("/", admin, hdl.Create)
	api.Put("/:shiftDate", admin, hdl.Update)
	api.Delete("/:shiftDate", admin, hdl.Delete)
}
