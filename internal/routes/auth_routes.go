package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/handler"
	"resto-backend/internal/middleware"
	"resto-backend/internal/repository"
	"resto-backend/internal/usecase"
)

// SetupAuthRoutes mounts password sign-in. It only exists when this server
// signs its own tokens.
func SetupAuthRoutes(app *fiber.App, d *Deps) {
	if d.JWTSecret == "" {
		return
	}
	sign := func(subject string, ttl time.Duration) (string, error) {
		return middleware.SignToken(d.JWTSecret, subject, ttl)
	}
	uc := usecase.NewAuthUsecase(repository.NewEmployeeRepository(d.DB), sign, d.TokenTTL)
	hdl := handler.NewAuthHandler(uc, d.responder())

	app.Post("/api/auth/login", hdl.Login)
}
