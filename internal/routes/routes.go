// Package routes mounts every resource group under /api.
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"resto-backend/internal/cache"
	"resto-backend/internal/handler"
	"resto-backend/internal/middleware"
	"resto-backend/internal/notify"
	"resto-backend/internal/repository"
	"resto-backend/internal/usecase"
)

// Deps is what the route groups share.
type Deps struct {
	DB         *gorm.DB
	Log        *zap.Logger
	Verifier   middleware.Verifier
	Cache      *cache.ScheduleCache
	Notifier   notify.Notifier
	Production bool

	// JWTSecret enables /api/auth/login; empty when tokens come from a provider.
	JWTSecret string
	TokenTTL  time.Duration

	AdminRoleID     uint
	MaxScheduleDays int
	MetricsEnabled  bool
}

func (d *Deps) responder() handler.Responder {
	return handler.NewResponder(d.Log, d.Production)
}

func (d *Deps) auth() fiber.Handler {
	return middleware.Auth(d.Verifier, d.Log)
}

// scheduleUsecase is stateless apart from the shared cache, so each group may build its own.
func (d *Deps) scheduleUsecase() *usecase.ScheduleUsecase {
	return usecase.NewScheduleUsecase(usecase.ScheduleDeps{
		Assignments: repository.NewScheduleRepository(d.DB),
		Roles:       repository.NewRoleRepository(d.DB),
		Employees:   repository.NewEmployeeRepository(d.DB),
		Locations:   repository.NewRestaurantRepository(d.DB),
		Shifts:      repository.NewShiftRepository(d.DB),
		Cache:       d.Cache,
		Notifier:    d.Notifier,
		Log:         d.Log,
		AdminRoleID: d.AdminRoleID,
		MaxDays:     d.MaxScheduleDays,
	})
}

// Setup registers all route groups.
func Setup(app *fiber.App, d *Deps) {
	SetupSystemRoutes(app, d)
	SetupAuthRoutes(app, d)
	SetupRestaurantRoutes(app, d)
	SetupRoleRoutes(app, d)
	SetupEmployeeRoutes(app, d)
	SetupMenuRoutes(app, d)
	SetupShiftRoutes(app, d)
	SetupScheduleRoutes(app, d)
}
