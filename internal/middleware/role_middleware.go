package middleware

import (
	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/apperror"
)

// Admin only admits callers whose role is the configured admin role.
func Admin(src PermissionSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		perms, err := loadPermissions(c, src)
		if err != nil {
			return err
		}
		if perms == nil {
			return nil
		}
		if !perms.IsAdmin {
			return reject(c, apperror.New(apperror.CodeForbidden, "Administrator role required"))
		}
		return c.Next()
	}
}
