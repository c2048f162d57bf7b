package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/apperror"
	"resto-backend/internal/model"
)

const localPermissions = "schedule_permissions"

// PermissionSource resolves the caller's schedule rights.
type PermissionSource interface {
	Permissions(ctx context.Context, userID string) (*model.SchedulePermissions, error)
}

type Capability string

const (
	CanView   Capability = "view"
	CanCreate Capability = "create"
	CanEdit   Capability = "edit"
	CanDelete Capability = "delete"
)

func (c Capability) allowed(p *model.SchedulePermissions) bool {
	switch c {
	case CanView:
		return p.CanView
	case CanCreate:
		return p.CanCreate
	case CanEdit:
		return p.CanEdit
	case CanDelete:
		return p.CanDelete
	}
	return false
}

// Permission lets the request through only when the caller's profile grants need.
// Runs after Auth.
func Permission(src PermissionSource, need Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		perms, err := loadPermissions(c, src)
		if err != nil {
			return err
		}
		if perms == nil {
			return nil
		}
		if !need.allowed(perms) {
			return reject(c, apperror.Newf(apperror.CodeForbidden, "You do not have permission to %s schedules", need))
		}
		return c.Next()
	}
}

// Permissions is what Permission or Admin resolved for this request.
func Permissions(c *fiber.Ctx) *model.SchedulePermissions {
	p, _ := c.Locals(localPermissions).(*model.SchedulePermissions)
	return p
}

// loadPermissions returns nil permissions when it already wrote the response.
func loadPermissions(c *fiber.Ctx, src PermissionSource) (*model.SchedulePermissions, error) {
	if p := Permissions(c); p != nil {
		return p, nil
	}
	userID := UserID(c)
	if userID == "" {
		return nil, reject(c, apperror.New(apperror.CodeMissingToken, "Authorization bearer token is required"))
	}
	perms, err := src.Permissions(c.UserContext(), userID)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeProfileNotFound) {
			return nil, c.Status(fiber.StatusForbidden).JSON(apperror.Response{
				Error: "Employee record not found",
				Code:  string(apperror.CodeProfileNotFound),
			})
		}
		return nil, c.Status(apperror.Status(err)).JSON(apperror.Format(err, true))
	}
	c.Locals(localPermissions, perms)
	return perms, nil
}
