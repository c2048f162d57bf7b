package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/apperror"
	"resto-backend/internal/middleware"
	"resto-backend/internal/report"
	"resto-backend/internal/repository"
	"resto-backend/internal/usecase"
)

type ScheduleHandler struct {
	Responder
	uc *usecase.ScheduleUsecase
}

func NewScheduleHandler(uc *usecase.ScheduleUsecase, r Responder) *ScheduleHandler {
	return &ScheduleHandler{Responder: r, uc: uc}
}

// locationQuery reads ?locationId. Absent is 0 and left to the use case.
func locationQuery(c *fiber.Ctx) (uint, error) {
	raw := c.Query("locationId")
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperror.Newf(apperror.CodeInvalidData, "locationId %q is not a number", raw)
	}
	return uint(id), nil
}

func weekQuery(c *fiber.Ctx) (usecase.WeekQuery, error) {
	loc, err := locationQuery(c)
	if err != nil {
		return usecase.WeekQuery{}, err
	}
	return usecase.WeekQuery{
		LocationID: loc,
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
	}, nil
}

func (h *ScheduleHandler) GetWeek(c *fiber.Ctx) error {
	q, err := weekQuery(c)
	if err != nil {
		return h.fail(c, err)
	}
	week, err := h.uc.Week(c.UserContext(), q)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, week, "")
}

func (h *ScheduleHandler) Validate(c *fiber.Ctx) error {
	q, err := weekQuery(c)
	if err != nil {
		return h.fail(c, err)
	}
	v, err := h.uc.Validate(c.UserContext(), q)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, v, "")
}

// Export sends the week as an xlsx attachment.
func (h *ScheduleHandler) Export(c *fiber.Ctx) error {
	q, err := weekQuery(c)
	if err != nil {
		return h.fail(c, err)
	}
	week, err := h.uc.Week(c.UserContext(), q)
	if err != nil {
		return h.fail(c, err)
	}
	data, err := report.WeekXLSX(week)
	if err != nil {
		return h.fail(c, err)
	}
	c.Attachment(report.FileName(week))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}

func (h *ScheduleHandler) Assign(c *fiber.Ctx) error {
	var key repository.AssignmentKey
	if err := bind(c, &key); err != nil {
		return h.fail(c, err)
	}
	assignment, err := h.uc.Assign(c.UserContext(), key)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusCreated, assignment, "Employee assigned successfully")
}

func (h *ScheduleHandler) Remove(c *fiber.Ctx) error {
	var key repository.AssignmentKey
	if err := bind(c, &key); err != nil {
		return h.fail(c, err)
	}
	if err := h.uc.Remove(c.UserContext(), key); err != nil {
		return h.fail(c, err)
	}
	return ok[any](c, fiber.StatusOK, nil, "Employee removed successfully")
}

func (h *ScheduleHandler) Employees(c *fiber.Ctx) error {
	loc, err := locationQuery(c)
	if err != nil {
		return h.fail(c, err)
	}
	emps, err := h.uc.EmployeesByLocation(c.UserContext(), loc)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, emps, "")
}

func (h *ScheduleHandler) Roles(c *fiber.Ctx) error {
	roles, err := h.uc.ListRoles(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, roles, "")
}

func (h *ScheduleHandler) Locations(c *fiber.Ctx) error {
	locs, err := h.uc.ListLocations(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, locs, "")
}

// Permissions reuses what a permission gate already loaded for this request.
func (h *ScheduleHandler) Permissions(c *fiber.Ctx) error {
	if perms := middleware.Permissions(c); perms != nil {
		return ok(c, fiber.StatusOK, perms, "")
	}
	perms, err := h.uc.Permissions(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, perms, "")
}
