package handler

import (
	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/middleware"
	"resto-backend/internal/usecase"
)

type EmployeeHandler struct {
	Responder
	uc *usecase.EmployeeUsecase
}

func NewEmployeeHandler(uc *usecase.EmployeeUsecase, r Responder) *EmployeeHandler {
	return &EmployeeHandler{Responder: r, uc: uc}
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	page, limit, err := pageQuery(c)
	if err != nil {
		return h.fail(c, err)
	}
	employees, err := h.uc.List(c.UserContext(), page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(employees)
}

func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	emp, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(emp)
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in usecase.EmployeeInput
	if err := bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	emp, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(emp)
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var in usecase.EmployeeInput
	if err := bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	emp, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(emp)
}

// Fire answers DELETE; the employee is deactivated, not removed.
func (h *EmployeeHandler) Fire(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	emp, err := h.uc.Fire(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(emp)
}

// GetProfile returns null until the caller has saved a profile.
func (h *EmployeeHandler) GetProfile(c *fiber.Ctx) error {
	emp, err := h.uc.Profile(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(emp)
}

func (h *EmployeeHandler) SaveProfile(c *fiber.Ctx) error {
	var in usecase.EmployeeInput
	if err := bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	emp, err := h.uc.SaveProfile(c.UserContext(), middleware.UserID(c), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(emp)
}
