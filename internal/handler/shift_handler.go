package handler

import (
	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/middleware"
	"resto-backend/internal/usecase"
)

type ShiftHandler struct {
	Responder
	uc *usecase.ShiftUsecase
}

func NewShiftHandler(uc *usecase.ShiftUsecase, r Responder) *ShiftHandler {
	return &ShiftHandler{Responder: r, uc: uc}
}

// GetAll accepts optional startDate and endDate query bounds.
func (h *ShiftHandler) GetAll(c *fiber.Ctx) error {
	shifts, err := h.uc.List(c.UserContext(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, shifts, "")
}

func (h *ShiftHandler) GetByDate(c *fiber.Ctx) error {
	shift, err := h.uc.Get(c.UserContext(), c.Params("shiftDate"))
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, shift, "")
}

func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var in usecase.ShiftInput
	if err := bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	shift, err := h.uc.Create(c.UserContext(), middleware.UserID(c), in)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusCreated, shift, "Shift created")
}

func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	var in usecase.ShiftInput
	if err := bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	shift, err := h.uc.Update(c.UserContext(), c.Params("shiftDate"), in)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, shift, "Shift updated")
}

func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("shiftDate")); err != nil {
		return h.fail(c, err)
	}
	return ok[any](c, fiber.StatusOK, nil, "Shift deleted")
}
