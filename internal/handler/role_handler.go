package handler

import (
	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/usecase"
)

type RoleHandler struct {
	Responder
	uc *usecase.RoleUsecase
}

func NewRoleHandler(uc *usecase.RoleUsecase, r Responder) *RoleHandler {
	return &RoleHandler{Responder: r, uc: uc}
}

func (h *RoleHandler) GetAll(c *fiber.Ctx) error {
	roles, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(roles)
}

func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	role, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(role)
}

func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in usecase.RoleInput
	if err := bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	role, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(role)
}

func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var in usecase.RoleInput
	if err := bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	role, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(role)
}

func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
