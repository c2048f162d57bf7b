package handler

import (
	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/usecase"
)

type RestaurantHandler struct {
	Responder
	uc *usecase.RestaurantUsecase
}

func NewRestaurantHandler(uc *usecase.RestaurantUsecase, r Responder) *RestaurantHandler {
	return &RestaurantHandler{Responder: r, uc: uc}
}

func (h *RestaurantHandler) GetAll(c *fiber.Ctx) error {
	page, limit, err := pageQuery(c)
	if err != nil {
		return h.fail(c, err)
	}
	locations, err := h.uc.List(c.UserContext(), page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(locations)
}

func (h *RestaurantHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	loc, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(loc)
}

func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	var in usecase.RestaurantInput
	if err := bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	loc, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(loc)
}

func (h *RestaurantHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var in usecase.RestaurantInput
	if err := bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	loc, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(loc)
}
