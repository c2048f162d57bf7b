package handler

import (
	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/usecase"
)

// MenuHandler serves ingredients, dishes and dish categories.
type MenuHandler struct {
	Responder
	ingredients *usecase.IngredientUsecase
	dishes      *usecase.DishUsecase
}

func NewMenuHandler(ingredients *usecase.IngredientUsecase, dishes *usecase.DishUsecase, r Responder) *MenuHandler {
	return &MenuHandler{Responder: r, ingredients: ingredients, dishes: dishes}
}

func (h *MenuHandler) GetIngredients(c *fiber.Ctx) error {
	page, limit, err := pageQuery(c)
	if err != nil {
		return h.fail(c, err)
	}
	result, err := h.ingredients.List(c.UserContext(), page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, result, "")
}

func (h *MenuHandler) GetIngredient(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	ing, err := h.ingredients.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, ing, "")
}

func (h *MenuHandler) CreateIngredient(c *fiber.Ctx) error {
	var in usecase.IngredientInput
	if err := bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	ing, err := h.ingredients.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusCreated, ing, "")
}

func (h *MenuHandler) UpdateIngredient(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var in usecase.IngredientInput
	if err := bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	ing, err := h.ingredients.Update(c.UserContext(), id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, ing, "")
}

func (h *MenuHandler) DeleteIngredient(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.ingredients.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return ok[any](c, fiber.StatusOK, nil, "Ingredient deleted")
}

func (h *MenuHandler) GetDishes(c *fiber.Ctx) error {
	page, limit, err := pageQuery(c)
	if err != nil {
		return h.fail(c, err)
	}
	result, err := h.dishes.List(c.UserContext(), page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, result, "")
}

func (h *MenuHandler) GetDish(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	dish, err := h.dishes.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, dish, "")
}

func (h *MenuHandler) CreateDish(c *fiber.Ctx) error {
	var in usecase.DishInput
	if err := bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	dish, err := h.dishes.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusCreated, dish, "")
}

func (h *MenuHandler) UpdateDish(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var in usecase.DishInput
	if err := bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	dish, err := h.dishes.Update(c.UserContext(), id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, dish, "")
}

func (h *MenuHandler) DeleteDish(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.dishes.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return ok[any](c, fiber.StatusOK, nil, "Dish deleted")
}

func (h *MenuHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.dishes.Categories(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, categories, "")
}
