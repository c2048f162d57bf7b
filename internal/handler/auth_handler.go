package handler

import (
	"github.com/gofiber/fiber/v2"

	"resto-backend/internal/usecase"
)

type AuthHandler struct {
	Responder
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase, r Responder) *AuthHandler {
	return &AuthHandler{Responder: r, uc: uc}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := bind(c, &input); err != nil {
		return h.fail(c, err)
	}
	res, err := h.uc.Login(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return h.fail(c, err)
	}
	return ok(c, fiber.StatusOK, res, "Login successful")
}
