package controller

import (
	"github.com/gofiber/fiber/v2"

	"shiftlink_backend/internals/features/users/auth/dto"
	"shiftlink_backend/internals/features/users/auth/service"
	helper "shiftlink_backend/internals/helpers"
	helperAuth "shiftlink_backend/internals/helpers/auth"
)

type AuthController struct {
	svc *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	user, err := ac.svc.Register(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Registration successful", user)
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	out, err := ac.svc.Login(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Login successful", out)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	out, err := ac.svc.Me(c.UserContext(), actor)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := ac.svc.Logout(c.UserContext(), actor, helperAuth.RawTokenFrom(c)); err != nil {
		return helper.FromError(c, err)
	}
	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logged out", nil)
}
