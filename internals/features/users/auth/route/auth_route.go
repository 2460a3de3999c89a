// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "shiftlink_backend/internals/features/users/auth/controller"
	"shiftlink_backend/internals/features/users/auth/service"
	rateLimiter "shiftlink_backend/internals/middlewares"
)

// Base: /api/auth
func AuthRoutes(api fiber.Router, svc *service.AuthService, authMw fiber.Handler, loginPerMinute int) {
	authController := controller.NewAuthController(svc)

	baseAuth := api.Group("/auth")

	// 🔓 public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(loginPerMinute), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)

	// 🔐 protected
	baseAuth.Get("/me", authMw, authController.Me)
	baseAuth.Post("/logout", authMw, authController.Logout)
}
