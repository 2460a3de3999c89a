package details

import (
	"github.com/gofiber/fiber/v2"

	authRepo "shiftlink_backend/internals/features/users/auth/repository"
	authRoute "shiftlink_backend/internals/features/users/auth/route"
	authService "shiftlink_backend/internals/features/users/auth/service"
)

// AuthRoutes: /api/auth/*
func AuthRoutes(api fiber.Router, d *Deps) {
	authRoute.AuthRoutes(api, d.AuthService, d.AuthMw, d.Config.Limits.LoginPerMinute)
}

// NewAuthService dipakai juga oleh AuthJWT (cek user aktif).
func NewAuthService(d *Deps) *authService.AuthService {
	return authService.NewAuthService(authRepo.NewAuthRepository(d.DB), d.Config.Auth.JWTSecret, d.Config.Auth.AccessTTL)
}
