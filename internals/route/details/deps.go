package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shiftlink_backend/internals/configs"
	authService "shiftlink_backend/internals/features/users/auth/service"
	"shiftlink_backend/internals/logger"
	"shiftlink_backend/internals/middlewares"
)

// Deps: semua yang dibutuhkan route detail, dirakit sekali di SetupRoutes.
type Deps struct {
	DB      *gorm.DB
	Config  *configs.Config
	Log     logger.Logger
	Limiter middlewares.Limiter

	AuthService  *authService.AuthService
	AuthMw       fiber.Handler
	OptionalAuth fiber.Handler
}
