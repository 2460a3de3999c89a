package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"

	"shiftlink_backend/internals/configs"
	"shiftlink_backend/internals/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan: recover, request, cors, gzip, limiter.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config, log logger.Logger) {
	app.Use(RecoveryMiddleware(log))
	app.Use(RequestContext(log, cfg.App.RequestTimeout))
	app.Use(CorsMiddleware(cfg.App.AllowOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(GlobalRateLimiter(cfg.Limits.GlobalPerMinute))
}
