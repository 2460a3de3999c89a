package middlewares

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"shiftlink_backend/internals/logger"
)

// RecoveryMiddleware menangkap panic, mencatatnya ke log, lalu menjawab 500.
func RecoveryMiddleware(log logger.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error("panic recovered", map[string]interface{}{
				"request_id": c.Locals(LocRequestID),
				"method":     c.Method(),
				"path":       c.Path(),
				"panic":      fmt.Sprint(e),
				"stack":      string(debug.Stack()),
			})
		},
	})
}
