package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shiftlink_backend/internals/logger"
	"shiftlink_backend/internals/metrics"
)

const LocRequestID = "reqid"

// RequestContext memberi Request-ID dan batas waktu untuk query DB, lalu mencatat satu baris log per request.
func RequestContext(log logger.Logger, timeout time.Duration) fiber.Handler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals(LocRequestID, id)

		start := time.Now()
		// selaras dengan statement_timeout di DB
		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()
		if err != nil {
			// biar status di log sama dengan yang dikirim ke client
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
			err = nil
		}

		status := c.Response().StatusCode()
		dur := time.Since(start)
		route := c.Route().Path
		metrics.ObserveRequest(c.Method(), route, status, dur)

		fields := map[string]interface{}{
			"request_id":  id,
			"method":      c.Method(),
			"path":        c.OriginalURL(),
			"status":      status,
			"duration_ms": dur.Milliseconds(),
			"ip":          c.IP(),
		}
		switch {
		case status >= 500:
			log.Error("request", fields)
		case status >= 400:
			log.Warn("request", fields)
		default:
			log.Info("request", fields)
		}
		return err
	}
}
