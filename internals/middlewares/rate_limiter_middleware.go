package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "shiftlink_backend/internals/helpers"
	helperAuth "shiftlink_backend/internals/helpers/auth"
)

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter(max int) fiber.Handler {
	return ipLimiter(max, time.Minute, "Too many requests. Please try again later.")
}

// Rate limiter untuk login route (lebih ketat)
func LoginRateLimiter(max int) fiber.Handler {
	return ipLimiter(max, time.Minute, "Too many login attempts. Please try again shortly.")
}

// Rate limiter untuk register route
func RegisterRateLimiter() fiber.Handler {
	return ipLimiter(3, 5*time.Minute, "Too many registration attempts. Please wait a few minutes.")
}

func ipLimiter(max int, exp time.Duration, msg string) fiber.Handler {
	if max <= 0 {
		max = 100
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: exp,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, msg)
		},
	})
}

// ActorRateLimit membatasi per actor (fallback ke IP) dengan Limiter yang bisa Redis atau memori.
// Dipasang setelah AuthJWT.
func ActorRateLimit(l Limiter, scope string, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if l == nil || limit <= 0 {
			return c.Next()
		}
		key := "ip:" + c.IP()
		if actor, err := helperAuth.ActorFrom(c); err == nil {
			key = "user:" + actor.UserID.String()
		}
		if !l.Allow(c.UserContext(), "ratelimit:"+scope+":"+key, limit, window) {
			return helper.JsonError(c, fiber.StatusTooManyRequests, "Too many requests. Please try again later.")
		}
		return c.Next()
	}
}
