package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "shiftlink_backend/internals/helpers"
	helperAuth "shiftlink_backend/internals/helpers/auth"
)

// OnlyRolesSlice meloloskan request kalau role actor ada di allowedRoles.
func OnlyRolesSlice(message string, allowedRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := helperAuth.ActorFrom(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Role not found")
		}
		for _, allowed := range allowedRoles {
			if actor.Role == allowed {
				return c.Next()
			}
		}
		if message == "" {
			message = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, message)
	}
}

func OnlyRoles(message string, roles ...string) fiber.Handler {
	return OnlyRolesSlice(message, roles)
}
