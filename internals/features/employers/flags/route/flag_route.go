package route

import (
	"github.com/gofiber/fiber/v2"

	"shiftlink_backend/internals/constants"
	"shiftlink_backend/internals/features/employers/flags/controller"
	"shiftlink_backend/internals/features/employers/flags/service"
	authMiddleware "shiftlink_backend/internals/middlewares/auth"
)

// Base: /api/employers. flagLimit dipasang setelah auth supaya kuncinya per user.
func FlagRoutes(api fiber.Router, svc *service.FlagService, authMw, flagLimit fiber.Handler) {
	ctl := controller.NewFlagController(svc)
	adminOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("moderate employers"), constants.AdminOnly)

	employers := api.Group("/employers", authMw)
	employers.Get("/flagged", adminOnly, ctl.ListFlagged)
	employers.Post("/:id/flag", flagLimit, ctl.Flag)
	employers.Delete("/:id/flag", adminOnly, ctl.Unflag)
}
