package route

import (
	"github.com/gofiber/fiber/v2"

	"shiftlink_backend/internals/constants"
	"shiftlink_backend/internals/features/admin/stats/controller"
	"shiftlink_backend/internals/features/admin/stats/service"
	authMiddleware "shiftlink_backend/internals/middlewares/auth"
)

// Base: /api/admin
func StatsRoutes(api fiber.Router, svc *service.StatsService, authMw fiber.Handler) {
	ctl := controller.NewStatsController(svc)

	admin := api.Group("/admin", authMw,
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("view platform stats"), constants.AdminOnly))
	admin.Get("/stats", ctl.Get)
}
