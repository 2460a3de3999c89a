package route

import (
	"github.com/gofiber/fiber/v2"

	"shiftlink_backend/internals/constants"
	"shiftlink_backend/internals/features/applications/applications/controller"
	"shiftlink_backend/internals/features/applications/applications/service"
	authMiddleware "shiftlink_backend/internals/middlewares/auth"
)

// Base: /api/applications (semua butuh login)
func ApplicationRoutes(api fiber.Router, svc *service.ApplicationService, authMw fiber.Handler) {
	ctl := controller.NewApplicationController(svc)

	apps := api.Group("/applications", authMw)
	apps.Post("/", authMiddleware.OnlyRolesSlice(constants.RoleErrorStudent("apply for jobs"), constants.StudentOnly), ctl.Create)
	apps.Get("/", ctl.List)
	apps.Get("/:id", ctl.Get)
	apps.Patch("/:id", authMiddleware.OnlyRolesSlice(constants.RoleErrorEmployer("update applications"), constants.EmployerAndAdmin), ctl.Patch)
	apps.Delete("/:id", ctl.Delete)
}
