package route

import (
	"github.com/gofiber/fiber/v2"

	"shiftlink_backend/internals/constants"
	"shiftlink_backend/internals/features/employers/verifications/controller"
	"shiftlink_backend/internals/features/employers/verifications/service"
	authMiddleware "shiftlink_backend/internals/middlewares/auth"
)

// Base: /api/verification
func VerificationRoutes(api fiber.Router, svc *service.VerificationService, authMw fiber.Handler) {
	ctl := controller.NewVerificationController(svc)

	v := api.Group("/verification", authMw)
	v.Post("/", authMiddleware.OnlyRolesSlice(constants.RoleErrorEmployer("request verification"), constants.EmployerOnly), ctl.Submit)
	v.Get("/", authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("view verification requests"), constants.EmployerAndAdmin), ctl.List)
	v.Get("/:id", ctl.Get)
	v.Patch("/:id", authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("decide verification requests"), constants.AdminOnly), ctl.Decide)
}
