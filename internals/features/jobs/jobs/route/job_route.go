package route

import (
	"github.com/gofiber/fiber/v2"

	"shiftlink_backend/internals/constants"
	"shiftlink_backend/internals/features/jobs/jobs/controller"
	"shiftlink_backend/internals/features/jobs/jobs/service"
	authMiddleware "shiftlink_backend/internals/middlewares/auth"
)

// Base: /api/jobs. optionalAuth mengisi actor kalau token ada, tanpa menolak request anonim.
func JobRoutes(api fiber.Router, svc *service.JobService, authMw, optionalAuth fiber.Handler) {
	ctl := controller.NewJobController(svc)

	jobs := api.Group("/jobs")
	jobs.Get("/", optionalAuth, ctl.List)
	jobs.Get("/:id", ctl.Get)

	jobs.Post("/", authMw,
		authMiddleware.OnlyRolesSlice(constants.RoleErrorEmployer("post jobs"), constants.EmployerOnly),
		ctl.Create)
	jobs.Patch("/:id", authMw,
		authMiddleware.OnlyRolesSlice(constants.RoleErrorEmployer("update jobs"), constants.EmployerAndAdmin),
		ctl.Patch)
	jobs.Delete("/:id", authMw,
		authMiddleware.OnlyRolesSlice(constants.RoleErrorEmployer("delete jobs"), constants.EmployerAndAdmin),
		ctl.Delete)
}
