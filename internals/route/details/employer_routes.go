package details

import (
	"github.com/gofiber/fiber/v2"

	flagRepo "shiftlink_backend/internals/features/employers/flags/repository"
	flagRoute "shiftlink_backend/internals/features/employers/flags/route"
	flagService "shiftlink_backend/internals/features/employers/flags/service"
	verificationRepo "shiftlink_backend/internals/features/employers/verifications/repository"
	verificationRoute "shiftlink_backend/internals/features/employers/verifications/route"
	verificationService "shiftlink_backend/internals/features/employers/verifications/service"
	"shiftlink_backend/internals/middlewares"
)

// EmployerRoutes: moderasi (flag) dan verifikasi employer.
func EmployerRoutes(api fiber.Router, d *Deps) {
	log := d.Log.WithFields(map[string]interface{}{"feature": "employers"})

	flagLimit := middlewares.ActorRateLimit(d.Limiter, "flag", d.Config.Limits.FlagsPerWindow, d.Config.Limits.FlagWindow)
	flagRoute.FlagRoutes(api, flagService.NewFlagService(flagRepo.NewFlagRepository(d.DB), log), d.AuthMw, flagLimit)

	verificationRoute.VerificationRoutes(api,
		verificationService.NewVerificationService(verificationRepo.NewVerificationRepository(d.DB), log),
		d.AuthMw)
}
