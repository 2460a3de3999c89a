package details

import (
	"github.com/gofiber/fiber/v2"

	appRepo "shiftlink_backend/internals/features/applications/applications/repository"
	appRoute "shiftlink_backend/internals/features/applications/applications/route"
	appService "shiftlink_backend/internals/features/applications/applications/service"
	reviewRepo "shiftlink_backend/internals/features/applications/reviews/repository"
	reviewRoute "shiftlink_backend/internals/features/applications/reviews/route"
	reviewService "shiftlink_backend/internals/features/applications/reviews/service"
	jobRepo "shiftlink_backend/internals/features/jobs/jobs/repository"
	jobRoute "shiftlink_backend/internals/features/jobs/jobs/route"
	jobService "shiftlink_backend/internals/features/jobs/jobs/service"
)

// MarketplaceRoutes: jobs, applications, reviews.
func MarketplaceRoutes(api fiber.Router, d *Deps) {
	jobRoute.JobRoutes(api, jobService.NewJobService(jobRepo.NewJobRepository(d.DB)), d.AuthMw, d.OptionalAuth)

	appRoute.ApplicationRoutes(api,
		appService.NewApplicationService(appRepo.NewApplicationRepository(d.DB), d.Log.WithFields(map[string]interface{}{"feature": "applications"})),
		d.AuthMw)

	reviewRoute.ReviewRoutes(api,
		reviewService.NewReviewService(reviewRepo.NewReviewRepository(d.DB), d.Log.WithFields(map[string]interface{}{"feature": "reviews"})),
		d.AuthMw)
}
