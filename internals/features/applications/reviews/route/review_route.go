package route

import (
	"github.com/gofiber/fiber/v2"

	"shiftlink_backend/internals/features/applications/reviews/controller"
	"shiftlink_backend/internals/features/applications/reviews/service"
)

// Base: /api/reviews. Rata-rata publik didaftarkan sebelum group ber-auth.
func ReviewRoutes(api fiber.Router, svc *service.ReviewService, authMw fiber.Handler) {
	ctl := controller.NewReviewController(svc)

	api.Get("/reviews/average", ctl.Average)

	reviews := api.Group("/reviews", authMw)
	reviews.Post("/", ctl.Submit)
	reviews.Get("/", ctl.List)
}
