package details

import (
	"github.com/gofiber/fiber/v2"

	statsRepo "shiftlink_backend/internals/features/admin/stats/repository"
	statsRoute "shiftlink_backend/internals/features/admin/stats/route"
	statsService "shiftlink_backend/internals/features/admin/stats/service"
)

// AdminRoutes: /api/admin/*
func AdminRoutes(api fiber.Router, d *Deps) {
	statsRoute.StatsRoutes(api, statsService.NewStatsService(statsRepo.NewStatsRepository(d.DB)), d.AuthMw)
}
