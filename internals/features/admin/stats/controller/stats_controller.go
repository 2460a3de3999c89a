package controller

import (
	"github.com/gofiber/fiber/v2"

	"shiftlink_backend/internals/features/admin/stats/service"
	helper "shiftlink_backend/internals/helpers"
	helperAuth "shiftlink_backend/internals/helpers/auth"
)

type StatsController struct {
	svc *service.StatsService
}

func NewStatsController(svc *service.StatsService) *StatsController {
	return &StatsController{svc: svc}
}

// GET /api/admin/stats
func (ctl *StatsController) Get(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	out, err := ctl.svc.Get(c.UserContext(), actor)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}
