package controller

import (
	"github.com/gofiber/fiber/v2"

	"shiftlink_backend/internals/features/employers/flags/dto"
	"shiftlink_backend/internals/features/employers/flags/service"
	helper "shiftlink_backend/internals/helpers"
	"shiftlink_backend/internals/helpers/apperr"
	helperAuth "shiftlink_backend/internals/helpers/auth"
)

type FlagController struct {
	svc *service.FlagService
}

func NewFlagController(svc *service.FlagService) *FlagController {
	return &FlagController{svc: svc}
}

// POST /api/employers/:id/flag
func (ctl *FlagController) Flag(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.FlagRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FromError(c, apperr.InvalidInput("Invalid request body", nil))
	}
	out, err := ctl.svc.Flag(c.UserContext(), actor, id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Employer flagged", out)
}

// DELETE /api/employers/:id/flag
func (ctl *FlagController) Unflag(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	out, err := ctl.svc.Unflag(c.UserContext(), actor, id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Employer unflagged", out)
}

// GET /api/employers/flagged
func (ctl *FlagController) ListFlagged(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.svc.ListFlagged(c.UserContext(), actor, p)
	if err != nil {
		return helper.FromError(c, err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}
