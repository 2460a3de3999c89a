package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"shiftlink_backend/internals/features/employers/verifications/dto"
	"shiftlink_backend/internals/features/employers/verifications/service"
	helper "shiftlink_backend/internals/helpers"
	"shiftlink_backend/internals/helpers/apperr"
	helperAuth "shiftlink_backend/internals/helpers/auth"
)

type VerificationController struct {
	svc *service.VerificationService
}

func NewVerificationController(svc *service.VerificationService) *VerificationController {
	return &VerificationController{svc: svc}
}

// POST /api/verification  Body: {documents: [{name, url, kind}]}
func (ctl *VerificationController) Submit(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.SubmitVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FromError(c, apperr.InvalidInput("Invalid request body", nil))
	}
	out, err := ctl.svc.Submit(c.UserContext(), actor, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Verification requested", out)
}

// GET /api/verification?status=
func (ctl *VerificationController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	var f dto.ListFilter
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		f.Status = &v
	}
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.svc.List(c.UserContext(), actor, f, p)
	if err != nil {
		return helper.FromError(c, err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /api/verification/:id
func (ctl *VerificationController) Get(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	out, err := ctl.svc.Get(c.UserContext(), actor, id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

// PATCH /api/verification/:id  Body: {status, note}
func (ctl *VerificationController) Decide(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.DecideVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FromError(c, apperr.InvalidInput("Invalid request body", nil))
	}
	out, err := ctl.svc.Decide(c.UserContext(), actor, id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Verification decided", out)
}
