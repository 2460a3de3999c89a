// file: internals/features/applications/applications/controller/application_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"shiftlink_backend/internals/features/applications/applications/dto"
	"shiftlink_backend/internals/features/applications/applications/model"
	"shiftlink_backend/internals/features/applications/applications/service"
	helper "shiftlink_backend/internals/helpers"
	"shiftlink_backend/internals/helpers/apperr"
	helperAuth "shiftlink_backend/internals/helpers/auth"
)

type ApplicationController struct {
	svc *service.ApplicationService
}

func NewApplicationController(svc *service.ApplicationService) *ApplicationController {
	return &ApplicationController{svc: svc}
}

/*
=========================================================

	CREATE
	POST /api/applications
	Body: {jobId, notes}
	=========================================================
*/
func (ctl *ApplicationController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FromError(c, apperr.InvalidInput("Invalid request body", map[string]string{"jobId": "uuid"}))
	}
	out, err := ctl.svc.Submit(c.UserContext(), actor, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Application submitted", out)
}

/*
=========================================================

	LIST
	GET /api/applications
	Query: studentId, jobId, employerId, status, isCompleted, view, page, per_page
	=========================================================
*/
func (ctl *ApplicationController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	fields := map[string]string{}
	f := dto.ListFilter{
		StudentID:   helper.QueryUUID(c, "studentId", fields),
		EmployerID:  helper.QueryUUID(c, "employerId", fields),
		JobID:       helper.QueryUUID(c, "jobId", fields),
		IsCompleted: helper.QueryBool(c, "isCompleted", fields),
	}
	if v := strings.ToUpper(strings.TrimSpace(c.Query("status"))); v != "" {
		st := model.Status(v)
		if !st.Valid() {
			fields["status"] = "oneof=PENDING APPROVED REJECTED"
		} else {
			f.Status = &st
		}
	}
	view := strings.ToLower(strings.TrimSpace(c.Query("view")))
	if view != "" && view != dto.ViewCompleted {
		fields["view"] = "oneof=completed"
	}
	if err := helper.ValidateFields(fields); err != nil {
		return helper.FromError(c, err)
	}
	if view == dto.ViewCompleted {
		done := true
		f.IsCompleted = &done
	}

	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.svc.List(c.UserContext(), actor, f, p)
	if err != nil {
		return helper.FromError(c, err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	if view == dto.ViewCompleted {
		return helper.JsonList(c, "ok", dto.CompletedFromModels(rows), &pg)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pg)
}

// GET /api/applications/:id
func (ctl *ApplicationController) Get(c *fiber.Ctx) error {
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

/*
=========================================================

	PATCH
	PATCH /api/applications/:id
	Body: {status?, isCompleted?}
	=========================================================
*/
func (ctl *ApplicationController) Patch(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FromError(c, apperr.InvalidInput("Invalid request body", nil))
	}
	out, err := ctl.svc.Update(c.UserContext(), actor, id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Application updated", out)
}

// DELETE /api/applications/:id
func (ctl *ApplicationController) Delete(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := ctl.svc.Delete(c.UserContext(), actor, id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Application deleted", fiber.Map{"id": id})
}
