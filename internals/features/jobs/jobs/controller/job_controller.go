// file: internals/features/jobs/jobs/controller/job_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shiftlink_backend/internals/features/jobs/jobs/dto"
	"shiftlink_backend/internals/features/jobs/jobs/service"
	helper "shiftlink_backend/internals/helpers"
	"shiftlink_backend/internals/helpers/apperr"
	helperAuth "shiftlink_backend/internals/helpers/auth"
)

type JobController struct {
	svc *service.JobService
}

func NewJobController(svc *service.JobService) *JobController {
	return &JobController{svc: svc}
}

/*
=========================================================

	LIST (public)
	GET /api/jobs
	Query: q, location, jobType, minRate, employerId, tag, page, per_page
	=========================================================
*/
func (ctl *JobController) List(c *fiber.Ctx) error {
	q := dto.ListJobsQuery{
		Q:        strings.TrimSpace(c.Query("q")),
		Location: strings.TrimSpace(c.Query("location")),
		JobType:  strings.ToUpper(strings.TrimSpace(c.Query("jobType"))),
		Tag:      strings.ToLower(strings.TrimSpace(c.Query("tag"))),
	}
	fields := map[string]string{}
	if v := strings.TrimSpace(c.Query("minRate")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			fields["minRate"] = "number"
		} else {
			q.MinRate = &f
		}
	}
	if id := helper.QueryUUID(c, "employerId", fields); id != nil {
		q.EmployerID = id
		// pemilik boleh melihat lowongan nonaktif miliknya
		if actor, err := helperAuth.ActorFrom(c); err == nil && actor.OwnsEmployer(*id) {
			q.IncludeInactive = true
		}
	}
	if err := helper.ValidateFields(fields); err != nil {
		return helper.FromError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.svc.List(c.UserContext(), q, p)
	if err != nil {
		return helper.FromError(c, err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /api/jobs/:id
func (ctl *JobController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	out, err := ctl.svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

// POST /api/jobs
func (ctl *JobController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	out, err := ctl.svc.Create(c.UserContext(), actor, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Job created", out)
}

// PATCH /api/jobs/:id
func (ctl *JobController) Patch(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.PatchJobRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FromError(c, apperr.InvalidInput("Invalid request body", nil))
	}
	out, err := ctl.svc.Update(c.UserContext(), actor, id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Job updated", out)
}

// DELETE /api/jobs/:id (soft)
func (ctl *JobController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Job deleted", fiber.Map{"id": id})
}
