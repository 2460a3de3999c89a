// file: internals/features/applications/reviews/controller/review_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shiftlink_backend/internals/features/applications/reviews/dto"
	"shiftlink_backend/internals/features/applications/reviews/service"
	helper "shiftlink_backend/internals/helpers"
	"shiftlink_backend/internals/helpers/apperr"
	helperAuth "shiftlink_backend/internals/helpers/auth"
)

type ReviewController struct {
	svc *service.ReviewService
}

func NewReviewController(svc *service.ReviewService) *ReviewController {
	return &ReviewController{svc: svc}
}

/*
=========================================================

	SUBMIT
	POST /api/reviews
	Body: {applicationId, rating, comment, type}
	=========================================================
*/
func (ctl *ReviewController) Submit(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.SubmitReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FromError(c, apperr.InvalidInput("Invalid request body", nil))
	}
	out, err := ctl.svc.Submit(c.UserContext(), actor, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Review submitted", out)
}

// GET /api/reviews?studentId=&employerId=&applicationId=
func (ctl *ReviewController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	fields := map[string]string{}
	f := dto.ListFilter{
		StudentID:     helper.QueryUUID(c, "studentId", fields),
		EmployerID:    helper.QueryUUID(c, "employerId", fields),
		ApplicationID: helper.QueryUUID(c, "applicationId", fields),
	}
	if err := helper.ValidateFields(fields); err != nil {
		return helper.FromError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.svc.List(c.UserContext(), actor, f, p)
	if err != nil {
		return helper.FromError(c, err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /api/reviews/average?subjectId=&role= (publik)
func (ctl *ReviewController) Average(c *fiber.Ctx) error {
	fields := map[string]string{}
	subject := helper.QueryUUID(c, "subjectId", fields)
	if err := helper.ValidateFields(fields); err != nil {
		return helper.FromError(c, err)
	}
	id := uuid.Nil
	if subject != nil {
		id = *subject
	}
	out, err := ctl.svc.Average(c.UserContext(), id, c.Query("role"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}
