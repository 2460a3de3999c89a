package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"shiftlink_backend/internals/features/applications/applications/model"
	helper "shiftlink_backend/internals/helpers"
)

/* =========================================================
   Requests
   ========================================================= */

type CreateApplicationRequest struct {
	JobID uuid.UUID `json:"jobId" validate:"required"`
	Notes *string   `json:"notes" validate:"omitempty,max=2000"`
}

func (r *CreateApplicationRequest) Normalize() {
	r.Notes = helper.TrimPtr(r.Notes)
}

// UpdateApplicationRequest: PATCH, minimal salah satu field hadir.
type UpdateApplicationRequest struct {
	Status      helper.PatchField[string] `json:"status"`
	IsCompleted helper.PatchField[bool]   `json:"isCompleted"`
}

func (r *UpdateApplicationRequest) Validate() error {
	fields := map[string]string{}
	if r.Status.Present && (r.Status.Value == nil || strings.TrimSpace(*r.Status.Value) == "") {
		fields["status"] = "required"
	}
	if r.IsCompleted.Present && r.IsCompleted.Value == nil {
		fields["isCompleted"] = "required"
	}
	if len(fields) > 0 {
		return helper.ValidateFields(fields)
	}
	if !r.Status.Present && !r.IsCompleted.Present {
		return helper.ValidateFields(map[string]string{"status": "required_without=isCompleted"})
	}
	return nil
}

/* =========================================================
   Query
   ========================================================= */

const ViewCompleted = "completed"

type ListFilter struct {
	StudentID   *uuid.UUID
	EmployerID  *uuid.UUID
	JobID       *uuid.UUID
	Status      *model.Status
	IsCompleted *bool
}

/* =========================================================
   Response
   ========================================================= */

type JobSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	HourlyRate  float64   `json:"hourlyRate"`
	JobType     string    `json:"jobType"`
	EmployerID  uuid.UUID `json:"employerId"`
	CompanyName string    `json:"companyName,omitempty"`
}

type StudentSummary struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"fullName,omitempty"`
	Email      string    `json:"email,omitempty"`
	University *string   `json:"university,omitempty"`
	Country    *string   `json:"country,omitempty"`
}

type ApplicationResponse struct {
	ID          uuid.UUID       `json:"id"`
	JobID       uuid.UUID       `json:"jobId"`
	StudentID   uuid.UUID       `json:"studentId"`
	Status      model.Status    `json:"status"`
	IsCompleted bool            `json:"isCompleted"`
	CompletedAt *time.Time      `json:"completedAt"`
	Notes       *string         `json:"notes"`
	AppliedAt   time.Time       `json:"appliedAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Job         *JobSummary     `json:"job,omitempty"`
	Student     *StudentSummary `json:"student,omitempty"`
	HasReview   bool            `json:"hasReview"`
}

// CompletedApplicationResponse: bentuk untuk view=completed (dasar menulis review).
type CompletedApplicationResponse struct {
	ID                uuid.UUID       `json:"id"`
	JobID             uuid.UUID       `json:"jobId"`
	StudentID         uuid.UUID       `json:"studentId"`
	CompletedAt       *time.Time      `json:"completedAt"`
	Job               *JobSummary     `json:"job,omitempty"`
	Student           *StudentSummary `json:"student,omitempty"`
	HasEmployerReview bool            `json:"hasEmployerReview"`
	HasStudentReview  bool            `json:"hasStudentReview"`
}

func FromModel(m *model.ApplicationModel) ApplicationResponse {
	return ApplicationResponse{
		ID:          m.ID,
		JobID:       m.JobID,
		StudentID:   m.StudentID,
		Status:      m.Status,
		IsCompleted: m.IsCompleted,
		CompletedAt: m.CompletedAt,
		Notes:       m.Notes,
		AppliedAt:   m.AppliedAt,
		UpdatedAt:   m.UpdatedAt,
		Job:         jobSummary(m),
		Student:     studentSummary(m),
		HasReview:   m.Review != nil,
	}
}

func FromModels(rows []model.ApplicationModel) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

func CompletedFromModels(rows []model.ApplicationModel) []CompletedApplicationResponse {
	out := make([]CompletedApplicationResponse, 0, len(rows))
	for i := range rows {
		m := &rows[i]
		out = append(out, CompletedApplicationResponse{
			ID:                m.ID,
			JobID:             m.JobID,
			StudentID:         m.StudentID,
			CompletedAt:       m.CompletedAt,
			Job:               jobSummary(m),
			Student:           studentSummary(m),
			HasEmployerReview: m.Review.HasEmployerReview(),
			HasStudentReview:  m.Review.HasStudentReview(),
		})
	}
	return out
}

func jobSummary(m *model.ApplicationModel) *JobSummary {
	if m.Job == nil {
		return nil
	}
	js := &JobSummary{
		ID:         m.Job.ID,
		Title:      m.Job.Title,
		Location:   m.Job.Location,
		HourlyRate: m.Job.HourlyRate,
		JobType:    m.Job.JobType,
		EmployerID: m.Job.EmployerID,
	}
	if m.Job.Employer != nil {
		js.CompanyName = m.Job.Employer.CompanyName
	}
	return js
}

func studentSummary(m *model.ApplicationModel) *StudentSummary {
	if m.Student == nil {
		return nil
	}
	ss := &StudentSummary{
		ID:         m.Student.ID,
		University: m.Student.University,
		Country:    m.Student.Country,
	}
	if m.Student.User != nil {
		ss.FullName = m.Student.User.FullName
		ss.Email = m.Student.User.Email
	}
	return ss
}
