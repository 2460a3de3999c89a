package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"shiftlink_backend/internals/features/jobs/jobs/model"
	helper "shiftlink_backend/internals/helpers"
)

/* =========================================================
   Requests
   ========================================================= */

type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=160"`
	Description string   `json:"description" validate:"required,min=10"`
	Location    string   `json:"location" validate:"required,max=120"`
	HourlyRate  float64  `json:"hourlyRate" validate:"required,gt=0,lte=10000"`
	JobType     string   `json:"jobType" validate:"required,oneof=PART_TIME CASUAL INTERNSHIP"`
	Tags        []string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=40"`
}

func (r *CreateJobRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Location = strings.TrimSpace(r.Location)
	r.JobType = strings.ToUpper(strings.TrimSpace(r.JobType))
	r.Tags = normalizeTags(r.Tags)
}

func (r *CreateJobRequest) ToModel(employerID uuid.UUID) *model.JobModel {
	return &model.JobModel{
		EmployerID:  employerID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		HourlyRate:  r.HourlyRate,
		JobType:     r.JobType,
		Tags:        r.Tags,
		IsActive:    true,
	}
}

// PatchJobRequest: field yang tidak dikirim tidak diubah.
type PatchJobRequest struct {
	Title       helper.PatchField[string]   `json:"title"`
	Description helper.PatchField[string]   `json:"description"`
	Location    helper.PatchField[string]   `json:"location"`
	HourlyRate  helper.PatchField[float64]  `json:"hourlyRate"`
	JobType     helper.PatchField[string]   `json:"jobType"`
	Tags        helper.PatchField[[]string] `json:"tags"`
	IsActive    helper.PatchField[bool]     `json:"isActive"`
}

// patchView dipakai hanya untuk validasi field yang hadir.
type patchView struct {
	Title       *string  `json:"title" validate:"omitempty,min=3,max=160"`
	Description *string  `json:"description" validate:"omitempty,min=10"`
	Location    *string  `json:"location" validate:"omitempty,min=1,max=120"`
	HourlyRate  *float64 `json:"hourlyRate" validate:"omitempty,gt=0,lte=10000"`
	JobType     *string  `json:"jobType" validate:"omitempty,oneof=PART_TIME CASUAL INTERNSHIP"`
	Tags        []string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=40"`
}

func (p *PatchJobRequest) Validate() error {
	fields := map[string]string{}
	for name, pf := range map[string]helper.PatchField[string]{
		"title": p.Title, "description": p.Description, "location": p.Location, "jobType": p.JobType,
	} {
		if pf.Present && pf.Value == nil {
			fields[name] = "required"
		}
	}
	if p.HourlyRate.Present && p.HourlyRate.Value == nil {
		fields["hourlyRate"] = "required"
	}
	if p.IsActive.Present && p.IsActive.Value == nil {
		fields["isActive"] = "required"
	}
	if len(fields) > 0 {
		return helper.ValidateFields(fields)
	}

	v := patchView{
		Title:       trimPtr(p.Title.Value),
		Description: trimPtr(p.Description.Value),
		Location:    trimPtr(p.Location.Value),
		HourlyRate:  p.HourlyRate.Value,
		JobType:     upperPtr(p.JobType.Value),
	}
	if p.Tags.Value != nil {
		v.Tags = *p.Tags.Value
	}
	return helper.ValidateStruct(v)
}

func (p *PatchJobRequest) Apply(m *model.JobModel) {
	if p.Title.Set() {
		m.Title = strings.TrimSpace(*p.Title.Value)
	}
	if p.Description.Set() {
		m.Description = strings.TrimSpace(*p.Description.Value)
	}
	if p.Location.Set() {
		m.Location = strings.TrimSpace(*p.Location.Value)
	}
	if p.HourlyRate.Set() {
		m.HourlyRate = *p.HourlyRate.Value
	}
	if p.JobType.Set() {
		m.JobType = strings.ToUpper(strings.TrimSpace(*p.JobType.Value))
	}
	if p.Tags.Present {
		if p.Tags.Value == nil {
			m.Tags = nil
		} else {
			m.Tags = normalizeTags(*p.Tags.Value)
		}
	}
	if p.IsActive.Set() {
		m.IsActive = *p.IsActive.Value
	}
}

/* =========================================================
   Query
   ========================================================= */

type ListJobsQuery struct {
	Q          string
	Location   string
	JobType    string
	Tag        string
	MinRate    *float64
	EmployerID *uuid.UUID
	// Employer melihat lowongan nonaktif miliknya sendiri
	IncludeInactive bool
}

/* =========================================================
   Response
   ========================================================= */

type JobResponse struct {
	ID               uuid.UUID `json:"id"`
	EmployerID       uuid.UUID `json:"employerId"`
	CompanyName      string    `json:"companyName,omitempty"`
	EmployerVerified bool      `json:"employerVerified"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	HourlyRate       float64   `json:"hourlyRate"`
	JobType          string    `json:"jobType"`
	Tags             []string  `json:"tags"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func FromModel(m *model.JobModel) JobResponse {
	out := JobResponse{
		ID:          m.ID,
		EmployerID:  m.EmployerID,
		Title:       m.Title,
		Description: m.Description,
		Location:    m.Location,
		HourlyRate:  m.HourlyRate,
		JobType:     m.JobType,
		Tags:        []string(m.Tags),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if m.Employer != nil {
		out.CompanyName = m.Employer.CompanyName
		out.EmployerVerified = m.Employer.IsVerified
	}
	return out
}

func FromModels(rows []model.JobModel) []JobResponse {
	out := make([]JobResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

/* =========================================================
   helpers
   ========================================================= */

// normalizeTags: lowercase, trim, buang duplikat, urutan dipertahankan.
func normalizeTags(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func upperPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToUpper(strings.TrimSpace(*s))
	return &v
}
