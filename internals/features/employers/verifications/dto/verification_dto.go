package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"shiftlink_backend/internals/features/employers/verifications/model"
	helper "shiftlink_backend/internals/helpers"
)

type SubmitVerificationRequest struct {
	Documents []model.Document `json:"documents" validate:"required,min=1,max=10,dive"`
}

func (r *SubmitVerificationRequest) Normalize() {
	for i := range r.Documents {
		d := &r.Documents[i]
		d.Name = strings.TrimSpace(d.Name)
		d.URL = strings.TrimSpace(d.URL)
		d.Kind = strings.ToLower(strings.TrimSpace(d.Kind))
	}
}

type DecideVerificationRequest struct {
	Status string  `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Note   *string `json:"note" validate:"omitempty,max=2000"`
}

func (r *DecideVerificationRequest) Normalize() {
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
	r.Note = helper.TrimPtr(r.Note)
}

type ListFilter struct {
	Status     *string
	EmployerID *uuid.UUID
}

type VerificationResponse struct {
	ID         uuid.UUID        `json:"id"`
	EmployerID uuid.UUID        `json:"employerId"`
	Status     string           `json:"status"`
	Documents  []model.Document `json:"documents"`
	AdminNote  *string          `json:"adminNote"`
	ReviewedBy *uuid.UUID       `json:"reviewedBy"`
	ReviewedAt *time.Time       `json:"reviewedAt"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

func FromModel(m *model.VerificationRequestModel) VerificationResponse {
	docs := []model.Document(m.Documents)
	if docs == nil {
		docs = []model.Document{}
	}
	return VerificationResponse{
		ID:         m.ID,
		EmployerID: m.EmployerID,
		Status:     m.Status,
		Documents:  docs,
		AdminNote:  m.AdminNote,
		ReviewedBy: m.ReviewedBy,
		ReviewedAt: m.ReviewedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func FromModels(rows []model.VerificationRequestModel) []VerificationResponse {
	out := make([]VerificationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
