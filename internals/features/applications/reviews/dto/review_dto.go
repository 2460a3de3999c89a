package dto

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"shiftlink_backend/internals/features/applications/reviews/model"
	helper "shiftlink_backend/internals/helpers"
)

const (
	MinRating  = 1.0
	MaxRating  = 5.0
	RatingStep = 0.5
)

// ValidRating: [1, 5] dengan kelipatan 0.5.
func ValidRating(r float64) bool {
	if math.IsNaN(r) || r < MinRating || r > MaxRating {
		return false
	}
	steps := r / RatingStep
	return steps == math.Trunc(steps)
}

// RoundRating: satu desimal, setengah dibulatkan menjauhi nol (sama dengan ROUND numeric Postgres).
func RoundRating(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Round(v*10) / 10
}

/* =========================================================
   Requests
   ========================================================= */

type SubmitReviewRequest struct {
	ApplicationID uuid.UUID `json:"applicationId" validate:"required"`
	Rating        *float64  `json:"rating" validate:"required"`
	Comment       *string   `json:"comment" validate:"omitempty,max=2000"`
	Type          string    `json:"type" validate:"required,oneof=student employer"`
}

func (r *SubmitReviewRequest) Normalize() {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Comment = helper.TrimPtr(r.Comment)
}

func (r *SubmitReviewRequest) Validate() error {
	if err := helper.ValidateStruct(r); err != nil {
		return err
	}
	if !ValidRating(*r.Rating) {
		return helper.ValidateFields(map[string]string{"rating": "min=1,max=5,step=0.5"})
	}
	return nil
}

type ListFilter struct {
	StudentID     *uuid.UUID
	EmployerID    *uuid.UUID
	ApplicationID *uuid.UUID
}

// SubjectRole: pihak yang dirata-rata.
const (
	SubjectStudent  = "student"
	SubjectEmployer = "employer"
)

/* =========================================================
   Response
   ========================================================= */

type ReviewResponse struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"applicationId"`
	StudentID     uuid.UUID `json:"studentId"`
	EmployerID    uuid.UUID `json:"employerId"`

	EmployerRating     *float64   `json:"employerRating"`
	EmployerComment    *string    `json:"employerComment"`
	EmployerReviewedAt *time.Time `json:"employerReviewedAt"`

	StudentRating     *float64   `json:"studentRating"`
	StudentComment    *string    `json:"studentComment"`
	StudentReviewedAt *time.Time `json:"studentReviewedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AverageResponse struct {
	SubjectID uuid.UUID `json:"subjectId"`
	Role      string    `json:"role"`
	Average   float64   `json:"average"`
	Count     int64     `json:"count"`
}

func FromModel(m *model.ReviewModel) ReviewResponse {
	return ReviewResponse{
		ID:                 m.ID,
		ApplicationID:      m.ApplicationID,
		StudentID:          m.StudentID,
		EmployerID:         m.EmployerID,
		EmployerRating:     m.EmployerRating,
		EmployerComment:    m.EmployerComment,
		EmployerReviewedAt: m.EmployerReviewedAt,
		StudentRating:      m.StudentRating,
		StudentComment:     m.StudentComment,
		StudentReviewedAt:  m.StudentReviewedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func FromModels(rows []model.ReviewModel) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
