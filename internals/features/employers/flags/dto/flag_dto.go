package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	profileModel "shiftlink_backend/internals/features/users/profiles/model"
)

type FlagRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=1000"`
}

func (r *FlagRequest) Normalize() {
	r.Reason = strings.TrimSpace(r.Reason)
}

type EmployerFlagResponse struct {
	ID          uuid.UUID  `json:"id"`
	CompanyName string     `json:"companyName"`
	IsVerified  bool       `json:"isVerified"`
	IsFlagged   bool       `json:"isFlagged"`
	FlagReason  *string    `json:"flagReason"`
	FlaggedAt   *time.Time `json:"flaggedAt"`
	FlaggedBy   *uuid.UUID `json:"flaggedBy"`
}

func FromModel(m *profileModel.EmployerModel) EmployerFlagResponse {
	return EmployerFlagResponse{
		ID:          m.ID,
		CompanyName: m.CompanyName,
		IsVerified:  m.IsVerified,
		IsFlagged:   m.IsFlagged,
		FlagReason:  m.FlagReason,
		FlaggedAt:   m.FlaggedAt,
		FlaggedBy:   m.FlaggedBy,
	}
}

func FromModels(rows []profileModel.EmployerModel) []EmployerFlagResponse {
	out := make([]EmployerFlagResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
