package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	VerificationPending  = "PENDING"
	VerificationApproved = "APPROVED"
	VerificationRejected = "REJECTED"
)

// ErrNotPending: keputusan hanya boleh diambil atas request yang masih PENDING.
var ErrNotPending = errors.New("verification request is not pending")

// Document: deskripsi satu berkas pendukung (file disimpan di luar service ini).
type Document struct {
	Name string `json:"name" validate:"required,max=160"`
	URL  string `json:"url" validate:"required,url"`
	Kind string `json:"kind,omitempty" validate:"omitempty,max=40"`
}

// Maksimal satu PENDING per employer (partial unique index ux_verification_pending_employer).
type VerificationRequestModel struct {
	ID         uuid.UUID                     `gorm:"column:verification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EmployerID uuid.UUID                     `gorm:"column:verification_employer_id;type:uuid;not null;index" json:"employerId"`
	Status     string                        `gorm:"column:verification_status;type:varchar(16);not null;default:'PENDING';index" json:"status"`
	Documents  datatypes.JSONSlice[Document] `gorm:"column:verification_documents;type:jsonb;not null" json:"documents"`
	AdminNote  *string                       `gorm:"column:verification_admin_note;type:text" json:"adminNote,omitempty"`
	ReviewedBy *uuid.UUID                    `gorm:"column:verification_reviewed_by;type:uuid" json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time                    `gorm:"column:verification_reviewed_at;type:timestamptz" json:"reviewedAt,omitempty"`

	CreatedAt time.Time `gorm:"column:verification_created_at;type:timestamptz;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:verification_updated_at;type:timestamptz;autoUpdateTime" json:"updatedAt"`
}

func (VerificationRequestModel) TableName() string { return "verification_requests" }
