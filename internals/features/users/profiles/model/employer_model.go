package model

import (
	"time"

	"github.com/google/uuid"

	userModel "shiftlink_backend/internals/features/users/auth/model"
)

// EmployerModel: profil perusahaan; status verifikasi dan flag moderasi ikut di sini.
type EmployerModel struct {
	ID          uuid.UUID `gorm:"column:employer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"column:employer_user_id;type:uuid;not null;uniqueIndex:ux_employers_user" json:"userId"`
	CompanyName string    `gorm:"column:employer_company_name;size:160;not null" json:"companyName"`
	Industry    *string   `gorm:"column:employer_industry;size:80" json:"industry,omitempty"`

	IsVerified bool       `gorm:"column:employer_is_verified;not null;default:false" json:"isVerified"`
	IsFlagged  bool       `gorm:"column:employer_is_flagged;not null;default:false;index" json:"isFlagged"`
	FlagReason *string    `gorm:"column:employer_flag_reason;type:text" json:"flagReason,omitempty"`
	FlaggedAt  *time.Time `gorm:"column:employer_flagged_at;type:timestamptz" json:"flaggedAt,omitempty"`
	FlaggedBy  *uuid.UUID `gorm:"column:employer_flagged_by;type:uuid" json:"flaggedBy,omitempty"`

	CreatedAt time.Time `gorm:"column:employer_created_at;type:timestamptz;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:employer_updated_at;type:timestamptz;autoUpdateTime" json:"updatedAt"`

	User *userModel.UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (EmployerModel) TableName() string { return "employers" }
