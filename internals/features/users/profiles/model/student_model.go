package model

import (
	"time"

	"github.com/google/uuid"

	userModel "shiftlink_backend/internals/features/users/auth/model"
)

type StudentModel struct {
	ID         uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"column:student_user_id;type:uuid;not null;uniqueIndex:ux_students_user" json:"userId"`
	University *string   `gorm:"column:student_university;size:160" json:"university,omitempty"`
	Country    *string   `gorm:"column:student_country;size:80" json:"country,omitempty"`
	VisaType   *string   `gorm:"column:student_visa_type;size:40" json:"visaType,omitempty"`
	Bio        *string   `gorm:"column:student_bio;type:text" json:"bio,omitempty"`

	CreatedAt time.Time `gorm:"column:student_created_at;type:timestamptz;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:student_updated_at;type:timestamptz;autoUpdateTime" json:"updatedAt"`

	User *userModel.UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
