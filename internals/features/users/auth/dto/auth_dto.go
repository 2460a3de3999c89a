package dto

import (
	"time"

	"github.com/google/uuid"

	"shiftlink_backend/internals/features/users/auth/model"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"fullName" validate:"required,min=2,max=120"`
	Role     string `json:"role" validate:"required,oneof=student employer"`

	// student
	University *string `json:"university" validate:"omitempty,max=160"`
	Country    *string `json:"country" validate:"omitempty,max=80"`
	VisaType   *string `json:"visaType" validate:"omitempty,max=40"`
	Bio        *string `json:"bio" validate:"omitempty,max=2000"`

	// employer
	CompanyName string  `json:"companyName" validate:"required_if=Role employer,max=160"`
	Industry    *string `json:"industry" validate:"omitempty,max=80"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	FullName   string     `json:"fullName"`
	Role       string     `json:"role"`
	StudentID  *uuid.UUID `json:"studentId,omitempty"`
	EmployerID *uuid.UUID `json:"employerId,omitempty"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(u *model.UserModel, studentID, employerID *uuid.UUID) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Role:       u.Role,
		StudentID:  studentID,
		EmployerID: employerID,
	}
}
