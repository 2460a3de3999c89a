package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReviewTypeStudent  = "student"  // ditulis student, menilai employer
	ReviewTypeEmployer = "employer" // ditulis employer, menilai student
)

// ReviewModel: satu baris per application, dua sisi diisi oleh masing-masing pihak.
// *_reviewed_at terisi jika dan hanya jika *_rating terisi.
type ReviewModel struct {
	ID            uuid.UUID `gorm:"column:review_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ApplicationID uuid.UUID `gorm:"column:review_application_id;type:uuid;not null;uniqueIndex:ux_reviews_application" json:"applicationId"`
	StudentID     uuid.UUID `gorm:"column:review_student_id;type:uuid;not null;index" json:"studentId"`
	EmployerID    uuid.UUID `gorm:"column:review_employer_id;type:uuid;not null;index" json:"employerId"`

	EmployerRating     *float64   `gorm:"column:review_employer_rating;type:numeric(2,1)" json:"employerRating"`
	EmployerComment    *string    `gorm:"column:review_employer_comment;type:text" json:"employerComment"`
	EmployerReviewedAt *time.Time `gorm:"column:review_employer_reviewed_at;type:timestamptz" json:"employerReviewedAt"`

	StudentRating     *float64   `gorm:"column:review_student_rating;type:numeric(2,1)" json:"studentRating"`
	StudentComment    *string    `gorm:"column:review_student_comment;type:text" json:"studentComment"`
	StudentReviewedAt *time.Time `gorm:"column:review_student_reviewed_at;type:timestamptz" json:"studentReviewedAt"`

	CreatedAt time.Time `gorm:"column:review_created_at;type:timestamptz;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:review_updated_at;type:timestamptz;autoUpdateTime" json:"updatedAt"`
}

func (ReviewModel) TableName() string { return "reviews" }

// SetHalf menulis satu sisi review; sisi lain tidak disentuh.
func (r *ReviewModel) SetHalf(reviewType string, rating float64, comment *string, at time.Time) {
	switch reviewType {
	case ReviewTypeEmployer:
		r.EmployerRating = &rating
		r.EmployerComment = comment
		r.EmployerReviewedAt = &at
	case ReviewTypeStudent:
		r.StudentRating = &rating
		r.StudentComment = comment
		r.StudentReviewedAt = &at
	}
}

func (r *ReviewModel) HasEmployerReview() bool { return r != nil && r.EmployerRating != nil }
func (r *ReviewModel) HasStudentReview() bool  { return r != nil && r.StudentRating != nil }
