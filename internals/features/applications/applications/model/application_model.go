package model

import (
	"time"

	"github.com/google/uuid"

	reviewModel "shiftlink_backend/internals/features/applications/reviews/model"
	jobModel "shiftlink_backend/internals/features/jobs/jobs/model"
	profileModel "shiftlink_backend/internals/features/users/profiles/model"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ApplicationModel: (job_id, student_id) unik lewat index ux_applications_job_student.
type ApplicationModel struct {
	ID          uuid.UUID  `gorm:"column:application_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	JobID       uuid.UUID  `gorm:"column:application_job_id;type:uuid;not null;uniqueIndex:ux_applications_job_student,priority:1" json:"jobId"`
	StudentID   uuid.UUID  `gorm:"column:application_student_id;type:uuid;not null;uniqueIndex:ux_applications_job_student,priority:2;index" json:"studentId"`
	Status      Status     `gorm:"column:application_status;type:varchar(16);not null;default:'PENDING';index" json:"status"`
	IsCompleted bool       `gorm:"column:application_is_completed;not null;default:false" json:"isCompleted"`
	CompletedAt *time.Time `gorm:"column:application_completed_at;type:timestamptz" json:"completedAt"`
	Notes       *string    `gorm:"column:application_notes;type:text" json:"notes"`
	AppliedAt   time.Time  `gorm:"column:application_applied_at;type:timestamptz;not null;default:now();index" json:"appliedAt"`
	UpdatedAt   time.Time  `gorm:"column:application_updated_at;type:timestamptz;autoUpdateTime" json:"updatedAt"`

	Job     *jobModel.JobModel         `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
	Student *profileModel.StudentModel `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Review  *reviewModel.ReviewModel   `gorm:"foreignKey:ApplicationID;references:ID;constraint:OnDelete:CASCADE" json:"review,omitempty"`
}

func (ApplicationModel) TableName() string { return "applications" }
