package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	profileModel "shiftlink_backend/internals/features/users/profiles/model"
)

const (
	JobTypePartTime   = "PART_TIME"
	JobTypeCasual     = "CASUAL"
	JobTypeInternship = "INTERNSHIP"
)

type JobModel struct {
	ID          uuid.UUID      `gorm:"column:job_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EmployerID  uuid.UUID      `gorm:"column:job_employer_id;type:uuid;not null;index:ix_jobs_employer" json:"employerId"`
	Title       string         `gorm:"column:job_title;size:160;not null" json:"title"`
	Description string         `gorm:"column:job_description;type:text;not null" json:"description"`
	Location    string         `gorm:"column:job_location;size:120;not null;index" json:"location"`
	HourlyRate  float64        `gorm:"column:job_hourly_rate;type:numeric(10,2);not null" json:"hourlyRate"`
	JobType     string         `gorm:"column:job_type;type:varchar(20);not null" json:"jobType"`
	Tags        pq.StringArray `gorm:"column:job_tags;type:text[]" json:"tags"`
	IsActive    bool           `gorm:"column:job_is_active;not null;default:true" json:"isActive"`

	CreatedAt time.Time      `gorm:"column:job_created_at;type:timestamptz;autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"column:job_updated_at;type:timestamptz;autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"column:job_deleted_at;index" json:"-"`

	Employer *profileModel.EmployerModel `gorm:"foreignKey:EmployerID;references:ID;constraint:OnDelete:CASCADE" json:"employer,omitempty"`
}

func (JobModel) TableName() string { return "jobs" }

func IsValidJobType(t string) bool {
	switch t {
	case JobTypePartTime, JobTypeCasual, JobTypeInternship:
		return true
	}
	return false
}
