package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiftlink_backend/internals/features/applications/applications/dto"
	"shiftlink_backend/internals/features/applications/applications/model"
	jobModel "shiftlink_backend/internals/features/jobs/jobs/model"
	helper "shiftlink_backend/internals/helpers"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// lowongan yang sudah di-soft-delete tetap dimuat supaya riwayat lamaran utuh
func unscopedJob(db *gorm.DB) *gorm.DB { return db.Unscoped() }

func (r *ApplicationRepository) FindJob(ctx context.Context, jobID uuid.UUID) (*jobModel.JobModel, error) {
	var job jobModel.JobModel
	if err := r.db.WithContext(ctx).
		Select("job_id", "job_employer_id", "job_is_active").
		Where("job_id = ?", jobID).
		First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *ApplicationRepository) ExistsForJobAndStudent(ctx context.Context, jobID, studentID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).
		Raw(`SELECT EXISTS(SELECT 1 FROM applications WHERE application_job_id = ? AND application_student_id = ?)`, jobID, studentID).
		Scan(&exists).Error
	return exists, err
}

func (r *ApplicationRepository) Create(ctx context.Context, m *model.ApplicationModel) error {
	return r.db.WithContext(ctx).Omit("Job", "Student", "Review").Create(m).Error
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ApplicationModel, error) {
	var m model.ApplicationModel
	if err := r.db.WithContext(ctx).
		Preload("Job", unscopedJob).
		Preload("Job.Employer").
		Preload("Student.User").
		Preload("Review").
		Where("application_id = ?", id).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// TransitionStatus: UPDATE bersyarat status lama, false kalau sudah berubah duluan.
// completedAt != nil ikut menandai selesai dalam statement yang sama.
func (r *ApplicationRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to model.Status, completedAt *time.Time) (bool, error) {
	set := map[string]any{
		"application_status":     to,
		"application_updated_at": time.Now(),
	}
	if completedAt != nil {
		set["application_is_completed"] = true
		set["application_completed_at"] = completedAt
	}
	res := r.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("application_id = ? AND application_status = ?", id, from).
		Updates(set)
	return res.RowsAffected > 0, res.Error
}

// SetCompletion: menandai selesai hanya saat status APPROVED; membatalkan selalu boleh.
func (r *ApplicationRepository) SetCompletion(ctx context.Context, id uuid.UUID, completed bool, at *time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&model.ApplicationModel{}).Where("application_id = ?", id)
	if completed {
		tx = tx.Where("application_status = ?", model.StatusApproved)
	}
	res := tx.Updates(map[string]any{
		"application_is_completed": completed,
		"application_completed_at": at,
		"application_updated_at":   time.Now(),
	})
	return res.RowsAffected > 0, res.Error
}

func (r *ApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("application_id = ?", id).Delete(&model.ApplicationModel{}).Error
}

// List: scoping employer memakai satu JOIN ke jobs.
func (r *ApplicationRepository) List(ctx context.Context, f dto.ListFilter, p helper.Paging) ([]model.ApplicationModel, int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Joins("JOIN jobs ON jobs.job_id = applications.application_job_id")

	if f.EmployerID != nil {
		tx = tx.Where("jobs.job_employer_id = ?", *f.EmployerID)
	}
	if f.StudentID != nil {
		tx = tx.Where("applications.application_student_id = ?", *f.StudentID)
	}
	if f.JobID != nil {
		tx = tx.Where("applications.application_job_id = ?", *f.JobID)
	}
	if f.Status != nil {
		tx = tx.Where("applications.application_status = ?", *f.Status)
	}
	if f.IsCompleted != nil {
		tx = tx.Where("applications.application_is_completed = ?", *f.IsCompleted)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.ApplicationModel
	if err := tx.
		Preload("Job", unscopedJob).
		Preload("Job.Employer").
		Preload("Student.User").
		Preload("Review").
		Order("applications.application_applied_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
