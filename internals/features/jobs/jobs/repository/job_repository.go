package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiftlink_backend/internals/features/jobs/jobs/dto"
	"shiftlink_backend/internals/features/jobs/jobs/model"
	helper "shiftlink_backend/internals/helpers"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, m *model.JobModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.JobModel, error) {
	var m model.JobModel
	if err := r.db.WithContext(ctx).
		Preload("Employer").
		Where("job_id = ?", id).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *JobRepository) Save(ctx context.Context, m *model.JobModel) error {
	return r.db.WithContext(ctx).Omit("Employer").Save(m).Error
}

// SoftDelete: job_deleted_at diisi (gorm.DeletedAt).
func (r *JobRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("job_id = ?", id).Delete(&model.JobModel{}).Error
}

func (r *JobRepository) List(ctx context.Context, q dto.ListJobsQuery, p helper.Paging) ([]model.JobModel, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.JobModel{})

	if !q.IncludeInactive {
		tx = tx.Where("job_is_active = ?", true)
	}
	if q.Q != "" {
		tx = tx.Where(`job_title ILIKE ? ESCAPE '\'`, helper.LikeContains(q.Q))
	}
	if q.Location != "" {
		tx = tx.Where(`job_location ILIKE ? ESCAPE '\'`, helper.LikeContains(q.Location))
	}
	if q.JobType != "" {
		tx = tx.Where("job_type = ?", q.JobType)
	}
	if q.MinRate != nil {
		tx = tx.Where("job_hourly_rate >= ?", *q.MinRate)
	}
	if q.EmployerID != nil {
		tx = tx.Where("job_employer_id = ?", *q.EmployerID)
	}
	if q.Tag != "" {
		tx = tx.Where("? = ANY(job_tags)", q.Tag)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.JobModel
	if err := tx.
		Preload("Employer").
		Order("job_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
