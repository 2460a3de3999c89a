package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	appModel "shiftlink_backend/internals/features/applications/applications/model"
	"shiftlink_backend/internals/features/applications/reviews/dto"
	"shiftlink_backend/internals/features/applications/reviews/model"
	helper "shiftlink_backend/internals/helpers"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// GetApplication memuat application beserta job (termasuk yang soft-deleted) untuk employer id.
func (r *ReviewRepository) GetApplication(ctx context.Context, id uuid.UUID) (*appModel.ApplicationModel, error) {
	var m appModel.ApplicationModel
	if err := r.db.WithContext(ctx).
		Preload("Job", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("application_id = ?", id).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ReviewRepository) FindByApplication(ctx context.Context, applicationID uuid.UUID) (*model.ReviewModel, error) {
	var m model.ReviewModel
	if err := r.db.WithContext(ctx).
		Where("review_application_id = ?", applicationID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ReviewRepository) Create(ctx context.Context, m *model.ReviewModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// UpdateHalf hanya menulis kolom milik satu sisi; sisi lain tidak ikut di-UPDATE.
func (r *ReviewRepository) UpdateHalf(ctx context.Context, id uuid.UUID, reviewType string, rating float64, comment *string, at time.Time) error {
	prefix := "review_student_"
	if reviewType == model.ReviewTypeEmployer {
		prefix = "review_employer_"
	}
	return r.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("review_id = ?", id).
		Updates(map[string]any{
			prefix + "rating":      rating,
			prefix + "comment":     comment,
			prefix + "reviewed_at": at,
			"review_updated_at":    at,
		}).Error
}

type averageRow struct {
	Average float64
	Count   int64
}

// student dinilai oleh employer (employer_rating), employer dinilai oleh student
const (
	averageForStudentSQL  = `SELECT COALESCE(ROUND(AVG(review_employer_rating)::numeric, 1), 0)::float8 AS average, COUNT(review_employer_rating) AS count FROM reviews WHERE review_student_id = ?`
	averageForEmployerSQL = `SELECT COALESCE(ROUND(AVG(review_student_rating)::numeric, 1), 0)::float8 AS average, COUNT(review_student_rating) AS count FROM reviews WHERE review_employer_id = ?`
)

// Average: rata-rata rating dari pihak lawan, dibulatkan satu desimal, 0 kalau belum ada.
func (r *ReviewRepository) Average(ctx context.Context, subjectID uuid.UUID, subjectRole string) (float64, int64, error) {
	query := averageForStudentSQL
	if subjectRole == dto.SubjectEmployer {
		query = averageForEmployerSQL
	}
	var row averageRow
	if err := r.db.WithContext(ctx).Raw(query, subjectID).Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Average, row.Count, nil
}

func (r *ReviewRepository) List(ctx context.Context, f dto.ListFilter, p helper.Paging) ([]model.ReviewModel, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.ReviewModel{})
	if f.StudentID != nil {
		tx = tx.Where("review_student_id = ?", *f.StudentID)
	}
	if f.EmployerID != nil {
		tx = tx.Where("review_employer_id = ?", *f.EmployerID)
	}
	if f.ApplicationID != nil {
		tx = tx.Where("review_application_id = ?", *f.ApplicationID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.ReviewModel
	if err := tx.Order("review_updated_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
