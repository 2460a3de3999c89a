package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shiftlink_backend/internals/features/employers/verifications/dto"
	"shiftlink_backend/internals/features/employers/verifications/model"
	profileModel "shiftlink_backend/internals/features/users/profiles/model"
	helper "shiftlink_backend/internals/helpers"
)

type VerificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) HasPending(ctx context.Context, employerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).
		Raw(`SELECT EXISTS(SELECT 1 FROM verification_requests WHERE verification_employer_id = ? AND verification_status = ?)`,
			employerID, model.VerificationPending).
		Scan(&exists).Error
	return exists, err
}

func (r *VerificationRepository) Create(ctx context.Context, m *model.VerificationRequestModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *VerificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.VerificationRequestModel, error) {
	var m model.VerificationRequestModel
	if err := r.db.WithContext(ctx).Where("verification_id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Decide mengunci baris request, menulis keputusan, dan saat APPROVED ikut
// menandai employer terverifikasi. Keduanya berhasil atau tidak sama sekali.
func (r *VerificationRepository) Decide(ctx context.Context, id uuid.UUID, status string, note *string, by uuid.UUID, at time.Time) (*model.VerificationRequestModel, error) {
	var out model.VerificationRequestModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("verification_id = ?", id).
			First(&out).Error; err != nil {
			return err
		}
		if out.Status != model.VerificationPending {
			return model.ErrNotPending
		}

		if err := tx.Model(&model.VerificationRequestModel{}).
			Where("verification_id = ?", id).
			Updates(map[string]any{
				"verification_status":      status,
				"verification_admin_note":  note,
				"verification_reviewed_by": by,
				"verification_reviewed_at": at,
				"verification_updated_at":  at,
			}).Error; err != nil {
			return err
		}

		if status == model.VerificationApproved {
			if err := tx.Model(&profileModel.EmployerModel{}).
				Where("employer_id = ?", out.EmployerID).
				Updates(map[string]any{
					"employer_is_verified": true,
					"employer_updated_at":  at,
				}).Error; err != nil {
				return err
			}
		}

		out.Status, out.AdminNote, out.ReviewedBy, out.ReviewedAt, out.UpdatedAt = status, note, &by, &at, at
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *VerificationRepository) List(ctx context.Context, f dto.ListFilter, p helper.Paging) ([]model.VerificationRequestModel, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.VerificationRequestModel{})
	if f.Status != nil {
		tx = tx.Where("verification_status = ?", *f.Status)
	}
	if f.EmployerID != nil {
		tx = tx.Where("verification_employer_id = ?", *f.EmployerID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.VerificationRequestModel
	if err := tx.Order("verification_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
