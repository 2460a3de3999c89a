package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	profileModel "shiftlink_backend/internals/features/users/profiles/model"
	helper "shiftlink_backend/internals/helpers"
)

type FlagRepository struct {
	db *gorm.DB
}

func NewFlagRepository(db *gorm.DB) *FlagRepository {
	return &FlagRepository{db: db}
}

func (r *FlagRepository) GetEmployer(ctx context.Context, id uuid.UUID) (*profileModel.EmployerModel, error) {
	var m profileModel.EmployerModel
	if err := r.db.WithContext(ctx).Where("employer_id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// SetFlag menimpa alasan sebelumnya; flag terakhir yang tercatat.
func (r *FlagRepository) SetFlag(ctx context.Context, id uuid.UUID, reason string, by uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&profileModel.EmployerModel{}).
		Where("employer_id = ?", id).
		Updates(map[string]any{
			"employer_is_flagged":  true,
			"employer_flag_reason": reason,
			"employer_flagged_at":  at,
			"employer_flagged_by":  by,
		}).Error
}

func (r *FlagRepository) ClearFlag(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&profileModel.EmployerModel{}).
		Where("employer_id = ?", id).
		Updates(map[string]any{
			"employer_is_flagged":  false,
			"employer_flag_reason": nil,
			"employer_flagged_at":  nil,
			"employer_flagged_by":  nil,
		}).Error
}

func (r *FlagRepository) ListFlagged(ctx context.Context, p helper.Paging) ([]profileModel.EmployerModel, int64, error) {
	tx := r.db.WithContext(ctx).Model(&profileModel.EmployerModel{}).Where("employer_is_flagged = ?", true)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []profileModel.EmployerModel
	if err := tx.Order("employer_flagged_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
