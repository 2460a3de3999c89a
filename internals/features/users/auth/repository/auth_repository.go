// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "shiftlink_backend/internals/features/users/auth/model"
	profileModel "shiftlink_backend/internals/features/users/profiles/model"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

/* ====================== USER ====================== */

func (r *AuthRepository) FindUserByEmail(ctx context.Context, email string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindProfileIDs: id student / employer milik user (nil kalau tidak ada).
func (r *AuthRepository) FindProfileIDs(ctx context.Context, userID uuid.UUID) (*uuid.UUID, *uuid.UUID, error) {
	var student profileModel.StudentModel
	var studentID, employerID *uuid.UUID

	err := r.db.WithContext(ctx).Select("student_id").Where("student_user_id = ?", userID).Take(&student).Error
	switch {
	case err == nil:
		studentID = &student.ID
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil, err
	}

	var employer profileModel.EmployerModel
	err = r.db.WithContext(ctx).Select("employer_id").Where("employer_user_id = ?", userID).Take(&employer).Error
	switch {
	case err == nil:
		employerID = &employer.ID
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil, err
	}
	return studentID, employerID, nil
}

// CreateAccount menyimpan user + profil dalam satu transaksi.
func (r *AuthRepository) CreateAccount(ctx context.Context, user *authModel.UserModel, student *profileModel.StudentModel, employer *profileModel.EmployerModel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if student != nil {
			student.UserID = user.ID
			if err := tx.Create(student).Error; err != nil {
				return err
			}
		}
		if employer != nil {
			employer.UserID = user.ID
			if err := tx.Create(employer).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

/* ====================== REVOKED TOKENS ====================== */

// RevokeToken: logout dua kali tidak error, expires_at ikut diperbarui.
func (r *AuthRepository) RevokeToken(ctx context.Context, t *authModel.RevokedTokenModel) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"expires_at"}),
		}).
		Create(t).Error
}

func (r *AuthRepository) IsTokenRevoked(ctx context.Context, digest string) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
		  SELECT 1 FROM revoked_tokens
		  WHERE token = ? AND expires_at > NOW()
		)`, digest).Scan(&exists).Error
	return exists, err
}

// PurgeExpiredTokens menghapus digest yang token aslinya sudah kedaluwarsa.
func (r *AuthRepository) PurgeExpiredTokens(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", before).Delete(&authModel.RevokedTokenModel{})
	return res.RowsAffected, res.Error
}
