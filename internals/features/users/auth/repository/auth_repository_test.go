package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authModel "shiftlink_backend/internals/features/users/auth/model"
)

func newMockRepo(t *testing.T) (*AuthRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return NewAuthRepository(db), mock
}

func TestRevokeToken_Upserts(t *testing.T) {
	repo, mock := newMockRepo(t)
	exp := time.Now().Add(time.Hour)

	mock.ExpectExec(`INSERT INTO "revoked_tokens" .* ON CONFLICT \("token"\) DO UPDATE SET "expires_at"="excluded"."expires_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RevokeToken(context.Background(), &authModel.RevokedTokenModel{
		Token: "digest", UserID: uuid.NewString(), ExpiresAt: exp,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsTokenRevoked(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT EXISTS \(\s*SELECT 1 FROM revoked_tokens`).
		WithArgs("digest").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.IsTokenRevoked(context.Background(), "digest")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeExpiredTokens(t *testing.T) {
	repo, mock := newMockRepo(t)
	before := time.Now()

	mock.ExpectExec(`DELETE FROM "revoked_tokens" WHERE expires_at <= \$1`).
		WithArgs(before).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.PurgeExpiredTokens(context.Background(), before)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
