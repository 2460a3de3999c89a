package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestCounts(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT\s+\(SELECT COUNT\(\*\) FROM users WHERE role = 'student'\)`).
		WillReturnRows(sqlmock.NewRows([]string{
			"students", "employers", "admins", "active_jobs", "pending", "approved", "rejected",
			"completed", "reviews", "flagged_employers", "pending_verifications",
		}).AddRow(10, 4, 1, 7, 3, 5, 2, 4, 6, 1, 2))

	out, err := NewStatsRepository(db).Counts(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 15, out.Users.Total)
	assert.EqualValues(t, 7, out.ActiveJobs)
	assert.EqualValues(t, 10, out.Applications.Total)
	assert.EqualValues(t, 4, out.Applications.Completed)
	assert.EqualValues(t, 6, out.Reviews)
	assert.EqualValues(t, 1, out.FlaggedEmployers)
	assert.EqualValues(t, 2, out.PendingVerifications)
	assert.NoError(t, mock.ExpectationsWereMet())
}
