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

	"shiftlink_backend/internals/features/jobs/jobs/dto"
	helper "shiftlink_backend/internals/helpers"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestList_AppliesFiltersAndPreloadsEmployer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db)

	jobID, employerID := uuid.New(), uuid.New()
	minRate := 25.0
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs" WHERE job_is_active = .+ AND job_title ILIKE .+ AND job_hourly_rate >= .+ AND .+ = ANY\(job_tags\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT \* FROM "jobs" WHERE .+ORDER BY job_created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{
			"job_id", "job_employer_id", "job_title", "job_description", "job_location",
			"job_hourly_rate", "job_type", "job_tags", "job_is_active", "job_created_at", "job_updated_at",
		}).AddRow(jobID.String(), employerID.String(), "Barista", "Weekend shifts", "Sydney",
			28.5, "PART_TIME", "{coffee,weekend}", true, now, now))

	mock.ExpectQuery(`SELECT \* FROM "employers" WHERE "employers"."employer_id" = `).
		WillReturnRows(sqlmock.NewRows([]string{"employer_id", "employer_user_id", "employer_company_name", "employer_is_verified"}).
			AddRow(employerID.String(), uuid.NewString(), "Bean There", true))

	rows, total, err := repo.List(context.Background(), dto.ListJobsQuery{
		Q:       "barista",
		MinRate: &minRate,
		Tag:     "coffee",
	}, helper.Paging{Page: 1, PerPage: 20, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"coffee", "weekend"}, []string(rows[0].Tags))
	require.NotNil(t, rows[0].Employer)
	assert.Equal(t, "Bean There", rows[0].Employer.CompanyName)

	out := dto.FromModel(&rows[0])
	assert.True(t, out.EmployerVerified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EscapesLikeWildcards(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs" WHERE job_is_active = .+ AND job_title ILIKE .+ ESCAPE '\\' AND job_location ILIKE .+ ESCAPE '\\'`).
		WithArgs(true, `%50\%%`, `%north\_side%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "jobs" WHERE .+ORDER BY job_created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"job_id"}))

	rows, total, err := repo.List(context.Background(), dto.ListJobsQuery{
		Q:        "50%",
		Location: "north_side",
	}, helper.Paging{Page: 1, PerPage: 20, Limit: 20})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
