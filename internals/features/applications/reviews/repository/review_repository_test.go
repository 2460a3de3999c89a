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

	"shiftlink_backend/internals/features/applications/reviews/dto"
	"shiftlink_backend/internals/features/applications/reviews/model"
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

func TestAverage_StudentSubjectUsesEmployerRatings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)
	studentID := uuid.New()

	mock.ExpectQuery(`ROUND\(AVG\(review_employer_rating\)::numeric, 1\).+FROM reviews WHERE review_student_id = `).
		WithArgs(studentID).
		WillReturnRows(sqlmock.NewRows([]string{"average", "count"}).AddRow(4.3, 3))

	avg, n, err := repo.Average(context.Background(), studentID, dto.SubjectStudent)
	require.NoError(t, err)
	assert.Equal(t, 4.3, avg)
	assert.EqualValues(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAverage_EmployerSubjectWithoutReviews(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)
	employerID := uuid.New()

	mock.ExpectQuery(`AVG\(review_student_rating\).+FROM reviews WHERE review_employer_id = `).
		WithArgs(employerID).
		WillReturnRows(sqlmock.NewRows([]string{"average", "count"}).AddRow(0.0, 0))

	avg, n, err := repo.Average(context.Background(), employerID, dto.SubjectEmployer)
	require.NoError(t, err)
	assert.Zero(t, avg)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAverage_ExactQueryPerRole(t *testing.T) {
	cases := []struct {
		role string
		sql  string
	}{
		{dto.SubjectStudent, `SELECT COALESCE(ROUND(AVG(review_employer_rating)::numeric, 1), 0)::float8 AS average, COUNT(review_employer_rating) AS count FROM reviews WHERE review_student_id = $1`},
		{dto.SubjectEmployer, `SELECT COALESCE(ROUND(AVG(review_student_rating)::numeric, 1), 0)::float8 AS average, COUNT(review_student_rating) AS count FROM reviews WHERE review_employer_id = $1`},
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			t.Cleanup(func() { _ = sqlDB.Close() })
			db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
			require.NoError(t, err)

			subject := uuid.New()
			mock.ExpectQuery(tc.sql).
				WithArgs(subject).
				WillReturnRows(sqlmock.NewRows([]string{"average", "count"}).AddRow(4.0, 3))

			avg, n, err := NewReviewRepository(db).Average(context.Background(), subject, tc.role)
			require.NoError(t, err)
			assert.Equal(t, 4.0, avg)
			assert.EqualValues(t, 3, n)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateHalf_TouchesOnlyOneSide(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectExec(`UPDATE "reviews" SET "review_student_comment"=.+,"review_student_rating"=.+,"review_student_reviewed_at"=.+,"review_updated_at"=.+ WHERE review_id = `).
		WillReturnResult(sqlmock.NewResult(0, 1))

	comment := "fair boss"
	err := repo.UpdateHalf(context.Background(), uuid.New(), model.ReviewTypeStudent, 4, &comment, time.Now())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_FiltersByStudent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)
	studentID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "reviews" WHERE review_student_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "reviews" WHERE review_student_id = .+ORDER BY review_updated_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"review_id", "review_application_id", "review_student_id", "review_employer_id", "review_employer_rating"}).
			AddRow(uuid.NewString(), uuid.NewString(), studentID.String(), uuid.NewString(), 5.0))

	rows, total, err := repo.List(context.Background(), dto.ListFilter{StudentID: &studentID}, helper.Paging{Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].HasEmployerReview())
	assert.False(t, rows[0].HasStudentReview())
	assert.NoError(t, mock.ExpectationsWereMet())
}
