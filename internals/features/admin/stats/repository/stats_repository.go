package repository

import (
	"context"

	"gorm.io/gorm"

	"shiftlink_backend/internals/features/admin/stats/dto"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

const statsQuery = `
SELECT
  (SELECT COUNT(*) FROM users WHERE role = 'student')  AS students,
  (SELECT COUNT(*) FROM users WHERE role = 'employer') AS employers,
  (SELECT COUNT(*) FROM users WHERE role = 'admin')    AS admins,
  (SELECT COUNT(*) FROM jobs WHERE job_is_active AND job_deleted_at IS NULL) AS active_jobs,
  (SELECT COUNT(*) FROM applications WHERE application_status = 'PENDING')  AS pending,
  (SELECT COUNT(*) FROM applications WHERE application_status = 'APPROVED') AS approved,
  (SELECT COUNT(*) FROM applications WHERE application_status = 'REJECTED') AS rejected,
  (SELECT COUNT(*) FROM applications WHERE application_is_completed)        AS completed,
  (SELECT COUNT(*) FROM reviews) AS reviews,
  (SELECT COUNT(*) FROM employers WHERE employer_is_flagged) AS flagged_employers,
  (SELECT COUNT(*) FROM verification_requests WHERE verification_status = 'PENDING') AS pending_verifications`

type statsRow struct {
	Students             int64
	Employers            int64
	Admins               int64
	ActiveJobs           int64
	Pending              int64
	Approved             int64
	Rejected             int64
	Completed            int64
	Reviews              int64
	FlaggedEmployers     int64
	PendingVerifications int64
}

// Counts: satu round-trip dengan subquery skalar.
func (r *StatsRepository) Counts(ctx context.Context) (*dto.StatsResponse, error) {
	var row statsRow
	if err := r.db.WithContext(ctx).Raw(statsQuery).Scan(&row).Error; err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		Users: dto.UserCounts{
			Students:  row.Students,
			Employers: row.Employers,
			Admins:    row.Admins,
			Total:     row.Students + row.Employers + row.Admins,
		},
		ActiveJobs: row.ActiveJobs,
		Applications: dto.ApplicationCounts{
			Pending:   row.Pending,
			Approved:  row.Approved,
			Rejected:  row.Rejected,
			Completed: row.Completed,
			Total:     row.Pending + row.Approved + row.Rejected,
		},
		Reviews:              row.Reviews,
		FlaggedEmployers:     row.FlaggedEmployers,
		PendingVerifications: row.PendingVerifications,
	}, nil
}
