package database

import (
	"fmt"

	"gorm.io/gorm"

	appModel "shiftlink_backend/internals/features/applications/applications/model"
	reviewModel "shiftlink_backend/internals/features/applications/reviews/model"
	verificationModel "shiftlink_backend/internals/features/employers/verifications/model"
	jobModel "shiftlink_backend/internals/features/jobs/jobs/model"
	userModel "shiftlink_backend/internals/features/users/auth/model"
	profileModel "shiftlink_backend/internals/features/users/profiles/model"
	"shiftlink_backend/internals/logger"
)

// index yang tidak bisa diekspresikan lewat tag GORM (partial / GIN)
var extraDDL = []string{
	// relasi has-one: GORM tidak membuat FK di tabel anak, review ikut terhapus bersama application
	`DO $$ BEGIN
	   IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_applications_review') THEN
	     ALTER TABLE reviews ADD CONSTRAINT fk_applications_review
	       FOREIGN KEY (review_application_id) REFERENCES applications (application_id) ON DELETE CASCADE;
	   END IF;
	 END $$`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_verification_pending_employer
	   ON verification_requests (verification_employer_id)
	   WHERE verification_status = 'PENDING'`,
	`CREATE INDEX IF NOT EXISTS ix_jobs_tags ON jobs USING GIN (job_tags)`,
	`CREATE INDEX IF NOT EXISTS ix_applications_job_applied
	   ON applications (application_job_id, application_applied_at DESC)`,
}

// Migrate: AutoMigrate tabel domain lalu DDL tambahan. Urutan mengikuti foreign key.
func Migrate(db *gorm.DB, log logger.Logger) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Warn("pgcrypto extension not created", map[string]interface{}{"error": err.Error()})
	}

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.RevokedTokenModel{},
		&profileModel.StudentModel{},
		&profileModel.EmployerModel{},
		&jobModel.JobModel{},
		&appModel.ApplicationModel{},
		&reviewModel.ReviewModel{},
		&verificationModel.VerificationRequestModel{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	for _, stmt := range extraDDL {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate ddl: %w", err)
		}
	}
	log.Info("schema migrated", nil)
	return nil
}
