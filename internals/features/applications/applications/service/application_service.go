package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"shiftlink_backend/internals/features/applications/applications/dto"
	"shiftlink_backend/internals/features/applications/applications/model"
	jobModel "shiftlink_backend/internals/features/jobs/jobs/model"
	helper "shiftlink_backend/internals/helpers"
	"shiftlink_backend/internals/helpers/apperr"
	helperAuth "shiftlink_backend/internals/helpers/auth"
	"shiftlink_backend/internals/logger"
	"shiftlink_backend/internals/metrics"
)

type Store interface {
	FindJob(ctx context.Context, jobID uuid.UUID) (*jobModel.JobModel, error)
	ExistsForJobAndStudent(ctx context.Context, jobID, studentID uuid.UUID) (bool, error)
	Create(ctx context.Context, m *model.ApplicationModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ApplicationModel, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to model.Status, completedAt *time.Time) (bool, error)
	SetCompletion(ctx context.Context, id uuid.UUID, completed bool, at *time.Time) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f dto.ListFilter, p helper.Paging) ([]model.ApplicationModel, int64, error)
}

type ApplicationService struct {
	store Store
	log   logger.Logger
	now   func() time.Time
}

func NewApplicationService(store Store, log logger.Logger) *ApplicationService {
	return &ApplicationService{store: store, log: log, now: time.Now}
}

var errDuplicate = apperr.Conflict("you have already applied to this job")

/* =========================
   Submit
========================= */

func (s *ApplicationService) Submit(ctx context.Context, actor helperAuth.Actor, req dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if !actor.IsStudent() {
		return nil, apperr.Forbidden("only students can apply for jobs")
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	job, err := s.store.FindJob(ctx, req.JobID)
	if err != nil {
		if helper.IsNotFound(err) {
			// jobId berasal dari body, jadi 400 bukan 404
			return nil, apperr.NotFound("job not found").WithStatus(http.StatusBadRequest)
		}
		return nil, apperr.Internal("failed to load job", err)
	}
	if !job.IsActive {
		return nil, apperr.InvalidState("job is not accepting applications")
	}

	studentID := *actor.StudentID
	exists, err := s.store.ExistsForJobAndStudent(ctx, job.ID, studentID)
	if err != nil {
		return nil, apperr.Internal("failed to check existing application", err)
	}
	if exists {
		return nil, errDuplicate
	}

	m := &model.ApplicationModel{
		JobID:     job.ID,
		StudentID: studentID,
		Status:    model.StatusPending,
		Notes:     req.Notes,
		AppliedAt: s.now(),
	}
	if err := s.store.Create(ctx, m); err != nil {
		// dua request bersamaan lolos pre-check, unique index yang menangkap
		if helper.IsUniqueViolation(err) {
			return nil, errDuplicate
		}
		return nil, apperr.Internal("failed to create application", err)
	}

	metrics.ApplicationsSubmitted.Inc()
	s.log.Info("application submitted", map[string]interface{}{
		"application_id": m.ID.String(),
		"job_id":         job.ID.String(),
		"student_id":     studentID.String(),
	})
	out := dto.FromModel(m)
	return &out, nil
}

/* =========================
   Update (status / completion)
========================= */

// Update: semua pengecekan dijalankan terhadap status tujuan sebelum ada yang ditulis,
// jadi request yang gagal tidak meninggalkan perubahan setengah jalan.
func (s *ApplicationService) Update(ctx context.Context, actor helperAuth.Actor, id uuid.UUID, req dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.ownsJob(actor, m) {
		return nil, apperr.Forbidden("only the job owner can update this application")
	}

	target := m.Status
	if req.Status.Set() {
		if target, err = planStatus(m.Status, *req.Status.Value); err != nil {
			return nil, err
		}
	}
	if req.IsCompleted.Set() && *req.IsCompleted.Value && target != model.StatusApproved {
		return nil, apperr.InvalidState("only approved applications can be completed")
	}

	completing := req.IsCompleted.Set() && *req.IsCompleted.Value
	if target != m.Status {
		// status baru + selesai ditulis dalam satu UPDATE
		if err := s.setStatus(ctx, m, target, completing); err != nil {
			return nil, err
		}
	}
	if req.IsCompleted.Set() {
		if err := s.markCompleted(ctx, m, *req.IsCompleted.Value); err != nil {
			return nil, err
		}
	}

	fresh, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(fresh)
	return &out, nil
}

// planStatus memvalidasi status baru tanpa menulis apa pun.
func planStatus(cur model.Status, raw string) (model.Status, error) {
	next := model.Status(strings.ToUpper(strings.TrimSpace(raw)))
	if next != model.StatusApproved && next != model.StatusRejected {
		return cur, apperr.InvalidInput("status must be APPROVED or REJECTED", map[string]string{"status": "oneof=APPROVED REJECTED"})
	}
	if next != cur && cur != model.StatusPending {
		return cur, apperr.InvalidState("status transition not supported")
	}
	return next, nil
}

// SetStatus: hanya PENDING -> APPROVED / REJECTED, status yang sama adalah no-op.
func (s *ApplicationService) SetStatus(ctx context.Context, actor helperAuth.Actor, id uuid.UUID, status string) (*dto.ApplicationResponse, error) {
	return s.Update(ctx, actor, id, dto.UpdateApplicationRequest{Status: helper.PatchField[string]{Present: true, Value: &status}})
}

func (s *ApplicationService) MarkCompleted(ctx context.Context, actor helperAuth.Actor, id uuid.UUID, completed bool) (*dto.ApplicationResponse, error) {
	return s.Update(ctx, actor, id, dto.UpdateApplicationRequest{IsCompleted: helper.PatchField[bool]{Present: true, Value: &completed}})
}

func (s *ApplicationService) setStatus(ctx context.Context, m *model.ApplicationModel, next model.Status, complete bool) error {
	var completedAt *time.Time
	if complete {
		now := s.now()
		completedAt = &now
	}
	ok, err := s.store.TransitionStatus(ctx, m.ID, m.Status, next, completedAt)
	if err != nil {
		return apperr.Internal("failed to update status", err)
	}
	if !ok {
		// kalah balapan dengan request lain; baca ulang untuk keputusan yang benar
		cur, err := s.load(ctx, m.ID)
		if err != nil {
			return err
		}
		if cur.Status == next {
			*m = *cur
			return nil
		}
		return apperr.InvalidState("status transition not supported")
	}

	metrics.ApplicationTransitions.WithLabelValues(string(next)).Inc()
	s.log.Info("application status changed", map[string]interface{}{
		"application_id": m.ID.String(),
		"from":           string(m.Status),
		"to":             string(next),
		"completed":      complete,
	})
	m.Status = next
	if completedAt != nil {
		m.IsCompleted, m.CompletedAt = true, completedAt
		metrics.ApplicationTransitions.WithLabelValues("COMPLETED").Inc()
	}
	return nil
}

func (s *ApplicationService) markCompleted(ctx context.Context, m *model.ApplicationModel, completed bool) error {
	if completed {
		if m.Status != model.StatusApproved {
			return apperr.InvalidState("only approved applications can be completed")
		}
		if m.IsCompleted {
			return nil
		}
		now := s.now()
		ok, err := s.store.SetCompletion(ctx, m.ID, true, &now)
		if err != nil {
			return apperr.Internal("failed to update completion", err)
		}
		if !ok {
			return apperr.InvalidState("only approved applications can be completed")
		}
		m.IsCompleted, m.CompletedAt = true, &now
		metrics.ApplicationTransitions.WithLabelValues("COMPLETED").Inc()
		return nil
	}

	if !m.IsCompleted && m.CompletedAt == nil {
		return nil
	}
	if _, err := s.store.SetCompletion(ctx, m.ID, false, nil); err != nil {
		return apperr.Internal("failed to update completion", err)
	}
	m.IsCompleted, m.CompletedAt = false, nil
	metrics.ApplicationTransitions.WithLabelValues("UNCOMPLETED").Inc()
	return nil
}

/* =========================
   Delete
========================= */

func (s *ApplicationService) Delete(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) error {
	m, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsStudentID(m.StudentID) && !s.ownsJob(actor, m) {
		return apperr.Forbidden("you cannot delete this application")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete application", err)
	}
	s.log.Info("application deleted", map[string]interface{}{
		"application_id": id.String(),
		"by":             actor.UserID.String(),
	})
	return nil
}

/* =========================
   Read
========================= */

// ScopeFilter memaksa visibilitas sesuai peran: student miliknya, employer lowongannya, admin semua.
func ScopeFilter(actor helperAuth.Actor, f dto.ListFilter) (dto.ListFilter, error) {
	switch {
	case actor.IsAdmin():
		return f, nil
	case actor.IsEmployer():
		f.EmployerID = actor.EmployerID
		f.StudentID = nil
		return f, nil
	case actor.IsStudent():
		f.StudentID = actor.StudentID
		f.EmployerID = nil
		return f, nil
	default:
		return f, apperr.Forbidden("no profile attached to this account")
	}
}

func (s *ApplicationService) List(ctx context.Context, actor helperAuth.Actor, f dto.ListFilter, p helper.Paging) ([]model.ApplicationModel, int64, error) {
	scoped, err := ScopeFilter(actor, f)
	if err != nil {
		return nil, 0, err
	}
	rows, total, err := s.store.List(ctx, scoped, p)
	if err != nil {
		return nil, 0, apperr.Internal("failed to list applications", err)
	}
	return rows, total, nil
}

func (s *ApplicationService) Get(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) (*dto.ApplicationResponse, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsStudentID(m.StudentID) && !s.ownsJob(actor, m) {
		return nil, apperr.Forbidden("you cannot view this application")
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *ApplicationService) load(ctx context.Context, id uuid.UUID) (*model.ApplicationModel, error) {
	m, err := s.store.GetByID(ctx, id)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("application not found")
		}
		return nil, apperr.Internal("failed to load application", err)
	}
	return m, nil
}

// ownsJob: admin, atau employer pemilik lowongan.
func (s *ApplicationService) ownsJob(actor helperAuth.Actor, m *model.ApplicationModel) bool {
	if actor.IsAdmin() {
		return true
	}
	return m.Job != nil && actor.OwnsEmployer(m.Job.EmployerID)
}
