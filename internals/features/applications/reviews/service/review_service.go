package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	appModel "shiftlink_backend/internals/features/applications/applications/model"
	"shiftlink_backend/internals/features/applications/reviews/dto"
	"shiftlink_backend/internals/features/applications/reviews/model"
	helper "shiftlink_backend/internals/helpers"
	"shiftlink_backend/internals/helpers/apperr"
	helperAuth "shiftlink_backend/internals/helpers/auth"
	"shiftlink_backend/internals/logger"
	"shiftlink_backend/internals/metrics"
)

type Store interface {
	GetApplication(ctx context.Context, id uuid.UUID) (*appModel.ApplicationModel, error)
	FindByApplication(ctx context.Context, applicationID uuid.UUID) (*model.ReviewModel, error)
	Create(ctx context.Context, m *model.ReviewModel) error
	UpdateHalf(ctx context.Context, id uuid.UUID, reviewType string, rating float64, comment *string, at time.Time) error
	Average(ctx context.Context, subjectID uuid.UUID, subjectRole string) (float64, int64, error)
	List(ctx context.Context, f dto.ListFilter, p helper.Paging) ([]model.ReviewModel, int64, error)
}

type ReviewService struct {
	store Store
	log   logger.Logger
	now   func() time.Time
}

func NewReviewService(store Store, log logger.Logger) *ReviewService {
	return &ReviewService{store: store, log: log, now: time.Now}
}

/* =========================
   Submit
========================= */

// Submit menulis satu sisi review untuk application yang sudah selesai.
// Baris review dibuat saat sisi pertama masuk; sisi kedua hanya meng-update kolomnya sendiri.
func (s *ReviewService) Submit(ctx context.Context, actor helperAuth.Actor, req dto.SubmitReviewRequest) (*dto.ReviewResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	app, err := s.store.GetApplication(ctx, req.ApplicationID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("application not found")
		}
		return nil, apperr.Internal("failed to load application", err)
	}
	if app.Job == nil {
		return nil, apperr.Internal("application has no job", nil)
	}
	employerID := app.Job.EmployerID

	if !app.IsCompleted {
		return nil, apperr.InvalidState("only completed applications can be reviewed")
	}
	switch req.Type {
	case model.ReviewTypeStudent:
		if !actor.IsStudentID(app.StudentID) {
			return nil, apperr.Forbidden("only the applicant can review the employer")
		}
	case model.ReviewTypeEmployer:
		if !actor.OwnsEmployer(employerID) {
			return nil, apperr.Forbidden("only the job owner can review the student")
		}
	}

	rating := *req.Rating
	now := s.now()

	existing, err := s.store.FindByApplication(ctx, app.ID)
	switch {
	case err == nil:
		if err := s.store.UpdateHalf(ctx, existing.ID, req.Type, rating, req.Comment, now); err != nil {
			return nil, apperr.Internal("failed to update review", err)
		}
	case helper.IsNotFound(err):
		m := &model.ReviewModel{ApplicationID: app.ID, StudentID: app.StudentID, EmployerID: employerID}
		m.SetHalf(req.Type, rating, req.Comment, now)
		if err := s.store.Create(ctx, m); err != nil {
			if !helper.IsUniqueViolation(err) {
				return nil, apperr.Internal("failed to create review", err)
			}
			// pihak lain membuat baris lebih dulu; tulis sisi kita di atasnya
			other, ferr := s.store.FindByApplication(ctx, app.ID)
			if ferr != nil {
				return nil, apperr.Internal("failed to load review", ferr)
			}
			if err := s.store.UpdateHalf(ctx, other.ID, req.Type, rating, req.Comment, now); err != nil {
				return nil, apperr.Internal("failed to update review", err)
			}
		}
	default:
		return nil, apperr.Internal("failed to load review", err)
	}

	fresh, err := s.store.FindByApplication(ctx, app.ID)
	if err != nil {
		return nil, apperr.Internal("failed to load review", err)
	}

	metrics.ReviewsSubmitted.WithLabelValues(req.Type).Inc()
	s.log.Info("review submitted", map[string]interface{}{
		"application_id": app.ID.String(),
		"type":           req.Type,
		"rating":         rating,
	})
	out := dto.FromModel(fresh)
	return &out, nil
}

/* =========================
   Read
========================= */

// Average tidak di-cache; dihitung ulang setiap request.
func (s *ReviewService) Average(ctx context.Context, subjectID uuid.UUID, role string) (*dto.AverageResponse, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if role != dto.SubjectStudent && role != dto.SubjectEmployer {
		return nil, apperr.InvalidInput("role must be student or employer", map[string]string{"role": "oneof=student employer"})
	}
	if subjectID == uuid.Nil {
		return nil, apperr.InvalidInput("subjectId is required", map[string]string{"subjectId": "required"})
	}
	avg, n, err := s.store.Average(ctx, subjectID, role)
	if err != nil {
		return nil, apperr.Internal("failed to compute average rating", err)
	}
	return &dto.AverageResponse{SubjectID: subjectID, Role: role, Average: dto.RoundRating(avg), Count: n}, nil
}

// ScopeFilter: student hanya review miliknya, employer review untuk dirinya, admin semua.
func ScopeFilter(actor helperAuth.Actor, f dto.ListFilter) (dto.ListFilter, error) {
	switch {
	case actor.IsAdmin():
		return f, nil
	case actor.IsEmployer():
		f.EmployerID = actor.EmployerID
		return f, nil
	case actor.IsStudent():
		f.StudentID = actor.StudentID
		return f, nil
	default:
		return f, apperr.Forbidden("no profile attached to this account")
	}
}

func (s *ReviewService) List(ctx context.Context, actor helperAuth.Actor, f dto.ListFilter, p helper.Paging) ([]dto.ReviewResponse, int64, error) {
	scoped, err := ScopeFilter(actor, f)
	if err != nil {
		return nil, 0, err
	}
	rows, total, err := s.store.List(ctx, scoped, p)
	if err != nil {
		return nil, 0, apperr.Internal("failed to list reviews", err)
	}
	return dto.FromModels(rows), total, nil
}
