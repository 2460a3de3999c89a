package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"shiftlink_backend/internals/features/employers/verifications/dto"
	"shiftlink_backend/internals/features/employers/verifications/model"
	helper "shiftlink_backend/internals/helpers"
	"shiftlink_backend/internals/helpers/apperr"
	helperAuth "shiftlink_backend/internals/helpers/auth"
	"shiftlink_backend/internals/logger"
	"shiftlink_backend/internals/metrics"
)

type Store interface {
	HasPending(ctx context.Context, employerID uuid.UUID) (bool, error)
	Create(ctx context.Context, m *model.VerificationRequestModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.VerificationRequestModel, error)
	Decide(ctx context.Context, id uuid.UUID, status string, note *string, by uuid.UUID, at time.Time) (*model.VerificationRequestModel, error)
	List(ctx context.Context, f dto.ListFilter, p helper.Paging) ([]model.VerificationRequestModel, int64, error)
}

type VerificationService struct {
	store Store
	log   logger.Logger
	now   func() time.Time
}

func NewVerificationService(store Store, log logger.Logger) *VerificationService {
	return &VerificationService{store: store, log: log, now: time.Now}
}

var errPendingExists = apperr.Conflict("a verification request is already pending")

func (s *VerificationService) Submit(ctx context.Context, actor helperAuth.Actor, req dto.SubmitVerificationRequest) (*dto.VerificationResponse, error) {
	if !actor.IsEmployer() {
		return nil, apperr.Forbidden("only employers can request verification")
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	employerID := *actor.EmployerID
	pending, err := s.store.HasPending(ctx, employerID)
	if err != nil {
		return nil, apperr.Internal("failed to check pending verification", err)
	}
	if pending {
		return nil, errPendingExists
	}

	m := &model.VerificationRequestModel{
		EmployerID: employerID,
		Status:     model.VerificationPending,
		Documents:  datatypes.JSONSlice[model.Document](req.Documents),
	}
	if err := s.store.Create(ctx, m); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, errPendingExists
		}
		return nil, apperr.Internal("failed to create verification request", err)
	}

	s.log.Info("verification requested", map[string]interface{}{
		"verification_id": m.ID.String(),
		"employer_id":     employerID.String(),
		"documents":       len(req.Documents),
	})
	out := dto.FromModel(m)
	return &out, nil
}

// Decide: hanya PENDING -> APPROVED/REJECTED; APPROVED ikut set employer.is_verified di transaksi yang sama.
func (s *VerificationService) Decide(ctx context.Context, actor helperAuth.Actor, id uuid.UUID, req dto.DecideVerificationRequest) (*dto.VerificationResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Forbidden("only admins can decide verification requests")
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	m, err := s.store.Decide(ctx, id, req.Status, req.Note, actor.UserID, s.now())
	if err != nil {
		switch {
		case helper.IsNotFound(err):
			return nil, apperr.NotFound("verification request not found")
		case errors.Is(err, model.ErrNotPending):
			return nil, apperr.InvalidState("verification request already decided")
		default:
			return nil, apperr.Internal("failed to decide verification request", err)
		}
	}

	metrics.VerificationDecisions.WithLabelValues(req.Status).Inc()
	s.log.Info("verification decided", map[string]interface{}{
		"verification_id": id.String(),
		"employer_id":     m.EmployerID.String(),
		"status":          req.Status,
		"by":              actor.UserID.String(),
	})
	out := dto.FromModel(m)
	return &out, nil
}

// List: admin melihat semua, employer hanya request miliknya.
func (s *VerificationService) List(ctx context.Context, actor helperAuth.Actor, f dto.ListFilter, p helper.Paging) ([]dto.VerificationResponse, int64, error) {
	switch {
	case actor.IsAdmin():
	case actor.IsEmployer():
		f.EmployerID = actor.EmployerID
	default:
		return nil, 0, apperr.Forbidden("only admins and employers can view verification requests")
	}
	if f.Status != nil {
		st := strings.ToUpper(strings.TrimSpace(*f.Status))
		switch st {
		case model.VerificationPending, model.VerificationApproved, model.VerificationRejected:
			f.Status = &st
		default:
			return nil, 0, apperr.InvalidInput("invalid status", map[string]string{"status": "oneof=PENDING APPROVED REJECTED"})
		}
	}

	rows, total, err := s.store.List(ctx, f, p)
	if err != nil {
		return nil, 0, apperr.Internal("failed to list verification requests", err)
	}
	return dto.FromModels(rows), total, nil
}

func (s *VerificationService) Get(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) (*dto.VerificationResponse, error) {
	m, err := s.store.GetByID(ctx, id)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("verification request not found")
		}
		return nil, apperr.Internal("failed to load verification request", err)
	}
	if !actor.IsAdmin() && !actor.OwnsEmployer(m.EmployerID) {
		return nil, apperr.Forbidden("you cannot view this verification request")
	}
	out := dto.FromModel(m)
	return &out, nil
}
