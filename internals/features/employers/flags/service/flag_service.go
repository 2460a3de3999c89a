package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shiftlink_backend/internals/features/employers/flags/dto"
	profileModel "shiftlink_backend/internals/features/users/profiles/model"
	helper "shiftlink_backend/internals/helpers"
	"shiftlink_backend/internals/helpers/apperr"
	helperAuth "shiftlink_backend/internals/helpers/auth"
	"shiftlink_backend/internals/logger"
	"shiftlink_backend/internals/metrics"
)

type Store interface {
	GetEmployer(ctx context.Context, id uuid.UUID) (*profileModel.EmployerModel, error)
	SetFlag(ctx context.Context, id uuid.UUID, reason string, by uuid.UUID, at time.Time) error
	ClearFlag(ctx context.Context, id uuid.UUID) error
	ListFlagged(ctx context.Context, p helper.Paging) ([]profileModel.EmployerModel, int64, error)
}

type FlagService struct {
	store Store
	log   logger.Logger
	now   func() time.Time
}

func NewFlagService(store Store, log logger.Logger) *FlagService {
	return &FlagService{store: store, log: log, now: time.Now}
}

// Flag: semua user yang login boleh melaporkan employer; admin yang memutuskan.
func (s *FlagService) Flag(ctx context.Context, actor helperAuth.Actor, employerID uuid.UUID, req dto.FlagRequest) (*dto.EmployerFlagResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, apperr.Unauthorized("unauthorized")
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	if _, err := s.load(ctx, employerID); err != nil {
		return nil, err
	}
	if err := s.store.SetFlag(ctx, employerID, req.Reason, actor.UserID, s.now()); err != nil {
		return nil, apperr.Internal("failed to flag employer", err)
	}

	metrics.EmployerFlags.WithLabelValues("flag").Inc()
	s.log.Warn("employer flagged", map[string]interface{}{
		"employer_id": employerID.String(),
		"by":          actor.UserID.String(),
	})
	return s.reload(ctx, employerID)
}

func (s *FlagService) Unflag(ctx context.Context, actor helperAuth.Actor, employerID uuid.UUID) (*dto.EmployerFlagResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Forbidden("only admins can clear flags")
	}
	if _, err := s.load(ctx, employerID); err != nil {
		return nil, err
	}
	if err := s.store.ClearFlag(ctx, employerID); err != nil {
		return nil, apperr.Internal("failed to unflag employer", err)
	}

	metrics.EmployerFlags.WithLabelValues("unflag").Inc()
	s.log.Info("employer unflagged", map[string]interface{}{
		"employer_id": employerID.String(),
		"by":          actor.UserID.String(),
	})
	return s.reload(ctx, employerID)
}

func (s *FlagService) ListFlagged(ctx context.Context, actor helperAuth.Actor, p helper.Paging) ([]dto.EmployerFlagResponse, int64, error) {
	if !actor.IsAdmin() {
		return nil, 0, apperr.Forbidden("only admins can view flagged employers")
	}
	rows, total, err := s.store.ListFlagged(ctx, p)
	if err != nil {
		return nil, 0, apperr.Internal("failed to list flagged employers", err)
	}
	return dto.FromModels(rows), total, nil
}

func (s *FlagService) load(ctx context.Context, id uuid.UUID) (*profileModel.EmployerModel, error) {
	m, err := s.store.GetEmployer(ctx, id)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("employer not found")
		}
		return nil, apperr.Internal("failed to load employer", err)
	}
	return m, nil
}

func (s *FlagService) reload(ctx context.Context, id uuid.UUID) (*dto.EmployerFlagResponse, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}
