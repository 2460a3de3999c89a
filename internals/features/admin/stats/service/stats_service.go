package service

import (
	"context"

	"shiftlink_backend/internals/features/admin/stats/dto"
	"shiftlink_backend/internals/helpers/apperr"
	helperAuth "shiftlink_backend/internals/helpers/auth"
)

type Store interface {
	Counts(ctx context.Context) (*dto.StatsResponse, error)
}

type StatsService struct {
	store Store
}

func NewStatsService(store Store) *StatsService {
	return &StatsService{store: store}
}

func (s *StatsService) Get(ctx context.Context, actor helperAuth.Actor) (*dto.StatsResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Forbidden("only admins can view platform stats")
	}
	out, err := s.store.Counts(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to load stats", err)
	}
	return out, nil
}
