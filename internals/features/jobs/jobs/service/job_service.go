package service

import (
	"context"

	"github.com/google/uuid"

	"shiftlink_backend/internals/features/jobs/jobs/dto"
	"shiftlink_backend/internals/features/jobs/jobs/model"
	helper "shiftlink_backend/internals/helpers"
	"shiftlink_backend/internals/helpers/apperr"
	helperAuth "shiftlink_backend/internals/helpers/auth"
)

type Store interface {
	Create(ctx context.Context, m *model.JobModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.JobModel, error)
	Save(ctx context.Context, m *model.JobModel) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, q dto.ListJobsQuery, p helper.Paging) ([]model.JobModel, int64, error)
}

type JobService struct {
	store Store
}

func NewJobService(store Store) *JobService {
	return &JobService{store: store}
}

func (s *JobService) Create(ctx context.Context, actor helperAuth.Actor, req dto.CreateJobRequest) (*dto.JobResponse, error) {
	if !actor.IsEmployer() {
		return nil, apperr.Forbidden("only employers can post jobs")
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	m := req.ToModel(*actor.EmployerID)
	if err := s.store.Create(ctx, m); err != nil {
		return nil, apperr.Internal("failed to create job", err)
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *JobService) Get(ctx context.Context, id uuid.UUID) (*dto.JobResponse, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *JobService) Update(ctx context.Context, actor helperAuth.Actor, id uuid.UUID, req dto.PatchJobRequest) (*dto.JobResponse, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, m) {
		return nil, apperr.Forbidden("you do not own this job")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	req.Apply(m)
	if err := s.store.Save(ctx, m); err != nil {
		return nil, apperr.Internal("failed to update job", err)
	}
	out := dto.FromModel(m)
	return &out, nil
}

func (s *JobService) Delete(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) error {
	m, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(actor, m) {
		return apperr.Forbidden("you do not own this job")
	}
	if err := s.store.SoftDelete(ctx, id); err != nil {
		return apperr.Internal("failed to delete job", err)
	}
	return nil
}

func (s *JobService) List(ctx context.Context, q dto.ListJobsQuery, p helper.Paging) ([]dto.JobResponse, int64, error) {
	rows, total, err := s.store.List(ctx, q, p)
	if err != nil {
		return nil, 0, apperr.Internal("failed to list jobs", err)
	}
	return dto.FromModels(rows), total, nil
}

func (s *JobService) load(ctx context.Context, id uuid.UUID) (*model.JobModel, error) {
	m, err := s.store.GetByID(ctx, id)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("job not found")
		}
		return nil, apperr.Internal("failed to load job", err)
	}
	return m, nil
}

func canManage(actor helperAuth.Actor, m *model.JobModel) bool {
	return actor.IsAdmin() || actor.OwnsEmployer(m.EmployerID)
}
