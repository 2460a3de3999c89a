// Package storetest: store application in-memory untuk test.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"shiftlink_backend/internals/features/applications/applications/dto"
	"shiftlink_backend/internals/features/applications/applications/model"
	reviewModel "shiftlink_backend/internals/features/applications/reviews/model"
	jobModel "shiftlink_backend/internals/features/jobs/jobs/model"
	helper "shiftlink_backend/internals/helpers"
)

type MemoryStore struct {
	mu      sync.Mutex
	Jobs    map[uuid.UUID]*jobModel.JobModel
	Apps    map[uuid.UUID]*model.ApplicationModel
	Reviews map[uuid.UUID]*reviewModel.ReviewModel // by application id

	// SkipExistsCheck membuat pre-check selalu lolos supaya jalur unique index teruji.
	SkipExistsCheck bool
}

func New() *MemoryStore {
	return &MemoryStore{
		Jobs:    map[uuid.UUID]*jobModel.JobModel{},
		Apps:    map[uuid.UUID]*model.ApplicationModel{},
		Reviews: map[uuid.UUID]*reviewModel.ReviewModel{},
	}
}

// AddJob mendaftarkan job aktif milik employerID.
func (s *MemoryStore) AddJob(employerID uuid.UUID) *jobModel.JobModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := &jobModel.JobModel{ID: uuid.New(), EmployerID: employerID, Title: "Barista", IsActive: true}
	s.Jobs[j.ID] = j
	return j
}

func (s *MemoryStore) FindJob(_ context.Context, jobID uuid.UUID) (*jobModel.JobModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.Jobs[jobID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *j
	return &cp, nil
}

func (s *MemoryStore) ExistsForJobAndStudent(_ context.Context, jobID, studentID uuid.UUID) (bool, error) {
	if s.SkipExistsCheck {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findPair(jobID, studentID), nil
}

func (s *MemoryStore) findPair(jobID, studentID uuid.UUID) bool {
	for _, a := range s.Apps {
		if a.JobID == jobID && a.StudentID == studentID {
			return true
		}
	}
	return false
}

func (s *MemoryStore) Create(_ context.Context, m *model.ApplicationModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findPair(m.JobID, m.StudentID) {
		return &pgconn.PgError{Code: "23505", ConstraintName: "ux_applications_job_student"}
	}
	m.ID = uuid.New()
	m.UpdatedAt = m.AppliedAt
	cp := *m
	s.Apps[m.ID] = &cp
	return nil
}

func (s *MemoryStore) GetByID(_ context.Context, id uuid.UUID) (*model.ApplicationModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.Apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s.hydrate(a), nil
}

func (s *MemoryStore) hydrate(a *model.ApplicationModel) *model.ApplicationModel {
	cp := *a
	if j, ok := s.Jobs[a.JobID]; ok {
		jc := *j
		cp.Job = &jc
	}
	if r, ok := s.Reviews[a.ID]; ok {
		rc := *r
		cp.Review = &rc
	}
	return &cp
}

func (s *MemoryStore) TransitionStatus(_ context.Context, id uuid.UUID, from, to model.Status, completedAt *time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.Apps[id]
	if !ok || a.Status != from {
		return false, nil
	}
	a.Status = to
	if completedAt != nil {
		a.IsCompleted, a.CompletedAt = true, completedAt
	}
	return true, nil
}

func (s *MemoryStore) SetCompletion(_ context.Context, id uuid.UUID, completed bool, at *time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.Apps[id]
	if !ok || (completed && a.Status != model.StatusApproved) {
		return false, nil
	}
	a.IsCompleted, a.CompletedAt = completed, at
	return true, nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Apps, id)
	delete(s.Reviews, id)
	return nil
}

func (s *MemoryStore) List(_ context.Context, f dto.ListFilter, p helper.Paging) ([]model.ApplicationModel, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.ApplicationModel{}
	for _, a := range s.Apps {
		job := s.Jobs[a.JobID]
		switch {
		case f.EmployerID != nil && (job == nil || job.EmployerID != *f.EmployerID):
			continue
		case f.StudentID != nil && a.StudentID != *f.StudentID:
			continue
		case f.JobID != nil && a.JobID != *f.JobID:
			continue
		case f.Status != nil && a.Status != *f.Status:
			continue
		case f.IsCompleted != nil && a.IsCompleted != *f.IsCompleted:
			continue
		}
		out = append(out, *s.hydrate(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	total := int64(len(out))
	if p.Limit > 0 {
		start := min(p.Offset, len(out))
		end := min(start+p.Limit, len(out))
		out = out[start:end]
	}
	return out, total, nil
}
