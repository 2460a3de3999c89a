package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftlink_backend/internals/constants"
	"shiftlink_backend/internals/features/applications/applications/dto"
	"shiftlink_backend/internals/features/applications/applications/model"
	"shiftlink_backend/internals/features/applications/applications/storetest"
	helper "shiftlink_backend/internals/helpers"
	"shiftlink_backend/internals/helpers/apperr"
	helperAuth "shiftlink_backend/internals/helpers/auth"
	"shiftlink_backend/internals/logger"
)

func studentActor() helperAuth.Actor {
	id := uuid.New()
	return helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleStudent, StudentID: &id}
}

func employerActor() helperAuth.Actor {
	id := uuid.New()
	return helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleEmployer, EmployerID: &id}
}

func adminActor() helperAuth.Actor {
	return helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleAdmin}
}

type fixture struct {
	svc      *ApplicationService
	store    *storetest.MemoryStore
	employer helperAuth.Actor
	student  helperAuth.Actor
	jobID    uuid.UUID
	clock    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    storetest.New(),
		employer: employerActor(),
		student:  studentActor(),
		clock:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	f.svc = NewApplicationService(f.store, logger.NewTestLogger(t))
	f.svc.now = func() time.Time { return f.clock }
	f.jobID = f.store.AddJob(*f.employer.EmployerID).ID
	return f
}

func (f *fixture) apply(t *testing.T) *dto.ApplicationResponse {
	t.Helper()
	notes := "  available weekends "
	out, err := f.svc.Submit(context.Background(), f.student, dto.CreateApplicationRequest{JobID: f.jobID, Notes: &notes})
	require.NoError(t, err)
	return out
}

func patch(status *string, completed *bool) dto.UpdateApplicationRequest {
	var req dto.UpdateApplicationRequest
	if status != nil {
		req.Status = helper.PatchField[string]{Present: true, Value: status}
	}
	if completed != nil {
		req.IsCompleted = helper.PatchField[bool]{Present: true, Value: completed}
	}
	return req
}

func ptr[T any](v T) *T { return &v }

/* ===== Submit ===== */

func TestSubmit_CreatesPending(t *testing.T) {
	f := newFixture(t)
	out := f.apply(t)

	assert.Equal(t, model.StatusPending, out.Status)
	assert.False(t, out.IsCompleted)
	assert.Nil(t, out.CompletedAt)
	assert.Equal(t, "available weekends", *out.Notes)
	assert.Equal(t, f.clock, out.AppliedAt)
}

func TestSubmit_DuplicateIsConflict(t *testing.T) {
	f := newFixture(t)
	f.apply(t)

	_, err := f.svc.Submit(context.Background(), f.student, dto.CreateApplicationRequest{JobID: f.jobID})
	assert.True(t, apperr.Is(err, apperr.CodeConflict))
}

func TestSubmit_UniqueIndexRaceIsConflict(t *testing.T) {
	f := newFixture(t)
	f.apply(t)
	f.store.SkipExistsCheck = true

	_, err := f.svc.Submit(context.Background(), f.student, dto.CreateApplicationRequest{JobID: f.jobID})
	assert.True(t, apperr.Is(err, apperr.CodeConflict))
	assert.Len(t, f.store.Apps, 1)
}

func TestSubmit_MissingJobAnswers400NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Submit(context.Background(), f.student, dto.CreateApplicationRequest{JobID: uuid.New()})
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus())
}

func TestSubmit_Rejections(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Submit(context.Background(), f.employer, dto.CreateApplicationRequest{JobID: f.jobID})
	assert.True(t, apperr.Is(err, apperr.CodeForbidden))

	_, err = f.svc.Submit(context.Background(), f.student, dto.CreateApplicationRequest{})
	assert.True(t, apperr.Is(err, apperr.CodeInvalidInput))

	f.store.Jobs[f.jobID].IsActive = false
	_, err = f.svc.Submit(context.Background(), f.student, dto.CreateApplicationRequest{JobID: f.jobID})
	assert.True(t, apperr.Is(err, apperr.CodeInvalidState))
}

/* ===== Status ===== */

func TestSetStatus_OwnerApprovesCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)

	out, err := f.svc.SetStatus(context.Background(), f.employer, app.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, out.Status)
}

func TestSetStatus_Authorization(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)

	_, err := f.svc.SetStatus(context.Background(), employerActor(), app.ID, "APPROVED")
	assert.True(t, apperr.Is(err, apperr.CodeForbidden))

	_, err = f.svc.SetStatus(context.Background(), f.student, app.ID, "APPROVED")
	assert.True(t, apperr.Is(err, apperr.CodeForbidden))

	out, err := f.svc.SetStatus(context.Background(), adminActor(), app.ID, "REJECTED")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, out.Status)
}

func TestSetStatus_Lattice(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)
	ctx := context.Background()

	_, err := f.svc.SetStatus(ctx, f.employer, app.ID, "PENDING")
	assert.True(t, apperr.Is(err, apperr.CodeInvalidInput))

	_, err = f.svc.SetStatus(ctx, f.employer, app.ID, "HIRED")
	assert.True(t, apperr.Is(err, apperr.CodeInvalidInput))

	_, err = f.svc.SetStatus(ctx, f.employer, app.ID, "APPROVED")
	require.NoError(t, err)

	// same state is a no-op
	out, err := f.svc.SetStatus(ctx, f.employer, app.ID, "APPROVED")
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, out.Status)

	_, err = f.svc.SetStatus(ctx, f.employer, app.ID, "REJECTED")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeInvalidState, ae.Code)
	assert.Equal(t, "status transition not supported", ae.Message)
}

func TestUpdate_NotFoundAndEmptyBody(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SetStatus(context.Background(), f.employer, uuid.New(), "APPROVED")
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	app := f.apply(t)
	_, err = f.svc.Update(context.Background(), f.employer, app.ID, dto.UpdateApplicationRequest{})
	assert.True(t, apperr.Is(err, apperr.CodeInvalidInput))
}

/* ===== Completion ===== */

func TestMarkCompleted_RequiresApproved(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)

	_, err := f.svc.MarkCompleted(context.Background(), f.employer, app.ID, true)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeInvalidState, ae.Code)
	assert.Equal(t, "only approved applications can be completed", ae.Message)

	// false is always allowed
	out, err := f.svc.MarkCompleted(context.Background(), f.employer, app.ID, false)
	require.NoError(t, err)
	assert.False(t, out.IsCompleted)
}

func TestMarkCompleted_StampsAndClears(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)
	ctx := context.Background()

	_, err := f.svc.SetStatus(ctx, f.employer, app.ID, "APPROVED")
	require.NoError(t, err)

	out, err := f.svc.MarkCompleted(ctx, f.employer, app.ID, true)
	require.NoError(t, err)
	assert.True(t, out.IsCompleted)
	require.NotNil(t, out.CompletedAt)
	first := *out.CompletedAt

	// re-sending true keeps the original timestamp
	f.clock = f.clock.Add(time.Hour)
	out, err = f.svc.MarkCompleted(ctx, f.employer, app.ID, true)
	require.NoError(t, err)
	assert.Equal(t, first, *out.CompletedAt)

	out, err = f.svc.MarkCompleted(ctx, f.employer, app.ID, false)
	require.NoError(t, err)
	assert.False(t, out.IsCompleted)
	assert.Nil(t, out.CompletedAt)
}

func TestUpdate_StatusAndCompletionTogether(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)

	out, err := f.svc.Update(context.Background(), f.employer, app.ID, patch(ptr("approved"), ptr(true)))
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, out.Status)
	assert.True(t, out.IsCompleted)
	assert.Equal(t, f.clock, *out.CompletedAt)
}

func TestUpdate_FailedCompletionLeavesStatusUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	app := f.apply(t)

	_, err := f.svc.Update(ctx, f.employer, app.ID, patch(ptr("REJECTED"), ptr(true)))
	assert.True(t, apperr.Is(err, apperr.CodeInvalidState))

	cur, err := f.svc.Get(ctx, f.employer, app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, cur.Status)
	assert.False(t, cur.IsCompleted)
	assert.Nil(t, cur.CompletedAt)
}

// brokenCompletion gagal di setiap SetCompletion dan, bila diminta, di TransitionStatus.
type brokenCompletion struct {
	*storetest.MemoryStore
	failTransition bool
}

func (b *brokenCompletion) SetCompletion(context.Context, uuid.UUID, bool, *time.Time) (bool, error) {
	return false, errors.New("connection reset")
}

func (b *brokenCompletion) TransitionStatus(ctx context.Context, id uuid.UUID, from, to model.Status, at *time.Time) (bool, error) {
	if b.failTransition {
		return false, errors.New("connection reset")
	}
	return b.MemoryStore.TransitionStatus(ctx, id, from, to, at)
}

func TestUpdate_ApproveAndCompleteIsSingleWrite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	app := f.apply(t)
	store := &brokenCompletion{MemoryStore: f.store}
	f.svc.store = store

	out, err := f.svc.Update(ctx, f.employer, app.ID, patch(ptr("APPROVED"), ptr(true)))
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, out.Status)
	assert.True(t, out.IsCompleted)
	assert.Equal(t, f.clock, *out.CompletedAt)

	f.jobID = f.store.AddJob(*f.employer.EmployerID).ID
	other := f.apply(t)
	store.failTransition = true
	_, err = f.svc.Update(ctx, f.employer, other.ID, patch(ptr("APPROVED"), ptr(true)))
	assert.True(t, apperr.Is(err, apperr.CodeInternal))

	cur, err := f.svc.Get(ctx, f.employer, other.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, cur.Status)
	assert.False(t, cur.IsCompleted)
}

/* ===== Delete ===== */

func TestDelete_Authorization(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	app := f.apply(t)
	assert.True(t, apperr.Is(f.svc.Delete(ctx, studentActor(), app.ID), apperr.CodeForbidden))
	assert.True(t, apperr.Is(f.svc.Delete(ctx, employerActor(), app.ID), apperr.CodeForbidden))
	require.NoError(t, f.svc.Delete(ctx, f.student, app.ID))
	assert.Empty(t, f.store.Apps)

	f2 := newFixture(t)
	app2 := f2.apply(t)
	require.NoError(t, f2.svc.Delete(ctx, f2.employer, app2.ID))

	f3 := newFixture(t)
	app3 := f3.apply(t)
	require.NoError(t, f3.svc.Delete(ctx, adminActor(), app3.ID))

	assert.True(t, apperr.Is(f3.svc.Delete(ctx, adminActor(), app3.ID), apperr.CodeNotFound))
}

/* ===== Read ===== */

func TestList_ScopedByRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mine := f.apply(t)

	// another employer's job with another student's application
	other := employerActor()
	otherJob := f.store.AddJob(*other.EmployerID)
	otherStudent := studentActor()
	_, err := f.svc.Submit(ctx, otherStudent, dto.CreateApplicationRequest{JobID: otherJob.ID})
	require.NoError(t, err)

	rows, total, err := f.svc.List(ctx, f.student, dto.ListFilter{StudentID: otherStudent.StudentID}, helper.Paging{Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, mine.ID, rows[0].ID)

	rows, _, err = f.svc.List(ctx, f.employer, dto.ListFilter{EmployerID: other.EmployerID}, helper.Paging{Limit: 20})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, mine.ID, rows[0].ID)

	_, total, err = f.svc.List(ctx, adminActor(), dto.ListFilter{}, helper.Paging{Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	rows, _, err = f.svc.List(ctx, adminActor(), dto.ListFilter{EmployerID: other.EmployerID}, helper.Paging{Limit: 20})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, otherJob.ID, rows[0].JobID)

	_, _, err = f.svc.List(ctx, helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleStudent}, dto.ListFilter{}, helper.Paging{Limit: 20})
	assert.True(t, apperr.Is(err, apperr.CodeForbidden))
}

func TestGet_Visibility(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)
	ctx := context.Background()

	_, err := f.svc.Get(ctx, f.student, app.ID)
	require.NoError(t, err)
	_, err = f.svc.Get(ctx, f.employer, app.ID)
	require.NoError(t, err)
	_, err = f.svc.Get(ctx, adminActor(), app.ID)
	require.NoError(t, err)

	_, err = f.svc.Get(ctx, studentActor(), app.ID)
	assert.True(t, apperr.Is(err, apperr.CodeForbidden))
}
