package route

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftlink_backend/internals/constants"
	"shiftlink_backend/internals/features/applications/applications/service"
	"shiftlink_backend/internals/features/applications/applications/storetest"
	helperAuth "shiftlink_backend/internals/helpers/auth"
	"shiftlink_backend/internals/logger"
	authMiddleware "shiftlink_backend/internals/middlewares/auth"
)

const secret = "applications-secret"

type harness struct {
	app      *fiber.App
	store    *storetest.MemoryStore
	student  string
	employer string
	jobID    uuid.UUID
}

func token(t *testing.T, a helperAuth.Actor) string {
	t.Helper()
	tok, _, err := helperAuth.SignAccessToken(secret, a, time.Hour, time.Now())
	require.NoError(t, err)
	return tok
}

func setup(t *testing.T) *harness {
	t.Helper()
	store := storetest.New()
	svc := service.NewApplicationService(store, logger.NewTestLogger(t))

	app := fiber.New()
	api := app.Group("/api")
	ApplicationRoutes(api, svc, authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{Secret: secret}))

	sid, eid := uuid.New(), uuid.New()
	return &harness{
		app:      app,
		store:    store,
		student:  token(t, helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleStudent, StudentID: &sid}),
		employer: token(t, helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleEmployer, EmployerID: &eid}),
		jobID:    store.AddJob(eid).ID,
	}
}

func (h *harness) do(t *testing.T, method, path, body, tok string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestApplyApproveCompleteFlow(t *testing.T) {
	h := setup(t)

	status, body := h.do(t, http.MethodPost, "/api/applications", `{"jobId":"`+h.jobID.String()+`","notes":"hi"}`, h.student)
	require.Equal(t, http.StatusOK, status, body)
	data := body["data"].(map[string]any)
	assert.Equal(t, "PENDING", data["status"])
	id := data["id"].(string)

	status, body = h.do(t, http.MethodPost, "/api/applications", `{"jobId":"`+h.jobID.String()+`"}`, h.student)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "CONFLICT", body["error_code"])

	status, body = h.do(t, http.MethodPatch, "/api/applications/"+id, `{"status":"approved","isCompleted":true}`, h.employer)
	require.Equal(t, http.StatusOK, status, body)
	data = body["data"].(map[string]any)
	assert.Equal(t, "APPROVED", data["status"])
	assert.Equal(t, true, data["isCompleted"])
	assert.NotNil(t, data["completedAt"])

	status, body = h.do(t, http.MethodGet, "/api/applications?view=completed", "", h.student)
	require.Equal(t, http.StatusOK, status, body)
	rows := body["data"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, false, row["hasEmployerReview"])
	assert.Equal(t, false, row["hasStudentReview"])
}

func TestApply_Errors(t *testing.T) {
	h := setup(t)

	status, body := h.do(t, http.MethodPost, "/api/applications", `{"jobId":"`+uuid.NewString()+`"}`, h.student)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "NOT_FOUND", body["error_code"])

	status, _ = h.do(t, http.MethodPost, "/api/applications", `{"jobId":"`+h.jobID.String()+`"}`, h.employer)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = h.do(t, http.MethodPost, "/api/applications", `{"jobId":"`+h.jobID.String()+`"}`, "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestPatch_RejectsStudentsAndBadStatus(t *testing.T) {
	h := setup(t)
	_, body := h.do(t, http.MethodPost, "/api/applications", `{"jobId":"`+h.jobID.String()+`"}`, h.student)
	id := body["data"].(map[string]any)["id"].(string)

	status, _ := h.do(t, http.MethodPatch, "/api/applications/"+id, `{"status":"APPROVED"}`, h.student)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = h.do(t, http.MethodPatch, "/api/applications/"+id, `{"status":"PENDING"}`, h.employer)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_INPUT", body["error_code"])

	status, body = h.do(t, http.MethodPatch, "/api/applications/"+id, `{"isCompleted":true}`, h.employer)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_STATE", body["error_code"])

	status, _ = h.do(t, http.MethodPatch, "/api/applications/not-a-uuid", `{"status":"APPROVED"}`, h.employer)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestList_QueryValidation(t *testing.T) {
	h := setup(t)

	status, body := h.do(t, http.MethodGet, "/api/applications?status=HIRED&view=all", "", h.student)
	assert.Equal(t, http.StatusBadRequest, status)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "status")
	assert.Contains(t, errs, "view")
}

func TestDelete_ByStudent(t *testing.T) {
	h := setup(t)
	_, body := h.do(t, http.MethodPost, "/api/applications", `{"jobId":"`+h.jobID.String()+`"}`, h.student)
	id := body["data"].(map[string]any)["id"].(string)

	status, _ := h.do(t, http.MethodDelete, "/api/applications/"+id, "", h.student)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, h.store.Apps)

	status, _ = h.do(t, http.MethodGet, "/api/applications/"+id, "", h.student)
	assert.Equal(t, http.StatusNotFound, status)
}
