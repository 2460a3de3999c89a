package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shiftlink_backend/internals/constants"
	helperAuth "shiftlink_backend/internals/helpers/auth"
)

const secret = "mw-secret"

func signFor(t *testing.T, a helperAuth.Actor) string {
	t.Helper()
	tok, _, err := helperAuth.SignAccessToken(secret, a, time.Hour, time.Now())
	require.NoError(t, err)
	return tok
}

func newApp(opts AuthJWTOpts, guards ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{AuthJWT(opts)}, guards...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		a, err := helperAuth.ActorFrom(c)
		if err != nil {
			return err
		}
		return c.SendString(a.Role + ":" + a.UserID.String())
	})
	app.Get("/x", handlers...)
	return app
}

func get(t *testing.T, app *fiber.App, header string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthJWT_ResolvesActor(t *testing.T) {
	sid := uuid.New()
	actor := helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleStudent, StudentID: &sid}
	app := newApp(AuthJWTOpts{Secret: secret})

	resp := get(t, app, "bearer   "+signFor(t, actor))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthJWT_Rejects(t *testing.T) {
	app := newApp(AuthJWTOpts{Secret: secret})

	assert.Equal(t, http.StatusUnauthorized, get(t, app, "").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "Basic abc").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "Bearer not-a-jwt").StatusCode)
}

func TestAuthJWT_CookieFallback(t *testing.T) {
	actor := helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleAdmin}
	app := newApp(AuthJWTOpts{Secret: secret, AllowCookieFallback: true})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: signFor(t, actor)})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthJWT_ActiveChecker(t *testing.T) {
	actor := helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleAdmin}
	tok := "Bearer " + signFor(t, actor)

	inactive := newApp(AuthJWTOpts{Secret: secret, ActiveChecker: func(context.Context, uuid.UUID) (bool, error) {
		return false, nil
	}})
	assert.Equal(t, http.StatusForbidden, get(t, inactive, tok).StatusCode)

	missing := newApp(AuthJWTOpts{Secret: secret, ActiveChecker: func(context.Context, uuid.UUID) (bool, error) {
		return false, gorm.ErrRecordNotFound
	}})
	assert.Equal(t, http.StatusUnauthorized, get(t, missing, tok).StatusCode)

	broken := newApp(AuthJWTOpts{Secret: secret, ActiveChecker: func(context.Context, uuid.UUID) (bool, error) {
		return false, errors.New("connection refused")
	}})
	assert.Equal(t, http.StatusServiceUnavailable, get(t, broken, tok).StatusCode)
}

func TestAuthJWT_RevokedChecker(t *testing.T) {
	actor := helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleAdmin}
	raw := signFor(t, actor)

	revoked := newApp(AuthJWTOpts{Secret: secret, RevokedChecker: func(_ context.Context, tok string) (bool, error) {
		return tok == raw, nil
	}})
	assert.Equal(t, http.StatusUnauthorized, get(t, revoked, "Bearer "+raw).StatusCode)
	assert.Equal(t, http.StatusOK, get(t, revoked, "Bearer "+signFor(t, helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleAdmin})).StatusCode)

	broken := newApp(AuthJWTOpts{Secret: secret, RevokedChecker: func(context.Context, string) (bool, error) {
		return false, errors.New("db down")
	}})
	assert.Equal(t, http.StatusServiceUnavailable, get(t, broken, "Bearer "+raw).StatusCode)
}

func TestOnlyRolesSlice(t *testing.T) {
	eid := uuid.New()
	employer := helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleEmployer, EmployerID: &eid}
	admin := helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleAdmin}

	app := newApp(AuthJWTOpts{Secret: secret}, OnlyRolesSlice(constants.RoleErrorAdmin("view this"), constants.AdminOnly))

	assert.Equal(t, http.StatusForbidden, get(t, app, "Bearer "+signFor(t, employer)).StatusCode)
	assert.Equal(t, http.StatusOK, get(t, app, "Bearer "+signFor(t, admin)).StatusCode)
}

func TestOptionalAuthJWT(t *testing.T) {
	app := fiber.New()
	app.Get("/x", OptionalAuthJWT(AuthJWTOpts{Secret: secret}), func(c *fiber.Ctx) error {
		if a, err := helperAuth.ActorFrom(c); err == nil {
			return c.SendString(a.Role)
		}
		return c.SendString("anonymous")
	})

	assert.Equal(t, http.StatusOK, get(t, app, "").StatusCode)
	assert.Equal(t, http.StatusOK, get(t, app, "Bearer junk").StatusCode)
	admin := helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleAdmin}
	assert.Equal(t, http.StatusOK, get(t, app, "Bearer "+signFor(t, admin)).StatusCode)
}
