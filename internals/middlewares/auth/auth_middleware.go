// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "shiftlink_backend/internals/helpers"
	helperAuth "shiftlink_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token kalau header Bearer tidak ada
	// ActiveChecker opsional; akun yang dinonaktifkan ditolak.
	ActiveChecker func(ctx context.Context, userID uuid.UUID) (bool, error)
	// RevokedChecker opsional; token yang sudah dicabut lewat logout ditolak.
	RevokedChecker func(ctx context.Context, rawToken string) (bool, error)
}

// AuthJWT: ubah token jadi Actor (immutable) lalu simpan di Locals.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		raw, err := extractBearerToken(c, o.AllowCookieFallback)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		actor, err := helperAuth.ParseAccessToken(secret, raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid token")
		}

		if o.RevokedChecker != nil {
			revoked, err := o.RevokedChecker(c.UserContext(), raw)
			if err != nil {
				return helper.JsonError(c, fiber.StatusServiceUnavailable, "Unable to verify session")
			}
			if revoked {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Session has ended, please log in again")
			}
		}

		if o.ActiveChecker != nil {
			active, err := o.ActiveChecker(c.UserContext(), actor.UserID)
			if err != nil {
				// user terhapus = 401; gangguan storage = 503, bukan sesi tidak valid
				if helper.IsNotFound(err) {
					return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - User not found")
				}
				return helper.JsonError(c, fiber.StatusServiceUnavailable, "Unable to verify account")
			}
			if !active {
				return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
			}
		}

		helperAuth.SetActor(c, actor)
		c.Locals(helperAuth.LocRawToken, raw)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx, cookieFallback bool) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" && cookieFallback {
		if tok := strings.TrimSpace(c.Cookies("access_token")); tok != "" {
			auth = "Bearer " + tok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("Unauthorized - No token provided")
	}

	// toleransi spasi ganda dan huruf besar/kecil pada skema
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("Unauthorized - Invalid token format")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", fmt.Errorf("Unauthorized - Empty token")
	}
	return tok, nil
}

// OptionalAuthJWT mengisi actor kalau token valid; request tanpa token tetap lanjut anonim.
func OptionalAuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	return func(c *fiber.Ctx) error {
		raw, err := extractBearerToken(c, o.AllowCookieFallback)
		if err != nil {
			return c.Next()
		}
		actor, err := helperAuth.ParseAccessToken(secret, raw)
		if err != nil {
			return c.Next()
		}
		if o.RevokedChecker != nil {
			if revoked, err := o.RevokedChecker(c.UserContext(), raw); err != nil || revoked {
				return c.Next()
			}
		}
		helperAuth.SetActor(c, actor)
		return c.Next()
	}
}
