// file: internals/route/index.go
package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shiftlink_backend/internals/configs"
	"shiftlink_backend/internals/logger"
	"shiftlink_backend/internals/middlewares"
	authMiddleware "shiftlink_backend/internals/middlewares/auth"
	routeDetails "shiftlink_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes memasang semua route. ctx membatasi umur job latar (purge token logout).
func SetupRoutes(ctx context.Context, app *fiber.App, db *gorm.DB, cfg *configs.Config, log logger.Logger, limiter middlewares.Limiter) {
	startTime = time.Now()

	BaseRoutes(app, db, cfg)

	d := &routeDetails.Deps{
		DB:      db,
		Config:  cfg,
		Log:     log,
		Limiter: limiter,
	}
	d.AuthService = routeDetails.NewAuthService(d)
	opts := authMiddleware.AuthJWTOpts{
		Secret:              cfg.Auth.JWTSecret,
		AllowCookieFallback: true,
		ActiveChecker:       d.AuthService.IsActive,
		RevokedChecker:      d.AuthService.IsRevoked,
	}
	d.AuthMw = authMiddleware.AuthJWT(opts)
	d.OptionalAuth = authMiddleware.OptionalAuthJWT(opts)

	go purgeRevokedTokens(ctx, d.AuthService, log, cfg.Auth.RevokedPurgeInterval)

	api := app.Group("/api")

	log.Info("mounting routes", map[string]interface{}{"groups": []string{"auth", "marketplace", "employers", "admin"}})
	routeDetails.AuthRoutes(api, d)
	routeDetails.MarketplaceRoutes(api, d)
	routeDetails.EmployerRoutes(api, d)
	routeDetails.AdminRoutes(api, d)
}

type revokedPurger interface {
	PurgeRevoked(ctx context.Context) (int64, error)
}

func purgeRevokedTokens(ctx context.Context, p revokedPurger, log logger.Logger, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := p.PurgeRevoked(ctx)
			if err != nil {
				log.Warn("purge revoked tokens failed", map[string]interface{}{"error": err.Error()})
				continue
			}
			if n > 0 {
				log.Debug("revoked tokens purged", map[string]interface{}{"count": n})
			}
		}
	}
}
