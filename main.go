package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"shiftlink_backend/internals/configs"
	database "shiftlink_backend/internals/databases"
	helper "shiftlink_backend/internals/helpers"
	"shiftlink_backend/internals/logger"
	middlewares "shiftlink_backend/internals/middlewares"
	routes "shiftlink_backend/internals/route"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		logger.NewStructured("error", "json").Error("config load failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	zl := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = zl.Sync() }()
	log := logger.NewZapAdapter(zl).WithFields(map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Environment,
	})
	helper.SetLogger(log)

	app := fiber.New(fiber.Config{
		// codec JSON fiber diganti sonic
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromError(c, err)
		},
	})

	middlewares.SetupMiddlewares(app, cfg, log)

	// 🔌 DB connect + pool + warm-up
	db, err := database.ConnectDB(cfg.Database, log)
	if err != nil {
		log.Error("database connection failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, log); err != nil {
			log.Error("migration failed", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
	}
	database.WarmUp(db, log)

	// Redis opsional: tanpa address, limiter flag berjalan di memori
	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("redis unreachable, limiter falls back to memory per request", map[string]interface{}{"error": err.Error()})
		}
		cancel()
	}

	// ✅ Routes
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	routes.SetupRoutes(bgCtx, app, db, cfg, log, middlewares.NewLimiter(rdb))

	// jalankan server tanpa blocking
	go func() {
		log.Info("listening", map[string]interface{}{"port": cfg.App.Port})
		if err := app.Listen("0.0.0.0:" + cfg.App.Port); err != nil {
			log.Error("server error", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down", nil)
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if rdb != nil {
		_ = rdb.Close()
	}
	if err := database.Close(db); err != nil {
		log.Warn("database close failed", map[string]interface{}{"error": err.Error()})
	}
}
