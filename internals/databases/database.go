package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shiftlink_backend/internals/configs"
	"shiftlink_backend/internals/logger"
)

// ConnectDB membuka koneksi Postgres; DSN lengkap + statement_timeout dari config.
func ConnectDB(cfg configs.DatabaseConfig, log logger.Logger) (*gorm.DB, error) {
	log.Info("connecting to PostgreSQL", map[string]interface{}{
		"host": cfg.Host,
		"name": cfg.Name,
	})

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger:                 NewGormLogger(log, 200*time.Millisecond),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	TunePool(db, cfg)
	log.Info("database connected", nil)
	return db, nil
}

func TunePool(db *gorm.DB, cfg configs.DatabaseConfig) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdle)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLife)
}

// WarmUp: ping ringan supaya pool sudah terisi sebelum trafik pertama.
func WarmUp(db *gorm.DB, log logger.Logger) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(context.Background(), db); err != nil {
			log.Warn("warm-up ping failed", map[string]interface{}{"error": err.Error()})
		}
	}()
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
