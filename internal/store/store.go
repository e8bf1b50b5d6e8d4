// Package store persists generation records to the optional MySQL archive.
package store

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ebookforge/internal/config"
	"ebookforge/internal/model"
)

// Archive writes one row per successful generation. The connection is
// opened per call and always released, so a flaky database never holds
// resources across requests.
type Archive struct {
	cfg config.MySQLConfig
}

// New creates an Archive for the given store configuration. Callers are
// expected to check cfg.Enabled() before wiring it in.
func New(cfg config.MySQLConfig) *Archive {
	return &Archive{cfg: cfg}
}

// DSN builds the MySQL connection string.
func (a *Archive) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		a.cfg.User, a.cfg.Password, a.cfg.Host, a.cfg.Port, a.cfg.Database)
}

// Archive ensures the table exists and inserts the record. The schema
// migration is idempotent; rows are append-only.
func (a *Archive) Archive(ctx context.Context, rec model.EbookRecord) (err error) {
	gormLogger := logger.New(
		log.New(slogWriter{}, "", 0),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(mysql.Open(a.DSN()), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer closeDB(db)

	if err := db.WithContext(ctx).Table(a.cfg.Table).AutoMigrate(&model.EbookRecord{}); err != nil {
		return fmt.Errorf("ensure table: %w", err)
	}
	if err := db.WithContext(ctx).Table(a.cfg.Table).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// closeDB releases the underlying connection pool. It is registered right
// after a successful open so every later exit path releases the pool, even
// when it cannot be unwrapped.
func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

// slogWriter routes gorm's logger output through slog.
type slogWriter struct{}

func (slogWriter) Write(p []byte) (int, error) {
	slog.Warn("gorm", "message", string(p))
	return len(p), nil
}
