// Package sqlite stores store records in a local SQLite database through GORM.
package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"coffissimo/config"
	"coffissimo/internal/errors"
	"coffissimo/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const pingTimeout = 5 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database configured in storage.path and closes it when the app stops.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config.Storage.Path, params.Logger, params.Config)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, pingTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the database file at path and migrates the store_records table.
func Open(path string, logger *slog.Logger, cfg *config.Config) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create database directory %s", dir)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		// Every write is a single upsert; no implicit transaction needed.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// SQLite serializes writers anyway.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.StoreRecordModel{}); err != nil {
		_ = sqlDB.Close()

		return nil, errors.Wrap(err, "failed to migrate store_records")
	}

	return db, nil
}
