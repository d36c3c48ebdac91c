// Package persistence selects the state repository backing the order store.
package persistence

import (
	"log/slog"
	"path/filepath"

	"coffissimo/config"
	"coffissimo/internal/domain/repository"
	"coffissimo/internal/errors"
	"coffissimo/internal/infra/persistence/file"
	"coffissimo/internal/infra/persistence/memory"
	"coffissimo/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
)

// Storage drivers accepted in storage.driver.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

const sqliteFileName = "coffissimo.db"

// Params holds dependencies for the state repository, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStateRepository creates a StateRepository based on configuration
func NewStateRepository(params Params) (repository.StateRepository, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	if cfg == nil || cfg.Driver == "" {
		logger.Info("Storage not configured, using in-memory state")

		return memory.NewStateRepository(), nil
	}

	switch cfg.Driver {
	case DriverMemory:
		logger.Debug("Using in-memory state repository")

		return memory.NewStateRepository(), nil

	case DriverFile:
		logger.Debug("Using file state repository", slog.String("dir", cfg.Path))

		return file.NewStateRepository(cfg.Path), nil

	case DriverSQLite:
		path := cfg.Path
		if filepath.Ext(path) == "" {
			path = filepath.Join(path, sqliteFileName)
		}
		logger.Debug("Using SQLite state repository", slog.String("database", path))

		sqliteCfg := *params.Config
		storage := *cfg
		storage.Path = path
		sqliteCfg.Storage = &storage

		db, err := sqlite.New(sqlite.Params{
			Lifecycle: params.Lc,
			Config:    &sqliteCfg,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return sqlite.NewStateRepository(db), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStateRepository),
)
