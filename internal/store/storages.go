package store

import (
	"context"
	"fmt"

	"github.com/akgarhwal/vault/internal/config"
	"github.com/akgarhwal/vault/internal/logger"
)

// NewStorage initialises the storage backend selected by cfg.Driver:
//   - "sqlite": opens the database file at cfg.Path, creating it if needed,
//     and runs pending schema migrations;
//   - "bolt": opens the bbolt file at cfg.Path;
//   - "memory": returns an empty in-memory store.
//
// The caller owns the returned Storage and must Close it.
func NewStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (Storage, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storage...")

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Path, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteStorage(db), nil
	case config.DriverBolt:
		return NewBoltStorage(cfg.Path, log)
	case config.DriverMemory:
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
