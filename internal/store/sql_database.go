package store

import (
	"database/sql"

	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/migrations"
)

// DB is an open SQLite connection with the application logger attached.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
