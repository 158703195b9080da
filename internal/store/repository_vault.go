package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/models"
)

// sqliteStorage is the SQLite-backed implementation of [Storage]. Metadata
// and the sync link live in single-row tables; items are kept in a table
// ordered by their position in the collection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database failures are traced with the
// operation name.
type sqliteStorage struct {
	*DB
}

// NewSQLiteStorage constructs a [Storage] backed by the provided connection.
// The schema must already be migrated.
func NewSQLiteStorage(db *DB) Storage {
	return &sqliteStorage{DB: db}
}

func (s *sqliteStorage) GetMeta(ctx context.Context) (models.VaultMeta, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMetaQuery()
	if err != nil {
		return models.VaultMeta{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var meta models.VaultMeta
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(
		&meta.Salt,
		&meta.Validation.Ciphertext,
		&meta.Validation.Nonce,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultMeta{}, ErrVaultMetaNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteStorage.GetMeta").Msg("failed to scan vault meta")
		return models.VaultMeta{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return meta, nil
}

func (s *sqliteStorage) SetMeta(ctx context.Context, meta models.VaultMeta) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetMetaQuery(meta)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteStorage.SetMeta").Msg("failed to save vault meta")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteStorage) GetItems(ctx context.Context) ([]models.EncryptedItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetItemsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqliteStorage.GetItems").Msg("failed to query items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.EncryptedItem, 0)
	for rows.Next() {
		var item models.EncryptedItem
		if err := rows.Scan(&item.ID, &item.Data.Ciphertext, &item.Data.Nonce); err != nil {
			log.Err(err).Str("func", "sqliteStorage.GetItems").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "sqliteStorage.GetItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return items, nil
}

func (s *sqliteStorage) SaveItems(ctx context.Context, items []models.EncryptedItem) error {
	return s.inTx(ctx, "sqliteStorage.SaveItems", func(tx *sql.Tx) error {
		return replaceItems(ctx, tx, items)
	})
}

func (s *sqliteStorage) ReplaceVault(ctx context.Context, meta models.VaultMeta, items []models.EncryptedItem) error {
	return s.inTx(ctx, "sqliteStorage.ReplaceVault", func(tx *sql.Tx) error {
		query, args, err := buildSetMetaQuery(meta)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return replaceItems(ctx, tx, items)
	})
}

func (s *sqliteStorage) Clear(ctx context.Context) error {
	return s.inTx(ctx, "sqliteStorage.Clear", func(tx *sql.Tx) error {
		for _, table := range []string{itemsTable, metaTable, linkTable} {
			query, args, err := buildDeleteAllQuery(table)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

func (s *sqliteStorage) GetSyncLink(ctx context.Context) (models.SyncLink, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSyncLinkQuery()
	if err != nil {
		return models.SyncLink{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var link models.SyncLink
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&link.Kind, &link.Target, &link.Label, &link.LinkedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncLink{}, ErrSyncLinkNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteStorage.GetSyncLink").Msg("failed to scan sync link")
		return models.SyncLink{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return link, nil
}

func (s *sqliteStorage) SetSyncLink(ctx context.Context, link models.SyncLink) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetSyncLinkQuery(link)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteStorage.SetSyncLink").Msg("failed to save sync link")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteStorage) DeleteSyncLink(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllQuery(linkTable)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteStorage.DeleteSyncLink").Msg("failed to delete sync link")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// inTx runs fn inside a transaction, rolling back on any error.
func (s *sqliteStorage) inTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		log.Err(err).Str("func", funcName).Msg("transaction failed, rolling back")
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func replaceItems(ctx context.Context, tx *sql.Tx, items []models.EncryptedItem) error {
	query, args, err := buildDeleteAllQuery(itemsTable)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for start := 0; start < len(items); start += insertBatchSize {
		end := min(start+insertBatchSize, len(items))

		query, args, err = buildInsertItemsQuery(items[start:end], start)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}
