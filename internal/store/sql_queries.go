package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/akgarhwal/vault/models"
)

const (
	metaTable  = "vault_meta"
	itemsTable = "items"
	linkTable  = "sync_link"

	// singletonRowID is the primary key of single-row tables.
	singletonRowID = 1
)

func buildGetMetaQuery() (string, []any, error) {
	return sq.Select("salt", "validation_ciphertext", "validation_nonce").
		From(metaTable).
		Where(sq.Eq{"id": singletonRowID}).
		ToSql()
}

func buildSetMetaQuery(meta models.VaultMeta) (string, []any, error) {
	return sq.Replace(metaTable).
		Columns("id", "salt", "validation_ciphertext", "validation_nonce").
		Values(singletonRowID, meta.Salt, meta.Validation.Ciphertext, meta.Validation.Nonce).
		ToSql()
}

func buildGetItemsQuery() (string, []any, error) {
	return sq.Select("id", "ciphertext", "nonce").
		From(itemsTable).
		OrderBy("position").
		ToSql()
}

// insertBatchSize keeps multi-row INSERTs below SQLite's bound parameter limit.
const insertBatchSize = 500

// buildInsertItemsQuery returns a multi-row INSERT for items. The position
// column stores offset plus the slice index so that reads keep collection
// order across batches.
func buildInsertItemsQuery(items []models.EncryptedItem, offset int) (string, []any, error) {
	query := sq.Insert(itemsTable).Columns("id", "position", "ciphertext", "nonce")
	for i, item := range items {
		query = query.Values(item.ID, offset+i, item.Data.Ciphertext, item.Data.Nonce)
	}
	return query.ToSql()
}

func buildDeleteAllQuery(table string) (string, []any, error) {
	return sq.Delete(table).ToSql()
}

func buildGetSyncLinkQuery() (string, []any, error) {
	return sq.Select("kind", "target", "label", "linked_at").
		From(linkTable).
		Where(sq.Eq{"id": singletonRowID}).
		ToSql()
}

func buildSetSyncLinkQuery(link models.SyncLink) (string, []any, error) {
	return sq.Replace(linkTable).
		Columns("id", "kind", "target", "label", "linked_at").
		Values(singletonRowID, link.Kind, link.Target, link.Label, link.LinkedAt).
		ToSql()
}
