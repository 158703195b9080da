package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akgarhwal/vault/internal/store"
	"github.com/akgarhwal/vault/models"
)

// buildExport assembles the portable document from persisted state only.
// Nothing is decrypted, so it works while the vault is locked.
func buildExport(ctx context.Context, storage store.VaultStorage, now time.Time) (models.ExportDocument, error) {
	meta, err := storage.GetMeta(ctx)
	if errors.Is(err, store.ErrVaultMetaNotFound) {
		return models.ExportDocument{}, ErrNoVault
	}
	if err != nil {
		return models.ExportDocument{}, fmt.Errorf("read vault meta: %w", err)
	}

	items, err := storage.GetItems(ctx)
	if err != nil {
		return models.ExportDocument{}, fmt.Errorf("read items: %w", err)
	}
	if items == nil {
		items = []models.EncryptedItem{}
	}

	return models.ExportDocument{
		Version:    models.ExportDocumentVersion,
		ExportedAt: now.UTC(),
		Meta:       &meta,
		Items:      items,
	}, nil
}
