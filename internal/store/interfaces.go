package store

import (
	"context"

	"github.com/akgarhwal/vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultStorage persists vault metadata and the ordered collection of
// encrypted items. Every value is opaque to the storage layer: it never sees
// plaintext or key material.
type VaultStorage interface {
	// GetMeta returns the vault metadata or [ErrVaultMetaNotFound] when no
	// vault has been created yet.
	GetMeta(ctx context.Context) (models.VaultMeta, error)
	// SetMeta creates or replaces the vault metadata.
	SetMeta(ctx context.Context, meta models.VaultMeta) error
	// GetItems returns all encrypted items in their persisted order.
	GetItems(ctx context.Context) ([]models.EncryptedItem, error)
	// SaveItems replaces the whole item collection, preserving slice order.
	SaveItems(ctx context.Context, items []models.EncryptedItem) error
	// ReplaceVault atomically replaces metadata and items.
	ReplaceVault(ctx context.Context, meta models.VaultMeta, items []models.EncryptedItem) error
	// Clear erases all vault state, including the sync link.
	Clear(ctx context.Context) error
}

// SyncLinkStorage persists the descriptor of the external mirror.
type SyncLinkStorage interface {
	// GetSyncLink returns the stored link or [ErrSyncLinkNotFound].
	GetSyncLink(ctx context.Context) (models.SyncLink, error)
	SetSyncLink(ctx context.Context, link models.SyncLink) error
	DeleteSyncLink(ctx context.Context) error
}

// Storage is a backend that implements both repositories.
type Storage interface {
	VaultStorage
	SyncLinkStorage
	Close() error
}
