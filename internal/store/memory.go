package store

import (
	"context"
	"slices"
	"sync"

	"github.com/akgarhwal/vault/models"
)

// memoryStorage keeps the vault in process memory. It backs the "memory"
// driver and tests; nothing survives the process.
type memoryStorage struct {
	mu    sync.RWMutex
	meta  *models.VaultMeta
	items []models.EncryptedItem
	link  *models.SyncLink
}

// NewMemoryStorage returns an empty in-memory [Storage].
func NewMemoryStorage() Storage {
	return &memoryStorage{}
}

func (m *memoryStorage) GetMeta(_ context.Context) (models.VaultMeta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.meta == nil {
		return models.VaultMeta{}, ErrVaultMetaNotFound
	}
	return cloneMeta(*m.meta), nil
}

func (m *memoryStorage) SetMeta(_ context.Context, meta models.VaultMeta) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := cloneMeta(meta)
	m.meta = &c
	return nil
}

func (m *memoryStorage) GetItems(_ context.Context) ([]models.EncryptedItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return cloneItems(m.items), nil
}

func (m *memoryStorage) SaveItems(_ context.Context, items []models.EncryptedItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = cloneItems(items)
	return nil
}

func (m *memoryStorage) ReplaceVault(_ context.Context, meta models.VaultMeta, items []models.EncryptedItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := cloneMeta(meta)
	m.meta = &c
	m.items = cloneItems(items)
	return nil
}

func (m *memoryStorage) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.meta = nil
	m.items = nil
	m.link = nil
	return nil
}

func (m *memoryStorage) GetSyncLink(_ context.Context) (models.SyncLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.link == nil {
		return models.SyncLink{}, ErrSyncLinkNotFound
	}
	return *m.link, nil
}

func (m *memoryStorage) SetSyncLink(_ context.Context, link models.SyncLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.link = &link
	return nil
}

func (m *memoryStorage) DeleteSyncLink(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.link = nil
	return nil
}

func (m *memoryStorage) Close() error {
	return nil
}

func cloneMeta(meta models.VaultMeta) models.VaultMeta {
	return models.VaultMeta{
		Salt:       slices.Clone(meta.Salt),
		Validation: cloneEnvelope(meta.Validation),
	}
}

func cloneEnvelope(e models.Envelope) models.Envelope {
	return models.Envelope{
		Ciphertext: slices.Clone(e.Ciphertext),
		Nonce:      slices.Clone(e.Nonce),
	}
}

func cloneItems(items []models.EncryptedItem) []models.EncryptedItem {
	out := make([]models.EncryptedItem, len(items))
	for i, item := range items {
		out[i] = models.EncryptedItem{ID: item.ID, Data: cloneEnvelope(item.Data)}
	}
	return out
}
