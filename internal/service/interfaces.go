// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/akgarhwal/vault/internal/adapter"
	"github.com/akgarhwal/vault/internal/workers"
	"github.com/akgarhwal/vault/models"
)

// Confirmer asks the user a yes/no question. Implementations are the TUI
// modal and the CLI prompt.
type Confirmer interface {
	Confirm(ctx context.Context, message string) bool
}

// ConfirmFunc adapts an ordinary function to [Confirmer].
type ConfirmFunc func(ctx context.Context, message string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, message string) bool {
	return f(ctx, message)
}

// VaultService drives the session state machine:
//
//	NoVault --Create--> Unlocked --Lock--> Locked --Unlock--> Unlocked
//
// Reset returns to NoVault from any state with a vault.
type VaultService interface {
	// State reports the current state. It reads storage only when locked.
	State(ctx context.Context) (models.VaultState, error)

	// Create derives a key from password with a fresh salt, stores the salt
	// and validation token, and opens an empty session.
	Create(ctx context.Context, password string) error

	// Unlock derives the key from password and the stored salt, verifies it
	// against the validation token and loads all readable items. Every
	// verification failure is reported as [ErrAuthenticationFailed].
	Unlock(ctx context.Context, password string) error

	// Lock forgets the key and decrypted items.
	Lock()

	// Reset erases the vault after two confirmations.
	Reset(ctx context.Context, confirmer Confirmer) error

	// Touch records user activity and postpones the auto-lock.
	Touch()

	// IsNewUser reports whether the open session was created rather than
	// unlocked.
	IsNewUser() bool

	// SetOnAutoLock registers fn to run after the inactivity timer locked
	// the vault. fn runs on the timer goroutine.
	SetOnAutoLock(fn func())
}

// ItemFilter selects items for display. Type "" or "all" matches every
// type; Query is a case-insensitive substring of the name.
type ItemFilter struct {
	Type  models.ItemType
	Query string
}

// ItemService manages the decrypted items of the open session and their
// encrypted persisted form. All methods except LoadAll need an unlocked
// session.
type ItemService interface {
	// LoadAll decrypts every persisted item with key. Unreadable items are
	// logged and skipped; their count is returned.
	LoadAll(ctx context.Context, key []byte) ([]models.DecryptedItem, int, error)

	Add(ctx context.Context, payload models.ItemPayload) (models.DecryptedItem, error)
	Update(ctx context.Context, id string, payload models.ItemPayload) (models.DecryptedItem, error)
	Delete(ctx context.Context, id string) error

	Get(id string) (models.DecryptedItem, error)
	List() ([]models.DecryptedItem, error)
	Filter(filter ItemFilter) ([]models.DecryptedItem, error)
}

// SyncService keeps one external file in step with the local vault. It only
// ever writes the encrypted export document; the mirror is never read back.
type SyncService interface {
	// LinkNew writes the current export to capability and makes it the
	// single linked mirror.
	LinkNew(ctx context.Context, capability adapter.FileCapability, label string) error

	// Reconnect reopens the stored link and re-establishes write permission.
	// It returns false with [ErrPermissionDenied] if access was refused.
	Reconnect(ctx context.Context) (bool, error)

	// OnMutation rewrites the mirror after a local change. Callers log the
	// error; it never affects the local write.
	OnMutation(ctx context.Context) error

	// Notify schedules OnMutation on the mirror worker and returns at once.
	Notify()

	Status() models.SyncStatus
	Link() (models.SyncLink, bool)
	Unlink(ctx context.Context) error

	// Forget drops the in-memory link without touching storage.
	Forget()

	// Worker returns the background worker that executes Notify requests.
	Worker() workers.Worker
}

// TransferService exports and imports the portable encrypted document.
type TransferService interface {
	Export(ctx context.Context) (models.ExportDocument, error)
	MarshalDocument(doc models.ExportDocument) ([]byte, error)
	ParseDocument(data []byte) (models.ExportDocument, error)
	Preview(ctx context.Context, doc models.ExportDocument) (models.ImportPreview, error)

	// Import replaces the local vault with doc after confirmation and locks
	// the session, so the imported vault is opened with its own password.
	Import(ctx context.Context, doc models.ExportDocument, confirmer Confirmer) (models.ImportPreview, error)
}
