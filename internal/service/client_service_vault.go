package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akgarhwal/vault/internal/crypto"
	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/store"
	"github.com/akgarhwal/vault/models"
)

const (
	resetFirstPrompt  = "Erase the vault and every item in it?"
	resetSecondPrompt = "This cannot be undone. Really erase the vault?"
)

type vaultService struct {
	storage  store.VaultStorage
	keychain crypto.KeyChainService
	items    ItemService
	sync     SyncService
	session  *Session
	autoLock *AutoLock

	unlocking atomic.Bool

	hookMu     sync.Mutex
	onAutoLock func()

	logger *logger.Logger
}

func NewVaultService(
	storage store.VaultStorage,
	keychain crypto.KeyChainService,
	items ItemService,
	syncService SyncService,
	session *Session,
	autoLockTimeout time.Duration,
	log *logger.Logger,
) VaultService {
	v := &vaultService{
		storage:  storage,
		keychain: keychain,
		items:    items,
		sync:     syncService,
		session:  session,
		logger:   log,
	}
	v.autoLock = NewAutoLock(autoLockTimeout, v.autoLockFired)
	return v
}

func (v *vaultService) State(ctx context.Context) (models.VaultState, error) {
	if v.session.Unlocked() {
		return models.VaultStateUnlocked, nil
	}

	if _, err := v.storage.GetMeta(ctx); err != nil {
		if errors.Is(err, store.ErrVaultMetaNotFound) {
			return models.VaultStateNoVault, nil
		}
		return "", fmt.Errorf("read vault meta: %w", err)
	}
	return models.VaultStateLocked, nil
}

func (v *vaultService) Create(ctx context.Context, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if !v.unlocking.CompareAndSwap(false, true) {
		return ErrUnlockInProgress
	}
	defer v.unlocking.Store(false)

	_, err := v.storage.GetMeta(ctx)
	if err == nil {
		return ErrVaultExists
	}
	if !errors.Is(err, store.ErrVaultMetaNotFound) {
		return fmt.Errorf("read vault meta: %w", err)
	}

	salt, err := v.keychain.GenerateEncryptionSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	key, err := v.keychain.DeriveKey(ctx, password, salt)
	if err != nil {
		return fmt.Errorf("derive key: %w", err)
	}
	token, err := v.keychain.CreateValidationToken(key)
	if err != nil {
		crypto.Wipe(key)
		return fmt.Errorf("create validation token: %w", err)
	}

	if err = v.storage.SetMeta(ctx, models.VaultMeta{Salt: salt, Validation: token}); err != nil {
		crypto.Wipe(key)
		return fmt.Errorf("save vault meta: %w", err)
	}

	v.session.open(key, nil, true)
	v.autoLock.Arm()

	v.logger.Info().Str("func", "vaultService.Create").Msg("vault created")
	return nil
}

func (v *vaultService) Unlock(ctx context.Context, password string) error {
	if v.session.Unlocked() {
		return ErrAlreadyUnlocked
	}
	if password == "" {
		return ErrEmptyPassword
	}
	if !v.unlocking.CompareAndSwap(false, true) {
		return ErrUnlockInProgress
	}
	defer v.unlocking.Store(false)

	meta, err := v.storage.GetMeta(ctx)
	if errors.Is(err, store.ErrVaultMetaNotFound) {
		return ErrNoVault
	}
	if err != nil {
		return fmt.Errorf("read vault meta: %w", err)
	}

	key, err := v.keychain.DeriveKey(ctx, password, meta.Salt)
	if err != nil {
		return fmt.Errorf("derive key: %w", err)
	}
	if !v.keychain.Verify(key, meta.Validation) {
		crypto.Wipe(key)
		v.logger.Warn().Str("func", "vaultService.Unlock").Msg("master password verification failed")
		return ErrAuthenticationFailed
	}

	items, skipped, err := v.items.LoadAll(ctx, key)
	if err != nil {
		crypto.Wipe(key)
		return fmt.Errorf("load items: %w", err)
	}

	v.session.open(key, items, false)
	v.autoLock.Arm()

	v.logger.Info().
		Str("func", "vaultService.Unlock").
		Int("items", len(items)).
		Int("skipped", skipped).
		Msg("vault unlocked")
	return nil
}

func (v *vaultService) Lock() {
	v.autoLock.Disarm()
	v.session.close()
}

func (v *vaultService) autoLockFired() {
	v.Lock()
	v.logger.Info().Str("func", "vaultService.autoLock").Msg("vault locked after inactivity")

	v.hookMu.Lock()
	fn := v.onAutoLock
	v.hookMu.Unlock()
	if fn != nil {
		fn()
	}
}

func (v *vaultService) Reset(ctx context.Context, confirmer Confirmer) error {
	state, err := v.State(ctx)
	if err != nil {
		return err
	}
	if state == models.VaultStateNoVault {
		return ErrNoVault
	}

	if !confirmer.Confirm(ctx, resetFirstPrompt) || !confirmer.Confirm(ctx, resetSecondPrompt) {
		return ErrNotConfirmed
	}

	v.Lock()
	if err = v.storage.Clear(ctx); err != nil {
		return fmt.Errorf("clear vault: %w", err)
	}
	v.sync.Forget()

	v.logger.Warn().Str("func", "vaultService.Reset").Msg("vault erased")
	return nil
}

func (v *vaultService) Touch() {
	v.autoLock.Touch()
}

func (v *vaultService) IsNewUser() bool {
	return v.session.IsNewUser()
}

func (v *vaultService) SetOnAutoLock(fn func()) {
	v.hookMu.Lock()
	defer v.hookMu.Unlock()
	v.onAutoLock = fn
}
