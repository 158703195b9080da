package service

import "errors"

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrEmptyPassword        = errors.New("master password is empty")
	ErrVaultExists          = errors.New("vault already exists")
	ErrNoVault              = errors.New("no vault has been created")
	ErrVaultLocked          = errors.New("vault is locked")
	ErrAlreadyUnlocked      = errors.New("vault is already unlocked")
	ErrUnlockInProgress     = errors.New("unlock already in progress")
	ErrNotConfirmed         = errors.New("operation not confirmed")

	ErrNotFound = errors.New("item not found")

	ErrInvalidFormat = errors.New("invalid format")

	ErrNoSyncLink       = errors.New("no sync link")
	ErrPermissionDenied = errors.New("permission denied")
)
