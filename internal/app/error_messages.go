// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording shared by the terminal UI
// and the command line.
//
// All Msg* constants are short sentences shown to the user in place of the
// wrapped error chain. Logs keep the full error.
package app

import (
	"errors"

	"github.com/akgarhwal/vault/internal/adapter"
	"github.com/akgarhwal/vault/internal/service"
	"github.com/akgarhwal/vault/internal/validators"
)

const (
	// MsgWrongPassword is shown for every unlock failure, whether the
	// password was wrong or the stored metadata is damaged.
	MsgWrongPassword = "wrong master password"

	MsgPasswordRequired = "master password is required"

	// MsgVaultExists is shown when init runs against an existing vault.
	MsgVaultExists = "a vault already exists; unlock it or reset it first"

	MsgNoVault = "no vault yet; run `vault init` first"

	MsgVaultLocked = "the vault is locked"

	MsgUnlockInProgress = "unlock already in progress"

	MsgCancelled = "cancelled"

	MsgItemNotFound = "item not found"

	// MsgInvalidDocument is shown when an import file is not a vault export.
	MsgInvalidDocument = "the file is not a valid vault export"

	MsgNoSyncLink = "no mirror file is linked"

	// MsgMirrorAccessDenied is shown when the mirror file refused write
	// access. Local data is unaffected.
	MsgMirrorAccessDenied = "access to the mirror file was refused; local data is safe"

	MsgNoCredentials = "no credentials stored for this URL; run `vault link --user`"

	MsgUnsupportedTarget = "unsupported mirror target; use a file path or an http(s) URL"

	MsgMirrorUnavailable = "the mirror server answered with an unexpected status"
)

var messages = []struct {
	err error
	msg string
}{
	{service.ErrAuthenticationFailed, MsgWrongPassword},
	{service.ErrEmptyPassword, MsgPasswordRequired},
	{service.ErrVaultExists, MsgVaultExists},
	{service.ErrNoVault, MsgNoVault},
	{service.ErrVaultLocked, MsgVaultLocked},
	{service.ErrUnlockInProgress, MsgUnlockInProgress},
	{service.ErrNotConfirmed, MsgCancelled},
	{service.ErrNotFound, MsgItemNotFound},
	{service.ErrInvalidFormat, MsgInvalidDocument},
	{service.ErrNoSyncLink, MsgNoSyncLink},
	{service.ErrPermissionDenied, MsgMirrorAccessDenied},
	{adapter.ErrPermissionDenied, MsgMirrorAccessDenied},
	{adapter.ErrNoCredentials, MsgNoCredentials},
	{adapter.ErrUnsupportedKind, MsgUnsupportedTarget},
	{adapter.ErrEmptyTarget, MsgUnsupportedTarget},
	{adapter.ErrUnexpectedStatus, MsgMirrorUnavailable},
}

// validation errors are already phrased for the user
var validationErrors = []error{
	validators.ErrInvalidType,
	validators.ErrEmptyName,
	validators.ErrNameTooLong,
	validators.ErrInvalidCardNumber,
	validators.ErrInvalidCardExpiry,
	validators.ErrInvalidCardCVV,
	validators.ErrFieldTooLong,
}

// UserMessage maps err to a message fit for the terminal. Unknown errors
// are returned as is.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return v.Error()
		}
	}
	return err.Error()
}
