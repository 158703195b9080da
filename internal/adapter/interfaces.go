// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the file capabilities through which the vault is
// mirrored to an external destination.
//
// The primary abstraction is [FileCapability]: an opaque, user-granted handle
// that can only be asked about permissions and overwritten as a whole. Two
// implementations ship with the package: a local file ([NewLocalFile]) and a
// WebDAV-style HTTP resource ([NewHTTPFile]) whose credentials live in the OS
// keyring. A [CapabilityOpener] turns a persisted [models.SyncLink]
// descriptor back into a live capability.
package adapter

import (
	"context"

	"github.com/akgarhwal/vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// FileCapability is a destination the user granted to the application.
// Implementations must make Write an atomic whole-file overwrite.
type FileCapability interface {
	// QueryPermission reports the current permission for mode without
	// prompting the user or acquiring new credentials.
	QueryPermission(ctx context.Context, mode models.PermissionMode) (models.Permission, error)

	// RequestPermission tries to obtain mode, which may create the
	// destination or load stored credentials.
	RequestPermission(ctx context.Context, mode models.PermissionMode) (models.Permission, error)

	// Write replaces the destination content with data.
	Write(ctx context.Context, data []byte) error

	// Descriptor returns the persistable kind and target of the capability.
	Descriptor() models.SyncLink
}

// CapabilityOpener reopens a capability from its persisted descriptor.
type CapabilityOpener interface {
	Open(link models.SyncLink) (FileCapability, error)
}
