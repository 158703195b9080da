// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverSQLite, DriverBolt:
		if cfg.Storage.Path == "" {
			return ErrInvalidStorageConfigs
		}
	case DriverMemory:
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Session.AutoLockTimeout <= 0 || cfg.Session.KDFIterations < DefaultKDFIterations {
		return ErrInvalidSessionConfigs
	}

	if cfg.Sync.Timeout <= 0 || cfg.Sync.KeyringService == "" {
		return ErrInvalidSyncConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	// credentials are checked when the mirror server starts
	if cfg.Mirror.Address == "" || cfg.Mirror.Dir == "" || cfg.Mirror.MaxBodySize <= 0 {
		return ErrInvalidMirrorConfigs
	}

	return nil
}
