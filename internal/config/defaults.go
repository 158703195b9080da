package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
	DriverMemory = "memory"

	DefaultAutoLockTimeout = 120 * time.Second
	DefaultKDFIterations   = 100_000
	DefaultSyncTimeout     = 15 * time.Second
	DefaultKeyringService  = "vault-sync"
	DefaultLogLevel        = "info"
	DefaultMirrorAddress   = "127.0.0.1:8484"
	DefaultMirrorMaxBody   = 32 << 20
)

// defaultConfig returns the values used for fields no other source set.
// Files live under the user config directory, falling back to the working
// directory when it cannot be determined.
func defaultConfig() *StructuredConfig {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	dir = filepath.Join(dir, "vault")

	return &StructuredConfig{
		Session: Session{
			AutoLockTimeout: DefaultAutoLockTimeout,
			KDFIterations:   DefaultKDFIterations,
		},
		Storage: Storage{
			Driver: DriverSQLite,
			Path:   filepath.Join(dir, "vault.db"),
		},
		Sync: Sync{
			Timeout:        DefaultSyncTimeout,
			KeyringService: DefaultKeyringService,
		},
		Log: Log{
			File:  filepath.Join(dir, "vault.log"),
			Level: DefaultLogLevel,
		},
		Mirror: Mirror{
			Address:     DefaultMirrorAddress,
			Dir:         filepath.Join(dir, "mirror"),
			MaxBodySize: DefaultMirrorMaxBody,
		},
	}
}
