// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the vault
// application. It aggregates all sub-configurations and is populated by
// merging command-line flags, environment variables, an optional JSON or
// YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with VAULT_ (see [parseEnv]).
type StructuredConfig struct {
	// Session holds key derivation and auto-lock settings.
	Session Session `envPrefix:"SESSION_"`

	// Storage selects and locates the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds settings for the external mirror file.
	Sync Sync `envPrefix:"SYNC_"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_"`

	// Mirror configures `vault mirror-serve`.
	Mirror Mirror `envPrefix:"MIRROR_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Env: VAULT_CONFIG
	FilePath string `env:"CONFIG"`
}

// Session holds settings of the unlocked session.
type Session struct {
	// AutoLockTimeout is the idle time after which the vault locks itself.
	// Env: VAULT_SESSION_AUTO_LOCK_TIMEOUT
	AutoLockTimeout time.Duration `env:"AUTO_LOCK_TIMEOUT"`

	// KDFIterations is the PBKDF2 iteration count used for new and
	// existing vaults. It must match the count the vault was created with.
	// Env: VAULT_SESSION_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`
}

// Storage configures the persistence backend.
type Storage struct {
	// Driver is one of "sqlite", "bolt" or "memory".
	// Env: VAULT_STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// Path is the database file. Ignored by the memory driver.
	// Env: VAULT_STORAGE_PATH
	Path string `env:"PATH"`
}

// Sync configures the external mirror.
type Sync struct {
	// Timeout bounds a single request of the HTTP mirror.
	// Env: VAULT_SYNC_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// KeyringService is the OS keyring service name under which HTTP
	// mirror credentials are stored.
	// Env: VAULT_SYNC_KEYRING_SERVICE
	KeyringService string `env:"KEYRING_SERVICE"`
}

// Log configures logger output.
type Log struct {
	// File receives log output; the terminal is reserved for the UI.
	// Env: VAULT_LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: VAULT_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Mirror configures the mirror endpoint served by `vault mirror-serve`.
type Mirror struct {
	// Address is the listen address of the mirror endpoint.
	// Env: VAULT_MIRROR_ADDRESS
	Address string `env:"ADDRESS"`

	// Dir holds the mirrored export files.
	// Env: VAULT_MIRROR_DIR
	Dir string `env:"DIR"`

	// User and Password guard every mirror request with HTTP basic auth.
	// Env: VAULT_MIRROR_USER, VAULT_MIRROR_PASSWORD
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`

	// MaxBodySize limits an uploaded export in bytes.
	// Env: VAULT_MIRROR_MAX_BODY_SIZE
	MaxBodySize int64 `env:"MAX_BODY_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are consulted in the following priority order
// (the first non-zero value of a field wins):
//  1. Command-line flags bound by [BindFlags] (may be nil)
//  2. Environment variables
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withFile().
		withDefaults().
		build()
}

// BindFlags registers configuration flags on fs and returns the config they
// are written into once fs is parsed.
//
// Flags:
//
//	-c/--config             configuration file path (.json, .yaml, .yml)
//	--storage               storage driver: sqlite, bolt or memory
//	-d/--db                 database file path
//	--auto-lock             inactivity timeout (e.g. "2m")
//	--kdf-iterations        PBKDF2 iteration count
//	--sync-timeout          HTTP mirror request timeout
//	--log-file              log file path
//	--log-level             log level
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := new(StructuredConfig)

	fs.StringVarP(&cfg.FilePath, "config", "c", "", "Configuration file path")
	fs.StringVar(&cfg.Storage.Driver, "storage", "", "Storage driver: sqlite, bolt or memory")
	fs.StringVarP(&cfg.Storage.Path, "db", "d", "", "Database file path")
	fs.DurationVar(&cfg.Session.AutoLockTimeout, "auto-lock", 0, "Inactivity timeout before the vault locks (e.g. 2m)")
	fs.IntVar(&cfg.Session.KDFIterations, "kdf-iterations", 0, "PBKDF2 iteration count")
	fs.DurationVar(&cfg.Sync.Timeout, "sync-timeout", 0, "HTTP mirror request timeout (e.g. 15s)")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")

	return cfg
}
