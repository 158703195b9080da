package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a configuration file. The same struct
// is decoded from JSON and YAML.
type fileConfig struct {
	Session struct {
		AutoLockTimeout Duration `json:"auto_lock_timeout" yaml:"auto_lock_timeout"`
		KDFIterations   int      `json:"kdf_iterations" yaml:"kdf_iterations"`
	} `json:"session" yaml:"session"`

	Storage struct {
		Driver string `json:"driver" yaml:"driver"`
		Path   string `json:"path" yaml:"path"`
	} `json:"storage" yaml:"storage"`

	Sync struct {
		Timeout        Duration `json:"timeout" yaml:"timeout"`
		KeyringService string   `json:"keyring_service" yaml:"keyring_service"`
	} `json:"sync" yaml:"sync"`

	Log struct {
		File  string `json:"file" yaml:"file"`
		Level string `json:"level" yaml:"level"`
	} `json:"log" yaml:"log"`

	Mirror struct {
		Address     string `json:"address" yaml:"address"`
		Dir         string `json:"dir" yaml:"dir"`
		User        string `json:"user" yaml:"user"`
		MaxBodySize int64  `json:"max_body_size" yaml:"max_body_size"`
	} `json:"mirror" yaml:"mirror"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		Session: Session{
			AutoLockTimeout: time.Duration(fc.Session.AutoLockTimeout),
			KDFIterations:   fc.Session.KDFIterations,
		},
		Storage: Storage{
			Driver: fc.Storage.Driver,
			Path:   fc.Storage.Path,
		},
		Sync: Sync{
			Timeout:        time.Duration(fc.Sync.Timeout),
			KeyringService: fc.Sync.KeyringService,
		},
		Log: Log{
			File:  fc.Log.File,
			Level: fc.Log.Level,
		},
		Mirror: Mirror{
			Address:     fc.Mirror.Address,
			Dir:         fc.Mirror.Dir,
			User:        fc.Mirror.User,
			MaxBodySize: fc.Mirror.MaxBodySize,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
