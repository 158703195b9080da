package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

var (
	// ErrInvalidMirrorName is returned for names that are not a plain file
	// name inside the mirror directory.
	ErrInvalidMirrorName = errors.New("invalid mirror file name")
	// ErrMirrorNotFound is returned when the named mirror file does not exist.
	ErrMirrorNotFound = errors.New("mirror file not found")
)

var mirrorNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,127}$`)

// MirrorInfo describes a stored mirror file.
type MirrorInfo struct {
	Size    int64
	ModTime time.Time
}

// MirrorDir keeps the mirror files received by the mirror server. Every file
// is written through a local file capability, so uploads replace files
// atomically with mode 0600.
type MirrorDir struct {
	dir string
}

func NewMirrorDir(dir string) (*MirrorDir, error) {
	if dir == "" {
		return nil, ErrEmptyTarget
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("error creating mirror dir: %w", err)
	}
	return &MirrorDir{dir: dir}, nil
}

func (d *MirrorDir) path(name string) (string, error) {
	if !mirrorNamePattern.MatchString(name) || name == "." || name == ".." {
		return "", ErrInvalidMirrorName
	}
	return filepath.Join(d.dir, name), nil
}

func (d *MirrorDir) Stat(name string) (MirrorInfo, error) {
	p, err := d.path(name)
	if err != nil {
		return MirrorInfo{}, err
	}
	fi, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return MirrorInfo{}, ErrMirrorNotFound
	}
	if err != nil {
		return MirrorInfo{}, fmt.Errorf("error reading mirror %s: %w", name, err)
	}
	return MirrorInfo{Size: fi.Size(), ModTime: fi.ModTime()}, nil
}

func (d *MirrorDir) Read(name string) ([]byte, MirrorInfo, error) {
	info, err := d.Stat(name)
	if err != nil {
		return nil, MirrorInfo{}, err
	}
	p, _ := d.path(name)
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, MirrorInfo{}, fmt.Errorf("error reading mirror %s: %w", name, err)
	}
	return data, info, nil
}

// Write replaces the named file. It reports whether the file existed.
func (d *MirrorDir) Write(ctx context.Context, name string, data []byte) (bool, error) {
	p, err := d.path(name)
	if err != nil {
		return false, err
	}
	_, statErr := os.Stat(p)
	existed := statErr == nil

	file, err := NewLocalFile(p)
	if err != nil {
		return false, err
	}
	if err = file.Write(ctx, data); err != nil {
		return false, err
	}
	return existed, nil
}
