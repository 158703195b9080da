package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/akgarhwal/vault/models"
)

// localFile is a [FileCapability] over a path on the local file system.
type localFile struct {
	path string
}

// NewLocalFile returns a capability for path. The path is made absolute so
// that the persisted descriptor does not depend on the working directory.
func NewLocalFile(path string) (FileCapability, error) {
	if path == "" {
		return nil, ErrEmptyTarget
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving path: %w", err)
	}
	return &localFile{path: abs}, nil
}

func (f *localFile) Descriptor() models.SyncLink {
	return models.SyncLink{Kind: models.SyncKindFile, Target: f.path}
}

// QueryPermission checks access with access(2). A missing file whose
// directory is writable reports [models.PermissionPrompt]: RequestPermission
// will create it.
func (f *localFile) QueryPermission(_ context.Context, mode models.PermissionMode) (models.Permission, error) {
	err := unix.Access(f.path, accessBits(mode))
	switch {
	case err == nil:
		return models.PermissionGranted, nil
	case errors.Is(err, unix.ENOENT):
		if dirErr := unix.Access(nearestDir(f.path), unix.W_OK|unix.X_OK); dirErr == nil {
			return models.PermissionPrompt, nil
		}
		return models.PermissionDenied, nil
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EROFS), errors.Is(err, unix.EPERM):
		return models.PermissionDenied, nil
	default:
		return models.PermissionDenied, fmt.Errorf("error checking access to %s: %w", f.path, err)
	}
}

// RequestPermission creates the destination (and its directory) when it is
// missing, then re-queries. Existing files are never chmod'ed.
func (f *localFile) RequestPermission(ctx context.Context, mode models.PermissionMode) (models.Permission, error) {
	perm, err := f.QueryPermission(ctx, mode)
	if err != nil || perm != models.PermissionPrompt {
		return perm, err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return models.PermissionDenied, nil
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return models.PermissionDenied, nil
	}
	file.Close()

	return f.QueryPermission(ctx, mode)
}

// Write replaces the file through a temporary sibling and a rename, so
// readers never observe a partially written mirror.
func (f *localFile) Write(_ context.Context, data []byte) error {
	dir := filepath.Dir(f.path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
		}
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("error setting file mode: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		if errors.Is(err, os.ErrPermission) {
			return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
		}
		return fmt.Errorf("error replacing %s: %w", f.path, err)
	}
	return nil
}

func accessBits(mode models.PermissionMode) uint32 {
	if mode == models.PermissionRead {
		return unix.R_OK
	}
	return unix.R_OK | unix.W_OK
}

// nearestDir returns the closest existing ancestor directory of path.
func nearestDir(path string) string {
	dir := filepath.Dir(path)
	for {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
