package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akgarhwal/vault/models"
)

func TestNewLocalFile_EmptyPath(t *testing.T) {
	_, err := NewLocalFile("")
	assert.ErrorIs(t, err, ErrEmptyTarget)
}

func TestLocalFile_Descriptor_IsAbsolute(t *testing.T) {
	capability, err := NewLocalFile("mirror.json")
	require.NoError(t, err)

	desc := capability.Descriptor()
	assert.Equal(t, models.SyncKindFile, desc.Kind)
	assert.True(t, filepath.IsAbs(desc.Target))
}

func TestLocalFile_MissingFile_PromptsThenCreates(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "mirror.json")

	capability, err := NewLocalFile(path)
	require.NoError(t, err)

	perm, err := capability.QueryPermission(ctx, models.PermissionReadWrite)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionPrompt, perm)

	perm, err = capability.RequestPermission(ctx, models.PermissionReadWrite)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionGranted, perm)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLocalFile_Write_ReplacesContent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "mirror.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"old":true}`), 0o600))

	capability, err := NewLocalFile(path)
	require.NoError(t, err)

	perm, err := capability.QueryPermission(ctx, models.PermissionReadWrite)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionGranted, perm)

	require.NoError(t, capability.Write(ctx, []byte(`{"version":1}`)))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestLocalFile_ReadOnlyFile_Denied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("access checks are bypassed for root")
	}
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "mirror.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o400))

	capability, err := NewLocalFile(path)
	require.NoError(t, err)

	perm, err := capability.QueryPermission(ctx, models.PermissionReadWrite)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionDenied, perm)

	perm, err = capability.QueryPermission(ctx, models.PermissionRead)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionGranted, perm)

	perm, err = capability.RequestPermission(ctx, models.PermissionReadWrite)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionDenied, perm)
}

func TestLocalFile_Write_ReadOnlyDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("access checks are bypassed for root")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "mirror.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	capability, err := NewLocalFile(path)
	require.NoError(t, err)

	err = capability.Write(context.Background(), []byte("{}"))
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
