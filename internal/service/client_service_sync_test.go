package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akgarhwal/vault/internal/adapter"
	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/mock"
	"github.com/akgarhwal/vault/internal/store"
	"github.com/akgarhwal/vault/models"
)

func fileLink(target string) models.SyncLink {
	return models.SyncLink{Kind: models.SyncKindFile, Target: target}
}

func TestSync_LinkNew_WritesExportAndPersistsLink(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.create(t)

	item, err := env.svc.Items.Add(ctx, samplePassword("GitHub"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mirror", "vault.json")
	capability, err := adapter.NewLocalFile(path)
	require.NoError(t, err)

	require.NoError(t, env.svc.Sync.LinkNew(ctx, capability, ""))
	assert.Equal(t, models.SyncStatusConnected, env.svc.Sync.Status())

	link, ok := env.svc.Sync.Link()
	require.True(t, ok)
	assert.Equal(t, "vault.json", link.Label)
	assert.False(t, link.LinkedAt.IsZero())

	stored, err := env.storage.GetSyncLink(ctx)
	require.NoError(t, err)
	assert.Equal(t, path, stored.Target)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc models.ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Items, 1)
	assert.Equal(t, item.ID, doc.Items[0].ID)
}

func TestSync_OnMutation_RewritesMirror(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.create(t)

	path := filepath.Join(t.TempDir(), "vault.json")
	capability, err := adapter.NewLocalFile(path)
	require.NoError(t, err)
	require.NoError(t, env.svc.Sync.LinkNew(ctx, capability, "backup"))

	_, err = env.svc.Items.Add(ctx, samplePassword("a"))
	require.NoError(t, err)
	_, err = env.svc.Items.Add(ctx, samplePassword("b"))
	require.NoError(t, err)

	require.NoError(t, env.svc.Sync.OnMutation(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc models.ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Items, 2)
}

func TestSync_OnMutation_WithoutLink_IsNoop(t *testing.T) {
	env := newTestEnv(t)
	env.create(t)

	assert.NoError(t, env.svc.Sync.OnMutation(context.Background()))
	assert.Equal(t, models.SyncStatusUnlinked, env.svc.Sync.Status())
}

func TestSync_PermissionDenied_DoesNotFailLocalWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	capability := mock.NewMockFileCapability(ctrl)
	opener := mock.NewMockCapabilityOpener(ctrl)
	storage := store.NewMemoryStorage()
	ctx := context.Background()

	link := fileLink("/mnt/usb/vault.json")
	require.NoError(t, storage.SetSyncLink(ctx, link))

	opener.EXPECT().Open(link).Return(capability, nil)
	capability.EXPECT().QueryPermission(gomock.Any(), models.PermissionReadWrite).Return(models.PermissionPrompt, nil)
	capability.EXPECT().RequestPermission(gomock.Any(), models.PermissionReadWrite).Return(models.PermissionDenied, nil)

	log, _ := bufferLogger()
	svc := NewClientServices(storage, opener, ClientOptions{}, log)
	t.Cleanup(svc.Vault.Lock)
	require.NoError(t, svc.Vault.Create(ctx, testPassword))

	item, err := svc.Items.Add(ctx, samplePassword("offline"))
	require.NoError(t, err, "local write must succeed regardless of the mirror")

	err = svc.Sync.OnMutation(ctx)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, models.SyncStatusDisconnected, svc.Sync.Status())

	got, err := svc.Items.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "offline", got.Name)

	stored, err := storage.GetItems(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestSync_LinkNew_Denied(t *testing.T) {
	ctrl := gomock.NewController(t)
	capability := mock.NewMockFileCapability(ctrl)
	capability.EXPECT().RequestPermission(gomock.Any(), models.PermissionReadWrite).Return(models.PermissionDenied, nil)

	storage := store.NewMemoryStorage()
	svc := NewSyncService(storage, storage, mock.NewMockCapabilityOpener(ctrl), logger.Nop())

	err := svc.LinkNew(context.Background(), capability, "x")
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, models.SyncStatusUnlinked, svc.Status())

	_, err = storage.GetSyncLink(context.Background())
	assert.ErrorIs(t, err, store.ErrSyncLinkNotFound)
}

func TestSync_LinkNew_ReplacesPreviousLink(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.create(t)

	dir := t.TempDir()
	first, err := adapter.NewLocalFile(filepath.Join(dir, "first.json"))
	require.NoError(t, err)
	second, err := adapter.NewLocalFile(filepath.Join(dir, "second.json"))
	require.NoError(t, err)

	require.NoError(t, env.svc.Sync.LinkNew(ctx, first, "first"))
	require.NoError(t, env.svc.Sync.LinkNew(ctx, second, "second"))

	link, ok := env.svc.Sync.Link()
	require.True(t, ok)
	assert.Equal(t, "second", link.Label)

	stored, err := env.storage.GetSyncLink(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "second.json"), stored.Target)
}

func TestSync_Reconnect(t *testing.T) {
	tests := []struct {
		name       string
		query      models.Permission
		request    *models.Permission
		wantOK     bool
		wantErr    error
		wantStatus models.SyncStatus
	}{
		{name: "already granted", query: models.PermissionGranted, wantOK: true, wantStatus: models.SyncStatusConnected},
		{name: "granted after request", query: models.PermissionPrompt, request: ptr(models.PermissionGranted), wantOK: true, wantStatus: models.SyncStatusConnected},
		{name: "denied", query: models.PermissionDenied, request: ptr(models.PermissionDenied), wantErr: ErrPermissionDenied, wantStatus: models.SyncStatusDisconnected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			capability := mock.NewMockFileCapability(ctrl)
			opener := mock.NewMockCapabilityOpener(ctrl)
			storage := store.NewMemoryStorage()
			ctx := context.Background()

			link := fileLink("/tmp/v.json")
			require.NoError(t, storage.SetSyncLink(ctx, link))

			opener.EXPECT().Open(link).Return(capability, nil)
			capability.EXPECT().QueryPermission(gomock.Any(), models.PermissionReadWrite).Return(tt.query, nil)
			if tt.request != nil {
				capability.EXPECT().RequestPermission(gomock.Any(), models.PermissionReadWrite).Return(*tt.request, nil)
			}

			svc := NewSyncService(storage, storage, opener, logger.Nop())
			ok, err := svc.Reconnect(ctx)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, svc.Status())

			_, linked := svc.Link()
			assert.True(t, linked)
		})
	}
}

func TestSync_Reconnect_NoLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := store.NewMemoryStorage()
	svc := NewSyncService(storage, storage, mock.NewMockCapabilityOpener(ctrl), logger.Nop())

	ok, err := svc.Reconnect(context.Background())
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNoSyncLink)
	assert.Equal(t, models.SyncStatusUnlinked, svc.Status())
}

func TestSync_Reconnect_OpenFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	opener := mock.NewMockCapabilityOpener(ctrl)
	storage := store.NewMemoryStorage()
	ctx := context.Background()

	link := models.SyncLink{Kind: "smb", Target: "//share/v.json"}
	require.NoError(t, storage.SetSyncLink(ctx, link))
	opener.EXPECT().Open(link).Return(nil, adapter.ErrUnsupportedKind)

	svc := NewSyncService(storage, storage, opener, logger.Nop())
	ok, err := svc.Reconnect(ctx)

	assert.False(t, ok)
	assert.ErrorIs(t, err, adapter.ErrUnsupportedKind)
	assert.Equal(t, models.SyncStatusDisconnected, svc.Status())
}

func TestSync_OnMutation_WriteRejected_Disconnects(t *testing.T) {
	ctrl := gomock.NewController(t)
	capability := mock.NewMockFileCapability(ctrl)
	opener := mock.NewMockCapabilityOpener(ctrl)
	storage := store.NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, storage.SetMeta(ctx, models.VaultMeta{Salt: []byte("s")}))
	link := fileLink("/tmp/v.json")
	require.NoError(t, storage.SetSyncLink(ctx, link))

	opener.EXPECT().Open(link).Return(capability, nil)
	capability.EXPECT().QueryPermission(gomock.Any(), models.PermissionReadWrite).Return(models.PermissionGranted, nil)
	capability.EXPECT().Write(gomock.Any(), gomock.Any()).Return(adapter.ErrPermissionDenied)

	svc := NewSyncService(storage, storage, opener, logger.Nop())
	err := svc.OnMutation(ctx)

	assert.ErrorIs(t, err, adapter.ErrPermissionDenied)
	assert.Equal(t, models.SyncStatusDisconnected, svc.Status())
}

func TestSync_OnMutation_WriteFails_Disconnects(t *testing.T) {
	ctrl := gomock.NewController(t)
	capability := mock.NewMockFileCapability(ctrl)
	opener := mock.NewMockCapabilityOpener(ctrl)
	storage := store.NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, storage.SetMeta(ctx, models.VaultMeta{Salt: []byte("s")}))
	link := fileLink("/tmp/v.json")
	require.NoError(t, storage.SetSyncLink(ctx, link))

	unavailable := errors.New("503 service unavailable")
	opener.EXPECT().Open(link).Return(capability, nil)
	capability.EXPECT().QueryPermission(gomock.Any(), models.PermissionReadWrite).Return(models.PermissionGranted, nil).Times(2)
	gomock.InOrder(
		capability.EXPECT().Write(gomock.Any(), gomock.Any()).Return(unavailable),
		capability.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil),
	)

	svc := NewSyncService(storage, storage, opener, logger.Nop())

	err := svc.OnMutation(ctx)
	assert.ErrorIs(t, err, unavailable)
	assert.Equal(t, models.SyncStatusDisconnected, svc.Status())

	require.NoError(t, svc.OnMutation(ctx))
	assert.Equal(t, models.SyncStatusConnected, svc.Status())
}

func TestSync_StatusAndLinkDoNotWaitForMirrorWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	capability := mock.NewMockFileCapability(ctrl)
	opener := mock.NewMockCapabilityOpener(ctrl)
	storage := store.NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, storage.SetMeta(ctx, models.VaultMeta{Salt: []byte("s")}))
	link := fileLink("/tmp/v.json")
	require.NoError(t, storage.SetSyncLink(ctx, link))

	writing := make(chan struct{})
	release := make(chan struct{})
	opener.EXPECT().Open(link).Return(capability, nil)
	capability.EXPECT().QueryPermission(gomock.Any(), models.PermissionReadWrite).Return(models.PermissionGranted, nil)
	capability.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, []byte) error {
		close(writing)
		<-release
		return nil
	})

	svc := NewSyncService(storage, storage, opener, logger.Nop())
	done := make(chan error, 1)
	go func() { done <- svc.OnMutation(ctx) }()
	<-writing

	read := make(chan bool, 1)
	go func() {
		_ = svc.Status()
		_, linked := svc.Link()
		read <- linked
	}()

	select {
	case linked := <-read:
		assert.True(t, linked)
	case <-time.After(time.Second):
		t.Error("Status and Link blocked behind the mirror write")
	}

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, models.SyncStatusConnected, svc.Status())
}

func TestSync_Unlink_DuringWrite_KeepsUnlinked(t *testing.T) {
	ctrl := gomock.NewController(t)
	capability := mock.NewMockFileCapability(ctrl)
	opener := mock.NewMockCapabilityOpener(ctrl)
	storage := store.NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, storage.SetMeta(ctx, models.VaultMeta{Salt: []byte("s")}))
	link := fileLink("/tmp/v.json")
	require.NoError(t, storage.SetSyncLink(ctx, link))

	writing := make(chan struct{})
	release := make(chan struct{})
	opener.EXPECT().Open(link).Return(capability, nil)
	capability.EXPECT().QueryPermission(gomock.Any(), models.PermissionReadWrite).Return(models.PermissionGranted, nil)
	capability.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, []byte) error {
		close(writing)
		<-release
		return nil
	})

	svc := NewSyncService(storage, storage, opener, logger.Nop())
	done := make(chan error, 1)
	go func() { done <- svc.OnMutation(ctx) }()
	<-writing

	unlinked := make(chan error, 1)
	go func() { unlinked <- svc.Unlink(ctx) }()

	close(release)
	require.NoError(t, <-done)
	require.NoError(t, <-unlinked)

	assert.Equal(t, models.SyncStatusUnlinked, svc.Status())
	_, linked := svc.Link()
	assert.False(t, linked)
}

func TestSync_OnMutation_QueryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	capability := mock.NewMockFileCapability(ctrl)
	opener := mock.NewMockCapabilityOpener(ctrl)
	storage := store.NewMemoryStorage()
	ctx := context.Background()

	link := fileLink("/tmp/v.json")
	require.NoError(t, storage.SetSyncLink(ctx, link))
	opener.EXPECT().Open(link).Return(capability, nil)
	capability.EXPECT().QueryPermission(gomock.Any(), gomock.Any()).Return(models.PermissionDenied, errors.New("io"))

	svc := NewSyncService(storage, storage, opener, logger.Nop())

	assert.Error(t, svc.OnMutation(ctx))
	assert.Equal(t, models.SyncStatusDisconnected, svc.Status())
}

func TestSync_Unlink(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.create(t)

	capability, err := adapter.NewLocalFile(filepath.Join(t.TempDir(), "v.json"))
	require.NoError(t, err)
	require.NoError(t, env.svc.Sync.LinkNew(ctx, capability, "v"))

	require.NoError(t, env.svc.Sync.Unlink(ctx))

	assert.Equal(t, models.SyncStatusUnlinked, env.svc.Sync.Status())
	_, ok := env.svc.Sync.Link()
	assert.False(t, ok)
	_, err = env.storage.GetSyncLink(ctx)
	assert.ErrorIs(t, err, store.ErrSyncLinkNotFound)
}

func TestSync_WorkerWritesMirrorAfterAdd(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		env.svc.Workers.Wait()
	})
	env.svc.Workers.Run(ctx)
	env.create(t)

	path := filepath.Join(t.TempDir(), "v.json")
	capability, err := adapter.NewLocalFile(path)
	require.NoError(t, err)
	require.NoError(t, env.svc.Sync.LinkNew(ctx, capability, "v"))

	_, err = env.svc.Items.Add(ctx, samplePassword("async"))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(path)
		if err != nil {
			return false
		}
		var doc models.ExportDocument
		return json.Unmarshal(data, &doc) == nil && len(doc.Items) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func ptr[T any](v T) *T {
	return &v
}
