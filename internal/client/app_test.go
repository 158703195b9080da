package client

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

	"github.com/akgarhwal/vault/internal/adapter"
	"github.com/akgarhwal/vault/internal/config"
	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/service"
	"github.com/akgarhwal/vault/internal/store"
	"github.com/akgarhwal/vault/models"
)

type uiFunc func(ctx context.Context) error

func (f uiFunc) Run(ctx context.Context) error { return f(ctx) }

func newServices(t *testing.T) *service.ClientServices {
	t.Helper()
	opener := adapter.NewOpener(config.Sync{Timeout: time.Second, KeyringService: "vault-client-test"}, logger.Nop())
	svc := service.NewClientServices(store.NewMemoryStorage(), opener, service.ClientOptions{AutoLockTimeout: time.Minute}, logger.Nop())
	t.Cleanup(svc.Vault.Lock)
	return svc
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, uiFunc(func(context.Context) error { return nil }), logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(newServices(t), nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_WritesPendingMirrorAndLocks(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	require.NoError(t, svc.Vault.Create(ctx, "master password"))

	mirrorPath := filepath.Join(t.TempDir(), "mirror.json")
	capability, err := adapter.NewLocalFile(mirrorPath)
	require.NoError(t, err)
	require.NoError(t, svc.Sync.LinkNew(ctx, capability, "mirror"))

	ui := uiFunc(func(ctx context.Context) error {
		_, err := svc.Items.Add(ctx, models.NewPasswordPayload("mail", "me", "secret", ""))
		return err
	})

	app, err := NewApp(svc, ui, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, app.Run(ctx))

	assert.False(t, svc.Session.Unlocked())

	data, err := os.ReadFile(mirrorPath)
	require.NoError(t, err)
	var doc models.ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Items, 1)
}

func TestApp_Run_ReturnsUIError(t *testing.T) {
	svc := newServices(t)
	boom := errors.New("terminal gone")

	app, err := NewApp(svc, uiFunc(func(context.Context) error { return boom }), logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}
