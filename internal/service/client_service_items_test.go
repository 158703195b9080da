package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akgarhwal/vault/internal/crypto"
	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/mock"
	"github.com/akgarhwal/vault/internal/utils"
	"github.com/akgarhwal/vault/internal/validators"
	"github.com/akgarhwal/vault/models"
)

type noopMirror struct{ calls int }

func (n *noopMirror) Notify() { n.calls++ }

func TestItems_Add_PersistsEncryptedAndNotifies(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.create(t)

	before := time.Now().UnixMilli()
	item, err := env.svc.Items.Add(ctx, samplePassword("GitHub"))
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.GreaterOrEqual(t, item.UpdatedAt, before)

	stored, err := env.storage.GetItems(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, item.ID, stored[0].ID)
	assert.Len(t, stored[0].Data.Nonce, crypto.NonceSize)
	assert.False(t, bytes.Contains(stored[0].Data.Ciphertext, []byte("hunter2")))
}

func TestItems_Add_InvalidPayload(t *testing.T) {
	env := newTestEnv(t)
	env.create(t)

	_, err := env.svc.Items.Add(context.Background(), models.NewPasswordPayload("", "u", "p", ""))
	assert.ErrorIs(t, err, validators.ErrEmptyName)

	items, err := env.svc.Items.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItems_Update_PreservesOrderAndRotatesNonce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.create(t)

	var ids []string
	for _, name := range []string{"a", "b", "c"} {
		it, err := env.svc.Items.Add(ctx, samplePassword(name))
		require.NoError(t, err)
		ids = append(ids, it.ID)
	}

	storedBefore, err := env.storage.GetItems(ctx)
	require.NoError(t, err)

	changed := samplePassword("b-renamed")
	changed.Password = "new-secret"
	updated, err := env.svc.Items.Update(ctx, ids[1], changed)
	require.NoError(t, err)
	assert.Equal(t, ids[1], updated.ID)

	items, err := env.svc.Items.List()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a", "b-renamed", "c"}, []string{items[0].Name, items[1].Name, items[2].Name})

	storedAfter, err := env.storage.GetItems(ctx)
	require.NoError(t, err)
	require.Len(t, storedAfter, 3)
	for i := range ids {
		assert.Equal(t, ids[i], storedAfter[i].ID)
	}
	assert.NotEqual(t, storedBefore[1].Data.Nonce, storedAfter[1].Data.Nonce)
	assert.Equal(t, storedBefore[0].Data, storedAfter[0].Data)

	env.svc.Vault.Lock()
	require.NoError(t, env.svc.Vault.Unlock(ctx, testPassword))
	got, err := env.svc.Items.Get(ids[1])
	require.NoError(t, err)
	assert.Equal(t, "new-secret", got.Password)
}

func TestItems_Update_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.create(t)

	_, err := env.svc.Items.Update(context.Background(), "missing", samplePassword("x"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItems_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.create(t)

	a, err := env.svc.Items.Add(ctx, samplePassword("a"))
	require.NoError(t, err)
	b, err := env.svc.Items.Add(ctx, samplePassword("b"))
	require.NoError(t, err)

	require.NoError(t, env.svc.Items.Delete(ctx, a.ID))
	assert.ErrorIs(t, env.svc.Items.Delete(ctx, a.ID), ErrNotFound)

	_, err = env.svc.Items.Get(a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := env.storage.GetItems(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, b.ID, stored[0].ID)
}

func TestItems_Filter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.create(t)

	_, err := env.svc.Items.Add(ctx, samplePassword("GitHub"))
	require.NoError(t, err)
	_, err = env.svc.Items.Add(ctx, samplePassword("Gmail"))
	require.NoError(t, err)
	_, err = env.svc.Items.Add(ctx, models.NewCardPayload("Visa Gold", "J DOE", "4111111111111111", "01/30", "123"))
	require.NoError(t, err)

	names := func(f ItemFilter) []string {
		items, err := env.svc.Items.Filter(f)
		require.NoError(t, err)
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.Name)
		}
		return out
	}

	assert.Equal(t, []string{"GitHub", "Gmail", "Visa Gold"}, names(ItemFilter{}))
	assert.Equal(t, []string{"GitHub", "Gmail", "Visa Gold"}, names(ItemFilter{Type: "all"}))
	assert.Equal(t, []string{"GitHub", "Gmail"}, names(ItemFilter{Type: models.ItemTypePassword}))
	assert.Equal(t, []string{"Visa Gold"}, names(ItemFilter{Type: models.ItemTypeCard}))
	assert.Equal(t, []string{"GitHub"}, names(ItemFilter{Query: "GIT"}))
	assert.Equal(t, []string{"Gmail", "Visa Gold"}, names(ItemFilter{Query: "l"}))
	assert.Empty(t, names(ItemFilter{Type: models.ItemTypeCard, Query: "git"}))
}

func TestItems_List_ReturnsCopy(t *testing.T) {
	env := newTestEnv(t)
	env.create(t)

	_, err := env.svc.Items.Add(context.Background(), samplePassword("a"))
	require.NoError(t, err)

	items, err := env.svc.Items.List()
	require.NoError(t, err)
	items[0].Name = "mutated"

	again, err := env.svc.Items.List()
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].Name)
}

func TestItems_LoadAll_SkipsCorruptItemWithOneLog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.create(t)

	for _, name := range []string{"one", "two", "three"} {
		_, err := env.svc.Items.Add(ctx, samplePassword(name))
		require.NoError(t, err)
	}
	env.svc.Vault.Lock()

	stored, err := env.storage.GetItems(ctx)
	require.NoError(t, err)
	corruptID := stored[1].ID
	stored[1].Data.Ciphertext[0] ^= 0xFF
	require.NoError(t, env.storage.SaveItems(ctx, stored))

	require.NoError(t, env.svc.Vault.Unlock(ctx, testPassword))

	items, err := env.svc.Items.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "one", items[0].Name)
	assert.Equal(t, "three", items[1].Name)

	logs := env.logs.String()
	assert.Equal(t, 1, strings.Count(logs, "skipping unreadable item"))
	assert.Contains(t, logs, corruptID)
}

func TestItems_LoadAll_SkipsUndecodablePayload(t *testing.T) {
	keychain := crypto.NewKeyChainService(crypto.MinIterations)
	key := bytes.Repeat([]byte{7}, crypto.KeySize)

	sealed, err := keychain.Encrypt(key, []byte("not json"))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	storage := mock.NewMockVaultStorage(ctrl)
	storage.EXPECT().GetItems(gomock.Any()).Return([]models.EncryptedItem{{ID: "bad", Data: sealed}}, nil)

	log, buf := bufferLogger()
	svc := NewItemService(storage, keychain, NewSession(), validators.NewItemPayloadValidator(), utils.NewUUIDGenerator(), &noopMirror{}, log)

	items, skipped, err := svc.LoadAll(context.Background(), key)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, skipped)
	assert.Contains(t, buf.String(), `"item_id":"bad"`)
}

func TestItems_Add_StorageFailure_KeepsMemoryUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockVaultStorage(ctrl)
	storage.EXPECT().GetItems(gomock.Any()).Return(nil, nil)
	storage.EXPECT().SaveItems(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	session := NewSession()
	session.open(bytes.Repeat([]byte{1}, crypto.KeySize), nil, false)
	mirror := &noopMirror{}

	svc := NewItemService(storage, crypto.NewKeyChainService(crypto.MinIterations), session,
		validators.NewItemPayloadValidator(), utils.NewUUIDGenerator(), mirror, logger.Nop())

	_, err := svc.Add(context.Background(), samplePassword("a"))
	require.Error(t, err)

	items, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, mirror.calls)
}

func TestItems_NotifiesMirrorOnEachMutation(t *testing.T) {
	storage := newTestEnv(t).storage
	session := NewSession()
	session.open(bytes.Repeat([]byte{1}, crypto.KeySize), nil, false)
	mirror := &noopMirror{}

	svc := NewItemService(storage, crypto.NewKeyChainService(crypto.MinIterations), session,
		validators.NewItemPayloadValidator(), utils.NewUUIDGenerator(), mirror, logger.Nop())
	ctx := context.Background()

	it, err := svc.Add(ctx, samplePassword("a"))
	require.NoError(t, err)
	_, err = svc.Update(ctx, it.ID, samplePassword("b"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, it.ID))

	assert.Equal(t, 3, mirror.calls)
}
