package service

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/akgarhwal/vault/internal/adapter"
	"github.com/akgarhwal/vault/internal/config"
	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/store"
	"github.com/akgarhwal/vault/models"
)

const testPassword = "correct horse battery staple"

// syncBuffer is a goroutine-safe log sink.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func bufferLogger() (*logger.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return &logger.Logger{Logger: zerolog.New(buf)}, buf
}

type testEnv struct {
	storage store.Storage
	svc     *ClientServices
	logs    *syncBuffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWith(t, store.NewMemoryStorage(), time.Minute)
}

func newTestEnvWith(t *testing.T, storage store.Storage, autoLock time.Duration) *testEnv {
	t.Helper()

	log, buf := bufferLogger()
	opener := adapter.NewOpener(testSyncConfig(), log)
	svc := NewClientServices(storage, opener, ClientOptions{AutoLockTimeout: autoLock}, log)
	t.Cleanup(svc.Vault.Lock)

	return &testEnv{storage: storage, svc: svc, logs: buf}
}

func (e *testEnv) create(t *testing.T) {
	t.Helper()
	require.NoError(t, e.svc.Vault.Create(context.Background(), testPassword))
}

// confirmAnswers answers Confirm calls from a script and records prompts.
type confirmAnswers struct {
	answers []bool
	prompts []string
}

func (c *confirmAnswers) Confirm(_ context.Context, message string) bool {
	c.prompts = append(c.prompts, message)
	if len(c.prompts) > len(c.answers) {
		return false
	}
	return c.answers[len(c.prompts)-1]
}

func yes() Confirmer {
	return ConfirmFunc(func(context.Context, string) bool { return true })
}

func samplePassword(name string) models.ItemPayload {
	return models.NewPasswordPayload(name, "alice", "hunter2", "https://"+name+".example.com")
}

func testSyncConfig() config.Sync {
	return config.Sync{Timeout: time.Second, KeyringService: "vault-sync-test"}
}
