package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akgarhwal/vault/internal/config"
	"github.com/akgarhwal/vault/internal/logger"
)

func TestNewStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		s, err := NewStorage(ctx, config.Storage{Driver: config.DriverMemory}, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &memoryStorage{}, s)
	})

	t.Run("bolt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "vault.bolt")
		s, err := NewStorage(ctx, config.Storage{Driver: config.DriverBolt, Path: path}, logger.Nop())
		require.NoError(t, err)
		defer s.Close()
		assert.IsType(t, &boltStorage{}, s)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := NewStorage(ctx, config.Storage{Driver: "postgres"}, logger.Nop())
		assert.ErrorIs(t, err, ErrUnknownDriver)
	})
}
