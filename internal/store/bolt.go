package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/models"
)

var (
	boltMetaBucket  = []byte("meta")
	boltItemsBucket = []byte("items")
	boltSyncBucket  = []byte("sync")

	boltMetaKey  = []byte("vault")
	boltItemsKey = []byte("collection")
	boltLinkKey  = []byte("link")
)

// boltStorage is the bbolt-backed implementation of [Storage]. Each value is
// a JSON document; the item collection is a single ordered array so that
// whole-collection replaces happen in one write transaction.
type boltStorage struct {
	db     *bolt.DB
	logger *logger.Logger
}

// NewBoltStorage opens (creating if needed) the bolt file at path and
// initializes its buckets.
func NewBoltStorage(path string, log *logger.Logger) (Storage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("error creating bolt directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewBoltStorage").Msg("error opening bolt database")
		return nil, fmt.Errorf("error opening bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{boltMetaBucket, boltItemsBucket, boltSyncBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("error creating bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &boltStorage{db: db, logger: log}, nil
}

func (b *boltStorage) GetMeta(_ context.Context) (models.VaultMeta, error) {
	var meta models.VaultMeta
	found, err := b.get(boltMetaBucket, boltMetaKey, &meta)
	if err != nil {
		return models.VaultMeta{}, err
	}
	if !found {
		return models.VaultMeta{}, ErrVaultMetaNotFound
	}
	return meta, nil
}

func (b *boltStorage) SetMeta(_ context.Context, meta models.VaultMeta) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return putJSON(tx, boltMetaBucket, boltMetaKey, meta)
	})
}

func (b *boltStorage) GetItems(_ context.Context) ([]models.EncryptedItem, error) {
	items := make([]models.EncryptedItem, 0)
	if _, err := b.get(boltItemsBucket, boltItemsKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (b *boltStorage) SaveItems(_ context.Context, items []models.EncryptedItem) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return putJSON(tx, boltItemsBucket, boltItemsKey, nonNil(items))
	})
}

func (b *boltStorage) ReplaceVault(_ context.Context, meta models.VaultMeta, items []models.EncryptedItem) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		if err := putJSON(tx, boltMetaBucket, boltMetaKey, meta); err != nil {
			return err
		}
		return putJSON(tx, boltItemsBucket, boltItemsKey, nonNil(items))
	})
}

func (b *boltStorage) Clear(_ context.Context) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{boltMetaBucket, boltItemsBucket, boltSyncBucket} {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("error deleting bucket %s: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("error creating bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

func (b *boltStorage) GetSyncLink(_ context.Context) (models.SyncLink, error) {
	var link models.SyncLink
	found, err := b.get(boltSyncBucket, boltLinkKey, &link)
	if err != nil {
		return models.SyncLink{}, err
	}
	if !found {
		return models.SyncLink{}, ErrSyncLinkNotFound
	}
	return link, nil
}

func (b *boltStorage) SetSyncLink(_ context.Context, link models.SyncLink) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return putJSON(tx, boltSyncBucket, boltLinkKey, link)
	})
}

func (b *boltStorage) DeleteSyncLink(_ context.Context) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltSyncBucket).Delete(boltLinkKey)
	})
}

// Close releases the bolt file lock.
func (b *boltStorage) Close() error {
	return b.db.Close()
}

func (b *boltStorage) get(bucket, key []byte, dst any) (bool, error) {
	var found bool
	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucket).Get(key)
		if data == nil {
			return nil
		}
		found = true
		if err := json.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingValue, err)
		}
		return nil
	})
	if err != nil {
		b.logger.Err(err).Str("func", "boltStorage.get").Str("bucket", string(bucket)).Msg("failed to read value")
	}
	return found, err
}

func putJSON(tx *bolt.Tx, bucket, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}
	return tx.Bucket(bucket).Put(key, data)
}

func nonNil(items []models.EncryptedItem) []models.EncryptedItem {
	if items == nil {
		return []models.EncryptedItem{}
	}
	return items
}
