package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/akgarhwal/vault/internal/crypto"
	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/store"
	"github.com/akgarhwal/vault/internal/utils"
	"github.com/akgarhwal/vault/internal/validators"
	"github.com/akgarhwal/vault/models"
)

// mirrorNotifier is the part of the sync reconciler the item path needs.
type mirrorNotifier interface {
	Notify()
}

type itemService struct {
	storage   store.VaultStorage
	keychain  crypto.KeyChainService
	session   *Session
	validator validators.Validator
	ids       utils.IDGenerator
	mirror    mirrorNotifier
	now       func() time.Time

	logger *logger.Logger
}

func NewItemService(
	storage store.VaultStorage,
	keychain crypto.KeyChainService,
	session *Session,
	validator validators.Validator,
	ids utils.IDGenerator,
	mirror mirrorNotifier,
	log *logger.Logger,
) ItemService {
	return &itemService{
		storage:   storage,
		keychain:  keychain,
		session:   session,
		validator: validator,
		ids:       ids,
		mirror:    mirror,
		now:       time.Now,
		logger:    log,
	}
}

func (s *itemService) LoadAll(ctx context.Context, key []byte) ([]models.DecryptedItem, int, error) {
	stored, err := s.storage.GetItems(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("read items: %w", err)
	}

	items := make([]models.DecryptedItem, 0, len(stored))
	skipped := 0
	for _, enc := range stored {
		item, err := s.decryptItem(key, enc)
		if err != nil {
			skipped++
			s.logger.Warn().
				Err(err).
				Str("func", "itemService.LoadAll").
				Str("item_id", enc.ID).
				Msg("skipping unreadable item")
			continue
		}
		items = append(items, item)
	}

	return items, skipped, nil
}

func (s *itemService) Add(ctx context.Context, payload models.ItemPayload) (models.DecryptedItem, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.DecryptedItem{}, fmt.Errorf("validate item: %w", err)
	}

	var added models.DecryptedItem
	err := s.session.withUnlocked(func(key []byte, items *[]models.DecryptedItem) error {
		payload.Touch(s.now())
		item := models.DecryptedItem{ID: s.ids.Generate(), ItemPayload: payload}

		enc, err := s.encryptItem(key, item)
		if err != nil {
			return err
		}

		stored, err := s.storage.GetItems(ctx)
		if err != nil {
			return fmt.Errorf("read items: %w", err)
		}
		if err = s.storage.SaveItems(ctx, append(stored, enc)); err != nil {
			return fmt.Errorf("save items: %w", err)
		}

		*items = append(*items, item)
		added = item
		return nil
	})
	if err != nil {
		return models.DecryptedItem{}, err
	}

	s.mirror.Notify()
	return added, nil
}

func (s *itemService) Update(ctx context.Context, id string, payload models.ItemPayload) (models.DecryptedItem, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.DecryptedItem{}, fmt.Errorf("validate item: %w", err)
	}

	var updated models.DecryptedItem
	err := s.session.withUnlocked(func(key []byte, items *[]models.DecryptedItem) error {
		idx := slices.IndexFunc(*items, func(it models.DecryptedItem) bool { return it.ID == id })
		if idx < 0 {
			return ErrNotFound
		}

		payload.Touch(s.now())
		item := models.DecryptedItem{ID: id, ItemPayload: payload}

		enc, err := s.encryptItem(key, item)
		if err != nil {
			return err
		}

		stored, err := s.storage.GetItems(ctx)
		if err != nil {
			return fmt.Errorf("read items: %w", err)
		}
		if pos := slices.IndexFunc(stored, func(it models.EncryptedItem) bool { return it.ID == id }); pos >= 0 {
			stored[pos] = enc
		} else {
			stored = append(stored, enc)
		}
		if err = s.storage.SaveItems(ctx, stored); err != nil {
			return fmt.Errorf("save items: %w", err)
		}

		(*items)[idx] = item
		updated = item
		return nil
	})
	if err != nil {
		return models.DecryptedItem{}, err
	}

	s.mirror.Notify()
	return updated, nil
}

func (s *itemService) Delete(ctx context.Context, id string) error {
	err := s.session.withUnlocked(func(_ []byte, items *[]models.DecryptedItem) error {
		idx := slices.IndexFunc(*items, func(it models.DecryptedItem) bool { return it.ID == id })
		if idx < 0 {
			return ErrNotFound
		}

		stored, err := s.storage.GetItems(ctx)
		if err != nil {
			return fmt.Errorf("read items: %w", err)
		}
		stored = slices.DeleteFunc(stored, func(it models.EncryptedItem) bool { return it.ID == id })
		if err = s.storage.SaveItems(ctx, stored); err != nil {
			return fmt.Errorf("save items: %w", err)
		}

		*items = slices.Delete(*items, idx, idx+1)
		return nil
	})
	if err != nil {
		return err
	}

	s.mirror.Notify()
	return nil
}

func (s *itemService) Get(id string) (models.DecryptedItem, error) {
	items, err := s.session.snapshot()
	if err != nil {
		return models.DecryptedItem{}, err
	}

	idx := slices.IndexFunc(items, func(it models.DecryptedItem) bool { return it.ID == id })
	if idx < 0 {
		return models.DecryptedItem{}, ErrNotFound
	}
	return items[idx], nil
}

func (s *itemService) List() ([]models.DecryptedItem, error) {
	return s.session.snapshot()
}

func (s *itemService) Filter(filter ItemFilter) ([]models.DecryptedItem, error) {
	items, err := s.session.snapshot()
	if err != nil {
		return nil, err
	}
	return FilterItems(items, filter), nil
}

// FilterItems applies filter to items without modifying them.
func FilterItems(items []models.DecryptedItem, filter ItemFilter) []models.DecryptedItem {
	query := strings.ToLower(filter.Query)
	anyType := filter.Type == "" || filter.Type == "all"

	out := make([]models.DecryptedItem, 0, len(items))
	for _, it := range items {
		if !anyType && it.Type != filter.Type {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(it.Name), query) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (s *itemService) encryptItem(key []byte, item models.DecryptedItem) (models.EncryptedItem, error) {
	plain, err := json.Marshal(item.ItemPayload)
	if err != nil {
		return models.EncryptedItem{}, fmt.Errorf("encode item: %w", err)
	}

	env, err := s.keychain.Encrypt(key, plain)
	if err != nil {
		return models.EncryptedItem{}, fmt.Errorf("encrypt item: %w", err)
	}
	return models.EncryptedItem{ID: item.ID, Data: env}, nil
}

func (s *itemService) decryptItem(key []byte, enc models.EncryptedItem) (models.DecryptedItem, error) {
	plain, err := s.keychain.Decrypt(key, enc.Data)
	if err != nil {
		return models.DecryptedItem{}, err
	}

	var payload models.ItemPayload
	if err = json.Unmarshal(plain, &payload); err != nil {
		return models.DecryptedItem{}, fmt.Errorf("decode item: %w", err)
	}
	return models.DecryptedItem{ID: enc.ID, ItemPayload: payload}, nil
}
